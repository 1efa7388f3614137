package webapp

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"provider_map/internal/gateway"
	"provider_map/internal/logger"
)

// AdminPage - дашборд: вкладки stats/providers/users/categories.
// users и categories видны только супер-админу, роль проверяет и сервер.
func (s *Server) AdminPage(c *gin.Context) {
	if !s.guard(c) {
		return
	}
	sess := s.sessions.Load(c)
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if !sess.IsAdmin() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	s.renderAdmin(c, "")
}

func (s *Server) renderAdmin(c *gin.Context, errMsg string) {
	sess := s.sessions.Load(c)
	if !sess.IsAdmin() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	tab := c.DefaultQuery("tab", "stats")
	if (tab == "users" || tab == "categories") && !sess.IsSuperAdmin() {
		tab = "stats"
	}

	data := gin.H{
		"Base":  s.base(sess),
		"Tab":   tab,
		"Error": errMsg,
	}

	ctx := c.Request.Context()
	var err error

	switch tab {
	case "providers":
		var providers []gateway.Provider
		if providers, err = s.gw.AllProviders(ctx, sess.Token); err == nil {
			data["Providers"] = s.providerViews(providers)
		}
	case "users":
		var users []gateway.User
		if users, err = s.gw.Users(ctx, sess.Token); err == nil {
			data["Users"] = users
		}
	case "categories":
		var cats []gateway.Category
		if cats, err = s.gw.Categories(ctx); err == nil {
			data["Categories"] = cats
		}
	default:
		var stats *gateway.Stats
		if stats, err = s.gw.Stats(ctx, sess.Token); err == nil {
			data["Stats"] = stats
		}
	}

	if err != nil {
		msg, handled := s.fail(c, err)
		if handled {
			return
		}
		data["Error"] = msg
	}

	c.HTML(http.StatusOK, "admin.html", data)
}

// adminAction выполняет мутацию и возвращает на ту же вкладку
func (s *Server) adminAction(c *gin.Context, tab string, run func(token string) error) {
	if !s.guard(c) {
		return
	}
	sess := s.sessions.Load(c)
	if !sess.IsAdmin() {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := run(sess.Token); err != nil {
		if msg, handled := s.fail(c, err); !handled {
			logger.Warn("admin action failed", "path", c.Request.URL.Path, "error", msg)
			c.Request.URL.RawQuery = "tab=" + tab
			s.renderAdmin(c, msg)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin?tab="+tab)
}

func (s *Server) AdminToggleProvider(c *gin.Context) {
	id := paramUint(c, "id")
	s.adminAction(c, "providers", func(token string) error {
		_, err := s.gw.ToggleProviderActive(c.Request.Context(), token, id)
		return err
	})
}

func (s *Server) AdminDeleteProvider(c *gin.Context) {
	id := paramUint(c, "id")
	s.adminAction(c, "providers", func(token string) error {
		return s.gw.HardDeleteProvider(c.Request.Context(), token, id)
	})
}

func (s *Server) AdminUpdateUser(c *gin.Context) {
	id := paramUint(c, "id")
	form := gateway.UserUpdateForm{}
	if v, ok := c.GetPostForm("role"); ok && v != "" {
		form.Role = &v
	}
	if v, ok := c.GetPostForm("is_active"); ok {
		active := v == "true" || v == "on"
		form.IsActive = &active
	}

	s.adminAction(c, "users", func(token string) error {
		_, err := s.gw.UpdateUser(c.Request.Context(), token, id, form)
		return err
	})
}

func (s *Server) AdminDeleteUser(c *gin.Context) {
	id := paramUint(c, "id")
	s.adminAction(c, "users", func(token string) error {
		return s.gw.DeleteUser(c.Request.Context(), token, id)
	})
}

func (s *Server) AdminCreateCategory(c *gin.Context) {
	value := c.PostForm("value")
	label := c.PostForm("label")
	s.adminAction(c, "categories", func(token string) error {
		_, err := s.gw.CreateCategory(c.Request.Context(), token, value, label)
		return err
	})
}

func (s *Server) AdminDeleteCategory(c *gin.Context) {
	value := c.Param("value")
	s.adminAction(c, "categories", func(token string) error {
		return s.gw.DeleteCategory(c.Request.Context(), token, value)
	})
}

func paramUint(c *gin.Context, key string) uint {
	v, _ := strconv.ParseUint(c.Param(key), 10, 32)
	return uint(v)
}
