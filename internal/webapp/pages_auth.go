package webapp

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"provider_map/internal/gateway"
	"provider_map/internal/logger"
	"provider_map/internal/session"
)

func (s *Server) LoginPage(c *gin.Context) {
	if !s.guard(c) {
		return
	}
	sess := s.sessions.Load(c)
	if sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/cabinet")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Base": s.base(sess)})
}

func (s *Server) Login(c *gin.Context) {
	if !s.guard(c) {
		return
	}
	sess := s.sessions.Load(c)

	token, err := s.gw.Login(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if msg, handled := s.fail(c, err); !handled {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Base":     s.base(sess),
				"Error":    msg,
				"Username": c.PostForm("username"),
			})
		}
		return
	}

	if err := s.sessions.Save(c, &session.Session{
		Token:      token.AccessToken,
		UserID:     token.UserID,
		ProviderID: token.ProviderID,
		Role:       token.Role,
	}); err != nil {
		logger.WithError(err).Error("failed to save session")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Base":  s.base(sess),
			"Error": "Не удалось сохранить сессию",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/cabinet")
}

func (s *Server) RegisterPage(c *gin.Context) {
	if !s.guard(c) {
		return
	}
	s.renderRegisterPage(c, "", nil)
}

func (s *Server) renderRegisterPage(c *gin.Context, errMsg string, values map[string]string) {
	sess := s.sessions.Load(c)

	var catViews []categoryView
	if cats, err := s.gw.Categories(c.Request.Context()); err != nil {
		logger.WithError(err).Warn("categories unavailable on register page")
	} else {
		for _, cat := range cats {
			catViews = append(catViews, categoryView{Value: cat.Value, Label: cat.Label})
		}
	}

	c.HTML(http.StatusOK, "register.html", gin.H{
		"Base":       s.base(sess),
		"Categories": catViews,
		"Error":      errMsg,
		"Values":     values,
		"DefaultLat": DefaultLat,
		"DefaultLng": DefaultLng,
	})
}

// Register собирает multipart-форму и регистрирует провайдера.
// Координаты по умолчанию - центр Бишкека, если точка не выбрана.
func (s *Server) Register(c *gin.Context) {
	if !s.guard(c) {
		return
	}

	values := map[string]string{
		"username":    c.PostForm("username"),
		"email":       c.PostForm("email"),
		"name":        c.PostForm("name"),
		"category":    c.PostForm("category"),
		"description": c.PostForm("description"),
		"phone":       c.PostForm("phone"),
		"address":     c.PostForm("address"),
	}

	lat := parseFloatDefault(c.PostForm("latitude"), DefaultLat)
	lng := parseFloatDefault(c.PostForm("longitude"), DefaultLng)

	form := gateway.RegisterForm{
		Username:    strings.TrimSpace(c.PostForm("username")),
		Email:       strings.TrimSpace(c.PostForm("email")),
		Password:    c.PostForm("password"),
		Name:        strings.TrimSpace(c.PostForm("name")),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Latitude:    lat,
		Longitude:   lng,
		Phone:       c.PostForm("phone"),
		Address:     c.PostForm("address"),
	}

	if file, err := c.FormFile("photo"); err == nil && file != nil {
		src, err := file.Open()
		if err == nil {
			data, readErr := io.ReadAll(src)
			src.Close()
			if readErr == nil {
				form.Photo = data
				form.PhotoName = file.Filename
			}
		}
	}

	token, err := s.gw.Register(c.Request.Context(), form)
	if err != nil {
		if msg, handled := s.fail(c, err); !handled {
			s.renderRegisterPage(c, msg, values)
		}
		return
	}

	if err := s.sessions.Save(c, &session.Session{
		Token:      token.AccessToken,
		UserID:     token.UserID,
		ProviderID: token.ProviderID,
		Role:       token.Role,
	}); err != nil {
		logger.WithError(err).Error("failed to save session")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.Redirect(http.StatusSeeOther, "/cabinet")
}

// Logout стирает cookie сессии и возвращает на карту
func (s *Server) Logout(c *gin.Context) {
	s.sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func parseFloatDefault(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
