package webapp

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"provider_map/internal/gateway"
	"provider_map/internal/logger"
)

// CabinetPage - личный кабинет: карточка провайдера и входящие сообщения
func (s *Server) CabinetPage(c *gin.Context) {
	if !s.guard(c) {
		return
	}
	sess := s.sessions.Load(c)
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	s.renderCabinet(c, "", "")
}

func (s *Server) renderCabinet(c *gin.Context, errMsg, okMsg string) {
	sess := s.sessions.Load(c)
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	provider, err := s.gw.MyProvider(c.Request.Context(), sess.Token)
	if err != nil {
		if msg, handled := s.fail(c, err); !handled {
			c.HTML(http.StatusOK, "cabinet.html", gin.H{
				"Base":  s.base(sess),
				"Error": msg,
			})
		}
		return
	}

	var messages []gateway.Message
	if msgs, err := s.gw.Messages(c.Request.Context(), sess.Token, provider.ID); err != nil {
		if _, handled := s.fail(c, err); handled {
			return
		}
		logger.WithError(err).Warn("inbox unavailable", "provider_id", provider.ID)
	} else {
		messages = msgs
	}

	var catViews []categoryView
	if cats, err := s.gw.Categories(c.Request.Context()); err == nil {
		for _, cat := range cats {
			catViews = append(catViews, categoryView{Value: cat.Value, Label: cat.Label})
		}
	}

	views := s.providerViews([]gateway.Provider{*provider})
	c.HTML(http.StatusOK, "cabinet.html", gin.H{
		"Base":       s.base(sess),
		"Provider":   views[0],
		"Messages":   messages,
		"Categories": catViews,
		"Error":      errMsg,
		"Saved":      okMsg,
	})
}

// UpdateMyProvider - сохранение правок карточки из кабинета.
// Пустые поля формы не отправляются: непереданное поле не меняется.
func (s *Server) UpdateMyProvider(c *gin.Context) {
	if !s.guard(c) {
		return
	}
	sess := s.sessions.Load(c)
	if !sess.IsAuthenticated() || sess.ProviderID == nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	form := gateway.ProviderUpdateForm{}
	if v, ok := c.GetPostForm("name"); ok && v != "" {
		form.Name = &v
	}
	if v, ok := c.GetPostForm("category"); ok && v != "" {
		form.Category = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		form.Description = &v
	}
	if v, ok := c.GetPostForm("phone"); ok {
		form.Phone = &v
	}
	if v, ok := c.GetPostForm("address"); ok {
		form.Address = &v
	}
	if v, ok := c.GetPostForm("latitude"); ok && v != "" {
		lat := parseFloatDefault(v, DefaultLat)
		form.Latitude = &lat
	}
	if v, ok := c.GetPostForm("longitude"); ok && v != "" {
		lng := parseFloatDefault(v, DefaultLng)
		form.Longitude = &lng
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

	if _, err := s.gw.UpdateProvider(c.Request.Context(), sess.Token, *sess.ProviderID, form); err != nil {
		if msg, handled := s.fail(c, err); !handled {
			s.renderCabinet(c, msg, "")
		}
		return
	}

	s.renderCabinet(c, "", "Изменения сохранены")
}
