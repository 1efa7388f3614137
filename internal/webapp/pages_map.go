package webapp

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"provider_map/internal/category"
	"provider_map/internal/gateway"
	"provider_map/internal/logger"
)

// Центр карты по умолчанию - Бишкек
const (
	DefaultLat = 42.8746
	DefaultLng = 74.5698
)

// providerView - карточка провайдера с данными категории для шаблонов
type providerView struct {
	gateway.Provider
	Emoji         string
	CategoryLabel string
	Color         string
	PhotoFullURL  string
}

type categoryView struct {
	Value string
	Label string
	Emoji string
}

func (s *Server) providerViews(providers []gateway.Provider) []providerView {
	out := make([]providerView, 0, len(providers))
	for _, p := range providers {
		info := category.Lookup(p.Category)
		out = append(out, providerView{
			Provider:      p,
			Emoji:         info.Emoji,
			CategoryLabel: info.Label,
			Color:         info.Color,
			PhotoFullURL:  s.gw.PhotoURL(p.Photo),
		})
	}
	return out
}

// mapMarker - то, что уходит в скрипт карты
type mapMarker struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Emoji string  `json:"emoji"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// MapPage - главная страница: карта и список с фильтром и сортировкой.
// Выбранная категория в query-строке управляет и тем, и другим.
func (s *Server) MapPage(c *gin.Context) {
	if !s.guard(c) {
		return
	}
	sess := s.sessions.Load(c)

	selected := c.DefaultQuery("category", FilterAll)
	sortKey := c.Query("sort")

	// Категории для фильтра: при сбое просто пустая панель, страница живет
	var catViews []categoryView
	if cats, err := s.gw.Categories(c.Request.Context()); err != nil {
		logger.WithError(err).Warn("categories unavailable, filter bar degraded")
	} else {
		for _, cat := range cats {
			catViews = append(catViews, categoryView{
				Value: cat.Value,
				Label: cat.Label,
				Emoji: category.Lookup(cat.Value).Emoji,
			})
		}
	}

	providers, err := s.gw.Providers(c.Request.Context(), gateway.ProviderFilter{})
	if err != nil {
		if msg, handled := s.fail(c, err); !handled {
			c.HTML(http.StatusOK, "index.html", gin.H{
				"Base":       s.base(sess),
				"Categories": catViews,
				"Selected":   selected,
				"Sort":       sortKey,
				"Error":      msg,
				"Retry":      true,
			})
		}
		return
	}

	visible := ApplySort(FilterByCategory(providers, selected), sortKey)

	markers := make([]mapMarker, 0, len(visible))
	for _, p := range visible {
		info := category.Lookup(p.Category)
		markers = append(markers, mapMarker{
			ID:    p.ID,
			Name:  p.Name,
			Lat:   p.Latitude,
			Lng:   p.Longitude,
			Emoji: info.Emoji,
			Color: info.Color,
			Label: info.Label,
		})
	}
	markersJSON, _ := json.Marshal(markers)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Base":       s.base(sess),
		"Providers":  s.providerViews(visible),
		"Categories": catViews,
		"Selected":   selected,
		"Sort":       sortKey,
		"Markers":    template.JS(markersJSON),
		"DefaultLat": DefaultLat,
		"DefaultLng": DefaultLng,
	})
}

// ProviderPage - карточка провайдера с формой сообщения
func (s *Server) ProviderPage(c *gin.Context) {
	if !s.guard(c) {
		return
	}
	s.renderProviderPage(c, "", "", http.StatusOK)
}

func (s *Server) renderProviderPage(c *gin.Context, errMsg, okMsg string, status int) {
	sess := s.sessions.Load(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Base":   s.base(sess),
			"Detail": "Провайдер не найден",
		})
		return
	}

	provider, gwErr := s.gw.Provider(c.Request.Context(), uint(id))
	if gwErr != nil {
		if msg, handled := s.fail(c, gwErr); !handled {
			c.HTML(http.StatusOK, "error.html", gin.H{
				"Base":   s.base(sess),
				"Detail": msg,
			})
		}
		return
	}

	views := s.providerViews([]gateway.Provider{*provider})
	c.HTML(status, "provider.html", gin.H{
		"Base":     s.base(sess),
		"Provider": views[0],
		"Error":    errMsg,
		"Sent":     okMsg,
	})
}

// SendMessage обрабатывает форму обращения к провайдеру.
// Пустые обязательные поля отсекает шлюз, в сеть такой запрос не уходит.
func (s *Server) SendMessage(c *gin.Context) {
	if !s.guard(c) {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	form := gateway.MessageForm{
		ClientName:  c.PostForm("client_name"),
		ClientPhone: c.PostForm("client_phone"),
		ClientEmail: c.PostForm("client_email"),
		MessageText: c.PostForm("message_text"),
	}

	if _, err := s.gw.SendMessage(c.Request.Context(), uint(id), form); err != nil {
		if msg, handled := s.fail(c, err); !handled {
			s.renderProviderPage(c, msg, "", http.StatusOK)
		}
		return
	}

	s.renderProviderPage(c, "", "Сообщение отправлено", http.StatusOK)
}
