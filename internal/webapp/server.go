package webapp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider_map/internal/config"
	"provider_map/internal/gateway"
	"provider_map/internal/logger"
	"provider_map/internal/middleware"
	"provider_map/internal/session"
)

// Server - веб-фронтенд: страницы рендерятся на сервере, данные
// ходят только через gateway.Client.
type Server struct {
	gw       *gateway.Client
	sessions *session.Store
	cfg      config.FrontendConfig
	// configErr выставляется, когда адрес API неразрешим: все страницы
	// показывают инструкцию по настройке вместо контента
	configErr error
}

func NewServer(gw *gateway.Client, sessions *session.Store, cfg config.FrontendConfig, configErr error) *Server {
	return &Server{
		gw:        gw,
		sessions:  sessions,
		cfg:       cfg,
		configErr: configErr,
	}
}

func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}
	static, err := StaticFS()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(static))

	router.GET("/", s.MapPage)
	router.GET("/providers/:id", s.ProviderPage)
	router.POST("/providers/:id/message", s.SendMessage)

	router.GET("/login", s.LoginPage)
	router.POST("/login", s.Login)
	router.GET("/register", s.RegisterPage)
	router.POST("/register", s.Register)
	router.GET("/logout", s.Logout)

	router.GET("/cabinet", s.CabinetPage)
	router.POST("/cabinet", s.UpdateMyProvider)

	router.GET("/admin", s.AdminPage)
	router.POST("/admin/providers/:id/toggle", s.AdminToggleProvider)
	router.POST("/admin/providers/:id/delete", s.AdminDeleteProvider)
	router.POST("/admin/users/:id/update", s.AdminUpdateUser)
	router.POST("/admin/users/:id/delete", s.AdminDeleteUser)
	router.POST("/admin/categories", s.AdminCreateCategory)
	router.POST("/admin/categories/:value/delete", s.AdminDeleteCategory)

	return router, nil
}

// baseView - общие поля всех страниц
type baseView struct {
	Authenticated bool
	IsAdmin       bool
	IsSuperAdmin  bool
}

func (s *Server) base(sess *session.Session) baseView {
	return baseView{
		Authenticated: sess.IsAuthenticated(),
		IsAdmin:       sess.IsAdmin(),
		IsSuperAdmin:  sess.IsSuperAdmin(),
	}
}

// guard проверяет, что API сконфигурирован; иначе рисует страницу
// "сервис не настроен" и обрывает обработку
func (s *Server) guard(c *gin.Context) bool {
	if s.configErr == nil {
		return true
	}
	c.HTML(http.StatusServiceUnavailable, "config_error.html", gin.H{
		"Detail": s.configErr.Error(),
	})
	return false
}

// fail обрабатывает ошибку шлюза единообразно:
// 401 стирает сессию и уводит на /login, остальное отдается вызывающему
func (s *Server) fail(c *gin.Context, err error) (message string, handled bool) {
	if gateway.IsUnauthorized(err) {
		s.sessions.Clear(c)
		c.Redirect(http.StatusSeeOther, "/login")
		return "", true
	}
	if gateway.IsConfig(err) {
		c.HTML(http.StatusServiceUnavailable, "config_error.html", gin.H{
			"Detail": err.Error(),
		})
		return "", true
	}

	if gwErr, ok := err.(*gateway.Error); ok {
		return gwErr.Message, false
	}
	logger.WithError(err).Error("unexpected frontend error", "path", c.Request.URL.Path)
	return "Что-то пошло не так", false
}
