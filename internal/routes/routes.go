package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"provider_map/internal/handlers"
	"provider_map/internal/middleware"
	"provider_map/internal/models"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, uploadsDir string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Загруженные фото отдаются как статика
	router.Static("/uploads", uploadsDir)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/me", middleware.AuthMiddleware(), h.Auth.Me)
			auth.GET("/my-provider", middleware.AuthMiddleware(), h.Auth.MyProvider)
		}

		providers := api.Group("/providers")
		{
			providers.GET("", h.Provider.List)
			providers.GET("/:id", h.Provider.Get)
			providers.POST("", h.Provider.Create)
			providers.PUT("/:id", middleware.AuthMiddleware(), h.Provider.Update)
			providers.DELETE("/:id",
				middleware.AuthMiddleware(),
				middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleSuperAdmin),
				h.Provider.Delete,
			)

			// Сообщения живут под карточкой провайдера
			providers.POST("/:id/messages", h.Message.Send)
			providers.GET("/:id/messages", middleware.AuthMiddleware(), h.Message.List)
		}

		api.GET("/categories", h.Category.List)

		api.POST("/upload", middleware.AuthMiddleware(), h.Upload.Upload)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		{
			// Статистика и карточки доступны обоим админским ролям
			staff := admin.Group("")
			staff.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleSuperAdmin))
			{
				staff.GET("/stats", h.Admin.Stats)
				staff.GET("/providers", h.Provider.AdminList)
				staff.PUT("/providers/:id/toggle-active", h.Admin.ToggleProvider)
				staff.DELETE("/providers/:id", h.Admin.DeleteProvider)
			}

			// Пользователи и категории - только супер-админ
			super := admin.Group("")
			super.Use(middleware.RequireRoles(models.UserRoleSuperAdmin))
			{
				super.GET("/users", h.Admin.ListUsers)
				super.GET("/users/:id", h.Admin.GetUser)
				super.PUT("/users/:id", h.Admin.UpdateUser)
				super.DELETE("/users/:id", h.Admin.DeleteUser)

				super.GET("/categories", h.Category.List)
				super.POST("/categories", h.Category.Create)
				super.DELETE("/categories/:value", h.Category.Delete)
			}
		}
	}
}
