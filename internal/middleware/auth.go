package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"provider_map/internal/auth"
	"provider_map/internal/models"
	"provider_map/internal/services"
	"provider_map/pkg/apperrors"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// AuthMiddleware проверяет Bearer-токен и кладет claims в контекст
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Not authenticated"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Could not validate credentials"))
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRoles пускает дальше только перечисленные роли.
// Вешается после AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(c.GetString(ContextRole))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		c.Abort()
	}
}

// GetUserID достает ID пользователя, положенный AuthMiddleware
func GetUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetActor собирает субъекта операции из контекста запроса
func GetActor(c *gin.Context) services.Actor {
	return services.Actor{
		UserID: GetUserID(c),
		Role:   models.UserRole(c.GetString(ContextRole)),
	}
}
