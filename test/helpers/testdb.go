package helpers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"provider_map/internal/models"
)

// CreateUser создает пользователя напрямую в БД, хешируя сырой пароль
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashed)
	}
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	user.IsActive = true

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", user.Username, err)
	}
}

// CreateProvider создает карточку провайдера напрямую в БД
func CreateProvider(t *testing.T, db *gorm.DB, provider *models.ServiceProvider) {
	t.Helper()

	if provider.Category == "" {
		provider.Category = "other"
	}
	provider.IsActive = true

	if err := db.Create(provider).Error; err != nil {
		t.Fatalf("Не удалось создать провайдера %s: %v", provider.Name, err)
	}
}

// LoginUser логинит существующего пользователя через API и возвращает токен
func LoginUser(t *testing.T, ts *TestServer, username, password string) string {
	t.Helper()

	res, body := ts.SendForm(t, http.MethodPost, "/api/auth/login", "", url.Values{
		"username": {username},
		"password": {password},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+body)

	var token struct {
		AccessToken string `json:"access_token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &token))
	assert.NotEmpty(t, token.AccessToken)

	return token.AccessToken
}

// CreateAndLoginSuperAdmin создает супер-админа и возвращает его токен
func CreateAndLoginSuperAdmin(t *testing.T, ts *TestServer) string {
	t.Helper()

	CreateUser(t, ts.DB, &models.User{
		Username:     "root_admin",
		Email:        "root@test.com",
		PasswordHash: "admin-password",
		Role:         models.UserRoleSuperAdmin,
	})
	return LoginUser(t, ts, "root_admin", "admin-password")
}

// RegisterProvider регистрирует провайдера через API и возвращает токен
// вместе с id созданной карточки
func RegisterProvider(t *testing.T, ts *TestServer, username, category string) (string, uint) {
	t.Helper()

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":  username,
		"email":     username + "@test.com",
		"password":  "password123",
		"name":      "Карточка " + username,
		"category":  category,
		"latitude":  "42.8746",
		"longitude": "74.5698",
		"phone":     "+996555000111",
	}, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+body)

	var token struct {
		AccessToken string `json:"access_token"`
		ProviderID  *uint  `json:"provider_id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &token))
	assert.NotNil(t, token.ProviderID)

	return token.AccessToken, *token.ProviderID
}
