package integration_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"provider_map/internal/models"
	"provider_map/test/helpers"
)

// TestRegisterAndLogin - полный цикл: регистрация, me, my-provider
func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, providerID := helpers.RegisterProvider(t, ts, "vasya", "cargo")
	assert.NotZero(t, providerID)

	meRes, meBody := ts.SendRequest(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBody, `"username":"vasya"`)
	assert.Contains(t, meBody, `"role":"user"`)

	provRes, provBody := ts.SendRequest(t, http.MethodGet, "/api/auth/my-provider", token, nil)
	assert.Equal(t, http.StatusOK, provRes.StatusCode)
	assert.Contains(t, provBody, "Карточка vasya")
	assert.Contains(t, provBody, `"category":"cargo"`)
}

// TestLogin_BadPassword - неверный пароль дает 401 с исходным detail
func TestLogin_BadPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateUser(t, ts.DB, &models.User{
		Username:     "petya",
		Email:        "petya@test.com",
		PasswordHash: "correct-password",
	})

	res, body := ts.SendForm(t, http.MethodPost, "/api/auth/login", "", url.Values{
		"username": {"petya"},
		"password": {"WRONG-password"},
	})

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Incorrect username or password")
}

// TestLogin_DisabledAccount - деактивированный аккаунт не пускаем
func TestLogin_DisabledAccount(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateUser(t, ts.DB, &models.User{
		Username:     "blocked",
		Email:        "blocked@test.com",
		PasswordHash: "password123",
	})
	assert.NoError(t, ts.DB.Model(&models.User{}).
		Where("username = ?", "blocked").
		Update("is_active", false).Error)

	res, body := ts.SendForm(t, http.MethodPost, "/api/auth/login", "", url.Values{
		"username": {"blocked"},
		"password": {"password123"},
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Account is disabled")
}

// TestRegister_DuplicateUsername - дубликат username дает 400
func TestRegister_DuplicateUsername(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.RegisterProvider(t, ts, "taken", "plumber")

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":  "taken",
		"email":     "another@test.com",
		"password":  "password123",
		"name":      "Другая карточка",
		"category":  "plumber",
		"latitude":  "42.8746",
		"longitude": "74.5698",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Username already registered")
}

// TestMe_WithoutToken - защищенный маршрут без токена дает 401
func TestMe_WithoutToken(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/auth/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, "Not authenticated")
}
