package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"provider_map/internal/models"
	"provider_map/test/helpers"
)

// TestAdminStats - счетчики дашборда считаются по живым данным
func TestAdminStats(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken := helpers.CreateAndLoginSuperAdmin(t, ts)
	helpers.RegisterProvider(t, ts, "stats_user", "cargo")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/admin/stats", adminToken, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"total_users":2`)
	assert.Contains(t, body, `"total_providers":1`)
	assert.Contains(t, body, `"active_providers":1`)
	assert.Contains(t, body, `"total_categories":5`)
}

// TestAdminStats_ForbiddenForUser - обычному пользователю админка закрыта
func TestAdminStats_ForbiddenForUser(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	userToken, _ := helpers.RegisterProvider(t, ts, "plain_user", "other")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/admin/stats", userToken, nil)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "Not enough permissions")
}

// TestAdminToggleAndHardDeleteProvider - модерация карточки:
// скрыть, показать в админском списке, удалить насовсем
func TestAdminToggleAndHardDeleteProvider(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	adminToken := helpers.CreateAndLoginSuperAdmin(t, ts)
	_, providerID := helpers.RegisterProvider(t, ts, "moderated", "plumber")

	togglePath := fmt.Sprintf("/api/admin/providers/%d/toggle-active", providerID)
	res, body := ts.SendRequest(t, http.MethodPut, togglePath, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"is_active":false`)

	// Из публичного списка карточка пропала, в админском осталась
	res, body = ts.SendRequest(t, http.MethodGet, "/api/providers", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, "Карточка moderated")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/admin/providers", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Карточка moderated")

	deletePath := fmt.Sprintf("/api/admin/providers/%d", providerID)
	res, _ = ts.SendRequest(t, http.MethodDelete, deletePath, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	ts.DB.Model(&models.ServiceProvider{}).Where("id = ?", providerID).Count(&count)
	assert.Zero(t, count, "карточка должна быть удалена из БД")
}

// TestAdminUsers_SuperAdminOnly - управление пользователями закрыто
// даже для обычного админа
func TestAdminUsers_SuperAdminOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	superToken := helpers.CreateAndLoginSuperAdmin(t, ts)

	helpers.CreateUser(t, ts.DB, &models.User{
		Username:     "mid_admin",
		Email:        "mid@test.com",
		PasswordHash: "password123",
		Role:         models.UserRoleAdmin,
	})
	adminToken := helpers.LoginUser(t, ts, "mid_admin", "password123")

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/admin/users", superToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "mid_admin")
	assert.NotContains(t, body, "password", "хеши паролей наружу не отдаем")
}

// TestAdminUpdateUser_PromoteAndProtectLast - повышение роли работает,
// последнего супер-админа понизить нельзя
func TestAdminUpdateUser_PromoteAndProtectLast(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	superToken := helpers.CreateAndLoginSuperAdmin(t, ts)
	helpers.RegisterProvider(t, ts, "promoted", "electrician")

	var promoted models.User
	assert.NoError(t, ts.DB.Where("username = ?", "promoted").First(&promoted).Error)

	res, body := ts.SendRequest(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", promoted.ID), superToken, map[string]interface{}{
		"role": "admin",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"role":"admin"`)

	// Единственного супер-админа трогать нельзя
	var root models.User
	assert.NoError(t, ts.DB.Where("username = ?", "root_admin").First(&root).Error)

	res, body = ts.SendRequest(t, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", root.ID), superToken, map[string]interface{}{
		"role": "user",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Cannot remove the last super admin")

	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", root.ID), superToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestAdminCategories_CRUD - супер-админ управляет справочником
func TestAdminCategories_CRUD(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	superToken := helpers.CreateAndLoginSuperAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/admin/categories", superToken, map[string]interface{}{
		"value": "welder",
		"label": "Сварщики",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Сварщики")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/categories", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "welder")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/admin/categories/welder", superToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/categories", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, "welder")
}
