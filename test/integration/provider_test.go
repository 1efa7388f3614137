package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"provider_map/internal/models"
	"provider_map/test/helpers"
)

// TestProviderList_FiltersAndActivity - публичный список отдает только
// активных, фильтр по категории работает в запросе
func TestProviderList_FiltersAndActivity(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	helpers.CreateProvider(t, ts.DB, &models.ServiceProvider{Name: "Активный Груз", Category: "cargo", Latitude: 42.87, Longitude: 74.57})
	helpers.CreateProvider(t, ts.DB, &models.ServiceProvider{Name: "Сантехник Петр", Category: "plumber", Latitude: 42.88, Longitude: 74.58})

	hidden := &models.ServiceProvider{Name: "Скрытый Груз", Category: "cargo", Latitude: 42.86, Longitude: 74.56}
	helpers.CreateProvider(t, ts.DB, hidden)
	assert.NoError(t, ts.DB.Model(hidden).Update("is_active", false).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/providers", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Активный Груз")
	assert.Contains(t, body, "Сантехник Петр")
	assert.NotContains(t, body, "Скрытый Груз")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/providers?category=cargo", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Активный Груз")
	assert.NotContains(t, body, "Сантехник Петр")
}

// TestProviderUpdate_OwnerOnly - владелец правит свою карточку,
// чужая правка запрещена
func TestProviderUpdate_OwnerOnly(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, providerID := helpers.RegisterProvider(t, ts, "owner", "electrician")
	strangerToken, _ := helpers.RegisterProvider(t, ts, "stranger", "plumber")

	path := fmt.Sprintf("/api/providers/%d", providerID)

	res, body := ts.SendMultipart(t, http.MethodPut, path, ownerToken, map[string]string{
		"phone":       "+996700123456",
		"description": "Выезд в течение часа",
	}, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "+996700123456")

	res, _ = ts.SendMultipart(t, http.MethodPut, path, strangerToken, map[string]string{
		"phone": "+996700999999",
	}, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Детальная страница видит правку владельца
	res, body = ts.SendRequest(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Выезд в течение часа")
}

// TestMessages_AnonymousSendOwnerRead - сообщение отправляет аноним,
// читает только владелец
func TestMessages_AnonymousSendOwnerRead(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, providerID := helpers.RegisterProvider(t, ts, "master", "tow_truck")
	strangerToken, _ := helpers.RegisterProvider(t, ts, "rival", "tow_truck")

	path := fmt.Sprintf("/api/providers/%d/messages", providerID)

	res, body := ts.SendRequest(t, http.MethodPost, path, "", map[string]interface{}{
		"client_name":  "Анонимный Клиент",
		"client_phone": "+996555111222",
		"message_text": "Нужен эвакуатор на Ахунбаева",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Анонимный Клиент")

	// Владелец видит входящие
	res, body = ts.SendRequest(t, http.MethodGet, path, ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Нужен эвакуатор на Ахунбаева")

	// Без токена и с чужим токеном чтения нет
	res, _ = ts.SendRequest(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, path, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestMessages_UnknownProvider - сообщение несуществующему провайдеру дает 404
func TestMessages_UnknownProvider(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/providers/99999/messages", "", map[string]interface{}{
		"client_name":  "Клиент",
		"client_phone": "+996555111222",
		"message_text": "Эй, есть кто?",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Provider not found")
}

// TestCategories_PublicList - справочник категорий отдается конвертом
func TestCategories_PublicList(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/categories", "", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"categories"`)
	assert.Contains(t, body, "Грузовые машины")
	assert.Contains(t, body, "Эвакуаторы")
}
