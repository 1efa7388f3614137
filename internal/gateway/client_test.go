package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClient_AttachesBearerToken - токен уходит в заголовке Authorization,
// а без токена заголовка нет
func TestClient_AttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"username":"u","email":"e","role":"user","is_active":true}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	_, err := client.Me(context.Background(), "my-token")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)

	_, err = client.Providers(context.Background(), ProviderFilter{})
	assert.Error(t, err) // тело не похоже на список, но заголовок проверяем
	assert.Empty(t, gotAuth, "публичный запрос не должен нести Authorization")
}

// TestClient_HTTPErrorCarriesDetail - статус >= 400 дает KindHTTP
// с detail из тела ответа
func TestClient_HTTPErrorCarriesDetail(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	_, err := client.Login(context.Background(), "user", "wrong")

	gwErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, KindHTTP, gwErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, gwErr.Status)
	assert.Equal(t, "Incorrect username or password", gwErr.Message)
	assert.True(t, IsUnauthorized(err))
}

// TestClient_HTTPErrorFallbackMessage - нечитаемое тело подменяется
// запасным текстом по статусу
func TestClient_HTTPErrorFallbackMessage(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	_, err := client.Provider(context.Background(), 1)

	gwErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, KindHTTP, gwErr.Kind)
	assert.Equal(t, "Ошибка сервера", gwErr.Message)
}

// TestClient_NetworkError - недоступный сервер дает KindNetwork
func TestClient_NetworkError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // сервер уже мертв

	client := NewClient(ts.URL)
	_, err := client.Categories(context.Background())

	gwErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, KindNetwork, gwErr.Kind)
	assert.True(t, IsNetwork(err))
}

// TestClient_SendMessage_ValidationShortCircuit - пустое обязательное поле
// отклоняется до похода в сеть
func TestClient_SendMessage_ValidationShortCircuit(t *testing.T) {
	t.Parallel()

	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer ts.Close()

	client := NewClient(ts.URL)

	_, err := client.SendMessage(context.Background(), 1, MessageForm{
		ClientName:  "Вася",
		ClientPhone: "+996555000111",
		MessageText: "   ",
	})

	gwErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, KindValidation, gwErr.Kind)
	assert.Zero(t, requests, "запрос не должен уходить в сеть")
}

// TestClient_SendMessage_Success - валидная форма доходит до API
func TestClient_SendMessage_Success(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/providers/5/messages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":10,"provider_id":5,"client_name":"Вася","client_phone":"555","message_text":"привет"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	msg, err := client.SendMessage(context.Background(), 5, MessageForm{
		ClientName:  "Вася",
		ClientPhone: "555",
		MessageText: "привет",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(10), msg.ID)
	assert.Equal(t, uint(5), msg.ProviderID)
}

// TestClient_Register_SendsMultipartFields - регистрация несет все поля
// формы и файл фото
func TestClient_Register_SendsMultipartFields(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "vasya", r.FormValue("username"))
		assert.Equal(t, "cargo", r.FormValue("category"))
		assert.Equal(t, "42.8746", r.FormValue("latitude"))
		assert.Equal(t, "74.5698", r.FormValue("longitude"))

		file, header, err := r.FormFile("photo")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer","user_id":1,"provider_id":2,"role":"user"}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	token, err := client.Register(context.Background(), RegisterForm{
		Username:  "vasya",
		Email:     "v@example.com",
		Password:  "secret1",
		Name:      "Грузоперевозки Вася",
		Category:  "cargo",
		Latitude:  42.8746,
		Longitude: 74.5698,
		PhotoName: "photo.jpg",
		Photo:     []byte("fake-image-bytes"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok", token.AccessToken)
	assert.Equal(t, uint(2), *token.ProviderID)
}

// TestClient_PhotoURL - относительные пути разворачиваются от базы,
// абсолютные проходят как есть
func TestClient_PhotoURL(t *testing.T) {
	t.Parallel()

	client := NewClient("http://api.example.com")

	assert.Equal(t, "", client.PhotoURL(""))
	assert.Equal(t, "http://api.example.com/uploads/a.jpg", client.PhotoURL("/uploads/a.jpg"))
	assert.Equal(t, "http://api.example.com/uploads/a.jpg", client.PhotoURL("uploads/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/x.png", client.PhotoURL("https://cdn.example.com/x.png"))
	assert.Equal(t, "http://other.host/y.png", client.PhotoURL("http://other.host/y.png"))
}

// TestClient_CategoriesEnvelope - ответ {"categories": [...]} разворачивается
func TestClient_CategoriesEnvelope(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"categories":[{"value":"cargo","label":"Грузовые машины"},{"value":"other","label":"Другое"}]}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	cats, err := client.Categories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, cats, 2)
	assert.Equal(t, "cargo", cats[0].Value)
}
