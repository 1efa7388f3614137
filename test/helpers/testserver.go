package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"provider_map/internal/app"
	"provider_map/internal/config"
	"provider_map/internal/models"
)

// TestServer - поднятый API поверх тестовой БД из DATABASE_URL
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer подключается к тестовой БД, мигрирует схему
// и поднимает httptest-сервер с боевым роутером.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	config.LoadConfig()
	cfg := config.GetConfig()

	// Загрузки не должны засорять рабочий каталог.
	// Сервер живет дольше первого теста, поэтому не t.TempDir.
	uploadsDir, err := os.MkdirTemp("", "uploads-*")
	if err != nil {
		t.Fatalf("Не удалось создать временный каталог загрузок: %v", err)
	}
	cfg.Storage.BasePath = uploadsDir

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", cfg.Database.DSN, err)
	}

	err = db.AutoMigrate(
		&models.Category{},
		&models.ServiceProvider{},
		&models.User{},
		&models.Message{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate для тестовой БД: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables очищает данные и возвращает справочник категорий
// в стартовое состояние.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()

	err := ts.DB.Exec("TRUNCATE TABLE users, service_providers, messages, categories RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("Не удалось очистить таблицы: %v", err)
	}

	SeedCategories(t, ts.DB)
}

// SeedCategories заполняет справочник стартовым набором
func SeedCategories(t *testing.T, db *gorm.DB) {
	t.Helper()

	categories := []models.Category{
		{Value: "cargo", Label: "Грузовые машины"},
		{Value: "plumber", Label: "Сантехники"},
		{Value: "tow_truck", Label: "Эвакуаторы"},
		{Value: "electrician", Label: "Электрики"},
		{Value: "other", Label: "Другое"},
	}
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("Не удалось заполнить категории: %v", err)
	}
}

// SendRequest отправляет JSON-запрос и возвращает ответ со строкой тела
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// SendForm отправляет form-urlencoded запрос (логин)
func (ts *TestServer) SendForm(t *testing.T, method, path, token string, form url.Values) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, ts.Server.URL+path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return ts.do(t, req)
}

// SendMultipart отправляет multipart-форму (регистрация, правка карточки).
// files: имя поля -> путь к файлу на диске.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, files map[string]string) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("Ошибка записи поля %s: %v", key, err)
		}
	}
	for field, filePath := range files {
		part, err := mw.CreateFormFile(field, filePath)
		if err != nil {
			t.Fatalf("Ошибка создания файлового поля %s: %v", field, err)
		}
		data, err := os.ReadFile(filePath)
		if err != nil {
			t.Fatalf("Ошибка чтения файла %s: %v", filePath, err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("Ошибка записи файла %s: %v", filePath, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Ошибка закрытия multipart: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBody)
}
