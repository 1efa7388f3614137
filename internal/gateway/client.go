// Package gateway - клиент REST API. Единственная точка, через которую
// фронтенд разговаривает с сервером.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client - по одному методу на удаленную операцию. Токен передается
// в каждый вызов: клиент общий на всех посетителей фронтенда.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// BaseURL возвращает активный адрес API
func (c *Client) BaseURL() string {
	return c.base
}

// PhotoURL разворачивает относительный /uploads-путь в абсолютный.
// Абсолютные URL проходят как есть.
func (c *Client) PhotoURL(photo string) string {
	if photo == "" {
		return ""
	}
	if strings.HasPrefix(photo, "http://") || strings.HasPrefix(photo, "https://") {
		return photo
	}
	if !strings.HasPrefix(photo, "/") {
		photo = "/" + photo
	}
	return c.base + photo
}

// --- Публичные операции ---

func (c *Client) Providers(ctx context.Context, filter ProviderFilter) ([]Provider, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Lat != nil {
		q.Set("lat", strconv.FormatFloat(*filter.Lat, 'f', -1, 64))
	}
	if filter.Lng != nil {
		q.Set("lng", strconv.FormatFloat(*filter.Lng, 'f', -1, 64))
	}
	if filter.Radius != nil {
		q.Set("radius", strconv.FormatFloat(*filter.Radius, 'f', -1, 64))
	}

	path := "/api/providers"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Provider
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Provider(ctx context.Context, id uint) (*Provider, error) {
	var out Provider
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/providers/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out categoriesEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/categories", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// SendMessage отправляет анонимное сообщение провайдеру.
// Обязательные поля проверяются до похода в сеть.
func (c *Client) SendMessage(ctx context.Context, providerID uint, form MessageForm) (*Message, error) {
	if strings.TrimSpace(form.ClientName) == "" {
		return nil, validationError("Укажите ваше имя")
	}
	if strings.TrimSpace(form.ClientPhone) == "" {
		return nil, validationError("Укажите телефон для связи")
	}
	if strings.TrimSpace(form.MessageText) == "" {
		return nil, validationError("Напишите текст сообщения")
	}

	var out Message
	path := fmt.Sprintf("/api/providers/%d/messages", providerID)
	if err := c.doJSON(ctx, http.MethodPost, path, "", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Аутентификация ---

func (c *Client) Login(ctx context.Context, username, password string) (*Token, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, validationError("Введите логин и пароль")
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out Token
	err := c.doForm(ctx, http.MethodPost, "/api/auth/login", form, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, form RegisterForm) (*Token, error) {
	if strings.TrimSpace(form.Username) == "" ||
		strings.TrimSpace(form.Email) == "" ||
		form.Password == "" ||
		strings.TrimSpace(form.Name) == "" ||
		form.Category == "" {
		return nil, validationError("Заполните все обязательные поля")
	}

	fields := map[string]string{
		"username":    form.Username,
		"email":       form.Email,
		"password":    form.Password,
		"name":        form.Name,
		"category":    form.Category,
		"description": form.Description,
		"latitude":    strconv.FormatFloat(form.Latitude, 'f', -1, 64),
		"longitude":   strconv.FormatFloat(form.Longitude, 'f', -1, 64),
		"phone":       form.Phone,
		"address":     form.Address,
	}

	var out Token
	if err := c.doMultipart(ctx, http.MethodPost, "/api/auth/register", "", fields, form.PhotoName, form.Photo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var out User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyProvider(ctx context.Context, token string) (*Provider, error) {
	var out Provider
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/my-provider", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Кабинет ---

func (c *Client) UpdateProvider(ctx context.Context, token string, id uint, form ProviderUpdateForm) (*Provider, error) {
	fields := map[string]string{}
	if form.Name != nil {
		fields["name"] = *form.Name
	}
	if form.Category != nil {
		fields["category"] = *form.Category
	}
	if form.Description != nil {
		fields["description"] = *form.Description
	}
	if form.Latitude != nil {
		fields["latitude"] = strconv.FormatFloat(*form.Latitude, 'f', -1, 64)
	}
	if form.Longitude != nil {
		fields["longitude"] = strconv.FormatFloat(*form.Longitude, 'f', -1, 64)
	}
	if form.Phone != nil {
		fields["phone"] = *form.Phone
	}
	if form.Address != nil {
		fields["address"] = *form.Address
	}

	var out Provider
	path := fmt.Sprintf("/api/providers/%d", id)
	if err := c.doMultipart(ctx, http.MethodPut, path, token, fields, form.PhotoName, form.Photo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Messages(ctx context.Context, token string, providerID uint) ([]Message, error) {
	var out []Message
	path := fmt.Sprintf("/api/providers/%d/messages", providerID)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Транспорт ---

func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return validationError(err.Error())
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return networkError(err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, token, out)
}

func (c *Client) doForm(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, strings.NewReader(form.Encode()))
	if err != nil {
		return networkError(err.Error())
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, "", out)
}

func (c *Client) doMultipart(ctx context.Context, method, path, token string, fields map[string]string, photoName string, photo []byte, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return networkError(err.Error())
		}
	}
	if len(photo) > 0 {
		part, err := w.CreateFormFile("photo", photoName)
		if err != nil {
			return networkError(err.Error())
		}
		if _, err := part.Write(photo); err != nil {
			return networkError(err.Error())
		}
	}
	if err := w.Close(); err != nil {
		return networkError(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return networkError(err.Error())
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, token, out)
}

func (c *Client) do(req *http.Request, token string, out interface{}) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return networkError("Сервер недоступен, попробуйте еще раз")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &Error{
			Kind:    KindHTTP,
			Status:  resp.StatusCode,
			Message: detailFromBody(resp.Body, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return networkError("Некорректный ответ сервера")
	}
	return nil
}

// detailFromBody вынимает {"detail": ...}; на нечитаемое тело
// подставляется запасной текст по статусу
func detailFromBody(body io.Reader, status int) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}

	switch {
	case status == http.StatusNotFound:
		return "Не найдено"
	case status == http.StatusUnauthorized:
		return "Требуется вход"
	case status == http.StatusForbidden:
		return "Недостаточно прав"
	case status >= 500:
		return "Ошибка сервера"
	default:
		return "Запрос отклонен"
	}
}
