package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// Админские операции. Все требуют токен с ролью admin/super_admin,
// сервер сам решает, хватает ли прав.

func (c *Client) Stats(ctx context.Context, token string) (*Stats, error) {
	var out Stats
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/stats", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Users(ctx context.Context, token string) ([]User, error) {
	var out []User
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, id uint, form UserUpdateForm) (*User, error) {
	var out User
	path := fmt.Sprintf("/api/admin/users/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, token, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id uint) error {
	path := fmt.Sprintf("/api/admin/users/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, token, nil, nil)
}

// AllProviders - список карточек без фильтра активности, для админки
func (c *Client) AllProviders(ctx context.Context, token string) ([]Provider, error) {
	var out []Provider
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/providers", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ToggleProviderActive(ctx context.Context, token string, id uint) (*Provider, error) {
	var out Provider
	path := fmt.Sprintf("/api/admin/providers/%d/toggle-active", id)
	if err := c.doJSON(ctx, http.MethodPut, path, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) HardDeleteProvider(ctx context.Context, token string, id uint) error {
	path := fmt.Sprintf("/api/admin/providers/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, token, nil, nil)
}

func (c *Client) CreateCategory(ctx context.Context, token, value, label string) (*Category, error) {
	if value == "" || label == "" {
		return nil, validationError("Укажите значение и название категории")
	}

	var out Category
	body := Category{Value: value, Label: label}
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/categories", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token, value string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/categories/"+value, token, nil, nil)
}
