package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorString(t *testing.T) {
	t.Parallel()

	plain := New(CodeNotFound, "provider", "Provider not found", http.StatusNotFound)
	assert.Equal(t, "[provider:NOT_FOUND] Provider not found", plain.Error())

	wrapped := Wrap(errors.New("sql: no rows"), CodeNotFound, "user", "User not found", http.StatusNotFound)
	assert.Contains(t, wrapped.Error(), "sql: no rows")
}

// TestAppError_Unwrap - errors.Is видит исходную ошибку сквозь обертку
func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	appErr := InternalError(cause)

	assert.True(t, errors.Is(appErr, cause))
	assert.True(t, Is(fmt.Errorf("save: %w", appErr), cause))
}

// TestAppError_MarshalJSON - внутренняя ошибка и HTTP-код наружу не уходят
func TestAppError_MarshalJSON(t *testing.T) {
	t.Parallel()

	appErr := Wrap(errors.New("secret detail"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "secret detail")
	assert.NotContains(t, string(data), "500")
	assert.Contains(t, string(data), "Internal server error")
}

func TestValidationError_CarriesDetails(t *testing.T) {
	t.Parallel()

	appErr := ValidationError(map[string]string{"email": "is required"})
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.NotNil(t, appErr.Details)
}

// TestHandleError_AppError - статус и detail берутся из AppError
func TestHandleError_AppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Incorrect username or password", body.Detail)
	assert.Equal(t, CodeInvalidCredentials, body.Code)
}

// TestHandleError_UnknownError - произвольная ошибка отдается как 500
// без внутренних подробностей
func TestHandleError_UnknownError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestAsAppError(t *testing.T) {
	t.Parallel()

	appErr, ok := AsAppError(fmt.Errorf("wrap: %w", ErrProviderNotFound))
	assert.True(t, ok)
	assert.Equal(t, ErrProviderNotFound, appErr)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}
