package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"provider_map/internal/config"
)

// TestResolveBaseURL_ExplicitOverrideWins - явный адрес перекрывает
// и runtime-конфиг, и дефолты
func TestResolveBaseURL_ExplicitOverrideWins(t *testing.T) {
	t.Parallel()

	base, err := ResolveBaseURL(config.FrontendConfig{
		APIBaseURL:       "https://api.example.com/",
		RuntimeConfigURL: "http://should-not-be-fetched.invalid/config.json",
		Host:             "example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://api.example.com", base)
}

// TestResolveBaseURL_RuntimeConfig - без явного адреса берется apiUrl
// из runtime-документа
func TestResolveBaseURL_RuntimeConfig(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"apiUrl":"https://runtime.example.com/"}`))
	}))
	defer ts.Close()

	base, err := ResolveBaseURL(config.FrontendConfig{
		RuntimeConfigURL: ts.URL,
		Host:             "example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://runtime.example.com", base)
}

// TestResolveBaseURL_RuntimeConfigUnreachable - недоступный runtime-конфиг
// не ошибка, продолжаем по цепочке дефолтов
func TestResolveBaseURL_RuntimeConfigUnreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	base, err := ResolveBaseURL(config.FrontendConfig{
		RuntimeConfigURL: ts.URL,
		Host:             "localhost",
	})

	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", base)
}

// TestResolveBaseURL_LocalHostDefault - локальный хост дает localhost:8000
func TestResolveBaseURL_LocalHostDefault(t *testing.T) {
	t.Parallel()

	for _, host := range []string{"", "localhost", "127.0.0.1", "0.0.0.0"} {
		base, err := ResolveBaseURL(config.FrontendConfig{Host: host})
		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:8000", base, "host=%q", host)
	}
}

// TestResolveBaseURL_DeployedDefault - не-локальный хост берет публичный адрес
func TestResolveBaseURL_DeployedDefault(t *testing.T) {
	t.Parallel()

	base, err := ResolveBaseURL(config.FrontendConfig{
		Host:             "maps.example.com",
		PublicAPIBaseURL: "https://api.maps.example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://api.maps.example.com", base)
}

// TestResolveBaseURL_MissingDeployedDefault - не-локальный хост без
// публичного адреса - ошибка конфигурации
func TestResolveBaseURL_MissingDeployedDefault(t *testing.T) {
	t.Parallel()

	_, err := ResolveBaseURL(config.FrontendConfig{Host: "maps.example.com"})

	assert.Error(t, err)
	assert.True(t, IsConfig(err))
}
