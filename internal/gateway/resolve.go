package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"provider_map/internal/config"
	"provider_map/internal/logger"
)

const defaultLocalAPI = "http://localhost:8000"

// runtimeConfig - JSON-документ {"apiUrl": "..."}, который деплой может
// подложить рядом с приложением, не пересобирая его
type runtimeConfig struct {
	APIURL string `json:"apiUrl"`
}

// ResolveBaseURL выбирает адрес API. Порядок строгий:
//  1. явный адрес из конфига/окружения;
//  2. runtime-конфиг по URL, если он задан и отвечает;
//  3. дефолт по хосту: локальный хост - localhost:8000, иначе
//     публичный адрес из конфига. Если и его нет - ошибка конфигурации.
func ResolveBaseURL(cfg config.FrontendConfig) (string, error) {
	if cfg.APIBaseURL != "" {
		return strings.TrimSuffix(cfg.APIBaseURL, "/"), nil
	}

	if cfg.RuntimeConfigURL != "" {
		if url, ok := fetchRuntimeConfig(cfg.RuntimeConfigURL); ok {
			return strings.TrimSuffix(url, "/"), nil
		}
	}

	if isLocalHost(cfg.Host) {
		return defaultLocalAPI, nil
	}

	if cfg.PublicAPIBaseURL != "" {
		return strings.TrimSuffix(cfg.PublicAPIBaseURL, "/"), nil
	}

	return "", configError("API address is not configured: set api_base_url or public_api_base_url")
}

func fetchRuntimeConfig(url string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logger.Warn("runtime config unreachable", "url", url, "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("runtime config returned non-200", "url", url, "status", resp.StatusCode)
		return "", false
	}

	var rc runtimeConfig
	if err := json.NewDecoder(resp.Body).Decode(&rc); err != nil || rc.APIURL == "" {
		logger.Warn("runtime config is malformed", "url", url)
		return "", false
	}
	return rc.APIURL, true
}

func isLocalHost(host string) bool {
	return host == "" || host == "localhost" || host == "127.0.0.1" || host == "0.0.0.0" || host == "::1"
}
