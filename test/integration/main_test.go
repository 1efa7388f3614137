package integration_test

import (
	"os"
	"sync"
	"testing"

	"provider_map/test/helpers"
)

var (
	testServer *helpers.TestServer
	serverOnce sync.Once
)

// GetTestServer возвращает общий тестовый сервер.
// Без DATABASE_URL интеграционные тесты пропускаются.
func GetTestServer(t *testing.T) *helpers.TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL не задан, пропускаем интеграционные тесты")
	}

	serverOnce.Do(func() {
		testServer = helpers.NewTestServer(t)
	})
	return testServer
}

func TestMain(m *testing.M) {
	code := m.Run()
	if testServer != nil {
		testServer.Close()
	}
	os.Exit(code)
}
