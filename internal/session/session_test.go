package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func withCookie(t *testing.T, raw string) *gin.Context {
	t.Helper()
	c, _ := testContext(t)
	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: raw})
	return c
}

// TestStore_SaveAndLoad - сессия переживает цикл запись/чтение
func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	store := NewStore("test-secret", false)
	providerID := uint(7)
	sess := &Session{Token: "jwt-token", UserID: 42, ProviderID: &providerID, Role: "user"}

	c, w := testContext(t)
	assert.NoError(t, store.Save(c, sess))

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	loaded := store.Load(withCookie(t, cookies[0].Value))
	assert.NotNil(t, loaded)
	assert.Equal(t, "jwt-token", loaded.Token)
	assert.Equal(t, uint(42), loaded.UserID)
	assert.Equal(t, uint(7), *loaded.ProviderID)
	assert.Equal(t, "user", loaded.Role)
}

// TestStore_TamperedCookieRejected - подмена тела или подписи дает nil
func TestStore_TamperedCookieRejected(t *testing.T) {
	t.Parallel()

	store := NewStore("test-secret", false)
	c, w := testContext(t)
	assert.NoError(t, store.Save(c, &Session{Token: "tok", UserID: 1, Role: "admin"}))
	value := w.Result().Cookies()[0].Value

	// Битая подпись
	assert.Nil(t, store.Load(withCookie(t, value+"x")))

	// Подмененное тело с родной подписью
	parts := strings.SplitN(value, ".", 2)
	assert.Nil(t, store.Load(withCookie(t, "eyJmYWtlIjp0cnVlfQ."+parts[1])))

	// Чужой секрет
	other := NewStore("other-secret", false)
	assert.Nil(t, other.Load(withCookie(t, value)))

	// Мусор
	assert.Nil(t, store.Load(withCookie(t, "garbage")))
}

func TestStore_LoadWithoutCookie(t *testing.T) {
	t.Parallel()

	store := NewStore("test-secret", false)
	c, _ := testContext(t)
	assert.Nil(t, store.Load(c))
}

// TestStore_Clear - cookie стирается целиком одним действием
func TestStore_Clear(t *testing.T) {
	t.Parallel()

	store := NewStore("test-secret", false)
	c, w := testContext(t)
	store.Clear(c)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

// TestSession_Predicates - IsAdmin истинен ровно для admin и super_admin
func TestSession_Predicates(t *testing.T) {
	t.Parallel()

	var nilSess *Session
	assert.False(t, nilSess.IsAuthenticated())
	assert.False(t, nilSess.IsAdmin())
	assert.False(t, nilSess.IsSuperAdmin())

	assert.False(t, (&Session{Role: "user", Token: "t"}).IsAdmin())
	assert.True(t, (&Session{Role: "admin", Token: "t"}).IsAdmin())
	assert.True(t, (&Session{Role: "super_admin", Token: "t"}).IsAdmin())

	assert.False(t, (&Session{Role: "admin", Token: "t"}).IsSuperAdmin())
	assert.True(t, (&Session{Role: "super_admin", Token: "t"}).IsSuperAdmin())

	assert.True(t, (&Session{Token: "t"}).IsAuthenticated())
	assert.False(t, (&Session{}).IsAuthenticated())
}
