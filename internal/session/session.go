// Package session хранит сессию фронтенда в подписанной cookie.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const CookieName = "pm_session"

// Session - состояние входа. Cookie одна на все вкладки, поэтому
// выход в одной вкладке виден остальным при следующем запросе.
type Session struct {
	Token      string `json:"token"`
	UserID     uint   `json:"user_id"`
	ProviderID *uint  `json:"provider_id,omitempty"`
	Role       string `json:"role"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// IsAdmin - true для admin и super_admin
func (s *Session) IsAdmin() bool {
	return s != nil && (s.Role == "admin" || s.Role == "super_admin")
}

func (s *Session) IsSuperAdmin() bool {
	return s != nil && s.Role == "super_admin"
}

var ErrInvalidCookie = errors.New("invalid session cookie")

// Store подписывает и читает cookie сессии
type Store struct {
	secret []byte
	secure bool
	maxAge int
}

func NewStore(secret string, secure bool) *Store {
	return &Store{
		secret: []byte(secret),
		secure: secure,
		maxAge: 60 * 60 * 24, // сутки, как TTL токена
	}
}

// encode: base64(json) + "." + base64(hmac)
func (st *Store) encode(s *Session) (string, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	body := base64.RawURLEncoding.EncodeToString(payload)
	return body + "." + st.sign(body), nil
}

func (st *Store) decode(value string) (*Session, error) {
	body, sig, ok := strings.Cut(value, ".")
	if !ok {
		return nil, ErrInvalidCookie
	}
	if !hmac.Equal([]byte(st.sign(body)), []byte(sig)) {
		return nil, ErrInvalidCookie
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, ErrInvalidCookie
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, ErrInvalidCookie
	}
	return &s, nil
}

func (st *Store) sign(body string) string {
	mac := hmac.New(sha256.New, st.secret)
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Save записывает сессию в cookie ответа
func (st *Store) Save(c *gin.Context, s *Session) error {
	value, err := st.encode(s)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, st.maxAge, "/", "", st.secure, true)
	return nil
}

// Load возвращает сессию запроса; без cookie или с битой подписью - nil
func (st *Store) Load(c *gin.Context) *Session {
	value, err := c.Cookie(CookieName)
	if err != nil {
		return nil
	}
	s, err := st.decode(value)
	if err != nil {
		return nil
	}
	return s
}

// Clear стирает cookie целиком: частично очищенных сессий не бывает
func (st *Store) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", st.secure, true)
}
