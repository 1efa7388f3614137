package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"provider_map/internal/config"
)

func setTestConfig(t *testing.T, ttlMinutes int) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{
			Secret: "test-jwt-secret",
			TTL:    ttlMinutes,
		},
	}
	t.Cleanup(func() { config.AppConfig = old })
}

// TestGenerateAndParseToken - токен переживает цикл выпуск/проверка
func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, 60)

	token, err := GenerateToken(42, "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

// TestParseToken_Expired - просроченный токен отклоняется
func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t, -1)

	token, err := GenerateToken(1, "user")
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestParseToken_WrongSecret - чужая подпись отклоняется
func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, 60)

	claims := Claims{
		UserID: 1,
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	assert.NoError(t, err)

	_, err = ParseToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, 60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestPasswordHashing - хеш проверяется только родным паролем
func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("secret123", "not-a-hash"))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("secret"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
}
