package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLookup_KnownCategories - известные ключи возвращают свои данные
func TestLookup_KnownCategories(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "🚚", Lookup("cargo").Emoji)
	assert.Equal(t, "Сантехники", Lookup("plumber").Label)
	assert.Equal(t, "#FFE66D", Lookup("tow_truck").Color)
	assert.Equal(t, "⚡", Lookup("electrician").Emoji)
}

// TestLookup_UnknownFallsBackToOther - функция тотальна:
// любой неизвестный ключ сводится к "other"
func TestLookup_UnknownFallsBackToOther(t *testing.T) {
	t.Parallel()

	other := Lookup("other")
	for _, value := range []string{"", "unknown", "CARGO", "грузовик", "123"} {
		assert.Equal(t, other, Lookup(value), "ключ %q должен давать other", value)
	}
}

func TestKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, Known("cargo"))
	assert.True(t, Known("other"))
	assert.False(t, Known("unknown"))
	assert.False(t, Known(""))
}
