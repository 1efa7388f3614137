package webapp

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"provider_map/internal/gateway"
)

func sampleProviders() []gateway.Provider {
	return []gateway.Provider{
		{ID: 1, Name: "Вася Сантехник", Category: "plumber"},
		{ID: 2, Name: "Быстрый Груз", Category: "cargo"},
		{ID: 3, Name: "Алый Эвакуатор", Category: "tow_truck"},
		{ID: 4, Name: "Груз-Экспресс", Category: "cargo"},
		{ID: 5, Name: "ЭлектроДом", Category: "electrician"},
	}
}

// TestFilterByCategory_AllIsIdentity - "all" и пустая строка не меняют список
func TestFilterByCategory_AllIsIdentity(t *testing.T) {
	t.Parallel()

	providers := sampleProviders()
	assert.Equal(t, providers, FilterByCategory(providers, FilterAll))
	assert.Equal(t, providers, FilterByCategory(providers, ""))
}

// TestFilterByCategory_SubsetAndOrder - результат содержит только выбранную
// категорию и сохраняет исходный порядок
func TestFilterByCategory_SubsetAndOrder(t *testing.T) {
	t.Parallel()

	got := FilterByCategory(sampleProviders(), "cargo")

	assert.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(4), got[1].ID)
	for _, p := range got {
		assert.Equal(t, "cargo", p.Category)
	}
}

func TestFilterByCategory_NoMatches(t *testing.T) {
	t.Parallel()

	got := FilterByCategory(sampleProviders(), "nonexistent")
	assert.Empty(t, got)
}

// TestSortByName - лексикографически неубывающий порядок, вход не трогается
func TestSortByName(t *testing.T) {
	t.Parallel()

	providers := sampleProviders()
	got := SortByName(providers)

	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.Name
	}
	assert.True(t, sort.StringsAreSorted(names), "имена должны быть отсортированы: %v", names)

	// Исходный срез не изменился
	assert.Equal(t, uint(1), providers[0].ID)
}

func TestSortByCategory(t *testing.T) {
	t.Parallel()

	got := SortByCategory(sampleProviders())

	cats := make([]string, len(got))
	for i, p := range got {
		cats[i] = p.Category
	}
	assert.True(t, sort.StringsAreSorted(cats), "категории должны быть отсортированы: %v", cats)
}

// TestApplySort_UnknownKeyKeepsOrder - неизвестная сортировка не меняет порядок
func TestApplySort_UnknownKeyKeepsOrder(t *testing.T) {
	t.Parallel()

	providers := sampleProviders()
	assert.Equal(t, providers, ApplySort(providers, ""))
	assert.Equal(t, providers, ApplySort(providers, "price"))
}
