package webapp

import (
	"sort"

	"provider_map/internal/gateway"
)

// Фильтр и сортировка списка применяются на сервере фронтенда:
// выбранная категория из query-строки - единственный источник истины
// и для карты, и для списка.

const FilterAll = "all"

// FilterByCategory возвращает подмножество провайдеров выбранной
// категории, сохраняя исходный порядок. "all" и пустая строка -
// тождественный фильтр.
func FilterByCategory(providers []gateway.Provider, category string) []gateway.Provider {
	if category == "" || category == FilterAll {
		return providers
	}

	out := make([]gateway.Provider, 0, len(providers))
	for _, p := range providers {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SortByName сортирует копию списка по имени (лексикографически)
func SortByName(providers []gateway.Provider) []gateway.Provider {
	out := make([]gateway.Provider, len(providers))
	copy(out, providers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// SortByCategory сортирует копию списка по ключу категории
func SortByCategory(providers []gateway.Provider) []gateway.Provider {
	out := make([]gateway.Provider, len(providers))
	copy(out, providers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}

// ApplySort выбирает сортировку по значению query-параметра.
// Неизвестное значение оставляет порядок сервера.
func ApplySort(providers []gateway.Provider, sortKey string) []gateway.Provider {
	switch sortKey {
	case "name":
		return SortByName(providers)
	case "category":
		return SortByCategory(providers)
	default:
		return providers
	}
}
