// Package category отображает ключ категории в иконку, подпись и цвет маркера.
package category

// Info - представление категории на карте и в списке
type Info struct {
	Emoji string
	Label string
	Color string
}

// infos повторяет набор исходного каталога; ключ совпадает с
// Category.Value в базе
var infos = map[string]Info{
	"cargo":       {Emoji: "🚚", Label: "Грузовые машины", Color: "#FF6B6B"},
	"plumber":     {Emoji: "🔧", Label: "Сантехники", Color: "#4ECDC4"},
	"tow_truck":   {Emoji: "🚑", Label: "Эвакуаторы", Color: "#FFE66D"},
	"electrician": {Emoji: "⚡", Label: "Электрики", Color: "#95E1D3"},
	"other":       {Emoji: "📦", Label: "Другое", Color: "#A8A8A8"},
}

// Lookup возвращает представление категории.
// Неизвестный ключ сводится к "other", функция тотальна.
func Lookup(value string) Info {
	if info, ok := infos[value]; ok {
		return info
	}
	return infos["other"]
}

// Known - true, если ключ есть в каталоге
func Known(value string) bool {
	_, ok := infos[value]
	return ok
}
