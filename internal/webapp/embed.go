// Package webapp - серверный веб-фронтенд поверх REST API.
package webapp

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Templates парсит встроенные шаблоны страниц
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFiles, "templates/*.html")
}

// StaticFS возвращает встроенную статику с корнем в static/
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFiles, "static")
}
