// web содержит встроенные HTML-шаблоны страниц сайта.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates парсит все встроенные шаблоны в один набор.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.tmpl")
}
