package web

import (
	"embed"
	"fmt"
	"html/template"

	"vacation-front/internal/i18n"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// mustTemplates parsea las vistas embebidas. El helper t resuelve cada texto
// bilingüe según el idioma activo de las preferencias.
func mustTemplates() *template.Template {
	funcs := template.FuncMap{
		"t": func(he, en, lang string) string {
			return i18n.T(he, en).In(lang)
		},
		"price": func(amount float64, currency string) string {
			return fmt.Sprintf("%.2f %s", amount, currency)
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}
