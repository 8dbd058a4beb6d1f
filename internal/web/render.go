// Package web concentra el render de páginas y los mensajes flash.
// El layout es deliberadamente mínimo: el diseño visual del front no
// es parte del contrato, las páginas y sus forms sí.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"vetcare-front/internal/platform/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Renderer struct {
	tmpl *template.Template
	log  logger.Logger
}

func NewRenderer(log logger.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.Nop()
	}
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl, log: log}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		r.log.Error("render falló", map[string]any{"template": name, "error": err.Error()})
	}
}
