package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer serves the embedded page templates through Echo's Renderer
// interface.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. Parse failures are
// programming errors and panic at startup.
func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.ParseFS(templatesFS, "templates/*.html"))}
}

// Render executes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
