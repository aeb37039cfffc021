package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/GoArmGo/BlogApp/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// ViewData is the data passed to every page template.
type ViewData struct {
	Title       string
	CurrentUser *domain.User
	FormError   string
	// FormData keeps submitted values so a re-rendered form is not empty.
	FormData map[string]string
	Users    []domain.User
	Posts    []domain.Post
}

// newTemplates parses the embedded page templates.
func newTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// render executes the named page template. The page is buffered so a template
// failure becomes a 500 instead of a half-written response.
func (h *BlogHandler) render(w http.ResponseWriter, status int, page string, data *ViewData) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		h.logger.Error("failed to render template", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write HTTP response", "error", err)
	}
}
