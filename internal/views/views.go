// Package views renders the server-side HTML pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-auth-web/internal/forms"
	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

// Page names
const (
	PageLogin  = "login"
	PageSignup = "signup"
	PageHome   = "home"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is what every page template receives.
type PageData struct {
	Title  string
	Notice *models.Notice
	Name   string
	Values map[string]string
	Errors forms.Errors
}

// Value returns the submitted value of a form field.
func (d PageData) Value(field string) string {
	return d.Values[field]
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageLogin, PageSignup, PageHome} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// MustNew is New that panics on a template error.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes the page with the given status. The page is rendered to a
// buffer first so a template error never produces a half written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
