// Package web renders the server-side HTML for the poster maker landing page.
//
// Templates are embedded so the binary is self-contained; the poster-drawing
// JavaScript itself belongs to the frontend and is out of scope here.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData carries the values available to page templates.
type PageData struct {
	Title string
}

// Renderer holds the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Landing writes the landing page to w.
func (r *Renderer) Landing(w io.Writer) error {
	data := PageData{Title: "Album Poster Maker"}
	if err := r.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		return fmt.Errorf("failed to render landing page: %w", err)
	}
	return nil
}
