package render

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"goflare.io/receipt/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	receiptTemplate   = "receipt.html.tmpl"
	lineItemsTemplate = "line_items.html.tmpl"
)

// Renderer produces the receipt HTML document. Receipt data comes from Stripe and
// is written into the document as-is, without HTML escaping.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// Render returns the full HTML document for a receipt view.
func (r *Renderer) Render(view *models.ReceiptView) (string, error) {
	if view == nil {
		return "", fmt.Errorf("receipt view is nil")
	}
	return r.execute(receiptTemplate, view)
}

// RenderLineItems returns the line-item table; an empty list yields the bare table.
func (r *Renderer) RenderLineItems(items []models.LineItem) (string, error) {
	return r.execute(lineItemsTemplate, items)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
