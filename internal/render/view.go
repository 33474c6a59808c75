package render

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// LayoutTemplate is the name to pass to gin's c.HTML.
const LayoutTemplate = "layout.tmpl"

// NavItem is one sidebar link.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// View is the data the layout template renders.
type View struct {
	// AppTitle is the browser tab title, "Mars Explorer" by default.
	AppTitle string
	Nav      []NavItem
	Blocks   []Block
	// Notice replaces the page body, e.g. when a page is unavailable.
	Notice string
}

// Templates parses the embedded layout. It panics on a broken template,
// which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}
