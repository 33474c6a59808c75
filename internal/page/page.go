// Package page holds the dashboard's pages and the router that dispatches
// a page identifier to one of them.
package page

import (
	"context"
	"net/url"

	"github.com/jonesrussell/mars-explorer/internal/render"
)

// ID identifies a page.
type ID string

const (
	Home  ID = "home"
	Chat  ID = "chat"
	Facts ID = "facts"
	NASA  ID = "nasa"
	Quiz  ID = "quiz"
)

// Request carries what a page may read from the incoming request.
type Request struct {
	Query url.Values
}

// Page draws itself onto a surface. Render must not write HTTP output
// directly; an error means the page could not be shown at all.
type Page interface {
	Render(ctx context.Context, s render.Surface, req Request) error
}

// Func adapts a function to Page.
type Func func(ctx context.Context, s render.Surface, req Request) error

// Render calls f.
func (f Func) Render(ctx context.Context, s render.Surface, req Request) error {
	return f(ctx, s, req)
}
