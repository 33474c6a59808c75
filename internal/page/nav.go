package page

import (
	"net/url"

	"github.com/jonesrussell/mars-explorer/internal/render"
)

// NavEntry is one sidebar item.
type NavEntry struct {
	ID    ID
	Label string
}

// Navigation is the sidebar, in display order.
var Navigation = []NavEntry{
	{ID: Home, Label: "🏠 Home"},
	{ID: Chat, Label: "🤖 AI Chatbot"},
	{ID: Facts, Label: "🔴 Mars Information"},
	{ID: NASA, Label: "🛰️ NASA Data"},
	{ID: Quiz, Label: "🎮 Mars Quiz"},
}

// Href is the link for a page.
func Href(id ID) string {
	return "/?" + url.Values{"page": {string(id)}}.Encode()
}

// NavItems returns the sidebar with current highlighted.
func NavItems(current ID) []render.NavItem {
	items := make([]render.NavItem, 0, len(Navigation))
	for _, e := range Navigation {
		items = append(items, render.NavItem{
			Label:  e.Label,
			Href:   Href(e.ID),
			Active: e.ID == current,
		})
	}
	return items
}
