package page

import "maps"

// Registry maps page identifiers to pages. It is built once at startup and
// only read afterwards, so lookups need no locking.
type Registry struct {
	entries map[ID]Page
}

// NewRegistry copies entries. A nil Page is allowed and marks a known page
// that draws nothing.
func NewRegistry(entries map[ID]Page) *Registry {
	return &Registry{entries: maps.Clone(entries)}
}

// Lookup returns the page for id and whether id is registered.
func (r *Registry) Lookup(id ID) (Page, bool) {
	p, ok := r.entries[id]
	return p, ok
}
