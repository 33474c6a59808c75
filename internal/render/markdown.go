package render

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	// UGCPolicy strips scripts, handlers and unsafe URLs; markdown can come
	// from the chat backend.
	sanitizer = bluemonday.UGCPolicy()
)

// MarkdownToHTML converts md to sanitized HTML. If conversion fails the
// source is shown escaped instead.
func MarkdownToHTML(md string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(md) + "</p>") //nolint:gosec // escaped above
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())) //nolint:gosec // sanitized by bluemonday
}
