// Package render records what a page draws and turns it into HTML.
//
// Pages write to a Surface; the HTTP layer hands them a Document, which
// records each call as a Block. Keeping pages away from HTML makes them
// testable by inspecting blocks.
package render

import "html/template"

// Kind names a block type. The layout template switches on it.
type Kind string

const (
	KindHeader     Kind = "header"
	KindSubHeader  Kind = "sub_header"
	KindHeading    Kind = "heading"
	KindSubheading Kind = "subheading"
	KindText       Kind = "text"
	KindMarkdown   Kind = "markdown"
	KindBullets    Kind = "bullets"
	KindImage      Kind = "image"
	KindExpander   Kind = "expander"
	KindInfo       Kind = "info"
	KindForm       Kind = "form"
)

// Block is one recorded drawing call.
type Block struct {
	Kind     Kind
	Text     string
	Items    []string
	URL      string
	Caption  string
	HTML     template.HTML
	Children []Block
	Form     *Form
}

// Form is a GET form submitted back to the current page.
type Form struct {
	Action string
	Fields []Field
	Submit string
}

// FieldType selects how a form field is drawn.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldDate   FieldType = "date"
	FieldRadio  FieldType = "radio"
	FieldHidden FieldType = "hidden"
)

// Field is one form input.
type Field struct {
	Type        FieldType
	Name        string
	Label       string
	Value       string
	Placeholder string
	Min         string
	Max         string
	Options     []Option
}

// Option is one radio choice.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Surface is what page renderers draw on.
type Surface interface {
	// Header is the page's main title.
	Header(text string)
	// SubHeader is the centered tagline under the header.
	SubHeader(text string)
	Heading(text string)
	Subheading(text string)
	Text(text string)
	// Markdown renders sanitized markdown.
	Markdown(md string)
	Bullets(items ...string)
	Image(url, caption string)
	// Expander draws a collapsible section; body draws its contents.
	Expander(title string, body func(Surface))
	Info(text string)
	Form(f Form)
}
