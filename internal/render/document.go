package render

// Document is the Surface the HTTP layer renders. It is not safe for
// concurrent use; each request gets its own.
type Document struct {
	blocks []Block
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Blocks returns the recorded blocks in draw order.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// Empty reports whether nothing was drawn.
func (d *Document) Empty() bool {
	return len(d.blocks) == 0
}

// Images returns every image block, including those inside expanders.
func (d *Document) Images() []Block {
	return collect(d.blocks, KindImage)
}

// Find returns every block of kind k, depth first.
func (d *Document) Find(k Kind) []Block {
	return collect(d.blocks, k)
}

func collect(blocks []Block, k Kind) []Block {
	var out []Block
	for _, b := range blocks {
		if b.Kind == k {
			out = append(out, b)
		}
		out = append(out, collect(b.Children, k)...)
	}
	return out
}

func (d *Document) add(b Block) {
	d.blocks = append(d.blocks, b)
}

func (d *Document) Header(text string)     { d.add(Block{Kind: KindHeader, Text: text}) }
func (d *Document) SubHeader(text string)  { d.add(Block{Kind: KindSubHeader, Text: text}) }
func (d *Document) Heading(text string)    { d.add(Block{Kind: KindHeading, Text: text}) }
func (d *Document) Subheading(text string) { d.add(Block{Kind: KindSubheading, Text: text}) }
func (d *Document) Text(text string)       { d.add(Block{Kind: KindText, Text: text}) }
func (d *Document) Info(text string)       { d.add(Block{Kind: KindInfo, Text: text}) }

func (d *Document) Markdown(md string) {
	d.add(Block{Kind: KindMarkdown, Text: md, HTML: MarkdownToHTML(md)})
}

func (d *Document) Bullets(items ...string) {
	d.add(Block{Kind: KindBullets, Items: append([]string(nil), items...)})
}

func (d *Document) Image(url, caption string) {
	d.add(Block{Kind: KindImage, URL: url, Caption: caption})
}

func (d *Document) Expander(title string, body func(Surface)) {
	inner := NewDocument()
	if body != nil {
		body(inner)
	}
	d.add(Block{Kind: KindExpander, Text: title, Children: inner.blocks})
}

func (d *Document) Form(f Form) {
	d.add(Block{Kind: KindForm, Form: &f})
}
