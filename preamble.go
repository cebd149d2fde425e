package latex

import "strings"

// DocumentClass names the value of the \documentclass declaration.
type DocumentClass string

const Article DocumentClass = "article"

// Preamble holds document metadata rendered before the body: the class
// declaration and optional title and author lines. Setters replace any
// previously set value.
type Preamble struct {
	class  DocumentClass
	title  *Parameter
	author *Parameter
}

func (p *Preamble) SetClass(class DocumentClass) *Preamble {
	p.class = class
	return p
}

func (p *Preamble) SetTitle(title Parameter) *Preamble {
	p.title = &title
	return p
}

func (p *Preamble) SetAuthor(author Parameter) *Preamble {
	p.author = &author
	return p
}

// Render emits the class line first, then title and author when set, one per
// line. No trailing newline, the separators around the preamble belong to
// Document.
func (p Preamble) Render() string {
	class := p.class
	if class == "" {
		class = Article
	}

	lines := []string{NewCommand("documentclass").Param(Text(string(class))).Render()}

	if p.title != nil {
		lines = append(lines, NewCommand("title").Param(*p.title).Render())
	}

	if p.author != nil {
		lines = append(lines, NewCommand("author").Param(*p.author).Render())
	}

	return strings.Join(lines, "\n")
}

// Title wraps a plain string for Preamble.SetTitle.
func Title(s string) Parameter {
	return Text(s)
}

// Author wraps a plain string for Preamble.SetAuthor.
func Author(s string) Parameter {
	return Text(s)
}
