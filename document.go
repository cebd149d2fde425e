package latex

import "io"

// Document is the root node: one preamble and one begin/end wrapped body.
// Build one with NewDocument, configure metadata through Preamble, append
// content with With and call Render for the final text.
type Document struct {
	preamble Preamble
	body     Boxed
}

// NewDocument returns a document whose body is already wrapped in
// \begin{document} and \end{document}. The middle region starts empty and
// the preamble starts at its defaults.
func NewDocument() Document {
	var body Boxed
	body.prep = body.prep.With(NewCommand("begin").Param(Text("document")))
	body.after = body.after.With(NewCommand("end").Param(Text("document")))

	return Document{body: body}
}

// Preamble exposes the document metadata for in-place configuration. This is
// the only mutation point that does not go through With.
func (d *Document) Preamble() *Preamble {
	return &d.preamble
}

// With appends e to the body content and returns the updated document.
func (d Document) With(e Element) Document {
	d.body.middle = d.body.middle.With(e)
	return d
}

func (d Document) Render() string {
	return d.preamble.Render() + "\n\n" + d.body.Render() + "\n"
}

// WriteTo renders the document into w.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}
