package latex

// Element is anything able to produce the markup text for itself. Rendering
// is pure: the same tree always renders to the same string, there are no
// side effects and no failure modes.
type Element interface {
	Render() string
}

// Container is the append capability: With consumes the container value and
// returns it with e attached at the end of its sequence. Call sites must
// rebind or chain the result, the original value is spent.
type Container[C any] interface {
	With(e Element) C
}

// Literal is a leaf wrapping raw text, rendered verbatim. No escaping is
// applied, see Escape.
type Literal string

func (l Literal) Render() string {
	return string(l)
}

var (
	_ Element = Literal("")
	_ Element = Command{}
	_ Element = Parameter{}
	_ Element = Area{}
	_ Element = Boxed{}
	_ Element = Preamble{}
	_ Element = Document{}

	_ Container[Area]     = Area{}
	_ Container[Document] = Document{}
)
