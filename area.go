package latex

// Area is an ordered, append-only sequence of heterogeneous elements.
// Children render in insertion order, concatenated without a separator.
// There is no removal or reordering.
type Area struct {
	objs []Element
}

func (a Area) With(e Element) Area {
	a.objs = append(a.objs, e)
	return a
}

func (a Area) Render() (out string) {
	for _, obj := range a.objs {
		out += obj.Render()
	}

	return
}

// Boxed brackets body content between two fixed regions. The prep and after
// areas are seeded once when the document is created and never change
// afterwards; all insertion goes through Document into middle. An empty
// region renders as an empty string, the joining newlines are always there.
type Boxed struct {
	prep   Area
	middle Area
	after  Area
}

func (b Boxed) Render() string {
	return b.prep.Render() + "\n" + b.middle.Render() + "\n" + b.after.Render()
}
