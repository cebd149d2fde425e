package latex

import "strings"

// Command is a named directive with ordered parameters. It renders as \name
// when there are no parameters and \name{p1p2...} otherwise. Parameters are
// concatenated without a delimiter, that is how the target syntax reads them.
type Command struct {
	name   string
	params []Parameter
}

func NewCommand(name string) Command {
	return Command{name: name}
}

// Param appends p and returns the updated command, so construction chains:
// NewCommand("title").Param(Text("hello")).
func (c Command) Param(p Parameter) Command {
	c.params = append(c.params, p)
	return c
}

func (c Command) Render() string {
	if len(c.params) == 0 {
		return "\\" + c.name
	}

	var out strings.Builder
	out.WriteString("\\")
	out.WriteString(c.name)
	out.WriteString("{")

	for _, p := range c.params {
		out.WriteString(p.Render())
	}

	out.WriteString("}")
	return out.String()
}

// Parameter is a command argument: either literal text or a nested command,
// exactly one of the two.
type Parameter struct {
	text    string
	command *Command
}

// Text wraps plain text as a parameter.
func Text(s string) Parameter {
	return Parameter{text: s}
}

// Nested wraps a command as a parameter, so arguments can themselves be
// commands: \title{\LaTeX}.
func Nested(c Command) Parameter {
	return Parameter{command: &c}
}

func (p Parameter) Render() string {
	if p.command != nil {
		return p.command.Render()
	}

	return p.text
}
