package latex_test

import (
	"testing"

	latex "github.com/eolymp/go-latex-builder"
)

func TestCommandRender(t *testing.T) {
	tt := []struct {
		name    string
		command latex.Command
		render  string
	}{
		{
			name:    "no parameters, no braces",
			command: latex.NewCommand("LaTeX"),
			render:  "\\LaTeX",
		},
		{
			name:    "single parameter",
			command: latex.NewCommand("title").Param(latex.Text("hello")),
			render:  "\\title{hello}",
		},
		{
			name:    "two parameters are not delimited",
			command: latex.NewCommand("frac").Param(latex.Text("a")).Param(latex.Text("b")),
			render:  "\\frac{ab}",
		},
		{
			name:    "three parameters, one brace pair",
			command: latex.NewCommand("rule").Param(latex.Text("a")).Param(latex.Text("b")).Param(latex.Text("c")),
			render:  "\\rule{abc}",
		},
		{
			name:    "nested command parameter",
			command: latex.NewCommand("title").Param(latex.Nested(latex.NewCommand("LaTeX"))),
			render:  "\\title{\\LaTeX}",
		},
		{
			name:    "nested command with its own parameter",
			command: latex.NewCommand("section").Param(latex.Nested(latex.NewCommand("textbf").Param(latex.Text("intro")))),
			render:  "\\section{\\textbf{intro}}",
		},
		{
			name:    "mixed text and nested parameters",
			command: latex.NewCommand("author").Param(latex.Text("by ")).Param(latex.Nested(latex.NewCommand("LaTeX"))),
			render:  "\\author{by \\LaTeX}",
		},
		{
			name:    "empty text parameter still renders braces",
			command: latex.NewCommand("title").Param(latex.Text("")),
			render:  "\\title{}",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.command.Render(); got != tc.render {
				t.Errorf("Render does not match: want %#v, got %#v", tc.render, got)
			}
		})
	}
}

func TestCommandParamDoesNotMutateOriginal(t *testing.T) {
	base := latex.NewCommand("title")
	with := base.Param(latex.Text("hello"))

	if got := base.Render(); got != "\\title" {
		t.Errorf("Base command changed: want %#v, got %#v", "\\title", got)
	}

	if got := with.Render(); got != "\\title{hello}" {
		t.Errorf("Chained command does not match: want %#v, got %#v", "\\title{hello}", got)
	}
}

func TestParameterRender(t *testing.T) {
	tt := []struct {
		name   string
		param  latex.Parameter
		render string
	}{
		{name: "text", param: latex.Text("plain"), render: "plain"},
		{name: "empty text", param: latex.Text(""), render: ""},
		{name: "nested command", param: latex.Nested(latex.NewCommand("LaTeX")), render: "\\LaTeX"},
		{name: "zero value renders empty", param: latex.Parameter{}, render: ""},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.param.Render(); got != tc.render {
				t.Errorf("Render does not match: want %#v, got %#v", tc.render, got)
			}
		})
	}
}
