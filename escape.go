package latex

import "strings"

// escaper replaces characters with markup meaning, single pass so escaped
// output is not escaped again.
var escaper = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"{", "\\{",
	"}", "\\}",
	"$", "\\$",
	"&", "\\&",
	"#", "\\#",
	"%", "\\%",
	"_", "\\_",
	"~", "\\textasciitilde{}",
	"^", "\\textasciicircum{}",
)

// Escape rewrites s so it can be embedded as literal text without being read
// as markup. Render never escapes on its own, callers decide what needs it.
func Escape(s string) string {
	return escaper.Replace(s)
}
