package rendering

import "strings"

var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`<`, `\textless{}`,
	`>`, `\textgreater{}`,
)

// EscapeLaTeX escapes characters that have special meaning in LaTeX.
func EscapeLaTeX(text string) string {
	return latexReplacer.Replace(text)
}

func escapeAll(items []string, escape func(string) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = escape(item)
	}
	return out
}
