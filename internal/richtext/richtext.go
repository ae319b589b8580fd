// Package richtext handles the one inline markup users may type: **bold**.
//
// Stored text always keeps the raw markup. It is converted only when it
// reaches a rendering surface.
package richtext

import (
	"html"
	"html/template"
	"regexp"
)

// boldPattern matches the shortest **...** pair on a single line.
var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Substitute replaces every **x** with <strong>x</strong>. Text outside a
// delimiter pair, and any unpaired "**", is passed through unchanged. The
// output is not re-parsed, so literal <strong> tags in the input are kept.
func Substitute(s string) string {
	return boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
}

// HTML escapes s and then applies Substitute, so the <strong> wrapper is the
// only markup that can reach the page.
func HTML(s string) template.HTML {
	//nolint:gosec // input is escaped before the fixed substitution
	return template.HTML(Substitute(html.EscapeString(s)))
}

// Segment is a run of text that is either bold or plain.
type Segment struct {
	Text string
	Bold bool
}

// Segments splits s into plain and bold runs using the same matching rules as
// Substitute. Empty runs are omitted.
func Segments(s string) []Segment {
	var out []Segment
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			out = append(out, Segment{Text: s[last:m[0]]})
		}
		if m[3] > m[2] {
			out = append(out, Segment{Text: s[m[2]:m[3]], Bold: true})
		}
		last = m[1]
	}
	if last < len(s) {
		out = append(out, Segment{Text: s[last:]})
	}
	return out
}

// Plain strips the bold delimiters, leaving the text of every run.
func Plain(s string) string {
	return boldPattern.ReplaceAllString(s, "$1")
}
