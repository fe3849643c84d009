// Package prompt implements the placeholder grammar used by scenario
// templates: a placeholder is a brace-delimited run of lowercase letters
// and underscores, e.g. {customer_name}.
package prompt

import (
	"strings"
)

// Segment is one piece of a parsed template. Exactly one of Text or
// Variable is set.
type Segment struct {
	Text     string
	Variable string
}

// IsPlaceholder reports whether the segment is a variable reference.
func (s Segment) IsPlaceholder() bool { return s.Variable != "" }

// Parse splits template into literal text and placeholders. Braces that
// do not enclose a valid name are kept as literal text.
func Parse(template string) []Segment {
	var (
		segs []Segment
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, Segment{Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		if template[i] == '{' {
			if n := scanName(template[i+1:]); n > 0 && i+1+n < len(template) && template[i+1+n] == '}' {
				flush()
				segs = append(segs, Segment{Variable: template[i+1 : i+1+n]})
				i += n + 2
				continue
			}
		}
		lit.WriteByte(template[i])
		i++
	}
	flush()
	return segs
}

// scanName returns the length of the [a-z_]+ run at the start of s.
func scanName(s string) int {
	n := 0
	for n < len(s) && (s[n] >= 'a' && s[n] <= 'z' || s[n] == '_') {
		n++
	}
	return n
}

// Variables returns the distinct placeholder names in template in order
// of first appearance.
func Variables(template string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, seg := range Parse(template) {
		if !seg.IsPlaceholder() {
			continue
		}
		if _, ok := seen[seg.Variable]; ok {
			continue
		}
		seen[seg.Variable] = struct{}{}
		names = append(names, seg.Variable)
	}
	return names
}

// Render replaces every placeholder in template with its value from vars.
// Placeholders whose value is missing or empty get missing instead.
// Substituted values are written verbatim and never re-expanded.
func Render(template string, vars map[string]string, missing string) string {
	var b strings.Builder
	b.Grow(len(template))
	for _, seg := range Parse(template) {
		if !seg.IsPlaceholder() {
			b.WriteString(seg.Text)
			continue
		}
		if v := vars[seg.Variable]; v != "" {
			b.WriteString(v)
		} else {
			b.WriteString(missing)
		}
	}
	return b.String()
}

// SplitFields sorts variable names into required and optional ones. Names
// mentioning notes or additional information are optional.
func SplitFields(names []string) (required, optional []string) {
	required, optional = []string{}, []string{}
	for _, n := range names {
		if strings.Contains(n, "notes") || strings.Contains(n, "additional") {
			optional = append(optional, n)
		} else {
			required = append(required, n)
		}
	}
	return required, optional
}
