// Package text holds small helpers for source text embedded in Go strings.
package text

import "strings"

// Dedent strips the indentation of the first non-blank line from every line
// of s, after dropping any leading empty lines. Lines indented less than
// that keep what they have. Empty input, or input of only empty lines,
// yields "".
func Dedent(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return ""
	}
	prefix := lines[0][:len(lines[0])-len(strings.TrimLeft(lines[0], " \t"))]
	if prefix == "" {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}
