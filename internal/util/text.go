package util

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

// CellText collapses whitespace (including non-breaking spaces) in a table
// cell's text and trims it.
func CellText(input string) string {
	s := strings.ReplaceAll(input, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
