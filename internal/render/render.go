package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/uripper/witch/internal/model"
)

// Column widths in visible terminal columns.
const (
	nameWidth     = 20
	locationWidth = 50
)

// NotFoundLabel marks a suggestion whose name no longer resolves on PATH.
const NotFoundLabel = "(not found in PATH)"

// StripColors removes terminal escape sequences from s, leaving every
// other character, including non-ASCII glyphs, untouched.
func StripColors(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth returns the number of terminal columns s occupies when
// rendered: color codes count zero, East-Asian wide runes count two,
// zero-width runes count zero.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripColors(s))
}

// Pad right-pads s with spaces to the given visible width. A string
// already wider than width is returned unchanged; alignment is allowed to
// break for that row rather than truncating.
func Pad(s string, width int) string {
	gap := width - VisibleWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// SuggestionTable lays out suggestions as a two-column table of decorated
// name and resolved location. Padding measures the color-stripped text so
// embedded styles never consume column budget.
func SuggestionTable(suggestions []model.Suggestion) string {
	var b strings.Builder

	b.WriteString(Pad("Suggested Command", nameWidth))
	b.WriteString(" | ")
	b.WriteString(Pad("Location", locationWidth))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", nameWidth+locationWidth+3))
	b.WriteString("\n")

	for _, s := range suggestions {
		location := s.Location
		if location == "" {
			location = NotFoundLabel
		}
		b.WriteString(Pad(s.Decorated, nameWidth))
		b.WriteString(" | ")
		b.WriteString(Pad(location, locationWidth))
		b.WriteString("\n")
	}
	return b.String()
}
