package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
)

// Kind classifies a run of candidate characters against the query.
type Kind int

const (
	// Matched characters appear in the query in the same relative order.
	Matched Kind = iota
	// Substituted characters align against differing query characters.
	Substituted
	// Inserted characters have no counterpart in the query.
	Inserted
)

// Segment is a run of candidate text with a single classification.
type Segment struct {
	Kind Kind
	Text string
}

// Palette maps segment kinds to terminal styles.
type Palette struct {
	Matched     lipgloss.Style
	Substituted lipgloss.Style
	Inserted    lipgloss.Style
}

var (
	matchedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))  // Green
	substitutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	insertedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226")) // Yellow
)

// Default returns the colored palette used for terminal output.
func Default() Palette {
	return Palette{
		Matched:     matchedStyle,
		Substituted: substitutedStyle,
		Inserted:    insertedStyle,
	}
}

// NoColor returns a palette that leaves text unstyled, for piped output.
func NoColor() Palette {
	return Palette{
		Matched:     lipgloss.NewStyle(),
		Substituted: lipgloss.NewStyle(),
		Inserted:    lipgloss.NewStyle(),
	}
}

// Segments aligns candidate against query and splits candidate into
// classified runs, in candidate left-to-right order. Query characters with
// no counterpart in candidate produce no segment and no placeholder.
// Concatenating the segment texts reproduces candidate exactly.
func Segments(query, candidate string) []Segment {
	a, b := chars(query), chars(candidate)

	var segs []Segment
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		if op.J1 == op.J2 {
			// Delete opcode: query-only characters.
			continue
		}
		text := strings.Join(b[op.J1:op.J2], "")
		switch op.Tag {
		case 'e':
			segs = append(segs, Segment{Matched, text})
		case 'r':
			segs = append(segs, Segment{Substituted, text})
		case 'i':
			segs = append(segs, Segment{Inserted, text})
		}
	}
	return segs
}

// Render decorates candidate with the palette's style for each run and
// concatenates the runs back into a single string.
func Render(query, candidate string, palette Palette) string {
	var b strings.Builder
	for _, seg := range Segments(query, candidate) {
		switch seg.Kind {
		case Matched:
			b.WriteString(palette.Matched.Render(seg.Text))
		case Substituted:
			b.WriteString(palette.Substituted.Render(seg.Text))
		case Inserted:
			b.WriteString(palette.Inserted.Render(seg.Text))
		}
	}
	return b.String()
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
