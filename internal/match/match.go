package match

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/uripper/witch/internal/model"
)

// Default ranking parameters.
const (
	DefaultMax    = 5
	DefaultCutoff = 0.4
)

// Similarity returns how much of a and b aligns under a
// longest-matching-blocks comparison: twice the matched character count
// divided by the combined length. 1.0 for equal strings, 0.0 when no
// character aligns.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

// Closest ranks candidates against query and returns at most max of them
// scoring at or above cutoff, best first. The sort is stable, so equal
// scores keep candidate order; callers passing a lexicographically sorted
// list get lexicographic ties. An empty result means nothing came close,
// which is a normal outcome.
func Closest(query string, candidates []string, max int, cutoff float64) []model.Suggestion {
	matcher := difflib.NewMatcher(nil, chars(query))

	var ranked []model.Suggestion
	for _, name := range candidates {
		matcher.SetSeq1(chars(name))
		if score := matcher.Ratio(); score >= cutoff {
			ranked = append(ranked, model.Suggestion{Name: name, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// chars splits s into one-rune strings for character-level matching.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
