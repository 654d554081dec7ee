package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityBounds(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical strings", a: "git", b: "git", want: 1.0},
		{name: "identical multibyte", a: "日本語", b: "日本語", want: 1.0},
		{name: "disjoint character sets", a: "abc", b: "xyz", want: 0.0},
		{name: "both empty", a: "", b: "", want: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityPartial(t *testing.T) {
	// "gti" vs "git" share two aligned characters out of six total.
	assert.InDelta(t, 2.0/3.0, Similarity("git", "gti"), 1e-9)
}

func TestClosestRanksBestFirst(t *testing.T) {
	candidates := []string{"cat", "git", "gitk", "ls", "python3"}

	got := Closest("gti", candidates, DefaultMax, DefaultCutoff)
	require.NotEmpty(t, got)
	assert.Equal(t, "git", got[0].Name)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].Score, got[i-1].Score)
	}
	for _, s := range got {
		assert.GreaterOrEqual(t, s.Score, DefaultCutoff)
	}
}

func TestClosestCutoffMonotonic(t *testing.T) {
	candidates := []string{"gcc", "git", "gitk", "gpg", "grep", "gzip"}

	prev := len(candidates) + 1
	for _, cutoff := range []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0} {
		n := len(Closest("gt", candidates, len(candidates), cutoff))
		assert.LessOrEqual(t, n, prev, "cutoff %v", cutoff)
		prev = n
	}
}

func TestClosestTruncatesToMax(t *testing.T) {
	candidates := []string{"tool1", "tool2", "tool3", "tool4", "tool5", "tool6", "tool7"}
	got := Closest("tool", candidates, 5, 0.4)
	assert.Len(t, got, 5)
}

func TestClosestTiesAreLexicographic(t *testing.T) {
	// Both score identically against "a"; sorted input order must survive.
	got := Closest("a", []string{"ab", "ba"}, 5, 0.1)
	require.Len(t, got, 2)
	assert.Equal(t, "ab", got[0].Name)
	assert.Equal(t, "ba", got[1].Name)
}

func TestClosestNothingClose(t *testing.T) {
	got := Closest("zzzzzxyqv", []string{"cat", "git", "ls"}, DefaultMax, DefaultCutoff)
	assert.Empty(t, got)
}
