package model

// Version is the current witch release.
const Version = "0.3.1"

// Suggestion represents a single fuzzy match for a command that was not
// found on the search path.
type Suggestion struct {
	Name      string  // Executable name as listed in a PATH directory
	Score     float64 // Similarity to the query, 0.0 (disjoint) to 1.0 (equal)
	Decorated string  // Name with diff highlighting applied
	Location  string  // Resolved path, empty if not currently resolvable
}
