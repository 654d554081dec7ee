package pathsearch

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// Dirs returns the directories of the process search path, in order.
// A missing or empty PATH variable yields an empty list rather than an
// error.
func Dirs() []string {
	return filepath.SplitList(os.Getenv("PATH"))
}

// Executables collects the unique entry names visible across dirs. Each
// directory is listed once, non-recursively. Directories that are missing,
// unreadable, or not directories contribute nothing. No check is made that
// an entry is actually executable; the result is a name universe for fuzzy
// matching, and resolution happens per-name via Resolve. Names are returned
// sorted so downstream ranking is deterministic.
func Executables(dirs []string) []string {
	seen := make(map[string]struct{})
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Stale or restricted PATH entries are expected noise.
			continue
		}
		for _, entry := range entries {
			seen[entry.Name()] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up name on the current search path. A false return means
// the name is not resolvable to an executable right now, which is valid
// data, not an error: a directory entry may exist without the exec bit, or
// may have been removed since enumeration.
func Resolve(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
