package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"github.com/uripper/witch/internal/highlight"
	"github.com/uripper/witch/internal/match"
	"github.com/uripper/witch/internal/model"
	"github.com/uripper/witch/internal/pathsearch"
	"github.com/uripper/witch/internal/render"
)

type options struct {
	max     int
	cutoff  float64
	noColor bool
}

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "uripper",
		Repository: "witch",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/uripper/witch/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: witch [options] <command>\n\n")
		fmt.Fprintf(os.Stderr, "witch is a smarter 'which': it locates a command on your PATH and,\n")
		fmt.Fprintf(os.Stderr, "when nothing matches exactly, suggests the closest executable names\n")
		fmt.Fprintf(os.Stderr, "with the differences highlighted.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  witch git            # Print the path of git\n")
		fmt.Fprintf(os.Stderr, "  witch gti            # Suggest 'git' with a highlighted diff\n")
		fmt.Fprintf(os.Stderr, "  witch --no-color gti # Plain output for scripts and pipes\n")
	}

	maxFlag := pflag.IntP("max", "n", match.DefaultMax, "Maximum number of suggestions to show")
	cutoffFlag := pflag.Float64P("cutoff", "c", match.DefaultCutoff, "Minimum similarity (0.0-1.0) for a suggestion")
	noColorFlag := pflag.Bool("no-color", false, "Disable diff highlighting in suggestions")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("witch version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	runSearch(os.Stdout, pflag.Arg(0), options{
		max:     *maxFlag,
		cutoff:  *cutoffFlag,
		noColor: *noColorFlag,
	})
}

// runSearch performs the single pass: exact lookup first, then fuzzy
// suggestions against every name visible on the search path. Failing to
// locate anything is a reported outcome, not an error, so the process
// still exits zero.
func runSearch(w io.Writer, command string, opts options) {
	if path, ok := pathsearch.Resolve(command); ok {
		fmt.Fprintln(w, path)
		return
	}

	candidates := pathsearch.Executables(pathsearch.Dirs())
	suggestions := match.Closest(command, candidates, opts.max, opts.cutoff)
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "Command not found and no close matches.")
		return
	}

	palette := highlight.Default()
	if opts.noColor {
		palette = highlight.NoColor()
	}
	for i := range suggestions {
		suggestions[i].Decorated = highlight.Render(command, suggestions[i].Name, palette)
		if path, ok := pathsearch.Resolve(suggestions[i].Name); ok {
			suggestions[i].Location = path
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Command not found. Did you mean:")
	fmt.Fprintln(w)
	fmt.Fprint(w, render.SuggestionTable(suggestions))
}
