// Command simdfz is an interactive fuzzy finder over stdin or a directory
// walk, ranked by src/simdscore's batched SIMD scorer (spec §4.6). It is
// the repository's caller-side demonstration of the core library, in the
// same relationship the teacher (junegunn/fzf) has to its own src/algo.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/sumika-fz/simdfz/src/migemo"
	"github.com/sumika-fz/simdfz/src/simdscore"
)

func main() {
	walkDir := flag.String("walk", "", "enumerate files under DIR instead of reading stdin")
	migemoDict := flag.String("migemo", "", "path to a compiled migemo dictionary; enables romaji query expansion")
	preview := flag.String("preview", "", "shell command to run against the selected candidate, {} substituted")
	noTUI := flag.Bool("filter", false, "print ranked candidates and exit instead of launching the interactive UI")
	query := flag.String("query", "", "initial query for -filter mode")
	width := flag.Int("width", 0, "override the tableau column width W (0: size to the longest candidate)")
	lanes := flag.Int("lanes", 0, "override the SIMD lane count L per batch (0: Capabilities() default)")
	flag.Parse()

	batchOpts := simdscore.BatchOptions{Width: *width, Lanes: *lanes}

	candidates, err := loadCandidates(*walkDir)
	if err != nil {
		stderrLog.Errorf("%v", err)
		os.Exit(1)
	}

	var expander *migemo.Expander
	if *migemoDict != "" {
		e, err := migemo.NewExpander(*migemoDict)
		if err != nil {
			stderrLog.Errorf("%v", err)
			os.Exit(1)
		}
		expander = e
	}

	interactive := !*noTUI && isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())

	if !interactive {
		runFilterMode(candidates, expander, *query, batchOpts)
		return
	}

	selected, err := runInteractive(candidates, expander, true, batchOpts)
	if err != nil {
		stderrLog.Errorf("%v", err)
		os.Exit(1)
	}
	if selected == "" {
		os.Exit(1)
	}
	fmt.Println(selected)

	if *preview != "" {
		out, err := previewCommand(*preview, selected)
		if err != nil {
			stderrLog.Errorf("%v", err)
		} else {
			fmt.Print(out)
		}
	}
}

func loadCandidates(walkDir string) ([]string, error) {
	if walkDir != "" {
		return walkCandidates(walkDir)
	}
	return readStdinCandidates(os.Stdin)
}

// runFilterMode mirrors fzf's --filter: score everything against one query
// and print the ranking, truncating each line to the output terminal's
// width when stdout is a terminal (e.g. -filter run interactively without
// the full UI) and left untruncated when piped.
func runFilterMode(candidates []string, expander *migemo.Expander, query string, batchOpts simdscore.BatchOptions) {
	ranked := rankCandidates(needlesFor(query, expander), candidates, false, batchOpts)

	termWidth := 0
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			termWidth = w
		}
	}

	for _, r := range ranked {
		line := r.Text
		if termWidth > 0 && len(line) > termWidth {
			line = line[:termWidth]
		}
		fmt.Println(line)
	}
}
