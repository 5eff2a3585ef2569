// cmd/solve is the command-line entry point for the solving engine:
// load a puzzle from a file, run the resolver to completion or
// quiescence, and print the result. Grounded on the teacher's
// cmd/test_puzzle/main.go, generalized from a hard-coded 81-char argv
// puzzle to a file-backed loader supporting both text formats and
// arbitrary N.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
	"humansudoku/internal/puzzleio"
	"humansudoku/internal/resolver"
)

func main() {
	os.Exit(run())
}

func run() int {
	format := flag.String("format", "plain", `puzzle file format: "plain" or "formatted"`)
	line := flag.Int("line", 1, "1-based line number to solve, for -format=plain files with multiple puzzles")
	only := flag.String("only", "", "comma-separated technique slugs to enable; empty enables all")
	aggressive := flag.Bool("aggressive-coloring", false, "assign the digit to the winning color instead of only eliminating the losing one")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: solve [flags] <puzzle-file>")
		flag.PrintDefaults()
		return 1
	}
	path := flag.Arg(0)

	var givens []int
	var n int
	var err error
	switch *format {
	case "plain":
		givens, n, err = puzzleio.LoadPlain(path, *line)
	case "formatted":
		givens, n, err = puzzleio.LoadFormatted(path)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		return 1
	}
	if err != nil {
		log.Printf("failed to load puzzle: %v", err)
		return 1
	}

	f, err := engine.NewField(n, givens)
	if err != nil {
		log.Printf("invalid puzzle: %v", err)
		return 1
	}

	res := resolver.New()
	res.AggressiveColoring = *aggressive
	if *only != "" {
		for _, t := range res.Registry().All() {
			t.SetEnabled(false)
		}
		for _, slug := range strings.Split(*only, ",") {
			if !res.Registry().SetEnabled(strings.TrimSpace(slug), true) {
				log.Printf("warning: unknown technique slug %q", slug)
			}
		}
	}

	step := 0
	res.Hooks = &resolver.Hooks{OnMove: func(m *core.Move) {
		step++
		fmt.Printf("%3d. %-24s %s\n", step, m.Technique, m.Explanation)
	}}
	outcome := res.Run(f)

	fmt.Println()
	fmt.Print(puzzleio.Render(f))
	fmt.Printf("outcome: %s\n", outcome)
	return 0
}
