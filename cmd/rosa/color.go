package main

import (
	"os"

	"golang.org/x/term"

	"rosa/internal/config"
)

// shouldColor resolves a color mode against whether stderr is an actual
// terminal, since "auto" piped into a file or CI log should stay plain.
func shouldColor(mode config.Color) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}
