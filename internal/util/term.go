package util

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

/*
   references:
   - https://no-color.org/
   - https://github.com/sitkevij/no_color
*/

// IsTerminal checks if f is a terminal using go-isatty
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ShouldUseColors decides for stdout, where results and prompts go
func ShouldUseColors() bool {
	return ShouldUseColorsFor(os.Stdout)
}

// ShouldUseColorsFor lets the environment override what the terminal check on f says
func ShouldUseColorsFor(f *os.File) bool {
	if noColor := os.Getenv("NO_COLOR"); noColor != "" {
		return false
	}

	if forceColor := os.Getenv("FORCE_COLOR"); forceColor != "" {
		return forceColor != "0"
	}

	if recapColors := os.Getenv("RECAP_FORCE_COLORS"); recapColors != "" {
		return strings.ToLower(recapColors) == "true"
	}

	return IsTerminal(f)
}
