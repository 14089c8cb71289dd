package theme

import (
	"github.com/pterm/pterm"
)

// Theme defines the colour scheme and styling for the application
type Theme struct {
	// Log colours
	Info  *pterm.Style
	Muted *pterm.Style
	Error *pterm.Style

	// Application colours
	Model         *pterm.Style
	Counts        *pterm.Style
	StatusFailed  *pterm.Style
	StatusWarming *pterm.Style

	// Interactive output
	Heading *pterm.Style
	Prompt  *pterm.Style
}

// Default returns the default application theme
func Default() *Theme {
	return &Theme{
		Info:  pterm.NewStyle(pterm.FgGreen),
		Muted: pterm.NewStyle(pterm.FgGray),
		Error: pterm.NewStyle(pterm.FgRed, pterm.Bold),

		Model:         pterm.NewStyle(pterm.FgCyan),
		Counts:        pterm.NewStyle(pterm.FgLightYellow),
		StatusFailed:  pterm.NewStyle(pterm.FgRed),
		StatusWarming: pterm.NewStyle(pterm.FgYellow),

		Heading: pterm.NewStyle(pterm.FgLightCyan, pterm.Bold),
		Prompt:  pterm.NewStyle(pterm.FgLightGreen),
	}
}

// Dark returns a dark theme variant
func Dark() *Theme {
	return &Theme{
		Info:  pterm.NewStyle(pterm.FgLightGreen),
		Muted: pterm.NewStyle(pterm.FgGray),
		Error: pterm.NewStyle(pterm.FgLightRed, pterm.Bold),

		Model:         pterm.NewStyle(pterm.FgLightCyan),
		Counts:        pterm.NewStyle(pterm.FgLightYellow),
		StatusFailed:  pterm.NewStyle(pterm.FgLightRed),
		StatusWarming: pterm.NewStyle(pterm.FgLightYellow),

		Heading: pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold),
		Prompt:  pterm.NewStyle(pterm.FgLightGreen),
	}
}

// Light returns a light theme variant
func Light() *Theme {
	return &Theme{
		Info:  pterm.NewStyle(pterm.FgBlack),
		Muted: pterm.NewStyle(pterm.FgGray),
		Error: pterm.NewStyle(pterm.FgRed, pterm.Bold),

		Model:         pterm.NewStyle(pterm.FgBlue),
		Counts:        pterm.NewStyle(pterm.FgMagenta),
		StatusFailed:  pterm.NewStyle(pterm.FgRed),
		StatusWarming: pterm.NewStyle(pterm.FgYellow),

		Heading: pterm.NewStyle(pterm.FgBlue, pterm.Bold),
		Prompt:  pterm.NewStyle(pterm.FgGreen),
	}
}

// GetTheme returns the named theme, unknown names get the default
func GetTheme(name string) *Theme {
	switch name {
	case "dark":
		return Dark()
	case "light":
		return Light()
	default:
		return Default()
	}
}

// IsKnown reports whether name selects a theme other than the fallback
func IsKnown(name string) bool {
	switch name {
	case "default", "dark", "light":
		return true
	}
	return false
}

// ColourSplash Colours for the splash screen
func ColourSplash(message ...any) string {
	return pterm.LightCyan(message...)
}

// ColourVersion Colours Version numbers, used for the splash screen
func ColourVersion(message ...any) string {
	return pterm.LightYellow(message...)
}

// StyleUrl Colours for URLs and hyperlinks
func StyleUrl(message ...any) string {
	return pterm.LightBlue(message...)
}

// Hyperlink creates a hyperlink in the terminal
func Hyperlink(uri string, text string) string {
	return "\x1b]8;;" + uri + "\x07" + text + "\x1b]8;;\x07" + "\u001b[0m"
}
