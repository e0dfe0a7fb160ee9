// Package console decides how colorful terminal output may be.
package console

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/cmake-release/shared/ansi"
	"golang.org/x/term"
)

// ColorEnabled reports whether colored output should be written to f.
// NO_COLOR disables it; pipes and files never get escapes.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return ansi.EnableANSI(f)
}

// Accent returns the highlight color for titles, avoiding blue-on-blue.
func Accent() text.Colors {
	if isBlueBackground() {
		return text.Colors{text.FgHiYellow, text.Bold}
	}
	return text.Colors{text.FgHiCyan, text.Bold}
}
