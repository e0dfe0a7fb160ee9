//go:build !windows

package console

import (
	"os"
	"strings"
)

// isBlueBackground reads the COLORFGBG hint some terminals export.
func isBlueBackground() bool {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	bg := strings.TrimSpace(parts[len(parts)-1])

	// ANSI 16-color backgrounds: 4 (blue) and 12 (bright blue).
	return bg == "4" || bg == "12"
}
