// Package banner draws the framed title lines around a release run.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/thirukguru/cmake-release/shared/console"
)

// Width is the length of the rule drawn above and below titles.
const Width = 40

// Rule returns the horizontal separator.
func Rule() string {
	return strings.Repeat("-", Width)
}

// DrawTitle writes title between two rules, highlighted when color is on.
func DrawTitle(w io.Writer, title string, color bool) {
	if color {
		title = console.Accent().Sprint(title)
	}
	fmt.Fprintln(w, Rule())
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, Rule())
}
