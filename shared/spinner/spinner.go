// Package spinner shows a progress indicator for steps without output of their own.
package spinner

import (
	"time"

	"github.com/briandowns/spinner"
)

// Start shows a spinner with the given suffix and returns the function that stops it.
func Start(suffix string) func() {
	loader := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = suffix
	loader.Start()

	return loader.Stop
}
