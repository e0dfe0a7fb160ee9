//go:build !windows

// Package ansi prepares the console for ANSI escape sequences.
package ansi

import "os"

// EnableANSI reports whether f can render ANSI escapes. Terminals outside
// Windows support them natively.
func EnableANSI(_ *os.File) bool {
	return true
}
