// Package model defines the data structures shared by the release pipeline.
package model

// VersionInfo contains build-time metadata about the binary.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}
