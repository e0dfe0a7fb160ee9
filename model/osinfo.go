package model

// OsInfo describes the host as far as the build is concerned.
type OsInfo struct {
	// Name is a display name such as "Ubuntu" or "Windows".
	Name string
	// Generator is the CMake generator passed with -G.
	Generator string
	// ExecutableExtension is ".exe" on Windows and empty elsewhere.
	ExecutableExtension string
}
