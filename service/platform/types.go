package platform

import (
	"io"

	"github.com/thirukguru/cmake-release/model"
)

const defaultOSReleasePath = "/etc/os-release"

type preset struct {
	name      string
	generator string
	extension string
}

// presets maps GOOS values to their CMake generator and executable suffix.
// The linux name is replaced by the detected distribution.
var presets = map[string]preset{
	"windows": {name: "Windows", generator: "MinGW Makefiles", extension: ".exe"},
	"darwin":  {name: "macOS", generator: "Unix Makefiles"},
	"linux":   {name: "Generic Linux", generator: "Unix Makefiles"},
}

// distros is matched in order against the lowercased os-release content.
var distros = []struct {
	marker string
	name   string
}{
	{marker: "ubuntu", name: "Ubuntu"},
	{marker: "void", name: "Void Linux"},
	{marker: "arch", name: "Arch"},
	{marker: "debian", name: "Debian"},
}

type service struct {
	goos          string
	osReleasePath string
	generator     string
	readFile      func(string) ([]byte, error)
	out           io.Writer
}

// Service is the interface for host detection.
type Service interface {
	Detect() (model.OsInfo, error)
}
