package profile

import (
	"runtime"

	"robotbench/internal/settings"
)

// PybotName is how the pybot profile appears in the selection list.
const PybotName = "pybot"

// Pybot runs tests through the pybot startup script. The script is assumed
// to be on the PATH.
type Pybot struct {
	Base
}

// NewPybot creates a pybot profile bound to the given settings store.
func NewPybot(store *settings.Store) Profile {
	return &Pybot{Base: Base{store: store}}
}

func (p *Pybot) Name() string { return PybotName }

// CommandPrefix selects the platform-specific pybot executable.
func (p *Pybot) CommandPrefix() []string {
	return []string{pybotExecutable(runtime.GOOS)}
}

func pybotExecutable(goos string) string {
	if goos == "windows" {
		return "pybot.bat"
	}
	return "pybot"
}
