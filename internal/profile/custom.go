package profile

import (
	"runtime"
	"strings"

	"robotbench/internal/settings"
)

// CustomScriptName is how the custom script profile appears in the selection
// list.
const CustomScriptName = "custom script"

// CustomScript runs tests through a user-supplied runner script instead of
// pybot. The script path lives in the runner_script setting and is edited
// through an extra toolbar field; everything else is inherited.
type CustomScript struct {
	Base
}

// NewCustomScript creates a custom script profile bound to the given
// settings store.
func NewCustomScript(store *settings.Store) Profile {
	return &CustomScript{Base: Base{store: store, withScript: true}}
}

func (c *CustomScript) Name() string { return CustomScriptName }

// CommandPrefix returns the configured runner script, falling back to the
// pybot executable when no script is set.
func (c *CustomScript) CommandPrefix() []string {
	script := strings.TrimSpace(c.store.Snapshot().RunnerScript)
	if script == "" {
		return []string{pybotExecutable(runtime.GOOS)}
	}
	return []string{script}
}
