// Package profile implements run profiles for the robotbench workbench.
// Each profile assembles the runner executable prefix and the tag filter
// arguments for a test run, and renders the toolbar used to edit the
// underlying settings. Profiles appear by name in the workbench's selection
// list; the selected profile is instantiated against the shared settings
// store and discarded when another one is chosen.
package profile

import (
	"fmt"
	"sort"

	"robotbench/internal/settings"
)

// DefaultName is the profile selected when settings carry no choice.
const DefaultName = PybotName

// Profile is a named strategy producing a runner command line and its
// settings toolbar.
type Profile interface {
	// Name is the string shown in the workbench's profile selection list.
	Name() string
	// CommandPrefix returns the runner executable invocation the assembled
	// arguments are appended to.
	CommandPrefix() []string
	// CustomArgs returns the tag filter arguments derived from the current
	// settings, include tokens before exclude tokens.
	CustomArgs() []string
	// Toolbar returns the settings panel for this profile. The panel is
	// created on first call and reused afterwards.
	Toolbar() *Toolbar
}

type factory func(store *settings.Store) Profile

// builtins is the registry of run profiles keyed by display name.
var builtins = map[string]factory{
	PybotName:        NewPybot,
	CustomScriptName: NewCustomScript,
}

// New instantiates the named profile against the given settings store.
func New(name string, store *settings.Store) (Profile, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", name)
	}
	return f(store), nil
}

// Names returns the registered profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Base carries the behavior shared by all profiles: tag argument assembly,
// the lazily created toolbar, and settings persistence. Variants embed it and
// specialize CommandPrefix.
type Base struct {
	store      *settings.Store
	toolbar    *Toolbar
	withScript bool
}

// CustomArgs implements the shared tag filter assembly. For each of
// include/exclude, when the apply flag is set and the tag string is
// non-empty, one --include=<tag> or --exclude=<tag> token is emitted per
// comma-separated segment, trimmed, empty segments dropped, comma order
// preserved.
func (b *Base) CustomArgs() []string {
	snapshot := b.store.Snapshot()
	args := []string{}
	if snapshot.ApplyIncludeTags && snapshot.IncludeTags != "" {
		args = append(args, tagArgs("--include", snapshot.IncludeTags)...)
	}
	if snapshot.ApplyExcludeTags && snapshot.ExcludeTags != "" {
		args = append(args, tagArgs("--exclude", snapshot.ExcludeTags)...)
	}
	return args
}

// Toolbar returns the profile's settings panel, building it on first call.
func (b *Base) Toolbar() *Toolbar {
	if b.toolbar == nil {
		b.toolbar = newToolbar(b, b.withScript)
	}
	return b.toolbar
}

// SetSetting forwards a settings write to the store with the standard
// debounce delay. Side effect only; the names the handlers pass are always
// registered, so a failure here is a programming error.
func (b *Base) SetSetting(name string, value interface{}) {
	_ = b.store.SaveSetting(name, value, settings.DefaultSaveDelay)
}

// IncludeToggled handles the include checkbox changing state.
func (b *Base) IncludeToggled(checked bool) {
	b.SetSetting(settings.SettingApplyIncludeTags, checked)
}

// ExcludeToggled handles the exclude checkbox changing state.
func (b *Base) ExcludeToggled(checked bool) {
	b.SetSetting(settings.SettingApplyExcludeTags, checked)
}

// IncludeTagsChanged handles edits to the include tag text, persisting the
// field's current value.
func (b *Base) IncludeTagsChanged(value string) {
	b.SetSetting(settings.SettingIncludeTags, value)
}

// ExcludeTagsChanged handles edits to the exclude tag text.
func (b *Base) ExcludeTagsChanged(value string) {
	b.SetSetting(settings.SettingExcludeTags, value)
}

// ScriptChanged handles edits to the runner script path.
func (b *Base) ScriptChanged(value string) {
	b.SetSetting(settings.SettingRunnerScript, value)
}
