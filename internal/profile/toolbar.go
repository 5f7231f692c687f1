package profile

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Toolbar is a profile's settings panel: two checkboxes controlling whether
// tag filters apply, and two text inputs holding the comma-separated tag
// strings. Edits are forwarded to the owning profile's event handlers, which
// persist them through the settings store.
type Toolbar struct {
	owner *Base
	form  *huh.Form

	applyInclude bool
	includeTags  string
	applyExclude bool
	excludeTags  string
	script       string

	lastApplyInclude bool
	lastIncludeTags  string
	lastApplyExclude bool
	lastExcludeTags  string
	lastScript       string
	withScript       bool
}

func newToolbar(owner *Base, withScript bool) *Toolbar {
	snapshot := owner.store.Snapshot()
	t := &Toolbar{
		owner:        owner,
		applyInclude: snapshot.ApplyIncludeTags,
		includeTags:  snapshot.IncludeTags,
		applyExclude: snapshot.ApplyExcludeTags,
		excludeTags:  snapshot.ExcludeTags,
		script:       snapshot.RunnerScript,
		withScript:   withScript,
	}
	t.rememberValues()

	fields := []huh.Field{
		huh.NewConfirm().
			Title("Only run tests with these tags").
			Value(&t.applyInclude),
		huh.NewInput().
			Title("Include tags").
			Placeholder("tag1, tag2").
			Value(&t.includeTags),
		huh.NewConfirm().
			Title("Skip tests with these tags").
			Value(&t.applyExclude),
		huh.NewInput().
			Title("Exclude tags").
			Placeholder("tag1, tag2").
			Value(&t.excludeTags),
	}
	if withScript {
		fields = append(fields, huh.NewInput().
			Title("Runner script").
			Placeholder("path to executable").
			Value(&t.script))
	}
	t.form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
	return t
}

// Init starts the underlying form.
func (t *Toolbar) Init() tea.Cmd {
	return t.form.Init()
}

// Update feeds a message through the form and fires the profile's event
// handlers for any values that changed.
func (t *Toolbar) Update(msg tea.Msg) tea.Cmd {
	model, cmd := t.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		t.form = form
	}
	t.dispatchChanges()
	return cmd
}

// View renders the toolbar.
func (t *Toolbar) View() string {
	return t.form.View()
}

// Done reports whether the user submitted or aborted the form.
func (t *Toolbar) Done() bool {
	return t.form.State == huh.StateCompleted || t.form.State == huh.StateAborted
}

func (t *Toolbar) dispatchChanges() {
	if t.applyInclude != t.lastApplyInclude {
		t.lastApplyInclude = t.applyInclude
		t.owner.IncludeToggled(t.applyInclude)
	}
	if t.includeTags != t.lastIncludeTags {
		t.lastIncludeTags = t.includeTags
		t.owner.IncludeTagsChanged(t.includeTags)
	}
	if t.applyExclude != t.lastApplyExclude {
		t.lastApplyExclude = t.applyExclude
		t.owner.ExcludeToggled(t.applyExclude)
	}
	if t.excludeTags != t.lastExcludeTags {
		t.lastExcludeTags = t.excludeTags
		t.owner.ExcludeTagsChanged(t.excludeTags)
	}
	if t.withScript && t.script != t.lastScript {
		t.lastScript = t.script
		t.owner.ScriptChanged(t.script)
	}
}

func (t *Toolbar) rememberValues() {
	t.lastApplyInclude = t.applyInclude
	t.lastIncludeTags = t.includeTags
	t.lastApplyExclude = t.applyExclude
	t.lastExcludeTags = t.excludeTags
	t.lastScript = t.script
}
