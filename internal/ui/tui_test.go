package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"robotbench/internal/config"
	"robotbench/internal/logging"
	"robotbench/internal/profile"
	"robotbench/internal/settings"
)

func newTestModel(t *testing.T) tuiModel {
	t.Helper()
	root := filepath.Join(t.TempDir(), "bench")
	ws, err := CreateWorkspace(root, "bench")
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
	store, err := settings.Open(SettingsPath(root))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger, err := logging.NewLogger(logging.LogLevelSilent, "")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	cfg := config.CreateDefaultConfig()
	cfg.Workspace = root
	return newTUIModel(ws, cfg, store, logger)
}

func TestNewTUIModelDefaultsToPybot(t *testing.T) {
	m := newTestModel(t)
	if m.current == nil {
		t.Fatal("no current profile")
	}
	if m.current.Name() != profile.PybotName {
		t.Errorf("current = %q, want %q", m.current.Name(), profile.PybotName)
	}
	if m.mode != viewHome {
		t.Errorf("mode = %v, want viewHome", m.mode)
	}
	if m.names[m.cursor] != profile.PybotName {
		t.Errorf("cursor at %q, want %q", m.names[m.cursor], profile.PybotName)
	}
}

func TestSelectProfileSwitchesAndPersists(t *testing.T) {
	m := newTestModel(t)
	m = m.selectProfile(profile.CustomScriptName)
	if m.err != nil {
		t.Fatalf("selectProfile failed: %v", m.err)
	}
	if m.current.Name() != profile.CustomScriptName {
		t.Errorf("current = %q, want %q", m.current.Name(), profile.CustomScriptName)
	}
	if got := m.store.Snapshot().Profile; got != profile.CustomScriptName {
		t.Errorf("persisted profile = %q, want %q", got, profile.CustomScriptName)
	}
}

func TestSelectProfileUnknownSetsError(t *testing.T) {
	m := newTestModel(t)
	m = m.selectProfile("jybot")
	if m.err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestBuildReviewRendersCommand(t *testing.T) {
	m := newTestModel(t)
	m = m.buildReview()
	if m.err != nil {
		t.Fatalf("buildReview failed: %v", m.err)
	}
	if m.mode != viewReview {
		t.Errorf("mode = %v, want viewReview", m.mode)
	}
	if len(m.command.Args) == 0 {
		t.Error("no command assembled")
	}
	if !strings.Contains(m.reviewText, "Review Command") {
		t.Errorf("review text missing heading:\n%s", m.reviewText)
	}
}

func TestUpdateNavigatesHome(t *testing.T) {
	m := newTestModel(t)
	m.cursor = 0

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(tuiModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(tuiModel)
	if m.cursor != len(m.names)-1 {
		t.Errorf("cursor = %d, want clamped to %d", m.cursor, len(m.names)-1)
	}
}

func TestUpdateQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, want tea.QuitMsg", msg)
	}
}

func TestCopyWithoutCommand(t *testing.T) {
	m := newTestModel(t)
	m = m.copyCurrentCommand()
	if m.status != "Copy: no command available" {
		t.Errorf("status = %q", m.status)
	}
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, length, want int
	}{
		{0, 3, 0},
		{-1, 3, 0},
		{2, 3, 2},
		{3, 3, 2},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := clampCursor(tt.cursor, tt.length); got != tt.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tt.cursor, tt.length, got, tt.want)
		}
	}
}
