package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOpen_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	snapshot := store.Snapshot()
	if snapshot.Profile != "pybot" {
		t.Errorf("default profile = %q, want %q", snapshot.Profile, "pybot")
	}
	if snapshot.ApplyIncludeTags || snapshot.ApplyExcludeTags {
		t.Error("apply flags should default to false")
	}
}

func TestOpen_LoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `profile: pybot
apply_include_tags: true
include_tags: smoke, regression
apply_exclude_tags: false
exclude_tags: wip
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	snapshot := store.Snapshot()
	if !snapshot.ApplyIncludeTags {
		t.Error("ApplyIncludeTags should be true")
	}
	if snapshot.IncludeTags != "smoke, regression" {
		t.Errorf("IncludeTags = %q", snapshot.IncludeTags)
	}
	if snapshot.ExcludeTags != "wip" {
		t.Errorf("ExcludeTags = %q", snapshot.ExcludeTags)
	}
}

func TestOpen_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestOpen_EmptyProfileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("include_tags: a\n"), 0644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if store.Snapshot().Profile != "pybot" {
		t.Errorf("missing profile should fall back to pybot, got %q", store.Snapshot().Profile)
	}
}

func TestSaveSetting_AllFields(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	tests := []struct {
		name  string
		value interface{}
	}{
		{SettingProfile, "custom script"},
		{SettingApplyIncludeTags, true},
		{SettingIncludeTags, "smoke,fast"},
		{SettingApplyExcludeTags, true},
		{SettingExcludeTags, "slow"},
		{SettingRunnerScript, "/usr/local/bin/runtests"},
	}
	for _, tt := range tests {
		if err := store.SaveSetting(tt.name, tt.value, 0); err != nil {
			t.Fatalf("SaveSetting(%s) failed: %v", tt.name, err)
		}
	}

	snapshot := store.Snapshot()
	if snapshot.Profile != "custom script" {
		t.Errorf("Profile = %q", snapshot.Profile)
	}
	if !snapshot.ApplyIncludeTags || !snapshot.ApplyExcludeTags {
		t.Error("apply flags should both be true")
	}
	if snapshot.IncludeTags != "smoke,fast" || snapshot.ExcludeTags != "slow" {
		t.Errorf("tags = %q / %q", snapshot.IncludeTags, snapshot.ExcludeTags)
	}
	if snapshot.RunnerScript != "/usr/local/bin/runtests" {
		t.Errorf("RunnerScript = %q", snapshot.RunnerScript)
	}
}

func TestSaveSetting_ImmediateFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := store.SaveSetting(SettingIncludeTags, "smoke", 0); err != nil {
		t.Fatalf("SaveSetting failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("settings file should exist after immediate flush: %v", err)
	}
	if !strings.Contains(string(data), "include_tags: smoke") {
		t.Errorf("file should contain the saved tag string, got: %s", data)
	}
}

func TestSaveSetting_DebouncedFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := store.SaveSetting(SettingIncludeTags, "a", 50*time.Millisecond); err != nil {
		t.Fatalf("SaveSetting failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("file should not exist before the debounce delay elapses")
	}

	// A second save within the window resets the timer and wins.
	if err := store.SaveSetting(SettingIncludeTags, "b", 50*time.Millisecond); err != nil {
		t.Fatalf("SaveSetting failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if data, err := os.ReadFile(path); err == nil && strings.Contains(string(data), "include_tags: b") {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("debounced flush never wrote the settings file")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSaveSetting_UnknownName(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.SaveSetting("bogus", "x", 0); err == nil {
		t.Error("expected error for unknown setting name")
	}
}

func TestSaveSetting_WrongType(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.SaveSetting(SettingApplyIncludeTags, "yes", 0); err == nil {
		t.Error("bool setting should reject a string value")
	}
	if err := store.SaveSetting(SettingIncludeTags, 42, 0); err == nil {
		t.Error("string setting should reject an int value")
	}
}

func TestClose_FlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := store.SaveSetting(SettingExcludeTags, "slow", time.Minute); err != nil {
		t.Fatalf("SaveSetting failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Close should have flushed: %v", err)
	}
	if !strings.Contains(string(data), "exclude_tags: slow") {
		t.Errorf("flushed file missing pending change: %s", data)
	}
}

func TestFlush_CleanStoreWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("flush without changes should not create the file")
	}
}

func TestReplace(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Replace(Settings{Profile: "pybot", IncludeTags: "external"})
	if store.Snapshot().IncludeTags != "external" {
		t.Errorf("Replace did not take effect: %+v", store.Snapshot())
	}
}
