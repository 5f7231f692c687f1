package settings

// Persisted run settings for robotbench profiles

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"robotbench/internal/errors"
)

// Setting names accepted by Store.SaveSetting. Profiles persist their toolbar
// state under these keys.
const (
	SettingProfile          = "profile"
	SettingApplyIncludeTags = "apply_include_tags"
	SettingIncludeTags      = "include_tags"
	SettingApplyExcludeTags = "apply_exclude_tags"
	SettingExcludeTags      = "exclude_tags"
	SettingRunnerScript     = "runner_script"
)

// DefaultSaveDelay is the debounce hint profiles pass to SaveSetting so that
// rapid toolbar edits collapse into a single write.
const DefaultSaveDelay = 2 * time.Second

// Settings is the on-disk settings document.
type Settings struct {
	Profile          string `yaml:"profile"`
	ApplyIncludeTags bool   `yaml:"apply_include_tags"`
	IncludeTags      string `yaml:"include_tags"`
	ApplyExcludeTags bool   `yaml:"apply_exclude_tags"`
	ExcludeTags      string `yaml:"exclude_tags"`
	RunnerScript     string `yaml:"runner_script,omitempty"`
}

// Default returns the settings used when no settings file exists yet.
func Default() Settings {
	return Settings{Profile: "pybot"}
}

// Store owns the settings file. Profiles hold a non-owning reference to it and
// write through SaveSetting; reads go through Snapshot.
type Store struct {
	mu      sync.Mutex
	path    string
	current Settings
	timer   *time.Timer
	dirty   bool
}

// Open loads the settings file at path, or starts from defaults when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	store := &Store{path: path, current: Default()}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, errors.WrapSettingsError(err, path)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, errors.WrapSettingsError(fmt.Errorf("parse settings: %w", err), path)
	}
	if loaded.Profile == "" {
		loaded.Profile = Default().Profile
	}
	store.current = loaded
	return store, nil
}

// Path returns the settings file path.
func (s *Store) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Replace swaps in externally loaded settings without scheduling a write.
// Used by the file watcher when the host edits the settings file directly.
func (s *Store) Replace(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = settings
	s.dirty = false
}

// SaveSetting sets the named setting and schedules a debounced flush after
// delay. A delay of zero or less flushes immediately.
func (s *Store) SaveSetting(name string, value interface{}, delay time.Duration) error {
	s.mu.Lock()
	if err := s.apply(name, value); err != nil {
		s.mu.Unlock()
		return err
	}
	s.dirty = true
	if delay <= 0 {
		s.mu.Unlock()
		return s.Flush()
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(delay, func() {
			_ = s.Flush()
		})
	} else {
		s.timer.Reset(delay)
	}
	s.mu.Unlock()
	return nil
}

// apply sets a field by setting name. Caller holds the lock.
func (s *Store) apply(name string, value interface{}) error {
	switch name {
	case SettingProfile, SettingIncludeTags, SettingExcludeTags, SettingRunnerScript:
		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("setting %q expects a string, got %T", name, value)
		}
		switch name {
		case SettingProfile:
			s.current.Profile = text
		case SettingIncludeTags:
			s.current.IncludeTags = text
		case SettingExcludeTags:
			s.current.ExcludeTags = text
		case SettingRunnerScript:
			s.current.RunnerScript = text
		}
	case SettingApplyIncludeTags, SettingApplyExcludeTags:
		flag, ok := value.(bool)
		if !ok {
			return fmt.Errorf("setting %q expects a bool, got %T", name, value)
		}
		if name == SettingApplyIncludeTags {
			s.current.ApplyIncludeTags = flag
		} else {
			s.current.ApplyExcludeTags = flag
		}
	default:
		return fmt.Errorf("unknown setting %q", name)
	}
	return nil
}

// Flush writes the current settings to disk if anything changed.
func (s *Store) Flush() error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	settings := s.current
	path := s.path
	s.dirty = false
	s.mu.Unlock()

	data, err := yaml.Marshal(settings)
	if err != nil {
		return errors.WrapSettingsError(fmt.Errorf("marshal settings: %w", err), path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapSettingsError(err, path)
	}
	return nil
}

// Close stops any pending debounce timer and flushes outstanding changes.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.Flush()
}
