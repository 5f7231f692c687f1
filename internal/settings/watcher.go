package settings

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"robotbench/internal/logging"
)

// Watcher monitors the settings file for external edits and reloads the store.
// The host IDE owns the settings lifecycle; edits made outside robotbench
// should be picked up without restarting the workbench.
type Watcher struct {
	store    *Store
	watcher  *fsnotify.Watcher
	logger   *logging.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
	onReload func(Settings)
}

// NewWatcher creates a watcher for the store's settings file.
func NewWatcher(store *Store, logger *logging.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		store:    store,
		watcher:  watcher,
		logger:   logger,
		stopChan: make(chan struct{}),
	}, nil
}

// SetReloadCallback registers a function invoked with the reloaded settings.
func (w *Watcher) SetReloadCallback(callback func(Settings)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = callback
}

// Start begins watching the directory containing the settings file.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.store.Path())
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	go w.watchForChanges()
	w.logger.Verbose("Watching %s for settings changes", w.store.Path())
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		w.watcher.Close()
	})
}

func (w *Watcher) watchForChanges() {
	path := w.store.Path()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(path) && event.Name != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Wait a bit for the write to complete.
			time.Sleep(100 * time.Millisecond)
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Settings watcher error: %v", err)
		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) reload() {
	path := w.store.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			w.logger.Error("Failed to read settings file: %v", err)
		}
		return
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		w.logger.Error("Failed to parse settings file: %v", err)
		return
	}
	if loaded.Profile == "" {
		loaded.Profile = Default().Profile
	}
	w.store.Replace(loaded)
	w.logger.Verbose("Reloaded settings from %s", path)

	w.mu.Lock()
	callback := w.onReload
	w.mu.Unlock()
	if callback != nil {
		callback(loaded)
	}
}
