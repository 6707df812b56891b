package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long a config file must sit unchanged before it is
// reloaded. Editors often write a file several times in quick succession.
const debounceDelay = 500 * time.Millisecond

// Watcher monitors the config file and reloads it on change.
type Watcher struct {
	path     string
	onChange func(*Config)
	watcher  *fsnotify.Watcher

	running bool
	stopCh  chan struct{}
	mu      sync.RWMutex

	// Debouncing state
	pending   bool
	pendingAt time.Time
	pendingMu sync.Mutex
}

// NewWatcher creates a watcher for the given config file. onChange is called
// with the freshly loaded configuration after each settled change.
func NewWatcher(path string, onChange func(*Config)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		watcher:  fsWatcher,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching for config changes. The parent directory is watched
// rather than the file itself because editors replace files on save.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go w.processEvents()
	go w.processDebounced()

	return nil
}

// Stop stops the config watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.stopCh)

	return w.watcher.Close()
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// processEvents handles file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.pendingMu.Lock()
			w.pending = true
			w.pendingAt = time.Now()
			w.pendingMu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "config watcher error: %v\n", err)
		}
	}
}

// processDebounced reloads the config once a pending change has settled.
func (w *Watcher) processDebounced() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case <-ticker.C:
			w.reloadPending()
		}
	}
}

// reloadPending loads and publishes the config if the last change is old
// enough.
func (w *Watcher) reloadPending() {
	w.pendingMu.Lock()
	if !w.pending || time.Since(w.pendingAt) < debounceDelay {
		w.pendingMu.Unlock()
		return
	}
	w.pending = false
	w.pendingMu.Unlock()

	cfg, err := Load(w.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config reload error: %v\n", err)
		return
	}

	w.onChange(cfg)
}
