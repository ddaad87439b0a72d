// Package watch reports edits to a project's pyproject.toml.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/papapumpkin/ndm/internal/project"
)

// debounce is how long a file must stay quiet before a change is emitted.
const debounce = 100 * time.Millisecond

// Change is one settled edit to the manifest.
type Change struct {
	File string // Absolute path
	At   time.Time
}

// Watcher monitors the project root for manifest changes. The directory is
// watched rather than the file so editors that replace files on save are
// still seen.
type Watcher struct {
	Paths   project.Paths
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	done    chan struct{}
	started bool
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the manifest of paths.
func NewWatcher(paths project.Paths) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Paths:   paths,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Paths.Root); err != nil {
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	if w.started {
		<-w.done // Wait for loop to exit
	}
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.emit()
				}
				return
			}
			if filepath.Base(event.Name) != project.ManifestName {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= debounce {
				pending = time.Time{}
				w.emit()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

func (w *Watcher) emit() {
	select {
	case w.changes <- Change{File: w.Paths.Manifest(), At: time.Now()}:
	default:
		// A change is already queued; the consumer will reread the file.
	}
}
