// Package watcher provides a debounced filesystem watcher for template
// document files. It powers `pressroom watch`, which re-validates a
// document on every save.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rafaelfne/pressroom-sub002/internal/logging"
)

// DocumentWatcher watches document files for changes with debouncing, so
// editor auto-save bursts collapse into one reload.
type DocumentWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	filters   []FileFilter
	handlers  []ChangeHandler
	logger    logging.Logger
	mutex     sync.RWMutex
}

// ChangeEvent represents a document file change.
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
}

// EventType represents the type of file change.
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType.
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines if a file should be watched.
type FileFilter func(path string) bool

// ChangeHandler handles a debounced batch of change events.
type ChangeHandler func(events []ChangeEvent) error

// debouncer groups rapid file changes together.
type debouncer struct {
	delay   time.Duration
	events  chan ChangeEvent
	output  chan []ChangeEvent
	timer   *time.Timer
	pending []ChangeEvent
	mutex   sync.Mutex
}

// NewDocumentWatcher creates a watcher with the given debounce delay.
func NewDocumentWatcher(debounceDelay time.Duration, logger logging.Logger) (*DocumentWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &DocumentWatcher{
		watcher: fsWatcher,
		debouncer: &debouncer{
			delay:  debounceDelay,
			events: make(chan ChangeEvent, 100),
			output: make(chan []ChangeEvent, 10),
		},
		logger: logger.WithComponent("watcher"),
	}, nil
}

// AddFilter adds a file filter.
func (w *DocumentWatcher) AddFilter(filter FileFilter) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.filters = append(w.filters, filter)
}

// AddHandler adds a change handler.
func (w *DocumentWatcher) AddHandler(handler ChangeHandler) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.handlers = append(w.handlers, handler)
}

// AddPath watches a file or directory. Watching the containing directory
// keeps events flowing across editors that replace files on save.
func (w *DocumentWatcher) AddPath(path string) error {
	return w.watcher.Add(filepath.Clean(path))
}

// Start launches the watcher goroutines. They stop when ctx is done.
func (w *DocumentWatcher) Start(ctx context.Context) {
	go w.debouncer.run(ctx)
	go w.deliver(ctx)
	go w.watchLoop(ctx)
}

// Stop stops the watcher and releases its resources.
func (w *DocumentWatcher) Stop() error {
	w.debouncer.mutex.Lock()
	if w.debouncer.timer != nil {
		w.debouncer.timer.Stop()
	}
	w.debouncer.mutex.Unlock()
	return w.watcher.Close()
}

func (w *DocumentWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, err, "watch error")
		}
	}
}

func (w *DocumentWatcher) handleEvent(event fsnotify.Event) {
	w.mutex.RLock()
	filters := w.filters
	w.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return
		}
	}

	var modTime time.Time
	if info, err := os.Stat(event.Name); err == nil {
		modTime = info.ModTime()
	}

	var eventType EventType
	switch {
	case event.Op.Has(fsnotify.Create):
		eventType = EventTypeCreated
	case event.Op.Has(fsnotify.Write):
		eventType = EventTypeModified
	case event.Op.Has(fsnotify.Remove):
		eventType = EventTypeDeleted
	case event.Op.Has(fsnotify.Rename):
		eventType = EventTypeRenamed
	default:
		eventType = EventTypeModified
	}

	select {
	case w.debouncer.events <- ChangeEvent{Type: eventType, Path: event.Name, ModTime: modTime}:
	default:
		// Channel full, skip this event
	}
}

func (w *DocumentWatcher) deliver(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case events := <-w.debouncer.output:
			w.mutex.RLock()
			handlers := w.handlers
			w.mutex.RUnlock()

			for _, handler := range handlers {
				if err := handler(events); err != nil {
					w.logger.Warn(ctx, err, "change handler failed")
				}
			}
		}
	}
}

func (d *debouncer) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.events:
			d.add(event)
		}
	}
}

func (d *debouncer) add(event ChangeEvent) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = append(d.pending, event)

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

func (d *debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.pending) == 0 {
		return
	}

	// Deduplicate events by path, keeping the latest.
	byPath := make(map[string]ChangeEvent)
	for _, event := range d.pending {
		byPath[event.Path] = event
	}
	events := make([]ChangeEvent, 0, len(byPath))
	for _, event := range byPath {
		events = append(events, event)
	}

	select {
	case d.output <- events:
	default:
		// Channel full, skip
	}

	d.pending = d.pending[:0]
}

// DocumentFilter accepts the document file formats the CLI understands.
func DocumentFilter(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// PathFilter accepts only the single given file.
func PathFilter(target string) FileFilter {
	clean := filepath.Clean(target)
	return func(path string) bool {
		return filepath.Clean(path) == clean
	}
}
