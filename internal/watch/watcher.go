// Package watch reloads templates when their files change on disk.
package watch

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// DefaultExtensions are the file types that trigger a reload.
var DefaultExtensions = []string{".html", ".css"}

// Watcher watches a templates directory and calls onChange for every
// write or create of a watched file type.
type Watcher struct {
	watcher    *fsnotify.Watcher
	rootDir    string
	extensions map[string]bool
	onChange   func(relPath string) error
	done       chan struct{}
	stopOnce   sync.Once
	debug      bool
}

// Option customises a Watcher.
type Option func(*Watcher)

// WithExtensions replaces the watched file extensions.
func WithExtensions(exts ...string) Option {
	return func(w *Watcher) {
		w.extensions = make(map[string]bool, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			w.extensions[ext] = true
		}
	}
}

// WithDebug logs every added directory and observed change.
func WithDebug(debug bool) Option {
	return func(w *Watcher) {
		w.debug = debug
	}
}

// New creates a watcher for rootDir and its subdirectories.
func New(rootDir string, onChange func(relPath string) error, options ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		rootDir:  rootDir,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	WithExtensions(DefaultExtensions...)(w)
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}

	if err := w.addDirectoryRecursive(rootDir); err != nil {
		fsWatcher.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addDirectoryRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return err
		}
		if w.debug {
			log.Printf("[Watch] Added directory: %s", path)
		}
		return nil
	})
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.handle(event)

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[Watch] Error: %v", err)

			case <-w.done:
				return
			}
		}
	}()
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !w.extensions[strings.ToLower(filepath.Ext(event.Name))] {
		return
	}

	relPath, err := filepath.Rel(w.rootDir, event.Name)
	if err != nil {
		relPath = event.Name
	}
	if w.debug {
		log.Printf("[Watch] File changed: %s", relPath)
	}
	if w.onChange == nil {
		return
	}
	if err := w.onChange(relPath); err != nil {
		log.Printf("[Watch] Reload failed for %s: %v", relPath, err)
	}
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
