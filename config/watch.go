package config

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
// Valid reloads are delivered on Settings; the game loop applies them between
// frames so only one goroutine ever writes the active settings.
type Watcher struct {
	Settings chan Settings

	watcher *fsnotify.Watcher
	path    string
	base    Settings
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches path, layering each reload on top of base.
func NewWatcher(path string, base Settings) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors often replace the file, so watch the directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		Settings: make(chan Settings, 1),
		watcher:  w,
		path:     filepath.Clean(path),
		base:     base,
		closeCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Poll returns the most recent reload, if one arrived since the last call.
func (w *Watcher) Poll() (Settings, bool) {
	select {
	case s := <-w.Settings:
		return s, true
	default:
		return Settings{}, false
	}
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || filepath.Clean(event.Name) != w.path {
				continue
			}
			s, err := LoadFrom(w.base, w.path)
			if err != nil {
				log.Printf("Warning: config reload failed: %v", err)
				continue
			}
			w.publish(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: config watcher: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

// publish replaces any reload the game loop has not picked up yet.
func (w *Watcher) publish(s Settings) {
	select {
	case <-w.Settings:
	default:
	}
	w.Settings <- s
}
