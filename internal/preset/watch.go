package preset

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch reloads the library whenever its backing file changes on disk and
// then invokes onChange. The containing directory is watched (editors often
// replace files by rename), so the directory must exist. The returned stop
// function releases the watcher.
func (l *Library) Watch(log zerolog.Logger, onChange func()) (stop func() error, err error) {
	if l.path == "" {
		return nil, fmt.Errorf("preset: library has no file path to watch")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("preset: watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(l.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("preset: watch %s: %w", filepath.Dir(l.path), err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(l.path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if err := l.Reload(); err != nil {
					log.Warn().Err(err).Str("file", l.path).Msg("library reload failed")
					continue
				}
				onChange()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("library watcher error")
			}
		}
	}()

	return watcher.Close, nil
}
