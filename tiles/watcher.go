package tiles

import (
	"path/filepath"
	"sync"

	"github.com/MobRulesGames/fsnotify"
	"github.com/caffeine-storm/buildinged/logging"
)

// Reloads 'table' from 'path' whenever the file is written, then calls
// 'onReload' if it is non-nil. Call the returned func to stop watching.
func WatchProperties(path string, table *PropertyTable, onReload func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := watcher.Watch(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Event:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path {
					continue
				}
				if !ev.IsModify() && !ev.IsCreate() {
					continue
				}
				if err := table.Reload(path); err != nil {
					logging.Warn("failed to reload tile properties", "path", path, "err", err)
					continue
				}
				logging.Info("reloaded tile properties", "path", path)
				if onReload != nil {
					onReload()
				}
			case err, ok := <-watcher.Error:
				if !ok {
					return
				}
				logging.Error("watching tile properties", "path", path, "err", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			watcher.Close()
		})
	}, nil
}
