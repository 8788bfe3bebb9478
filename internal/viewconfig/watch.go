package viewconfig

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it is written or (re)created and calls onChange with the result.
// The parent directory is watched rather than the file so editors that replace the file on save
// are still seen. onErr receives load and watcher errors; it may be nil.
// Watch blocks until ctx is done and returns nil, or returns an error if the watcher cannot start.
func Watch(ctx context.Context, path string, onChange func(Prefs), onErr func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("viewconfig: watch: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("viewconfig: watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)
	report := func(err error) {
		if onErr != nil {
			onErr(err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			p, err := Load(path)
			if err != nil {
				report(err)
				continue
			}
			onChange(p)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			report(fmt.Errorf("viewconfig: watch: %w", err))
		}
	}
}
