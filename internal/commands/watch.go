package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aurelia-labs/au/internal/filesystem"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = 100 * time.Millisecond

// watch runs the task, then re-runs it whenever the project sources change.
// It returns when ctx is cancelled.
func (c *RunCommand) watch(ctx context.Context, path string, args []string) error {
	src := c.deps.Project.SourceDirectory()
	dirs, err := watchDirs(c.deps.FS, src)
	if err != nil {
		return fmt.Errorf("collecting directories under %s: %w", src, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer w.Close()

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	u := c.deps.UI
	run := func() {
		if err := runScript(ctx, c.deps, path, args); err != nil && ctx.Err() == nil {
			u.Errorf("task %s failed: %v", c.Task(), err)
		}
	}

	run()
	u.Infof("Watching %s for changes...", src)

	return debounce(ctx, w.Events, w.Errors, debounceDelay, func(ev fsnotify.Event) {
		if err := c.track(w, ev); err != nil {
			u.Warningf("watcher: %v", err)
		}
	}, func() {
		c.deps.logger().Debug("sources changed, re-running task", zap.String("task", c.Task()))
		run()
	}, func(err error) {
		u.Warningf("watcher: %v", err)
	})
}

type dirWatcher interface {
	Add(name string) error
}

// track starts watching directories created under the source tree.
func (c *RunCommand) track(w dirWatcher, ev fsnotify.Event) error {
	if !ev.Has(fsnotify.Create) || ignoredDir(filepath.Base(ev.Name)) || !c.deps.FS.IsDir(ev.Name) {
		return nil
	}
	dirs, err := watchDirs(c.deps.FS, ev.Name)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return nil
}

// watchDirs returns root and every directory below it, skipping hidden
// directories and node_modules.
func watchDirs(fsys *filesystem.FS, root string) ([]string, error) {
	var dirs []string
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && ignoredDir(filepath.Base(path)) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs, err
}

func ignoredDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

// debounce calls fn once events have been quiet for delay. Every event other
// than a bare Chmod is passed to seen first. It returns nil when ctx is done
// or the event channel closes.
func debounce(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, delay time.Duration,
	seen func(fsnotify.Event), fn func(), onErr func(error)) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			seen(ev)
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			fire = timer.C
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			onErr(err)
		case <-fire:
			fire = nil
			fn()
		}
	}
}
