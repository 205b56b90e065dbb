package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"witness/pkg/logging"
)

// DefaultDebounce coalesces bursts of file events (editors often write a
// file several times in quick succession) into one rerun.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reruns the suite whenever a scenario file changes.
type Watcher struct {
	path     string
	debounce time.Duration
	rerun    func(context.Context) error
}

// New creates a watcher over path. rerun is invoked once at startup and
// again after every detected change; its error does not stop watching
// (a broken suite file should be fixable without restarting).
func New(path string, rerun func(context.Context) error) *Watcher {
	return &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		rerun:    rerun,
	}
}

// Run watches until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := w.addTargets(fw); err != nil {
		return err
	}

	if err := w.rerun(ctx); err != nil {
		logging.Warn("Watch", "Run failed: %v", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	changes := make(chan struct{}, 1)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case event, ok := <-fw.Events:
				if !ok {
					return nil
				}
				if !relevant(event) {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return nil
				}
				logging.Warn("Watch", "Watcher error: %v", err)
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-changes:
				w.settle(ctx, changes)
				logging.Info("Watch", "Change detected, rerunning")
				if err := w.rerun(ctx); err != nil {
					logging.Warn("Watch", "Run failed: %v", err)
				}
			}
		}
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// settle drains change notifications until the debounce window passes
// without new ones.
func (w *Watcher) settle(ctx context.Context, changes <-chan struct{}) {
	timer := time.NewTimer(w.debounce)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			return
		}
	}
}

func (w *Watcher) addTargets(fw *fsnotify.Watcher) error {
	info, err := os.Stat(w.path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		// Watch the containing directory: editors replace files rather
		// than writing in place.
		return fw.Add(filepath.Dir(w.path))
	}
	return fw.Add(w.path)
}

func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	name := event.Name
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
