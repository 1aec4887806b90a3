// Package watch reports changes under a fixed set of manifest directories.
//
// Directories that do not exist yet are watched through their nearest
// existing ancestor and picked up once created. Events within the debounce
// window are coalesced so the callback fires once with every changed path.
package watch

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 300 * time.Millisecond

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Dirs are the directories whose contents matter.
		Dirs []string

		// Debounce is the quiet period after the last event before OnChange
		// fires. Zero or negative values fall back to defaultDebounce.
		Debounce time.Duration

		// OnChange is called from Run's goroutine with the sorted, deduplicated
		// changed paths. Errors are logged and do not stop the watcher.
		OnChange func(ctx context.Context, changed []string) error

		// Logger defaults to log.Default().
		Logger *log.Logger
	}

	// Watcher monitors Config.Dirs. Run must be called exactly once.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		logger   *log.Logger
		debounce time.Duration
		targets  []string
		started  atomic.Bool

		mu      sync.Mutex
		watched map[string]struct{}
	}
)

// New creates a Watcher and registers every target directory, or its
// nearest existing ancestor.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Dirs) == 0 {
		return nil, errors.New("watch: no directories to watch")
	}

	targets := make([]string, 0, len(cfg.Dirs))
	for _, d := range cfg.Dirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve %q: %w", d, err)
		}
		if !slices.Contains(targets, abs) {
			targets = append(targets, abs)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		logger:   logger,
		debounce: debounce,
		targets:  targets,
		watched:  make(map[string]struct{}),
	}
	w.sync()
	if len(w.Watched()) == 0 {
		fsw.Close() //nolint:errcheck // best-effort cleanup
		return nil, errors.New("watch: none of the directories or their parents could be watched")
	}
	return w, nil
}

// Watched returns the directories currently registered with fsnotify.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Sorted(maps.Keys(w.watched))
}

// Run blocks until ctx is cancelled, dispatching debounced callbacks. It
// returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New("watch: Run called more than once")
	}
	defer func() {
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("closing fsnotify watcher", "err", err)
		}
	}()

	var (
		pending = make(map[string]struct{})
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(w.debounce)
		} else {
			timer.Reset(w.debounce)
		}
		fire = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: fsnotify event channel closed unexpectedly")
			}
			if !w.relevant(evt.Name) {
				continue
			}
			if evt.Has(fsnotify.Create) || evt.Has(fsnotify.Remove) || evt.Has(fsnotify.Rename) {
				w.sync()
			}
			w.logger.Debug("manifest directory changed", "path", evt.Name, "op", evt.Op.String())
			pending[evt.Name] = struct{}{}
			schedule()

		case <-fire:
			fire = nil
			changed := slices.Sorted(maps.Keys(pending))
			clear(pending)
			if w.cfg.OnChange == nil {
				continue
			}
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				w.logger.Error("watch callback failed", "err", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: fsnotify error channel closed unexpectedly")
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.logger.Warn("fsnotify queue overflowed, rescanning", "err", err)
				schedule()
				continue
			}
			w.logger.Warn("fsnotify error", "err", err)
		}
	}
}

// relevant reports whether path is inside a target directory or on the way
// to one that does not exist yet.
func (w *Watcher) relevant(path string) bool {
	sep := string(filepath.Separator)
	for _, t := range w.targets {
		if path == t || strings.HasPrefix(path, t+sep) || strings.HasPrefix(t, path+sep) {
			return true
		}
	}
	return false
}

// sync watches the deepest existing directory on the way to each target and
// drops watches on directories that have disappeared. It repeats until
// nothing changes, so a directory created just before its parent was watched
// is not missed.
func (w *Watcher) sync() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.syncOnce() {
	}
}

func (w *Watcher) syncOnce() bool {
	want := make(map[string]struct{}, len(w.targets))
	for _, t := range w.targets {
		if dir := nearestExistingDir(t); dir != "" {
			want[dir] = struct{}{}
		}
	}

	for dir := range w.watched {
		if _, ok := want[dir]; ok {
			continue
		}
		// fsnotify drops watches on removed directories by itself.
		_ = w.fsw.Remove(dir)
		delete(w.watched, dir)
	}
	added := false
	for dir := range want {
		if _, ok := w.watched[dir]; ok {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			w.logger.Warn("cannot watch directory", "path", dir, "err", err)
			continue
		}
		w.watched[dir] = struct{}{}
		added = true
	}
	return added
}

func nearestExistingDir(path string) string {
	for {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return ""
		}
		path = parent
	}
}
