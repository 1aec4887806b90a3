package openxr

import (
	"iter"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Platform is what the rest of the program needs from the host system to
// find and inspect runtimes and API layers.
type Platform interface {
	// FindAvailableRuntimes lists every runtime reachable from the search
	// roots, the active markers, and extraPaths. Per-manifest failures are
	// returned as ManifestError values; the error is only for a scan that
	// could not start.
	FindAvailableRuntimes(extraPaths iter.Seq[string]) ([]*Runtime, []ManifestError, error)
	// FindAvailableAPILayers lists implicit API layers, enabled or not.
	FindAvailableAPILayers(extraPaths iter.Seq[string]) ([]*APILayer, []ManifestError, error)
	// ActiveRuntimeManifests returns the canonical active runtime manifests.
	ActiveRuntimeManifests() []string
	// ActiveAPILayerManifests returns the canonical enabled implicit layer manifests.
	ActiveAPILayerManifests() []string
	// ActiveRuntimeData snapshots the active runtime for later comparison.
	ActiveRuntimeData() ActiveRuntimeData
	// RuntimeActiveState compares r against a snapshot.
	RuntimeActiveState(r *Runtime, data ActiveRuntimeData) ActiveState
	// APILayerActiveState reports a layer's state, treating an undeterminable
	// state as not active.
	APILayerActiveState(l *APILayer) ActiveState
}

var _ Platform = (*XDGPlatform)(nil)

// XDGPlatform finds manifests under XDG-style configuration directories.
type XDGPlatform struct {
	roots      SearchRoots
	logger     *log.Logger
	now        func() time.Time
	simplifier PathSimplifier
}

// Option configures an XDGPlatform.
type Option func(*XDGPlatform)

// WithLogger sets the logger. The default is log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(p *XDGPlatform) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock sets the clock used to name active runtime backups.
func WithClock(now func() time.Time) Option {
	return func(p *XDGPlatform) {
		if now != nil {
			p.now = now
		}
	}
}

// NewXDGPlatform returns a platform searching roots.
func NewXDGPlatform(roots SearchRoots, opts ...Option) *XDGPlatform {
	p := &XDGPlatform{
		roots:      roots,
		logger:     log.Default(),
		now:        time.Now,
		simplifier: NewPathSimplifier(roots),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPlatform returns a platform searching the XDG directories from the
// environment.
func NewPlatform(opts ...Option) *XDGPlatform {
	return NewXDGPlatform(DefaultSearchRoots(), opts...)
}

// Roots returns the search roots.
func (p *XDGPlatform) Roots() SearchRoots {
	return p.roots
}

// Simplifier returns the path simplifier used for descriptions.
func (p *XDGPlatform) Simplifier() PathSimplifier {
	return p.simplifier
}

// MarkerPath is the active_runtime.json that MakeActive replaces, or "" when
// no config home is known.
func (p *XDGPlatform) MarkerPath() string {
	dir := p.roots.MarkerDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ActiveRuntimeFilename)
}

// FindAvailableRuntimes discovers runtime manifests under the search roots,
// the active markers and extraPaths. Unloadable manifests are returned as
// ManifestErrors rather than failing the scan.
func (p *XDGPlatform) FindAvailableRuntimes(extraPaths iter.Seq[string]) ([]*Runtime, []ManifestError, error) {
	if p.roots.IsEmpty() {
		return nil, nil, ErrNoSearchRoots
	}
	runtimes, errs := discover(p.logger, p.runtimeCandidates(extraPaths), func(orig, canonical string) (*Runtime, error) {
		r, err := NewRuntime(orig, canonical)
		if err != nil {
			return nil, err
		}
		r.platform = p
		r.simplifier = p.simplifier
		return r, nil
	})
	return runtimes, errs, nil
}

// FindAvailableAPILayers discovers implicit API layers, enabled or disabled,
// plus extraPaths.
func (p *XDGPlatform) FindAvailableAPILayers(extraPaths iter.Seq[string]) ([]*APILayer, []ManifestError, error) {
	if p.roots.IsEmpty() {
		return nil, nil, ErrNoSearchRoots
	}
	layers, errs := discover(p.logger, p.apiLayerCandidates(extraPaths), func(orig, canonical string) (*APILayer, error) {
		l, err := NewAPILayer(orig, canonical)
		if err != nil {
			return nil, err
		}
		l.simplifier = p.simplifier
		return l, nil
	})
	return layers, errs, nil
}

// ActiveRuntimeManifests returns the canonical manifest path of the active
// runtime, or nothing when no marker exists.
func (p *XDGPlatform) ActiveRuntimeManifests() []string {
	return p.ActiveRuntimeData().Manifests()
}

// ActiveAPILayerManifests returns the enabled implicit API layers.
func (p *XDGPlatform) ActiveAPILayerManifests() []string {
	return p.activeImplicitLayers()
}

// ActiveRuntimeData takes the first existing active marker as the active
// runtime.
func (p *XDGPlatform) ActiveRuntimeData() ActiveRuntimeData {
	possible := p.possibleActiveRuntimes()
	if len(possible) == 0 {
		return ActiveRuntimeData{}
	}
	return NewActiveRuntimeData(possible[0])
}

// RuntimeActiveState reports whether r is the runtime recorded in data.
func (p *XDGPlatform) RuntimeActiveState(r *Runtime, data ActiveRuntimeData) ActiveState {
	return data.Check(r)
}

// APILayerActiveState reports whether l is enabled. A layer whose state
// cannot be determined counts as not active.
func (p *XDGPlatform) APILayerActiveState(l *APILayer) ActiveState {
	state, err := l.IsActive()
	if err != nil {
		p.logger.Debug("api layer state unknown", "layer", l.Name(), "err", err)
		return NotActive
	}
	return state
}
