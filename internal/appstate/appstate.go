package appstate

import (
	"iter"
	"slices"
	"strings"

	"github.com/xrpicker/xrpicker/internal/openxr"
)

// AppState is one view of the machine: the runtimes and API layers found,
// what went wrong loading the rest, and which runtime was active at the time.
type AppState struct {
	Runtimes          []*openxr.Runtime
	APILayers         []*openxr.APILayer
	RuntimeErrors     []openxr.ManifestError
	APILayerErrors    []openxr.ManifestError
	ActiveRuntimeData openxr.ActiveRuntimeData
}

// New scans p with no extra paths.
func New(p openxr.Platform) (*AppState, error) {
	return NewWithPersistentState(p, nil)
}

// NewWithPersistentState scans p including the extra paths in state, which
// may be nil.
func NewWithPersistentState(p openxr.Platform, state *PersistentState) (*AppState, error) {
	s := &AppState{}
	if err := s.scan(p, state, false); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh rescans p. Runtimes already listed keep their position and new
// ones are appended, so a user's selection does not jump around; two runtimes
// are the same when they are backed by the same manifests. API layers, the
// error lists, and the active runtime snapshot are replaced. On error s is
// left unchanged.
func (s *AppState) Refresh(p openxr.Platform, state *PersistentState) error {
	return s.scan(p, state, true)
}

func (s *AppState) scan(p openxr.Platform, state *PersistentState, keep bool) error {
	runtimes, runtimeErrs, err := p.FindAvailableRuntimes(state.ExtraPaths())
	if err != nil {
		return err
	}
	active := p.ActiveRuntimeData()
	layers, layerErrs, err := p.FindAvailableAPILayers(state.ExtraPaths())
	if err != nil {
		return err
	}

	if keep {
		runtimes = uniqueByManifests(slices.Concat(s.Runtimes, runtimes))
	}
	s.Runtimes = runtimes
	s.APILayers = layers
	s.RuntimeErrors = runtimeErrs
	s.APILayerErrors = layerErrs
	s.ActiveRuntimeData = active
	return nil
}

// uniqueByManifests keeps the first runtime for each manifest list.
func uniqueByManifests(runtimes []*openxr.Runtime) []*openxr.Runtime {
	seen := make(map[string]struct{}, len(runtimes))
	out := make([]*openxr.Runtime, 0, len(runtimes))
	for _, r := range runtimes {
		key := strings.Join(r.Manifests(), "\x00")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// ActiveRuntime returns the runtime matching the active snapshot, if listed.
func (s *AppState) ActiveRuntime() *openxr.Runtime {
	for _, r := range s.Runtimes {
		if s.ActiveRuntimeData.Check(r).IsActive() {
			return r
		}
	}
	return nil
}

// Errors yields the runtime errors followed by the API layer errors.
func (s *AppState) Errors() iter.Seq[openxr.ManifestError] {
	return func(yield func(openxr.ManifestError) bool) {
		for _, e := range slices.Concat(s.RuntimeErrors, s.APILayerErrors) {
			if !yield(e) {
				return
			}
		}
	}
}
