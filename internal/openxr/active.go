package openxr

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/xrpicker/xrpicker/internal/platform"
)

// ActiveState says whether, and how, a runtime or API layer is active.
type ActiveState int

const (
	NotActive ActiveState = iota
	ActiveIndependentRuntime
	ActiveIndependentAPILayer
)

func (s ActiveState) String() string {
	switch s {
	case NotActive:
		return "not active"
	case ActiveIndependentRuntime:
		return "active runtime"
	case ActiveIndependentAPILayer:
		return "active api layer"
	default:
		return "unknown"
	}
}

// IsActive reports whether s is any active state.
func (s ActiveState) IsActive() bool {
	return s != NotActive
}

// ActiveRuntimeData is a snapshot of which runtime manifest is active,
// taken once per discovery pass.
type ActiveRuntimeData struct {
	manifests []string
}

// NewActiveRuntimeData builds a snapshot naming the given canonical
// manifest paths as active.
func NewActiveRuntimeData(manifests ...string) ActiveRuntimeData {
	return ActiveRuntimeData{manifests: slices.Clone(manifests)}
}

// Manifests returns the active canonical manifest paths.
func (d ActiveRuntimeData) Manifests() []string {
	return slices.Clone(d.manifests)
}

// Check compares r's canonical manifest path against the snapshot.
func (d ActiveRuntimeData) Check(r *Runtime) ActiveState {
	return d.CheckManifest(r.ManifestPath())
}

// CheckManifest compares a canonical manifest path against the snapshot.
func (d ActiveRuntimeData) CheckManifest(manifestPath string) ActiveState {
	if slices.Contains(d.manifests, manifestPath) {
		return ActiveIndependentRuntime
	}
	return NotActive
}

// possibleActiveRuntimes returns the canonical target of every
// active_runtime.json that exists, most important first.
func (p *XDGPlatform) possibleActiveRuntimes() []string {
	var found []string
	for _, dir := range p.roots.Dirs(PathSuffix) {
		marker := filepath.Join(dir, ActiveRuntimeFilename)
		info, err := os.Stat(marker)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		canonical, err := platform.Canonicalize(marker)
		if err != nil {
			continue
		}
		found = append(found, canonical)
	}
	return found
}

// activeImplicitLayers returns the canonical paths of enabled implicit API
// layer manifests in precedence order, without duplicates.
func (p *XDGPlatform) activeImplicitLayers() []string {
	seen := make(map[string]struct{})
	var found []string
	for _, dir := range p.roots.Dirs(ImplicitLayerSuffix) {
		for _, path := range listManifestDir(dir) {
			ext := filepath.Ext(path)
			if ext == "" || ext == DisabledExtension {
				continue
			}
			canonical, err := platform.Canonicalize(path)
			if err != nil {
				continue
			}
			if _, ok := seen[canonical]; ok {
				continue
			}
			seen[canonical] = struct{}{}
			found = append(found, canonical)
		}
	}
	return found
}
