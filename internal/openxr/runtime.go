package openxr

import (
	"fmt"

	"github.com/xrpicker/xrpicker/internal/manifest"
)

// Runtime is an OpenXR runtime backed by one manifest.
type Runtime struct {
	entity
	runtime  *manifest.RuntimeManifest
	platform *XDGPlatform
}

// NewRuntime loads the runtime manifest at canonicalPath. origPath is where it
// was found. The result cannot be made active; use a Platform to discover
// runtimes that can.
func NewRuntime(origPath, canonicalPath string) (*Runtime, error) {
	m, err := manifest.LoadRuntime(canonicalPath)
	if err != nil {
		return nil, err
	}
	return &Runtime{
		entity: entity{
			origPath:     origPath,
			manifestPath: canonicalPath,
			manifest:     m,
		},
		runtime: m,
	}, nil
}

// Manifest returns the parsed manifest.
func (r *Runtime) Manifest() *manifest.RuntimeManifest {
	return r.runtime
}

// MakeActive points the user's active_runtime.json at this runtime.
func (r *Runtime) MakeActive() error {
	if r.platform == nil {
		return fmt.Errorf("%w: runtime %q was not discovered through a platform", ErrSetActive, r.Name())
	}
	return r.platform.activate(r)
}
