package openxr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xrpicker/xrpicker/internal/manifest"
	"github.com/xrpicker/xrpicker/internal/platform"
)

// APILayer is an implicit OpenXR API layer backed by one manifest. A layer is
// enabled while its file ends in ManifestExtension and disabled while it ends
// in DisabledExtension.
type APILayer struct {
	entity
	layer *manifest.APILayerManifest
}

// NewAPILayer loads the API layer manifest at canonicalPath. origPath is
// where it was found, and is the file renamed on toggle.
func NewAPILayer(origPath, canonicalPath string) (*APILayer, error) {
	m, err := manifest.LoadAPILayer(canonicalPath)
	if err != nil {
		return nil, err
	}
	return &APILayer{
		entity: entity{
			origPath:     origPath,
			manifestPath: canonicalPath,
			manifest:     m,
		},
		layer: m,
	}, nil
}

// Manifest returns the parsed manifest.
func (l *APILayer) Manifest() *manifest.APILayerManifest {
	return l.layer
}

// IsActive reports the layer's state from the extension of its original path.
func (l *APILayer) IsActive() (ActiveState, error) {
	switch filepath.Ext(l.origPath) {
	case "":
		return NotActive, fmt.Errorf("%w: api layer %q at %s has no file extension",
			ErrActiveStateUnknown, l.Name(), l.origPath)
	case DisabledExtension:
		return NotActive, nil
	default:
		return ActiveIndependentAPILayer, nil
	}
}

// ToggleLayer renames the layer's file between its enabled and disabled
// names and updates the recorded paths to match.
func (l *APILayer) ToggleLayer() error {
	state, err := l.IsActive()
	if err != nil {
		return err
	}
	newExt := DisabledExtension
	if !state.IsActive() {
		newExt = ManifestExtension
	}
	newPath := strings.TrimSuffix(l.origPath, filepath.Ext(l.origPath)) + newExt

	if err := os.Rename(l.origPath, newPath); err != nil {
		return fmt.Errorf("renaming api layer %q: %w", l.Name(), err)
	}

	if canonical, err := platform.Canonicalize(newPath); err == nil {
		l.manifestPath = canonical
	} else if l.manifestPath == l.origPath {
		l.manifestPath = newPath
	}
	l.origPath = newPath
	return nil
}

// Enable toggles the layer on if it is off.
func (l *APILayer) Enable() error {
	return l.setActive(true)
}

// Disable toggles the layer off if it is on.
func (l *APILayer) Disable() error {
	return l.setActive(false)
}

func (l *APILayer) setActive(want bool) error {
	state, err := l.IsActive()
	if err != nil {
		return err
	}
	if state.IsActive() == want {
		return nil
	}
	return l.ToggleLayer()
}
