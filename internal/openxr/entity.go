package openxr

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xrpicker/xrpicker/internal/manifest"
	"github.com/xrpicker/xrpicker/internal/platform"
)

// FileIndirectionArrow separates a symlink's path from what it points at in
// descriptions.
const FileIndirectionArrow = " → "

// nameHeuristics map well-known library path fragments to display names for
// runtimes that do not declare one. Checked in order.
var nameHeuristics = []struct {
	fragment string
	name     string
}{
	{"MixedRealityRuntime", "Windows Mixed Reality"},
	{"monado", "Monado"},
	{"VarjoOpenXR", "Varjo"},
}

// entity holds what runtimes and API layers have in common: the path the
// manifest was found at, its canonical path, and the parsed manifest.
type entity struct {
	origPath     string
	manifestPath string
	manifest     manifest.Manifest
	simplifier   PathSimplifier
}

// Name returns the declared name, or a name guessed from the library path,
// or the manifest path itself.
func (e *entity) Name() string {
	if name := e.manifest.DeclaredName(); name != "" {
		return name
	}
	for _, h := range nameHeuristics {
		if strings.Contains(e.manifest.LibraryPath(), h.fragment) {
			return h.name
		}
	}
	return e.manifestPath
}

// OriginalPath is the path the manifest was discovered at.
func (e *entity) OriginalPath() string { return e.origPath }

// ManifestPath is the canonical manifest path.
func (e *entity) ManifestPath() string { return e.manifestPath }

// Manifests returns the canonical manifest paths backing this entity.
func (e *entity) Manifests() []string {
	return []string{e.manifestPath}
}

// Libraries returns the resolved library paths.
func (e *entity) Libraries() []string {
	return []string{e.libraryPath()}
}

// Describe renders the manifest and library paths for humans. When the entity
// was found through a different path (usually a symlink), that path is shown
// first, joined by FileIndirectionArrow.
func (e *entity) Describe() string {
	desc := fmt.Sprintf("Manifest: %s; Library: %s",
		e.simplifier.Simplify(e.manifestPath),
		e.simplifier.Simplify(e.libraryPath()))
	if e.origPath != e.manifestPath {
		return e.simplifier.Simplify(e.origPath) + FileIndirectionArrow + desc
	}
	return desc
}

// libraryPath resolves library_path against the manifest's directory and
// canonicalizes it when the file exists.
func (e *entity) libraryPath() string {
	lib := e.manifest.LibraryPath()
	if !filepath.IsAbs(lib) {
		lib = filepath.Join(filepath.Dir(e.manifestPath), lib)
	}
	if canonical, err := platform.Canonicalize(lib); err == nil {
		return canonical
	}
	return lib
}
