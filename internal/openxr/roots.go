package openxr

import (
	"path/filepath"
	"slices"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/xrpicker/xrpicker/internal/manifest"
)

const (
	// OpenXRDir is the directory under every search root holding OpenXR files.
	OpenXRDir = "openxr"
	// ActiveRuntimeFilename is the marker naming the active runtime.
	ActiveRuntimeFilename = "active_runtime.json"
	// ManifestExtension is the extension of an enabled manifest.
	ManifestExtension = ".json"
	// DisabledExtension replaces ManifestExtension on a disabled API layer.
	DisabledExtension = ".disabled"
	// DefaultSysConfDir is the system-wide configuration directory.
	DefaultSysConfDir = "/etc"
)

var (
	// PathSuffix is the versioned directory probed under each root, e.g. "openxr/1".
	PathSuffix = filepath.Join(OpenXRDir, strconv.Itoa(manifest.SupportedMajorVersion))
	// ImplicitLayerSuffix holds implicit API layer manifests.
	ImplicitLayerSuffix = filepath.Join(PathSuffix, "api_layers", "implicit.d")
)

// SearchRoots is the ordered set of directories probed for manifests.
type SearchRoots struct {
	// ConfigHome is the most specific user config directory ($XDG_CONFIG_HOME).
	// The active runtime marker is written here.
	ConfigHome string
	// ConfigDirs are the additional config directories, most important first.
	ConfigDirs []string
	// SysConfDir is the system-wide configuration directory, normally /etc.
	SysConfDir string
}

// DefaultSearchRoots reads the XDG base directories from the environment.
func DefaultSearchRoots() SearchRoots {
	xdg.Reload()
	return SearchRoots{
		ConfigHome: xdg.ConfigHome,
		ConfigDirs: slices.Clone(xdg.ConfigDirs),
		SysConfDir: DefaultSysConfDir,
	}
}

// UserConfigRoots returns ConfigHome followed by ConfigDirs, skipping empty
// entries, in descending precedence.
func (r SearchRoots) UserConfigRoots() []string {
	roots := make([]string, 0, 1+len(r.ConfigDirs))
	if r.ConfigHome != "" {
		roots = append(roots, r.ConfigHome)
	}
	for _, d := range r.ConfigDirs {
		if d != "" {
			roots = append(roots, d)
		}
	}
	return roots
}

// Dirs joins suffix onto every root: user config roots first, the system
// configuration directory last.
func (r SearchRoots) Dirs(suffix string) []string {
	var dirs []string
	for _, root := range r.UserConfigRoots() {
		dirs = append(dirs, filepath.Join(root, suffix))
	}
	if r.SysConfDir != "" {
		dirs = append(dirs, filepath.Join(r.SysConfDir, suffix))
	}
	return dirs
}

// IsEmpty reports whether no root at all is configured.
func (r SearchRoots) IsEmpty() bool {
	return len(r.UserConfigRoots()) == 0 && r.SysConfDir == ""
}

// MarkerDir is the directory make-active writes the marker into.
func (r SearchRoots) MarkerDir() string {
	if r.ConfigHome == "" {
		return ""
	}
	return filepath.Join(r.ConfigHome, PathSuffix)
}
