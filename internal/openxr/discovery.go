package openxr

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/xrpicker/xrpicker/internal/manifest"
	"github.com/xrpicker/xrpicker/internal/platform"
)

// listManifestDir returns the files and symlinks in dir, sorted by name.
// A missing or unreadable directory yields nothing.
func listManifestDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, entry := range entries {
		if !platform.IsFileOrSymlink(entry) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths
}

// runtimeCandidates yields runtime manifest candidates in precedence order:
// every search directory, then the active markers' targets, then extra.
func (p *XDGPlatform) runtimeCandidates(extra iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, dir := range p.roots.Dirs(PathSuffix) {
			for _, path := range listManifestDir(dir) {
				if filepath.Base(path) == ActiveRuntimeFilename {
					continue
				}
				if !yield(path) {
					return
				}
			}
		}
		for _, path := range p.possibleActiveRuntimes() {
			if !yield(path) {
				return
			}
		}
		yieldAll(p.extrasOfKind(extra, manifest.KindRuntime), yield)
	}
}

// apiLayerCandidates yields implicit API layer candidates in precedence
// order, enabled or not, then extra.
func (p *XDGPlatform) apiLayerCandidates(extra iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, dir := range p.roots.Dirs(ImplicitLayerSuffix) {
			for _, path := range listManifestDir(dir) {
				if !yield(path) {
					return
				}
			}
		}
		yieldAll(p.extrasOfKind(extra, manifest.KindAPILayer), yield)
	}
}

// extrasOfKind drops extra paths that hold a manifest of another kind. Extra
// paths are shared by runtime and API layer discovery, so a runtime added by
// hand must not resurface as a malformed layer. Files that cannot be read or
// whose kind is unclear pass through and fail in the loader.
func (p *XDGPlatform) extrasOfKind(extra iter.Seq[string], kind manifest.Kind) iter.Seq[string] {
	if extra == nil {
		return nil
	}
	return func(yield func(string) bool) {
		for path := range extra {
			if data, err := os.ReadFile(path); err == nil {
				if declared, ok := manifest.DetectKind(data); ok && declared != kind {
					p.logger.Debug("skipping extra path of another kind", "path", path, "kind", declared)
					continue
				}
			}
			if !yield(path) {
				return
			}
		}
	}
}

func yieldAll(seq iter.Seq[string], yield func(string) bool) {
	if seq == nil {
		return
	}
	for path := range seq {
		if !yield(path) {
			return
		}
	}
}

// discover runs the shared dedup loop. A candidate is skipped when it cannot
// be canonicalized, or when its original or canonical path belongs to an
// entity that was already accepted. Load failures are collected, logged, and
// do not mark the path as known.
func discover[T any](logger *log.Logger, candidates iter.Seq[string], load func(orig, canonical string) (T, error)) ([]T, []ManifestError) {
	known := make(map[string]struct{})
	var (
		found []T
		errs  []ManifestError
	)
	for orig := range candidates {
		canonical, err := platform.Canonicalize(orig)
		if err != nil {
			logger.Debug("skipping unresolvable manifest path", "path", orig, "err", err)
			continue
		}
		if _, ok := known[orig]; ok {
			continue
		}
		if _, ok := known[canonical]; ok {
			continue
		}

		item, err := load(orig, canonical)
		if err != nil {
			logger.Warn("failed to load manifest", "path", orig, "canonical", canonical, "err", err)
			errs = append(errs, ManifestError{Path: orig, Err: err})
			continue
		}
		found = append(found, item)
		known[orig] = struct{}{}
		known[canonical] = struct{}{}
	}
	return found, errs
}
