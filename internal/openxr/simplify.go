package openxr

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

type prefixLabel struct {
	prefix string
	label  string
}

// PathSimplifier shortens well-known path prefixes for display. The zero
// value returns paths unchanged.
type PathSimplifier struct {
	prefixes []prefixLabel
}

// NewPathSimplifier replaces roots.ConfigHome with "$XDG_CONFIG_HOME" and the
// user's home directory with "~". The longest matching prefix wins.
func NewPathSimplifier(roots SearchRoots) PathSimplifier {
	var s PathSimplifier
	if roots.ConfigHome != "" {
		s.prefixes = append(s.prefixes, prefixLabel{filepath.Clean(roots.ConfigHome), "$XDG_CONFIG_HOME"})
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" && home != "/" {
		s.prefixes = append(s.prefixes, prefixLabel{filepath.Clean(home), "~"})
	}
	slices.SortFunc(s.prefixes, func(a, b prefixLabel) int {
		return len(b.prefix) - len(a.prefix)
	})
	return s
}

// Simplify returns path with the first matching prefix replaced by its label.
func (s PathSimplifier) Simplify(path string) string {
	for _, p := range s.prefixes {
		if path == p.prefix {
			return p.label
		}
		if rest, ok := strings.CutPrefix(path, p.prefix+string(filepath.Separator)); ok {
			return p.label + string(filepath.Separator) + rest
		}
	}
	return path
}
