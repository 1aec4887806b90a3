package appstate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/xrpicker/xrpicker/internal/openxr"
)

var (
	// ErrNotFound is returned when a selector matches nothing.
	ErrNotFound = errors.New("no match")
	// ErrAmbiguous is returned when a name matches more than one entry.
	ErrAmbiguous = errors.New("ambiguous selector")
)

type selectable interface {
	Name() string
	OriginalPath() string
	ManifestPath() string
}

// FindRuntime selects a runtime by 1-based index, manifest path, or name.
func (s *AppState) FindRuntime(selector string) (*openxr.Runtime, error) {
	return find(s.Runtimes, "runtime", selector)
}

// FindAPILayer selects an API layer by 1-based index, manifest path, or name.
func (s *AppState) FindAPILayer(selector string) (*openxr.APILayer, error) {
	return find(s.APILayers, "api layer", selector)
}

func find[T selectable](items []T, what, selector string) (T, error) {
	var zero T
	if n, err := strconv.Atoi(selector); err == nil {
		if n < 1 || n > len(items) {
			return zero, fmt.Errorf("%w: %s index %d out of range 1..%d", ErrNotFound, what, n, len(items))
		}
		return items[n-1], nil
	}

	for _, item := range items {
		if item.OriginalPath() == selector || item.ManifestPath() == selector {
			return item, nil
		}
	}

	var matches []T
	for _, item := range items {
		if item.Name() == selector {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return zero, fmt.Errorf("%w: %s %q", ErrNotFound, what, selector)
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("%w: %d %ss named %q, select by index or path", ErrAmbiguous, len(matches), what, selector)
	}
}
