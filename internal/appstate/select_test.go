package appstate

import (
	"errors"
	"testing"

	"github.com/xrpicker/xrpicker/internal/openxr"
)

func TestFindRuntime(t *testing.T) {
	dir := t.TempDir()
	a, b := newRuntime(t, dir, "Alpha"), newRuntime(t, dir, "Beta")
	s := &AppState{Runtimes: []*openxr.Runtime{a, b}}

	tests := []struct {
		selector string
		want     *openxr.Runtime
		err      error
	}{
		{"1", a, nil},
		{"2", b, nil},
		{"0", nil, ErrNotFound},
		{"3", nil, ErrNotFound},
		{"Beta", b, nil},
		{a.ManifestPath(), a, nil},
		{"Gamma", nil, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, err := s.FindRuntime(tt.selector)
			if !errors.Is(err, tt.err) {
				t.Fatalf("FindRuntime(%q) error = %v, want %v", tt.selector, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("FindRuntime(%q) = %v, want %v", tt.selector, got, tt.want)
			}
		})
	}
}

func TestFindRuntime_Ambiguous(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	s := &AppState{Runtimes: []*openxr.Runtime{newRuntime(t, first, "Same"), newRuntime(t, second, "Same")}}
	if _, err := s.FindRuntime("Same"); !errors.Is(err, ErrAmbiguous) {
		t.Errorf("FindRuntime error = %v, want ErrAmbiguous", err)
	}
}

func TestFindAPILayer_Empty(t *testing.T) {
	s := &AppState{}
	if _, err := s.FindAPILayer("1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindAPILayer error = %v, want ErrNotFound", err)
	}
}
