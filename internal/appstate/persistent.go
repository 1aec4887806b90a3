package appstate

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"go.yaml.in/yaml/v3"

	"github.com/xrpicker/xrpicker/internal/branding"
	"github.com/xrpicker/xrpicker/internal/platform"
)

// StateFile is the persistent state file name.
const StateFile = "state.yaml"

// PersistentState is what survives between runs: manifest paths the user
// added by hand, in the order added, without duplicates.
type PersistentState struct {
	Paths []string `yaml:"extra_paths"`
}

// AppendNewExtraPaths adds paths not already present, keeping order.
func (s *PersistentState) AppendNewExtraPaths(paths ...string) {
	for _, p := range paths {
		if p == "" || slices.Contains(s.Paths, p) {
			continue
		}
		s.Paths = append(s.Paths, p)
	}
}

// RemoveExtraPath removes path and reports whether it was present.
func (s *PersistentState) RemoveExtraPath(path string) bool {
	i := slices.Index(s.Paths, path)
	if i < 0 {
		return false
	}
	s.Paths = slices.Delete(s.Paths, i, i+1)
	return true
}

// ExtraPaths yields the extra paths. A nil state yields nothing.
func (s *PersistentState) ExtraPaths() iter.Seq[string] {
	if s == nil {
		return func(func(string) bool) {}
	}
	return slices.Values(slices.Clone(s.Paths))
}

// DefaultStatePath returns $XDG_STATE_HOME/xrpicker/state.yaml.
func DefaultStatePath() string {
	return filepath.Join(xdg.StateHome, branding.ConfigDir(), StateFile)
}

// LoadPersistentState reads the state file. A missing file is an empty state.
func LoadPersistentState(path string) (*PersistentState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &PersistentState{}, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var s PersistentState
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", path, err)
	}
	deduped := PersistentState{}
	deduped.AppendNewExtraPaths(s.Paths...)
	return &deduped, nil
}

// Save writes the state file readable only by the user, creating parent
// directories as needed.
func (s *PersistentState) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), platform.DirPerm); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(path, data, platform.PrivateFilePerm); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return platform.Chmod(path, platform.PrivateFilePerm)
}
