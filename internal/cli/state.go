package cli

import (
	"fmt"

	"github.com/xrpicker/xrpicker/internal/appstate"
	"github.com/xrpicker/xrpicker/internal/config"
	"github.com/xrpicker/xrpicker/internal/openxr"
)

// searchRoots returns the XDG search roots with the sysconfdir override
// applied.
func searchRoots() openxr.SearchRoots {
	roots := openxr.DefaultSearchRoots()
	if dir := config.SysConfDir(); dir != "" {
		roots.SysConfDir = dir
	}
	return roots
}

func newPlatform() *openxr.XDGPlatform {
	return openxr.NewXDGPlatform(searchRoots(), openxr.WithLogger(logger))
}

func statePath() string {
	if p := config.StateFile(); p != "" {
		return p
	}
	return appstate.DefaultStatePath()
}

func loadPersistentState() (*appstate.PersistentState, error) {
	state, err := appstate.LoadPersistentState(statePath())
	if err != nil {
		return nil, fmt.Errorf("loading persistent state: %w", err)
	}
	return state, nil
}

// loadAppState scans the machine including the user's extra paths.
func loadAppState() (*openxr.XDGPlatform, *appstate.PersistentState, *appstate.AppState, error) {
	state, err := loadPersistentState()
	if err != nil {
		return nil, nil, nil, err
	}
	p := newPlatform()
	app, err := appstate.NewWithPersistentState(p, state)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("discovering runtimes: %w", err)
	}
	return p, state, app, nil
}
