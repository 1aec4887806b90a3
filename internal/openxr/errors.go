package openxr

import "errors"

var (
	// ErrNoSearchRoots is returned by discovery when neither a user config
	// root nor a system configuration directory is known.
	ErrNoSearchRoots = errors.New("no OpenXR search roots configured")

	// ErrSetActive wraps failures to establish or write the active runtime marker.
	ErrSetActive = errors.New("could not set active runtime")

	// ErrActiveStateUnknown is returned when an entity's on-disk form does not
	// say whether it is active, e.g. a layer manifest without an extension.
	ErrActiveStateUnknown = errors.New("could not determine active state")
)

// ManifestError pairs a manifest path with the reason it could not be used.
// Discovery collects these instead of aborting the scan.
type ManifestError struct {
	Path string
	Err  error
}

func (e ManifestError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e ManifestError) Unwrap() error {
	return e.Err
}
