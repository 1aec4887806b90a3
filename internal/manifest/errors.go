package manifest

import (
	"errors"
	"fmt"
)

// Error kinds returned by the loader. Every loader failure is a *LoadError
// whose Kind is one of these, so callers can use errors.Is.
var (
	ErrRead            = errors.New("cannot read manifest")
	ErrMalformed       = errors.New("malformed manifest")
	ErrVersionMismatch = errors.New("unsupported manifest file_format_version")
)

// LoadError describes why a manifest could not be loaded.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the underlying cause, so errors.Is works
// on the kind and errors.As reaches e.g. the *fs.PathError of a read failure.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
