package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedMajorVersion is the only file_format_version major number the
// loader accepts.
const SupportedMajorVersion = 1

// ParseFileFormatVersion parses a dotted major.minor[.patch] version. A
// leading "v" and missing minor/patch components are tolerated.
func ParseFileFormatVersion(version string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing file_format_version %q: %w", version, err)
	}
	return v, nil
}

// IsFileFormatVersionOK reports whether version parses and has the supported
// major number.
func IsFileFormatVersionOK(version string) bool {
	v, err := ParseFileFormatVersion(version)
	if err != nil {
		return false
	}
	return v.Major() == SupportedMajorVersion
}

// checkFileFormatVersion classifies a version string: unparsable versions are
// malformed, parsable ones with the wrong major are a version mismatch.
func checkFileFormatVersion(path, version string) error {
	v, err := ParseFileFormatVersion(version)
	if err != nil {
		return &LoadError{Path: path, Kind: ErrMalformed, Err: err}
	}
	if v.Major() != SupportedMajorVersion {
		return &LoadError{
			Path: path,
			Kind: ErrVersionMismatch,
			Err:  fmt.Errorf("got %s, need major version %d", version, SupportedMajorVersion),
		}
	}
	return nil
}
