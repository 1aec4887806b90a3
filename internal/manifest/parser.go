package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// LoadRuntime reads and parses a runtime manifest.
func LoadRuntime(path string) (*RuntimeManifest, error) {
	var m RuntimeManifest
	if err := load(path, KindRuntime, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadAPILayer reads and parses an API layer manifest.
func LoadAPILayer(path string) (*APILayerManifest, error) {
	var m APILayerManifest
	if err := load(path, KindAPILayer, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseRuntime parses runtime manifest bytes; path is only used in errors.
func ParseRuntime(path string, data []byte) (*RuntimeManifest, error) {
	var m RuntimeManifest
	if err := decode(path, KindRuntime, data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseAPILayer parses API layer manifest bytes; path is only used in errors.
func ParseAPILayer(path string, data []byte) (*APILayerManifest, error) {
	var m APILayerManifest
	if err := decode(path, KindAPILayer, data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DetectKind reports which manifest body data declares. ok is false when data
// is not a JSON object or declares neither or both bodies.
func DetectKind(data []byte) (kind Kind, ok bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", false
	}
	_, isRuntime := obj[string(KindRuntime)]
	_, isLayer := obj[string(KindAPILayer)]
	switch {
	case isRuntime && !isLayer:
		return KindRuntime, true
	case isLayer && !isRuntime:
		return KindAPILayer, true
	}
	return "", false
}

func load(path string, kind Kind, out any) error {
	data, err := readFile(path)
	if err != nil {
		return &LoadError{Path: path, Kind: ErrRead, Err: err}
	}
	return decode(path, kind, data, out)
}

// decode checks the version before the schema so a manifest from a future
// major version is reported as a mismatch even if its layout changed.
func decode(path string, kind Kind, data []byte, out any) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &LoadError{Path: path, Kind: ErrMalformed, Err: err}
	}

	version, err := fileFormatVersion(inst)
	if err != nil {
		return &LoadError{Path: path, Kind: ErrMalformed, Err: err}
	}
	if err := checkFileFormatVersion(path, version); err != nil {
		return err
	}

	result, err := validateInstance(kind, inst)
	if err != nil {
		return &LoadError{Path: path, Kind: ErrMalformed, Err: err}
	}
	if !result.Valid {
		return &LoadError{Path: path, Kind: ErrMalformed, Err: result.Err()}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &LoadError{Path: path, Kind: ErrMalformed, Err: err}
	}
	return nil
}

func fileFormatVersion(inst any) (string, error) {
	obj, ok := inst.(map[string]any)
	if !ok {
		return "", fmt.Errorf("manifest is not a JSON object")
	}
	raw, ok := obj["file_format_version"]
	if !ok {
		return "", fmt.Errorf("manifest missing required 'file_format_version' field")
	}
	version, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("manifest 'file_format_version' field is not a string")
	}
	return version, nil
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
