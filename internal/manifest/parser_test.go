package manifest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoadRuntime(t *testing.T) {
	tests := []struct {
		file    string
		name    string
		library string
		version string
	}{
		{"runtime-named.json", "SteamVR", "../lib/vrclient.so", "1.0.0"},
		{"runtime-monado.json", "", "../../lib/libopenxr_monado.so", "1.0.0"},
		{"runtime-short-version.json", "", "/usr/lib/libopenxr_varjo.so", "1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			m, err := LoadRuntime(testPath(tt.file))
			if err != nil {
				t.Fatalf("LoadRuntime(%s) error: %v", tt.file, err)
			}
			if m.DeclaredName() != tt.name {
				t.Errorf("DeclaredName() = %q, want %q", m.DeclaredName(), tt.name)
			}
			if m.LibraryPath() != tt.library {
				t.Errorf("LibraryPath() = %q, want %q", m.LibraryPath(), tt.library)
			}
			if m.FormatVersion() != tt.version {
				t.Errorf("FormatVersion() = %q, want %q", m.FormatVersion(), tt.version)
			}
		})
	}
}

func TestLoadRuntime_Functions(t *testing.T) {
	m, err := LoadRuntime(testPath("runtime-monado.json"))
	if err != nil {
		t.Fatalf("LoadRuntime error: %v", err)
	}
	if len(m.Runtime.Functions) != 1 {
		t.Errorf("Functions len = %d, want 1", len(m.Runtime.Functions))
	}
}

func TestLoadAPILayer(t *testing.T) {
	m, err := LoadAPILayer(testPath("api-layer.json"))
	if err != nil {
		t.Fatalf("LoadAPILayer error: %v", err)
	}
	if m.DeclaredName() != "XR_APILAYER_LUNARG_core_validation" {
		t.Errorf("DeclaredName() = %q, want %q", m.DeclaredName(), "XR_APILAYER_LUNARG_core_validation")
	}
	if m.LibraryPath() != "libXrApiLayer_core_validation.so" {
		t.Errorf("LibraryPath() = %q, want %q", m.LibraryPath(), "libXrApiLayer_core_validation.so")
	}
	if m.APILayer.DisableEnvironment != "DISABLE_XR_APILAYER_LUNARG_core_validation" {
		t.Errorf("DisableEnvironment = %q", m.APILayer.DisableEnvironment)
	}
}

func TestLoadAPILayer_RejectsRuntimeManifest(t *testing.T) {
	_, err := LoadAPILayer(testPath("runtime-named.json"))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("LoadAPILayer(runtime manifest) error = %v, want ErrMalformed", err)
	}
}

func TestLoad_ErrorKinds(t *testing.T) {
	tests := []struct {
		file string
		kind error
	}{
		{"nonexistent.json", ErrRead},
		{"invalid-not-json.json", ErrMalformed},
		{"invalid-missing-library.json", ErrMalformed},
		{"invalid-missing-version.json", ErrMalformed},
		{"invalid-library-type.json", ErrMalformed},
		{"invalid-version-garbage.json", ErrMalformed},
		{"invalid-version-major2.json", ErrVersionMismatch},
		{"invalid-version-major2-new-layout.json", ErrVersionMismatch},
	}

	kinds := []error{ErrRead, ErrMalformed, ErrVersionMismatch}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			m, err := LoadRuntime(testPath(tt.file))
			if err == nil {
				t.Fatalf("expected error, got manifest %+v", m)
			}
			if m != nil {
				t.Errorf("expected nil manifest on error, got %+v", m)
			}
			for _, k := range kinds {
				if got, want := errors.Is(err, k), k == tt.kind; got != want {
					t.Errorf("errors.Is(err, %v) = %v, want %v (err: %v)", k, got, want, err)
				}
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %T", err)
			}
			if loadErr.Path != testPath(tt.file) {
				t.Errorf("LoadError.Path = %q, want %q", loadErr.Path, testPath(tt.file))
			}
		})
	}
}

func TestLoad_ReadErrorCarriesPathError(t *testing.T) {
	_, err := LoadRuntime(testPath("nonexistent.json"))
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected *fs.PathError in chain, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestParseRuntime(t *testing.T) {
	data := []byte(`{"file_format_version": "v1.0.0", "runtime": {"library_path": "libx.so", "name": "X"}}`)
	m, err := ParseRuntime("inline.json", data)
	if err != nil {
		t.Fatalf("ParseRuntime error: %v", err)
	}
	if m.DeclaredName() != "X" {
		t.Errorf("DeclaredName() = %q, want %q", m.DeclaredName(), "X")
	}
}

func TestParseAPILayer_VersionMismatch(t *testing.T) {
	data := []byte(`{"file_format_version": "0.9", "api_layer": {"library_path": "libx.so"}}`)
	_, err := ParseAPILayer("inline.json", data)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("ParseAPILayer error = %v, want ErrVersionMismatch", err)
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		want   Kind
		wantOK bool
	}{
		{"runtime", `{"file_format_version": "1.0.0", "runtime": {}}`, KindRuntime, true},
		{"api layer", `{"file_format_version": "1.0.0", "api_layer": {}}`, KindAPILayer, true},
		{"both", `{"runtime": {}, "api_layer": {}}`, "", false},
		{"neither", `{"file_format_version": "1.0.0"}`, "", false},
		{"not an object", `[1, 2]`, "", false},
		{"not json", `{`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectKind([]byte(tt.data))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DetectKind(%s) = (%q, %v), want (%q, %v)", tt.data, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
