//go:build integration

package integration_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/xrpicker/xrpicker/internal/openxr"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ConfigHome string // XDG_CONFIG_HOME, where active_runtime.json is written
	ConfigDir  string // the single XDG_CONFIG_DIRS entry
	SysConfDir string // stands in for /etc
	StateFile  string // persistent extra paths
	BuildDir   string // a runtime built outside the search roots
}

// setupTestEnv creates isolated temp directories so no test touches the real
// OpenXR configuration.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	env := &testEnv{
		ConfigHome: filepath.Join(root, "config"),
		ConfigDir:  filepath.Join(root, "xdg"),
		SysConfDir: filepath.Join(root, "etc"),
		StateFile:  filepath.Join(root, "state", "state.yaml"),
		BuildDir:   filepath.Join(root, "build"),
	}
	t.Setenv("HOME", filepath.Join(root, "home"))
	return env
}

func (e *testEnv) roots() openxr.SearchRoots {
	return openxr.SearchRoots{
		ConfigHome: e.ConfigHome,
		ConfigDirs: []string{e.ConfigDir},
		SysConfDir: e.SysConfDir,
	}
}

func (e *testEnv) platform() *openxr.XDGPlatform {
	return openxr.NewXDGPlatform(e.roots(), openxr.WithLogger(log.New(io.Discard)))
}

func (e *testEnv) marker() string {
	return filepath.Join(e.ConfigHome, openxr.PathSuffix, openxr.ActiveRuntimeFilename)
}

// writeRuntime writes a runtime manifest plus an empty library in a lib/
// directory beside it.
func writeRuntime(t *testing.T, dir, file, name string) string {
	t.Helper()
	lib := "lib/lib" + file + ".so"
	writeFile(t, filepath.Join(dir, lib), "")
	path := filepath.Join(dir, file+".json")
	writeFile(t, path, fmt.Sprintf(
		`{"file_format_version": "1.0.0", "runtime": {"name": %q, "library_path": "./%s"}}`, name, lib))
	return path
}

func writeLayer(t *testing.T, dir, file, name string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	writeFile(t, path, fmt.Sprintf(
		`{"file_format_version": "1.0.0", "api_layer": {"name": %q, "library_path": "libXrApiLayer_%s.so", "api_version": "1.0", "implementation_version": "1", "description": "integration layer"}}`,
		name, name))
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertSymlinkTo(t *testing.T, link, target string) {
	t.Helper()
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("expected %s to be a symlink: %v", link, err)
	}
	if got != target {
		t.Errorf("symlink %s -> %s, want %s", link, got, target)
	}
}

func names[T interface{ Name() string }](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name()
	}
	return out
}

func symlink(target, link string) error {
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		return err
	}
	return os.Symlink(target, link)
}
