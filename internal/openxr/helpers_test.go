package openxr

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type testEnv struct {
	root  string
	roots SearchRoots
}

// setupTestEnv creates a temporary config home, one config dir, and a fake
// sysconfdir, and points HOME elsewhere so descriptions are predictable.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", filepath.Join(root, "home"))

	env := &testEnv{
		root: root,
		roots: SearchRoots{
			ConfigHome: filepath.Join(root, "config"),
			ConfigDirs: []string{filepath.Join(root, "xdg")},
			SysConfDir: filepath.Join(root, "etc"),
		},
	}
	return env
}

func (e *testEnv) platform(opts ...Option) *XDGPlatform {
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	return NewXDGPlatform(e.roots, opts...)
}

func (e *testEnv) runtimeDir(root string) string {
	return filepath.Join(root, PathSuffix)
}

func (e *testEnv) layerDir(root string) string {
	return filepath.Join(root, ImplicitLayerSuffix)
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeRuntime(t *testing.T, path, name, library string) string {
	t.Helper()
	nameField := ""
	if name != "" {
		nameField = fmt.Sprintf(`, "name": %q`, name)
	}
	return writeFile(t, path, fmt.Sprintf(
		`{"file_format_version": "1.0.0", "runtime": {"library_path": %q%s}}`, library, nameField))
}

func writeLayer(t *testing.T, path, name, library string) string {
	t.Helper()
	return writeFile(t, path, fmt.Sprintf(
		`{"file_format_version": "1.0.0", "api_layer": {"name": %q, "library_path": %q, "api_version": "1.0", "implementation_version": "1"}}`,
		name, library))
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}
}

func fixedClock(unix int64) Option {
	return WithClock(func() time.Time { return time.Unix(unix, 0) })
}

func runtimePaths(runtimes []*Runtime) []string {
	out := make([]string, len(runtimes))
	for i, r := range runtimes {
		out[i] = r.ManifestPath()
	}
	return out
}
