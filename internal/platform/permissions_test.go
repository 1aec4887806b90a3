package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "state.yaml")
	if err := os.WriteFile(path, []byte("extra_paths: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, PrivateFilePerm); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != PrivateFilePerm {
			t.Errorf("permissions = %o, want %o", perm, PrivateFilePerm)
		}
	}
}
