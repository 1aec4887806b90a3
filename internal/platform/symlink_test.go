package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCreateSymlink(t *testing.T) {
	tmp := t.TempDir()

	targetPath := filepath.Join(tmp, "openxr_monado.json")
	if err := os.WriteFile(targetPath, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(tmp, "active_runtime.json")
	if err := CreateSymlink(targetPath, linkPath); err != nil {
		t.Fatalf("CreateSymlink failed: %v", err)
	}

	data, err := os.ReadFile(linkPath)
	if err != nil {
		t.Fatalf("reading link: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("link content = %q, want %q", string(data), "{}")
	}
}

func TestCreateSymlinkExistingLinkFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("copy fallback overwrites on windows")
	}
	tmp := t.TempDir()
	targetPath := filepath.Join(tmp, "a.json")
	if err := os.WriteFile(targetPath, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	linkPath := filepath.Join(tmp, "link.json")
	if err := CreateSymlink(targetPath, linkPath); err != nil {
		t.Fatal(err)
	}
	if err := CreateSymlink(targetPath, linkPath); err == nil {
		t.Error("expected error creating a symlink over an existing one")
	}
}

func TestIsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on windows")
	}
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "link.json")
	if err := os.Symlink(file, link); err != nil {
		t.Fatal(err)
	}
	dangling := filepath.Join(tmp, "dangling.json")
	if err := os.Symlink(filepath.Join(tmp, "missing.json"), dangling); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		path         string
		wantSymlink  bool
		wantDangling bool
	}{
		{"regular file", file, false, false},
		{"symlink", link, true, false},
		{"dangling symlink", dangling, true, true},
		{"missing", filepath.Join(tmp, "nope"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSymlink(tt.path); got != tt.wantSymlink {
				t.Errorf("IsSymlink = %v, want %v", got, tt.wantSymlink)
			}
			if got := IsDangling(tt.path); got != tt.wantDangling {
				t.Errorf("IsDangling = %v, want %v", got, tt.wantDangling)
			}
		})
	}
}

func TestReadSymlinkTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on windows")
	}
	tmp := t.TempDir()
	linkPath := filepath.Join(tmp, "active_runtime.json")
	if err := os.Symlink("../runtime.json", linkPath); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSymlinkTarget(linkPath)
	if err != nil {
		t.Fatalf("ReadSymlinkTarget failed: %v", err)
	}
	if got != "../runtime.json" {
		t.Errorf("ReadSymlinkTarget = %q, want %q", got, "../runtime.json")
	}
}

func TestCanonicalize(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on windows")
	}
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	real := filepath.Join(tmp, "real.json")
	if err := os.WriteFile(real, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "link.json")
	if err := os.Symlink(real, link); err != nil {
		t.Fatal(err)
	}

	got, err := Canonicalize(link)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if got != real {
		t.Errorf("Canonicalize = %q, want %q", got, real)
	}

	if _, err := Canonicalize(filepath.Join(tmp, "missing.json")); err == nil {
		t.Error("expected error canonicalizing a missing path")
	}
}

func TestIsFileOrSymlink(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "a.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(tmp, "api_layers"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, e := range entries {
		got[e.Name()] = IsFileOrSymlink(e)
	}
	if !got["a.json"] {
		t.Error("a.json should be accepted")
	}
	if got["api_layers"] {
		t.Error("directory should be rejected")
	}
}
