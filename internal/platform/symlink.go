package platform

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// CreateSymlink creates a symbolic link at link pointing to target.
// On Unix systems this is os.Symlink. On Windows a failed symlink falls back
// to copying the target file into place.
func CreateSymlink(target, link string) error {
	err := os.Symlink(target, link)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}
	if copyErr := copyFile(target, link); copyErr != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", copyErr)
	}
	return nil
}

// IsSymlink reports whether path itself is a symbolic link. The link is not
// followed, so a dangling symlink still reports true.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}

// ReadSymlinkTarget returns the target of a symlink exactly as stored.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("reading symlink %s: %w", path, err)
	}
	return target, nil
}

// IsDangling reports whether path is a symlink whose target does not exist.
func IsDangling(path string) bool {
	if !IsSymlink(path) {
		return false
	}
	_, err := os.Stat(path)
	return err != nil
}

// Canonicalize returns the absolute form of path with every symlink resolved.
// It fails when the path, or any link along the way, does not exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// IsFileOrSymlink reports whether a directory entry is a regular file or a
// symlink. Directories and special files are rejected.
func IsFileOrSymlink(entry fs.DirEntry) bool {
	t := entry.Type()
	return t.IsRegular() || t&fs.ModeSymlink != 0
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
