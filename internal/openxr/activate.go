package openxr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xrpicker/xrpicker/internal/platform"
)

// backupName is the name an existing marker is moved to before a new one is
// written. n > 0 disambiguates backups taken within the same second.
func backupName(unix int64, n int) string {
	if n == 0 {
		return fmt.Sprintf("old_active_runtime%d.json", unix)
	}
	return fmt.Sprintf("old_active_runtime%d-%d.json", unix, n)
}

// freeBackupPath returns the first backup path in dir that does not exist, so
// a rename never replaces an earlier backup.
func freeBackupPath(dir string, unix int64) string {
	for n := 0; ; n++ {
		path := filepath.Join(dir, backupName(unix, n))
		if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
			return path
		}
	}
}

// activate replaces the user's active_runtime.json with a symlink to r's
// canonical manifest. The previous marker is kept as a timestamped backup
// unless it was itself a symlink.
func (p *XDGPlatform) activate(r *Runtime) error {
	dir := p.roots.MarkerDir()
	if dir == "" {
		return fmt.Errorf("%w: no user config directory", ErrSetActive)
	}
	if err := os.MkdirAll(dir, platform.DirPerm); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrSetActive, dir, err)
	}

	marker := filepath.Join(dir, ActiveRuntimeFilename)
	backup := freeBackupPath(dir, p.now().Unix())

	if err := os.Rename(marker, backup); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug("no existing active runtime to back up", "path", marker)
		} else {
			p.logger.Warn("could not back up active runtime", "path", marker, "err", err)
		}
	} else if platform.IsSymlink(backup) {
		if err := os.Remove(backup); err != nil {
			p.logger.Warn("could not remove backed up symlink", "path", backup, "err", err)
		}
	}

	if err := platform.CreateSymlink(r.ManifestPath(), marker); err != nil {
		return fmt.Errorf("%w: %w", ErrSetActive, err)
	}
	p.logger.Info("active runtime set", "runtime", r.Name(), "manifest", r.ManifestPath())
	return nil
}
