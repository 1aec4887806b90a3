// Package platform provides the small set of filesystem primitives the
// discovery and activation code relies on: symlink creation and inspection,
// path canonicalization, and permission changes. On Windows, where symlinks may
// require developer mode, CreateSymlink falls back to copying the target.
package platform
