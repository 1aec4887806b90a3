// Package openxr discovers OpenXR runtimes and API layers from their JSON
// manifests and switches which ones are active.
//
// Discovery walks a fixed set of search roots (the XDG config home, the XDG
// config dirs, then the system configuration directory) plus caller-supplied
// extra paths. Every candidate is canonicalized; a candidate whose original
// or canonical path was already accepted is skipped, so the first source in
// precedence order wins. Manifests that fail to load are returned as
// ManifestError values next to the entities that did load.
//
// File organization:
//   - roots.go: SearchRoots and the OpenXR path suffixes
//   - entity.go, runtime.go, apilayer.go: entity wrappers around manifests
//   - discovery.go: candidate enumeration and the dedup loop
//   - active.go: the active-state resolver and ActiveRuntimeData snapshot
//   - activate.go: the active_runtime.json replacement protocol
//   - platform.go: the Platform capability set and XDGPlatform
//   - simplify.go: path shortening for display
package openxr
