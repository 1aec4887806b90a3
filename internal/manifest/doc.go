// Package manifest loads OpenXR runtime and API layer manifests. A manifest is
// a small JSON document naming the shared library that implements a runtime or
// layer. Loading checks the file_format_version major number and validates
// the document against an embedded JSON Schema before decoding it.
package manifest
