// Package cli defines the Cobra command tree for the xrpicker CLI. Each file
// in this package registers one top-level command (list, use, layer, etc.)
// with the root command. Command implementations delegate to internal packages
// for discovery and activation and only handle flag parsing, I/O formatting,
// and user interaction.
package cli
