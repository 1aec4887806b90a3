// Package appstate aggregates discovery results into one snapshot and keeps
// the user's extra manifest paths between runs.
package appstate
