// Package model defines the data structures shared across draftsaver.
//
// This package contains the following main types:
//   - PostRecord: A single social-media post draft
//   - SatireImageRecord: A single satire-image prompt draft
//   - RecordSet: All drafts for one run, grouped by platform or type
//   - SaveJob: The per-run state carried through the save pipeline
//
// Design decision: RecordSet is a closed set of known groups rather than a
// map of arbitrary keys. Every consumer (loader, renderers, pipeline) works
// against the same three groups, so the compiler catches a misspelled group
// where a string key would silently produce an empty section.
package model
