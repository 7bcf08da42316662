// Package services defines the shared error taxonomy and context carriers
// used across pipeline stages and the CLI.
//
// Errors are tagged with sentinel markers (validation, configuration,
// not-found, transient) via Wrap so callers can classify failures without
// string matching. Context helpers carry run identifiers and stage names so
// logging can attach them uniformly.
package services
