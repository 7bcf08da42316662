// Package planstore persists run history in SQLite.
//
// Each engine run is stored with its assignments and diagnostics so past
// naming decisions stay auditable. A lock file beside the database keeps
// concurrent argus invocations from interleaving writes.
package planstore
