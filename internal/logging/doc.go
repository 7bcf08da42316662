// Package logging builds the slog loggers used by the engine and CLI.
//
// Two output formats are supported: a compact console format that prefixes
// messages with the component name and renders attributes as key=value pairs,
// and standard JSON. Helpers create component-scoped loggers and derive
// run/stage attributes from a context so every stage logs uniformly.
package logging
