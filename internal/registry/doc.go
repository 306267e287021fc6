// Package registry wires the in-memory catalog and version log to
// their on-disk store and enforces the registration workflow.
//
// The core stores (internal/catalog, internal/versions) know nothing
// about files or prompts; this package composes them with the JSON
// store and an overwrite approver into the service the CLI drives. A
// command constructs one Service, calls Open to load state, runs its
// operation, and lets mutating calls persist themselves. Process-wide
// singletons stay out: each invocation owns its Service.
package registry
