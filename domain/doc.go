// Package domain defines the shared learning-object content hierarchy:
// users, learning objects, learning outcomes and their owned goals,
// instructional strategies, assessment plans, and referenced standard
// outcomes.
//
// Every entity is mutated through validating accessor methods that fail
// fast with a sentinel error and leave the entity unchanged on invalid
// input. JSON serialization round-trips the whole graph; deserialization
// re-drives the same accessors so persisted content is re-validated
// against the current taxonomy vocabulary on load.
//
// The package performs no I/O, no logging, and no locking. Callers embed
// it in whatever concurrency model their application uses and are
// responsible for single-writer access per object graph.
package domain
