// Package jsonld generates schema.org structured data (JSON-LD) from
// loosely-typed form records.
//
// The core is a chain of pure transformations: a Record (nested key/value
// data collected from a form) goes through per-type validation
// (schema.Validate), generation (schema.Generate), an empty-value stripping
// pass (Document.Clean) and serialization (Marshal / Emit). Nothing in this
// module performs I/O or holds mutable state across calls; persistence,
// transport and page rendering are the caller's concern.
//
// Generators are deliberately permissive: a missing required field produces a
// partial document rather than an error, and malformed URLs or dates degrade
// to omitted properties. Validation is the only gate that blocks anything,
// and it only ever returns issue lists, never throws.
package jsonld
