// Package record defines the persisted form of an integration run and the
// deterministic identity computed for it.
//
// A Run is content-addressed: its ID is a SHA-256 digest of the canonical
// JSON of (kind, params, result) with domain separation. Repeating a call
// with identical inputs yields an identical result and therefore the same
// ID, which lets the store deduplicate runs.
//
// Runs produced by one CLI invocation share a batch token, generated by a
// TokenGenerator (UUIDv7 in production, fixed tokens in tests).
package record
