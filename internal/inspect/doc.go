// Package inspect renders human-readable snapshots of a line buffer for
// debugging.
//
// The package operates on linebuf.State, the owned read-only copy returned
// by Buffer.Inspect, and therefore cannot mutate engine state. Two renderers
// are provided: an HTML view with a colored cell grid and per-record table,
// and a compact text view for terminals. An optional CEL expression filters
// which records appear, evaluated over the variables id, size, text,
// fragmented, start and end.
package inspect
