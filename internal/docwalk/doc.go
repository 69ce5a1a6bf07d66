// Package docwalk validates and extracts data from untyped document trees
// (the map[string]any / []any shape produced by JSON-family decoders).
// Callers describe the expected document shape as a composition of rules and
// walk a tree against it; the first rule rejection anywhere aborts the walk.
// Extracted data is deposited into caller-supplied slices during the walk,
// so a successful walk carries no result beyond acceptance.
package docwalk
