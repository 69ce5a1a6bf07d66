// Package manifest parses meta_package.json5 files into PackageManifest
// values. Input is relaxed JSON (comments and trailing commas allowed);
// the document shape is checked with docwalk rules and dependency entries
// are handed to the deps grammars. Loading stops at the first violation.
// It also provides advisory JSON Schema validation for lint-style output.
package manifest
