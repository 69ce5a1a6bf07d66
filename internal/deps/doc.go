// Package deps implements the dependency declaration grammars used by
// package manifests: a restricted version-range grammar (exact version,
// explicit low..high interval, and caret compatible-range) and the compact
// "name@range" dependency reference syntax. Parsing is pure; the package
// holds no mutable state, so the grammars are safe to use from any number
// of goroutines.
package deps
