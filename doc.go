// Package norgfmt renders Norg markup in canonical form.
//
// The package parses a document into a concrete syntax tree and rebuilds its
// text bottom-up: every child is reduced to final text before its parent's
// formatter runs. The tree-to-text engine normalizes whitespace, re-indents
// nested blocks, wraps paragraphs at a configurable width, and decays inline
// markup delimiters to their minimal form.
//
// Core properties:
//   - Deterministic: one canonical rendering per document and configuration
//   - Idempotent: formatting canonical output reproduces it exactly
//   - Fail-fast: a malformed tree aborts the render, never partial output
//
// Example:
//
//	out, err := norgfmt.FormatString("*     Heading\nsome text",
//		norgfmt.WithLineLength(80))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Rendering is single-threaded and purely functional over the immutable
// input; the Config supplied per call is never mutated.
package norgfmt
