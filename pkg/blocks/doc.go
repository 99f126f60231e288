// Package blocks splits a Markdown document into content blocks.
//
// A content block is the run of lines between two headings (or between the
// document boundaries and a heading). Heading lines themselves never belong
// to a block. Fenced code is opaque: nothing inside a fence is recognised as
// a heading, thematic break or reference definition.
//
// The package works on plain line slices rather than a parsed AST so that
// the line numbers it reports match the source exactly. Line numbers are
// 1-based throughout.
package blocks
