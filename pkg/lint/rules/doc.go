// Package rules provides the built-in lint rules for mdblocklint.
//
// All rules work on the content block segmentation of a document (see
// package blocks) and the reference analysis built on it (package refplace):
//
//   - MDL004: reference-definition-placement - Reference definitions should
//     be at the end of the content block where they are first used
//
//   - MD052: reference-links-images - Reference links and images should use
//     defined labels
//
//   - MD053: link-image-reference-definitions - Link and image reference
//     definitions should be needed
//
// Importing this package registers the rules with lint.DefaultRegistry.
package rules
