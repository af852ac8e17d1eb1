// Package book derives the structural segmentation of a reference text:
// physical lines, blank-line-delimited paragraphs, and the whitespace-split
// words inside each line.
//
// The decoder re-derives this structure from the raw book text on every call
// instead of consulting a prebuilt index, so a coordinate is always resolved
// against the book as it currently stands.
package book
