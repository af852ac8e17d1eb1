// Package index builds the lookup table at the heart of the cipher: a map
// from normalized key to every coordinate in the book where that key occurs.
//
// The index is built in one pass and never mutated afterwards. Homophony is
// deliberate: repeated words accumulate candidate locations rather than
// colliding. Candidate order is stable (first occurrence in the book first)
// so seeded encodes are reproducible.
package index
