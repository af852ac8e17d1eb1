// Package model defines the core types shared across the book cipher engine.
//
// # Addressing
//
//   - Mode: closed enumeration of the four coordinate addressing schemes
//   - Coordinate: 1-based structural position (paragraph/line/word/char)
//     plus an opaque decorative tag for the modes that carry one
//   - Location: a Coordinate together with the literal book text found there
//
// All numbering is 1-based within the immediate container; this is the
// external wire convention, not an implementation detail.
package model
