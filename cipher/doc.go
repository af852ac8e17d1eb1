// Package cipher implements the encode and decode halves of the book cipher.
//
// Encoding substitutes each message token with one coordinate chosen
// uniformly at random among the candidate locations sharing the token's
// normalized key (homophonic substitution). Decoding re-derives the book's
// segmentation on every call and resolves coordinates against it directly.
//
// Both operations follow a soft-fail contract: per-token problems become
// values in the result (bracketed fallbacks, "?" markers, the missing-token
// report), never errors that abort the call.
package cipher
