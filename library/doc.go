// Package library manages a named shelf of book codecs.
//
// Books are registered with Add and loaded from a blobstore.BlobStore by
// BuildAll, which indexes them concurrently with a bounded worker count.
// Each codec is published only after its index is fully built, so Get never
// returns a half-initialized codec; a failed build is retried on the next
// BuildAll call.
package library
