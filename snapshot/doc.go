// Package snapshot persists a book and its codec settings in a compact,
// self-describing binary format. Snapshots carry the book text, not the
// derived index: the index is rebuilt from the text on load.
//
// File layout:
//
//	[fileHeader][codec name][payload size][payload]
//
// The header records the compression type and a CRC32 of the payload, the
// payload is the codec-marshaled Bundle, optionally LZ4 or ZSTD compressed.
package snapshot
