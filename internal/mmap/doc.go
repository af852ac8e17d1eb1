// Package mmap provides memory-mapped file access for zero-copy reads.
//
// Book texts can run to many megabytes; mapping them avoids copying the
// whole file through kernel buffers just to parse it once.
//
//	m, err := mmap.Open("moby-dick.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//	m.Advise(mmap.AccessSequential)
//
// Unix platforms use mmap(2) with madvise(2) hints; Windows uses
// CreateFileMapping/MapViewOfFile and treats Advise as a no-op.
//
// Mapping is safe for concurrent reads. Close is idempotent, but callers
// must ensure no goroutine touches Bytes() after Close returns.
package mmap
