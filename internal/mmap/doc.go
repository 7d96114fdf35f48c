// Package mmap maps dataset files read-only into memory.
//
//	m, err := mmap.Open("purchases.txt.zst")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// Unix uses mmap(2); Windows uses CreateFileMapping/MapViewOfFile.
// Callers must not touch Bytes() after Close returns.
package mmap
