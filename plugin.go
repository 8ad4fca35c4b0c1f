package vio

import "io"

// FileOps is the backend I/O capability carried by an open descriptor.
// Offsets passed to it are relative to the start of the backing store.
type FileOps interface {
	io.ReaderAt
	io.WriterAt
	io.Closer
}

// Plugin opens the URIs it accepts and reports the byte size of the backing
// store. Open errors are surfaced to callers unchanged.
type Plugin interface {
	Name() string
	Accept(uri string) bool
	Open(uri string, mode Mode) (FileOps, uint64, error)
}
