// Package mem backs descriptors with zero-filled in-memory buffers, for
// anonymous scratch mappings in the address space.
package mem

import (
	"io"
	"strconv"
	"strings"

	"github.com/binspace/vio"
)

const scheme = "mem://"

// Plugin accepts mem://<size> URIs, size in decimal or 0x-prefixed hex.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (*Plugin) Name() string {
	return "mem"
}

func (*Plugin) Accept(uri string) bool {
	return strings.HasPrefix(uri, scheme)
}

func (*Plugin) Open(uri string, mode vio.Mode) (vio.FileOps, uint64, error) {
	size, err := strconv.ParseUint(strings.TrimPrefix(uri, scheme), 0, 64)
	if err != nil {
		return nil, 0, vio.ErrURIInvalid
	}
	return Wrap(make([]byte, size)), size, nil
}

// Wrap serves reads and writes from data. Other in-memory backends reuse it
// for their decoded images.
func Wrap(data []byte) vio.FileOps {
	return &buffer{data: data}
}

type buffer struct {
	data []byte
}

func (b *buffer) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *buffer) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(b.data)) {
		return 0, io.ErrShortWrite
	}
	n := copy(b.data[off:], p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (b *buffer) Close() error {
	b.data = nil
	return nil
}
