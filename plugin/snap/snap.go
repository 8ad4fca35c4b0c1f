// Package snap backs descriptors with snappy-compressed memory snapshots.
// The decompressed image is held in memory; writes touch the copy, never the
// snapshot file.
package snap

import (
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"

	"github.com/binspace/vio"
	"github.com/binspace/vio/plugin/mem"
)

const scheme = "snap://"

// Plugin accepts snap://<path> URIs pointing at snappy-framed snapshot files.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (*Plugin) Name() string {
	return "snap"
}

func (*Plugin) Accept(uri string) bool {
	return strings.HasPrefix(uri, scheme)
}

func (*Plugin) Open(uri string, mode vio.Mode) (vio.FileOps, uint64, error) {
	f, err := os.Open(strings.TrimPrefix(uri, scheme))
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	data, err := io.ReadAll(snappy.NewReader(f))
	if err != nil {
		return nil, 0, err
	}
	return mem.Wrap(data), uint64(len(data)), nil
}
