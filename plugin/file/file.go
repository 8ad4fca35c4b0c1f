// Package file backs descriptors with plain files on disk.
package file

import (
	"os"
	"strings"

	"github.com/binspace/vio"
)

const scheme = "file://"

// Plugin accepts file://<path> URIs and bare paths.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (*Plugin) Name() string {
	return "file"
}

func (*Plugin) Accept(uri string) bool {
	return strings.HasPrefix(uri, scheme) || !strings.Contains(uri, "://")
}

func (*Plugin) Open(uri string, mode vio.Mode) (vio.FileOps, uint64, error) {
	f, err := os.OpenFile(strings.TrimPrefix(uri, scheme), openFlag(mode), 0)
	if err != nil {
		return nil, 0, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, uint64(fi.Size()), nil
}

func openFlag(mode vio.Mode) int {
	switch mode & vio.MODE_RW {
	case vio.MODE_RW:
		return os.O_RDWR
	case vio.MODE_WRITE:
		return os.O_WRONLY
	default:
		return os.O_RDONLY
	}
}
