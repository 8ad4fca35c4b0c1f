package mem_test

import (
	"errors"
	"io"
	"testing"

	"github.com/binspace/vio"
	"github.com/binspace/vio/plugin/mem"
)

func TestAccept(t *testing.T) {
	p := mem.New()
	if !p.Accept("mem://0x100") {
		t.Error("mem uri rejected")
	}
	if p.Accept("file:///tmp/x") || p.Accept("/tmp/x") {
		t.Error("foreign uri accepted")
	}
}

func TestOpen(t *testing.T) {
	p := mem.New()
	for uri, want := range map[string]uint64{
		"mem://0x1000": 0x1000,
		"mem://4096":   4096,
	} {
		ops, size, err := p.Open(uri, vio.MODE_RW)
		if err != nil {
			t.Fatalf("open %q: %v", uri, err)
		}
		if size != want {
			t.Errorf("open %q: got size %d, want %d", uri, size, want)
		}
		ops.Close()
	}

	for _, uri := range []string{"mem://", "mem://zero", "mem://-5"} {
		if _, _, err := p.Open(uri, vio.MODE_RW); !errors.Is(err, vio.ErrURIInvalid) {
			t.Errorf("open %q: got %v, want ErrURIInvalid", uri, err)
		}
	}
}

func TestBuffer(t *testing.T) {
	ops := mem.Wrap([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	buf := make([]byte, 4)
	if n, err := ops.ReadAt(buf, 2); n != 4 || err != nil {
		t.Fatalf("read: got (%d, %v)", n, err)
	}
	if buf[0] != 3 || buf[3] != 6 {
		t.Errorf("read: got % x", buf)
	}

	if n, err := ops.ReadAt(buf, 6); n != 2 || err != io.EOF {
		t.Errorf("short read: got (%d, %v), want (2, EOF)", n, err)
	}
	if _, err := ops.ReadAt(buf, 100); err != io.EOF {
		t.Errorf("read past end: got %v, want EOF", err)
	}

	if _, err := ops.WriteAt([]byte{0xAA, 0xBB}, 4); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ops.ReadAt(buf[:2], 4); err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0xAA || buf[1] != 0xBB {
		t.Errorf("read back: got % x", buf[:2])
	}

	if n, err := ops.WriteAt(buf, 6); n != 2 || err != io.ErrShortWrite {
		t.Errorf("short write: got (%d, %v), want (2, ErrShortWrite)", n, err)
	}
}
