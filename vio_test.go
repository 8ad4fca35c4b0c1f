package vio_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/binspace/vio"
	"github.com/binspace/vio/plugin/mem"
)

func TestResolve(t *testing.T) {
	v := vio.New()
	if _, err := v.Open("mem://0x100", vio.MODE_RW); !errors.Is(err, vio.ErrPluginNotFound) {
		t.Errorf("open with empty registry: got %v, want ErrPluginNotFound", err)
	}
	v.Register(mem.New())
	if _, err := v.Open("gdb://localhost", vio.MODE_RW); !errors.Is(err, vio.ErrPluginNotFound) {
		t.Errorf("open unhandled scheme: got %v, want ErrPluginNotFound", err)
	}
	if _, err := v.Open("mem://nope", vio.MODE_RW); !errors.Is(err, vio.ErrURIInvalid) {
		t.Errorf("open bad mem uri: got %v, want ErrURIInvalid", err)
	}
	hndl, err := v.Open("mem://0x100", vio.MODE_RW)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if d := v.Desc(hndl); d == nil || d.Size != 0x100 {
		t.Errorf("desc: got %+v", d)
	}
}

func TestScatterReadWrite(t *testing.T) {
	v := vio.New()
	v.Register(mem.New())

	// two adjacent descriptors at 0 and 0x100
	for i := 0; i < 2; i++ {
		if _, err := v.Open("mem://0x100", vio.MODE_RW); err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
	}

	pattern := make([]byte, 0x100)
	for i := range pattern {
		pattern[i] = byte(i)
	}
	// write straddles the descriptor boundary
	if err := v.Write(0x80, pattern); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := make([]byte, 0x100)
	if err := v.Read(0x80, got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, pattern) {
		t.Error("scatter read does not match scatter write")
	}

	// each half landed in its own descriptor
	chunks := v.AddrRangeToHandles(0x80, 0x100)
	if len(chunks) != 2 || chunks[0].Hndl == chunks[1].Hndl {
		t.Fatalf("chunks: got %+v", chunks)
	}
	half := make([]byte, 0x80)
	if err := v.Desc(chunks[1].Hndl).Read(0x100, half); err != nil {
		t.Fatalf("read second desc: %v", err)
	}
	if !bytes.Equal(half, pattern[0x80:]) {
		t.Error("second descriptor holds wrong bytes")
	}
}

func TestReadUnmapped(t *testing.T) {
	v := vio.New()
	v.Register(mem.New())
	if _, err := v.Open("mem://0x100", vio.MODE_RW); err != nil {
		t.Fatalf("open: %v", err)
	}

	buf := make([]byte, 0x100)
	if err := v.Read(0x80, buf); !errors.Is(err, vio.ErrAddressInvalid) {
		t.Errorf("read past end: got %v, want ErrAddressInvalid", err)
	}
	if err := v.Write(0x200, buf); !errors.Is(err, vio.ErrAddressInvalid) {
		t.Errorf("write unmapped: got %v, want ErrAddressInvalid", err)
	}
	if err := v.Read(0x10, nil); err != nil {
		t.Errorf("empty read: %v", err)
	}
}

func TestFacadeClose(t *testing.T) {
	v := vio.New()
	v.Register(mem.New())
	hndl, err := v.Open("mem://0x100", vio.MODE_RW)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := v.Close(hndl); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := v.Close(hndl); !errors.Is(err, vio.ErrHandleNotFound) {
		t.Errorf("double close: got %v, want ErrHandleNotFound", err)
	}
	if v.Desc(hndl) != nil {
		t.Error("desc still live after close")
	}
}
