package vio

import "io"

// Desc describes one opened backing store mapped into the flat address space.
// Hndl and PAddr are assigned by DescQuery after the backend open; Size is
// fixed for the descriptor's lifetime.
type Desc struct {
	Hndl  uint64
	PAddr uint64
	Size  uint64
	URI   string
	Mode  Mode

	ops FileOps
}

func openDesc(p Plugin, uri string, mode Mode) (*Desc, error) {
	ops, size, err := p.Open(uri, mode)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		ops.Close()
		return nil, ErrSizeInvalid
	}
	return &Desc{Size: size, URI: uri, Mode: mode, ops: ops}, nil
}

// Read fills b starting at paddr. The whole range must fall inside the
// descriptor's mapped interval.
func (d *Desc) Read(paddr uint64, b []byte) error {
	if d.Mode&MODE_READ == 0 {
		return ErrPermissionDenied
	}
	if err := d.checkBounds(paddr, uint64(len(b))); err != nil {
		return err
	}
	n, err := d.ops.ReadAt(b, int64(paddr-d.PAddr))
	if err == io.EOF && n == len(b) {
		err = nil
	}
	return err
}

// Write copies b into the backing store starting at paddr, under the same
// bounds rule as Read.
func (d *Desc) Write(paddr uint64, b []byte) error {
	if d.Mode&MODE_WRITE == 0 {
		return ErrPermissionDenied
	}
	if err := d.checkBounds(paddr, uint64(len(b))); err != nil {
		return err
	}
	_, err := d.ops.WriteAt(b, int64(paddr-d.PAddr))
	return err
}

func (d *Desc) checkBounds(paddr, n uint64) error {
	if paddr < d.PAddr || paddr-d.PAddr > d.Size || n > d.Size-(paddr-d.PAddr) {
		return ErrAddressInvalid
	}
	return nil
}

// Close releases the backend resource. DescQuery never calls it; backend
// teardown moves to the caller together with the descriptor.
func (d *Desc) Close() error {
	return d.ops.Close()
}
