package vio

import (
	"math"

	"github.com/binspace/vio/internal/addrindex"
)

// DescChunk is one descriptor's contribution to a decomposed byte range.
// PAddr is where the chunk starts inside the flat address space.
type DescChunk struct {
	Hndl  uint64
	PAddr uint64
	Size  uint64
}

// DescQuery lays descriptors out in the flat address space without collisions
// and answers handle and address queries. Failing operations leave the state
// exactly as it was before the call. It is not safe for concurrent use;
// callers serving multiple goroutines must serialize access externally.
type DescQuery struct {
	table  descTable                       // hndl -> desc
	paddrs *addrindex.Tree[uint64, uint64] // closed paddr range -> hndl
}

func NewDescQuery() *DescQuery {
	return &DescQuery{paddrs: addrindex.New[uint64, uint64]()}
}

func (q *DescQuery) registerHandle(p Plugin, uri string, mode Mode) (*Desc, error) {
	d, err := openDesc(p, uri, mode)
	if err != nil {
		return nil, err
	}
	q.table.register(q.table.alloc(), d)
	return d, nil
}

func (q *DescQuery) rollback(d *Desc, err error) error {
	q.table.deregister(d.Hndl)
	d.Close()
	return err
}

// Open opens uri through p and places the descriptor at the lowest address
// reachable by a forward first-fit sweep from zero: each blocking overlap
// moves the candidate one past the end of the highest-starting interval hit.
func (q *DescQuery) Open(p Plugin, uri string, mode Mode) (uint64, error) {
	d, err := q.registerHandle(p, uri, mode)
	if err != nil {
		return 0, err
	}
	var lo uint64
	for {
		if lo > math.MaxUint64-(d.Size-1) {
			return 0, q.rollback(d, ErrAddressInvalid)
		}
		overlaps := q.paddrs.Overlap(lo, lo+d.Size-1)
		if len(overlaps) == 0 {
			break
		}
		last := q.table.get(overlaps[len(overlaps)-1])
		next := last.PAddr + last.Size
		if next <= lo {
			// the blocking interval ends at the top of the address space
			return 0, q.rollback(d, ErrAddressInvalid)
		}
		lo = next
	}
	d.PAddr = lo
	q.paddrs.Insert(lo, lo+d.Size-1, d.Hndl)
	return d.Hndl, nil
}

// OpenAt opens uri through p and places the descriptor at the exact address
// at. If [at, at+size-1] intersects a live interval the open is rolled back
// and ErrAddressesOverlap is returned.
func (q *DescQuery) OpenAt(p Plugin, uri string, mode Mode, at uint64) (uint64, error) {
	d, err := q.registerHandle(p, uri, mode)
	if err != nil {
		return 0, err
	}
	if at > math.MaxUint64-(d.Size-1) {
		return 0, q.rollback(d, ErrAddressInvalid)
	}
	lo, hi := at, at+d.Size-1
	if len(q.paddrs.Overlap(lo, hi)) != 0 {
		return 0, q.rollback(d, ErrAddressesOverlap)
	}
	d.PAddr = lo
	q.paddrs.Insert(lo, hi, d.Hndl)
	return d.Hndl, nil
}

// Close removes hndl from the table and its interval from the index,
// transferring ownership of the descriptor to the caller. Releasing the
// backend via Desc.Close becomes the caller's responsibility.
func (q *DescQuery) Close(hndl uint64) (*Desc, error) {
	d, err := q.table.deregister(hndl)
	if err != nil {
		return nil, err
	}
	q.paddrs.DeleteExact(d.PAddr, d.PAddr+d.Size-1)
	return d, nil
}

// Desc returns the live descriptor for hndl, or nil for an unknown handle.
func (q *DescQuery) Desc(hndl uint64) *Desc {
	return q.table.get(hndl)
}

// AddrToHandle returns the handle whose interval contains paddr.
func (q *DescQuery) AddrToHandle(paddr uint64) (uint64, bool) {
	hndls := q.paddrs.At(paddr)
	if len(hndls) == 0 {
		return 0, false
	}
	return hndls[0], true
}

// AddrRangeToHandles decomposes [paddr, paddr+size-1] into the ordered chunks
// of the descriptors backing it. It returns nil if any part of the range,
// left, middle or right, is unmapped.
func (q *DescQuery) AddrRangeToHandles(paddr, size uint64) []DescChunk {
	if size == 0 || paddr > math.MaxUint64-(size-1) {
		return nil
	}
	hndls := q.paddrs.Overlap(paddr, paddr+size-1)
	if len(hndls) == 0 {
		return nil
	}
	chunks := make([]DescChunk, 0, len(hndls))
	start := paddr
	remaining := size
	for _, hndl := range hndls {
		d := q.table.get(hndl)
		if start < d.PAddr {
			return nil
		}
		delta := min(remaining, d.Size-(start-d.PAddr))
		chunks = append(chunks, DescChunk{Hndl: hndl, PAddr: start, Size: delta})
		start += delta
		remaining -= delta
	}
	if remaining != 0 {
		return nil
	}
	return chunks
}
