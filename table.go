package vio

import "container/heap"

// handleHeap is a min-heap of released handles so the smallest freed value is
// reissued first, keeping the slot array dense.
type handleHeap []uint64

func (h handleHeap) Len() int           { return len(h) }
func (h handleHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h handleHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *handleHeap) Push(x any) {
	*h = append(*h, x.(uint64))
}

func (h *handleHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// descTable owns every live descriptor, indexed by handle. A handle is either
// live here, waiting in the free heap, or not yet issued. The 64-bit handle
// space is assumed to never exhaust.
type descTable struct {
	descs []*Desc // slot index = handle
	next  uint64
	free  handleHeap
}

func (t *descTable) alloc() uint64 {
	if t.free.Len() > 0 {
		return heap.Pop(&t.free).(uint64)
	}
	hndl := t.next
	t.next++
	return hndl
}

func (t *descTable) register(hndl uint64, d *Desc) {
	d.Hndl = hndl
	if hndl < uint64(len(t.descs)) {
		t.descs[hndl] = d
	} else {
		t.descs = append(t.descs, d)
	}
}

func (t *descTable) deregister(hndl uint64) (*Desc, error) {
	if hndl >= uint64(len(t.descs)) || t.descs[hndl] == nil {
		return nil, ErrHandleNotFound
	}
	d := t.descs[hndl]
	t.descs[hndl] = nil
	heap.Push(&t.free, hndl)
	return d, nil
}

func (t *descTable) get(hndl uint64) *Desc {
	if hndl >= uint64(len(t.descs)) {
		return nil
	}
	return t.descs[hndl]
}
