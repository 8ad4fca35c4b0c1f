// Package addrindex stores disjoint closed integer intervals keyed by range,
// each mapped to one value, and answers point and overlap queries ordered by
// interval start.
package addrindex

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

type interval[K constraints.Unsigned, V any] struct {
	lo, hi K
	val    V
}

// Tree indexes disjoint closed intervals [lo, hi]. Callers must verify
// non-overlap before Insert; the tree does not detect collisions itself.
type Tree[K constraints.Unsigned, V any] struct {
	tr *btree.BTreeG[interval[K, V]]
}

func New[K constraints.Unsigned, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		tr: btree.NewG(8, func(a, b interval[K, V]) bool { return a.lo < b.lo }),
	}
}

func (t *Tree[K, V]) Insert(lo, hi K, val V) {
	t.tr.ReplaceOrInsert(interval[K, V]{lo: lo, hi: hi, val: val})
}

// DeleteExact removes the interval whose bounds are exactly [lo, hi].
// It reports whether such an interval was stored.
func (t *Tree[K, V]) DeleteExact(lo, hi K) bool {
	it, ok := t.tr.Get(interval[K, V]{lo: lo})
	if !ok || it.hi != hi {
		return false
	}
	t.tr.Delete(it)
	return true
}

// Overlap returns the values of all intervals intersecting [lo, hi], ordered
// by interval start ascending. Stored intervals are disjoint, so at most the
// closest interval starting before lo can reach into the queried range.
func (t *Tree[K, V]) Overlap(lo, hi K) []V {
	var out []V
	t.tr.DescendLessOrEqual(interval[K, V]{lo: lo}, func(it interval[K, V]) bool {
		if it.lo < lo && it.hi >= lo {
			out = append(out, it.val)
		}
		return false
	})
	t.tr.AscendGreaterOrEqual(interval[K, V]{lo: lo}, func(it interval[K, V]) bool {
		if it.lo > hi {
			return false
		}
		out = append(out, it.val)
		return true
	})
	return out
}

// At returns the values of all intervals containing p.
func (t *Tree[K, V]) At(p K) []V {
	return t.Overlap(p, p)
}

func (t *Tree[K, V]) Size() int {
	return t.tr.Len()
}
