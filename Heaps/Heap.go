package Heaps

import (
	Fixed "github.com/g-m-twostay/go-fixed"
)

// Heap is a binary min-heap stored in caller-supplied storage. It holds at
// most vs.Len elements and never grows; Push on a full heap reports failure
// instead. cmp is three-way: negative when a has higher priority than b.
// There's no stability guarantee among equal elements.
type Heap[T any] struct {
	vs   Fixed.Span[T]
	used uint
	cmp  func(a, b T) int
}

// New Heap over storage vs. Returns nil when vs is empty or cmp is nil; these
// are checked once here and never again.
func New[T any](vs Fixed.Span[T], cmp func(a, b T) int) *Heap[T] {
	if vs.First == nil || vs.Len == 0 || cmp == nil {
		return nil
	}
	return &Heap[T]{vs: vs, cmp: cmp}
}

// From builds a Heap over vs whose first used elements are already occupied,
// restoring heap order bottom-up in O(used).
func From[T any](vs Fixed.Span[T], used uint, cmp func(a, b T) int) *Heap[T] {
	u := New(vs, cmp)
	if u == nil || used > vs.Len {
		return nil
	}
	u.used = used
	for i := used / 2; i > 0; i-- {
		u.down(i - 1)
	}
	return u
}

func (u *Heap[T]) Size() uint {
	return u.used
}

func (u *Heap[T]) Cap() uint {
	return u.vs.Len
}

func (u *Heap[T]) Empty() bool {
	return u.used == 0
}

// Push v onto the heap. Returns false when the heap is full.
func (u *Heap[T]) Push(v T) bool {
	if u.used == u.vs.Len {
		return false
	}
	*u.vs.At(u.used) = v
	u.used++
	u.up(u.used - 1)
	return true
}

// Pop removes and returns the minimum element. Returns false when empty.
func (u *Heap[T]) Pop() (v T, ok bool) {
	if u.used == 0 {
		return
	}
	v, ok = *u.vs.At(0), true
	u.used--
	if u.used > 0 {
		*u.vs.At(0) = *u.vs.At(u.used)
		u.down(0)
	}
	*u.vs.At(u.used) = *new(T) //release references held by the vacated slot.
	return
}

// Peek returns the address of the minimum element without removing it, nil
// when empty. The address is invalidated by the next Push or Pop.
func (u *Heap[T]) Peek() *T {
	if u.used == 0 {
		return nil
	}
	return u.vs.At(0)
}

// up restores heap order on the path from slot i to the root after i was
// overwritten with a new element.
func (u *Heap[T]) up(i uint) {
	for i > 0 {
		p := (i - 1) >> 1
		if u.cmp(*u.vs.At(i), *u.vs.At(p)) >= 0 {
			break
		}
		*u.vs.At(i), *u.vs.At(p) = *u.vs.At(p), *u.vs.At(i)
		i = p
	}
}

// down restores heap order below slot i after i was overwritten. Between two
// children the left one is chosen unless the right strictly orders before it,
// and no swap happens unless the chosen child strictly orders before i.
func (u *Heap[T]) down(i uint) {
	for {
		c := i<<1 + 1
		if c >= u.used {
			break
		}
		if r := c + 1; r < u.used && u.cmp(*u.vs.At(r), *u.vs.At(c)) < 0 {
			c = r
		}
		if u.cmp(*u.vs.At(c), *u.vs.At(i)) >= 0 {
			break
		}
		*u.vs.At(i), *u.vs.At(c) = *u.vs.At(c), *u.vs.At(i)
		i = c
	}
}

// Ok reports whether every occupied slot is dominated by its parent. Intended
// for tests, not ordinary operation.
func (u *Heap[T]) Ok() bool {
	for i := uint(1); i < u.used; i++ {
		if u.cmp(*u.vs.At(i), *u.vs.At((i-1)>>1)) < 0 {
			return false
		}
	}
	return true
}
