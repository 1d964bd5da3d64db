package Pools

import (
	Fixed "github.com/g-m-twostay/go-fixed"
	"golang.org/x/exp/constraints"
)

// Pool hands out fixed-count slots of caller-supplied storage without per-call
// allocation: slots are used sequentially until the storage is exhausted, then
// recycled LIFO through a free list. The free links live out-of-band in nx
// rather than inside the freed slots, so T carries no minimum-size
// requirement and a live value is never reinterpreted as a link.
//
// Refs are 1-based indices into the storage; 0 is the null Ref. S should be
// wide enough to hold len(storage); this is not checked.
//
// Freeing a Ref twice, or a Ref not handed out by Alloc, corrupts the free
// list. The Pool performs no double-free detection.
type Pool[T any, S constraints.Unsigned] struct {
	vs   Fixed.Span[T]
	nx   []S //nx[i] is the next free Ref after freed slot i; meaningful only while slot i is on the free list.
	free S   //head of the free list, 0 when empty.
	used S   //high-water mark: slots [0,used) have been handed out at least once.
}

// New Pool over storage. The only allocation ever made is the link array,
// here. Returns nil when storage is empty.
func New[T any, S constraints.Unsigned](storage []T) *Pool[T, S] {
	if len(storage) == 0 {
		return nil
	}
	return &Pool[T, S]{vs: Fixed.Make(storage), nx: make([]S, len(storage))}
}

// Cap is the fixed number of slots.
func (u *Pool[T, S]) Cap() uint {
	return u.vs.Len
}

// Alloc returns a Ref to a free slot, preferring recycled slots over fresh
// ones. Returns 0, false when every slot is live; the Pool never grows. The
// slot's previous contents are left as-is.
func (u *Pool[T, S]) Alloc() (S, bool) {
	if u.free != 0 {
		r := u.free
		u.free = u.nx[r-1]
		return r, true
	}
	if uint(u.used) < u.vs.Len {
		u.used++
		return u.used, true
	}
	return 0, false
}

// Free returns r's slot to the free list. r must be live.
func (u *Pool[T, S]) Free(r S) {
	u.nx[r-1] = u.free
	u.free = r
}

// At returns the address of r's slot. r must be live.
func (u *Pool[T, S]) At(r S) *T {
	return u.vs.At(uint(r - 1))
}
