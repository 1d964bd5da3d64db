package Lists

import (
	"unsafe"
)

const granularity = 1 << 12

// Node of a singly-linked chain. Live chains are ordinary nil-terminated
// lists; nodes sitting in an Allocator's free ring are linked circularly and
// must not be traversed expecting a nil terminator.
type Node[T any] struct {
	nx  *Node[T]
	Val T
}

// Next node in the chain, nil at the end.
func (u *Node[T]) Next() *Node[T] {
	return u.nx
}

// Allocator hands out Nodes drawn from blocks: each block is one contiguous
// allocation of blockLen nodes pre-linked into a circular ring and merged
// into the allocator's free ring, so the per-node allocation cost is
// amortized to nothing and whole chains can be recycled in O(1).
//
// An Allocator owns its blocks and free ring; chains built from its nodes
// hold non-owning references until freed back. It performs no internal
// locking: a single logical thread of control must own it, or the caller
// must serialize every New/Free/FreeList externally.
type Allocator[T any] struct {
	ring     *Node[T] //an arbitrary member of the circular free ring, nil when empty.
	blockLen uint
}

// NewAllocator with the given nodes per block. blockLen 0 picks a default
// sized to fit just under the allocation granularity.
func NewAllocator[T any](blockLen uint) *Allocator[T] {
	if blockLen == 0 {
		if n := granularity / uint(unsafe.Sizeof(Node[T]{})); n > 1 {
			blockLen = n - 1 //leave room for the runtime's own allocation overhead.
		} else {
			blockLen = 1
		}
	}
	return &Allocator[T]{blockLen: blockLen}
}

// block allocates one block, wires it into a ring, and merges it into the
// free ring.
func (al *Allocator[T]) block() {
	ns := make([]Node[T], al.blockLen)
	for i := range ns[:len(ns)-1] {
		ns[i].nx = &ns[i+1]
	}
	last := &ns[len(ns)-1]
	last.nx = &ns[0]
	al.splice(&ns[0], last)
}

// splice the ring segment after tail (head..tail, tail.nx ignored) into the
// free ring in O(1).
func (al *Allocator[T]) splice(head, tail *Node[T]) {
	if al.ring == nil {
		tail.nx = head
		al.ring = tail
	} else {
		tail.nx = al.ring.nx
		al.ring.nx = head
	}
}

// New pops a node from the free ring, replenishing it with a fresh block when
// empty, and initializes it to {nx, v}.
func (al *Allocator[T]) New(nx *Node[T], v T) *Node[T] {
	if al.ring == nil {
		al.block()
	}
	out := al.ring.nx
	if out == al.ring { //last member; the ring becomes empty.
		al.ring = nil
	} else {
		al.ring.nx = out.nx
	}
	out.nx, out.Val = nx, v
	return out
}

// Free splices the single node n back into the free ring. No-op on nil.
// Freeing a node still reachable from a live chain corrupts that chain; no
// detection is performed.
func (al *Allocator[T]) Free(n *Node[T]) {
	if n == nil {
		return
	}
	n.Val = *new(T) //release references held by the recycled node.
	al.splice(n, n)
}

// FreeList splices the whole chain head..tail back into the free ring in
// O(1), without traversing it. tail must be reachable from head. No-op when
// either end is nil. Values held by the chain stay referenced until the nodes
// are reused; call Free per node instead when that matters.
func (al *Allocator[T]) FreeList(head, tail *Node[T]) {
	if head == nil || tail == nil {
		return
	}
	al.splice(head, tail)
}
