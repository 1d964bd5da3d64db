package Maps

import (
	Fixed "github.com/g-m-twostay/go-fixed"
	"github.com/g-m-twostay/go-fixed/Lists"
	"unsafe"
)

// Table is a chained hash table with a fixed number of slots. Each slot heads
// an ordinary chain of Lists nodes; collision nodes are drawn from a Lists
// Allocator, so inserts cost no allocation beyond the allocator's amortized
// block growth. The table never rehashes: nslot is fixed for its lifetime,
// and degenerate chains under a skewed hashF are the caller's sizing problem,
// not an error.
type Table[T any] struct {
	slots []*Lists.Node[T]
	al    *Lists.Allocator[T]
	hashF func(T) uint
	cmp   func(x, y T) int
	sz    uint
}

// New Table with nslot chains. hashF maps an element to a slot (mod nslot is
// applied here); cmp resolves collisions within a chain, 0 meaning equal. al
// may be nil, in which case the table gets a private allocator; sharing one
// allocator across tables is fine as long as a single thread owns it.
// Returns nil when nslot is 0 or either callback is nil; these are checked
// once here.
func New[T any](nslot uint, hashF func(T) uint, cmp func(x, y T) int, al *Lists.Allocator[T]) *Table[T] {
	if nslot == 0 || hashF == nil || cmp == nil {
		return nil
	}
	if al == nil {
		al = Lists.NewAllocator[T](0)
	}
	return &Table[T]{slots: make([]*Lists.Node[T], nslot), al: al, hashF: hashF, cmp: cmp}
}

// NewHashed is New for comparable elements hashed by their memory contents
// with a seeded runtime hash.
func NewHashed[T comparable](nslot, seed uint, al *Lists.Allocator[T]) *Table[T] {
	h := Fixed.Hasher(seed)
	return New(nslot, func(v T) uint {
		return h.HashMem(unsafe.Pointer(&v), unsafe.Sizeof(v))
	}, func(x, y T) int {
		if x == y {
			return 0
		}
		return 1
	}, al)
}

func (u *Table[T]) slot(v T) **Lists.Node[T] {
	return &u.slots[u.hashF(v)%uint(len(u.slots))]
}

// Insert prepends v to its chain. Duplicates are allowed; the newest insert
// shadows older equals for Get and Remove.
func (u *Table[T]) Insert(v T) {
	s := u.slot(v)
	*s = u.al.New(*s, v)
	u.sz++
}

// Put replaces the first element comparing equal to v, or inserts v when
// absent. Returns whether an existing element was replaced.
func (u *Table[T]) Put(v T) bool {
	s := u.slot(v)
	if n := Lists.Find(*s, v, u.cmp); n != nil {
		n.Val = v
		return true
	}
	*s = u.al.New(*s, v)
	u.sz++
	return false
}

// Get returns the first element of key's chain comparing equal to key.
func (u *Table[T]) Get(key T) (v T, ok bool) {
	if n := Lists.Find(*u.slot(key), key, u.cmp); n != nil {
		return n.Val, true
	}
	return
}

// Has reports whether an element comparing equal to key is present.
func (u *Table[T]) Has(key T) bool {
	_, ok := u.Get(key)
	return ok
}

// Remove unlinks the first element comparing equal to key, recycles its node
// back to the allocator, and returns the removed value.
func (u *Table[T]) Remove(key T) (v T, ok bool) {
	s := u.slot(key)
	head, out := Lists.Remove(*s, key, u.cmp)
	if *s = head; out == nil {
		return
	}
	v, ok = out.Val, true
	u.al.Free(out)
	u.sz--
	return
}

// Visit applies f to every element, chains in slot order and each chain head
// to tail, stopping at the first element for which f returns false and
// returning its address; nil when every element was visited. The order within
// a chain is newest first.
func (u *Table[T]) Visit(f func(*T) bool) *T {
	for _, head := range u.slots {
		if n := Lists.Visit(head, f); n != nil {
			return &n.Val
		}
	}
	return nil
}

// Size is the number of elements currently stored, duplicates included.
func (u *Table[T]) Size() uint {
	return u.sz
}
