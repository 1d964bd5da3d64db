package Lists

// InsertMode selects what SortedInsert does when cmp reports an element equal
// to the one being inserted.
type InsertMode byte

const (
	Fail     InsertMode = iota //keep the existing element, report failure.
	Replace                    //overwrite the existing element's value in place.
	AllowDup                   //insert anyway, adjacent to its equals.
)

// Len of the chain starting at head.
func Len[T any](head *Node[T]) uint {
	var n uint
	for ; head != nil; head = head.nx {
		n++
	}
	return n
}

// Reverse the chain in place, returning the new head.
func Reverse[T any](head *Node[T]) *Node[T] {
	var pre *Node[T]
	for head != nil {
		head.nx, pre, head = pre, head, head.nx
	}
	return pre
}

// Rotate the chain left by n: the first n%Len nodes move to the tail.
func Rotate[T any](head *Node[T], n uint) *Node[T] {
	if head == nil {
		return nil
	}
	if n %= Len(head); n == 0 {
		return head
	}
	cut := head
	for i := n; i > 1; i-- {
		cut = cut.nx
	}
	newHead := cut.nx
	cut.nx = nil
	tail := newHead
	for tail.nx != nil {
		tail = tail.nx
	}
	tail.nx = head
	return newHead
}

// Append chain b after the last node of a. Either may be nil.
func Append[T any](a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	tail := a
	for tail.nx != nil {
		tail = tail.nx
	}
	tail.nx = b
	return a
}

// Merge two cmp-sorted chains into one sorted chain, reusing the nodes. On
// ties nodes from a come first.
func Merge[T any](a, b *Node[T], cmp func(x, y T) int) *Node[T] {
	var head *Node[T]
	at := &head
	for a != nil && b != nil {
		if cmp(b.Val, a.Val) < 0 {
			*at, b = b, b.nx
		} else {
			*at, a = a, a.nx
		}
		at = &(*at).nx
	}
	if *at = a; a == nil {
		*at = b
	}
	return head
}

// SortedInsert places v into the cmp-sorted chain at head, drawing the new
// node from al. mode decides the outcome when an equal element already
// exists; under AllowDup the new node lands before the first equal one.
// Returns the possibly-new head and whether v was stored (inserted or, under
// Replace, overwritten).
func (al *Allocator[T]) SortedInsert(head *Node[T], v T, cmp func(x, y T) int, mode InsertMode) (*Node[T], bool) {
	at := &head
	for ; *at != nil; at = &(*at).nx {
		c := cmp(v, (*at).Val)
		if c < 0 {
			break
		}
		if c == 0 {
			switch mode {
			case Fail:
				return head, false
			case Replace:
				(*at).Val = v
				return head, true
			}
			break //AllowDup: insert right here, before its equal.
		}
	}
	*at = al.New(*at, v)
	return head, true
}

// Remove unlinks the first node comparing equal to key and returns the
// remaining chain plus the removed node (nil when absent). The removed node
// is the caller's to free.
func Remove[T any](head *Node[T], key T, cmp func(x, y T) int) (*Node[T], *Node[T]) {
	at := &head
	for ; *at != nil; at = &(*at).nx {
		if cmp(key, (*at).Val) == 0 {
			out := *at
			*at = out.nx
			out.nx = nil
			return head, out
		}
	}
	return head, nil
}

// Find returns the first node comparing equal to key, nil when absent.
func Find[T any](head *Node[T], key T, cmp func(x, y T) int) *Node[T] {
	for ; head != nil; head = head.nx {
		if cmp(key, head.Val) == 0 {
			return head
		}
	}
	return nil
}

// Visit applies f to every node's value front to back, stopping at the first
// node for which f returns false and returning it; nil when the whole chain
// was visited.
func Visit[T any](head *Node[T], f func(*T) bool) *Node[T] {
	for ; head != nil; head = head.nx {
		if !f(&head.Val) {
			return head
		}
	}
	return nil
}
