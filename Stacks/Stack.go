package Stacks

import (
	Fixed "github.com/g-m-twostay/go-fixed"
)

// Stack is a fixed-capacity LIFO over caller-supplied storage. It never grows;
// Push on a full stack reports failure.
type Stack[T any] struct {
	vs   Fixed.Span[T]
	used uint
}

// New Stack over storage vs. Returns nil when vs is empty.
func New[T any](vs Fixed.Span[T]) *Stack[T] {
	if vs.First == nil || vs.Len == 0 {
		return nil
	}
	return &Stack[T]{vs: vs}
}

func (u *Stack[T]) Size() uint {
	return u.used
}

func (u *Stack[T]) Cap() uint {
	return u.vs.Len
}

func (u *Stack[T]) Empty() bool {
	return u.used == 0
}

// Push v. Returns false when full.
func (u *Stack[T]) Push(v T) bool {
	if u.used == u.vs.Len {
		return false
	}
	*u.vs.At(u.used) = v
	u.used++
	return true
}

// Pop removes and returns the top element. Returns false when empty.
func (u *Stack[T]) Pop() (v T, ok bool) {
	if u.used == 0 {
		return
	}
	u.used--
	v, ok = *u.vs.At(u.used), true
	*u.vs.At(u.used) = *new(T)
	return
}

// Peek returns the address of the top element, nil when empty. The address is
// invalidated by the next Push or Pop.
func (u *Stack[T]) Peek() *T {
	if u.used == 0 {
		return nil
	}
	return u.vs.At(u.used - 1)
}

func (u *Stack[T]) Clear() {
	for i := uint(0); i < u.used; i++ {
		*u.vs.At(i) = *new(T)
	}
	u.used = 0
}
