package Fixed

import (
	"unsafe"
)

// Span describes a contiguous region of Len elements of type T starting at
// First. It never owns the region: the caller allocates it and must keep it
// alive for as long as the Span (or anything embedding it) is used. No bounds
// checking is performed by At.
type Span[T any] struct {
	First *T
	Len   uint
}

// Make a Span viewing all of s. s must not be resized afterwards.
func Make[T any](s []T) Span[T] {
	return Span[T]{unsafe.SliceData(s), uint(len(s))}
}

// At returns the address of element i. i < u.Len is the caller's obligation.
func (u Span[T]) At(i uint) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(u.First), unsafe.Sizeof(*new(T))*uintptr(i)))
}

// Slice views the whole span as a slice.
func (u Span[T]) Slice() []T {
	return unsafe.Slice(u.First, u.Len)
}
