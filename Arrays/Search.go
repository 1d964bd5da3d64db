package Arrays

import (
	Fixed "github.com/g-m-twostay/go-fixed"
)

// BinarySearch bisects the sorted, duplicate-free span s for key. cmp follows
// the usual three-way contract: negative when a orders before b, 0 on match.
// On success the returned index holds an element comparing equal to key; on
// failure it is the position where key would be inserted to keep s sorted.
// With duplicate elements present the result is unspecified: it may land on
// any of the duplicates or one slot past them. An empty span yields (0, false).
func BinarySearch[T any](s Fixed.Span[T], key T, cmp func(a, b T) int) (uint, bool) {
	lo, hi := uint(0), s.Len
	for lo < hi {
		mid := lo + (hi-lo)>>1
		if c := cmp(key, *s.At(mid)); c == 0 {
			return mid, true
		} else if c > 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, false
}

// LinearSearch scans s front to back and returns the index of the first
// element comparing equal to key. s needs no ordering. Not found yields
// (s.Len, false).
func LinearSearch[T any](s Fixed.Span[T], key T, cmp func(a, b T) int) (uint, bool) {
	for i := uint(0); i < s.Len; i++ {
		if cmp(key, *s.At(i)) == 0 {
			return i, true
		}
	}
	return s.Len, false
}
