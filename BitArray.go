package Fixed

import (
	"math/bits"
)

// NewBitArray of at least size bits, rounded up to a whole word.
func NewBitArray(size uint) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

type BitArray struct {
	bits []uint
}

func (u BitArray) Len() uint {
	return uint(len(u.bits)) * bits.UintSize
}

func (u BitArray) Get(i uint) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i uint) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i uint) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}
