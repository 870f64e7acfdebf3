package bignum

import (
	"fmt"
	"math/bits"
	"strings"
)

// Capacity is the fixed number of 64-bit words a BigNum can hold. It
// is shared by the data model and both shift routines and is never
// derived at runtime.
const Capacity = 8

// wordBits is the width of a single word. The shift decomposition
// avoids division: a whole-word count is the amount shifted right by
// wordShiftLog and the sub-word remainder is the low wordShiftLog
// bits.
const (
	wordBits     = 64
	wordShiftLog = 6
	bitShiftMask = wordBits - 1
)

// BigNum is a fixed-capacity unsigned integer.
//
// Words holds the value in little-endian word order: Words[0] is the
// least significant word. Len counts the significant words. The
// canonical form requires Words[Len-1] != 0 when Len > 0, Len == 0
// for zero, and all words at indices >= Len to be zero.
//
// The zero value of BigNum is the canonical zero.
type BigNum struct {
	Words [Capacity]uint64
	Len   int
}

// FromWords returns a BigNum holding the given little-endian words,
// normalized. It panics if more than Capacity words are given.
func FromWords(words ...uint64) *BigNum {
	if len(words) > Capacity {
		panic(fmt.Sprintf("bignum: %d words exceeds capacity %d", len(words), Capacity))
	}

	n := &BigNum{}
	copy(n.Words[:], words)
	n.Len = len(words)
	n.normalize()

	return n
}

// SetUint64 sets the number to the given value.
func (n *BigNum) SetUint64(v uint64) {
	n.Words = [Capacity]uint64{}
	n.Words[0] = v

	if v == 0 {
		n.Len = 0
	} else {
		n.Len = 1
	}
}

// SetBytes interprets data as a big-endian unsigned integer and sets
// the number to it. It fails if the value needs more than Capacity
// words.
func (n *BigNum) SetBytes(data []byte) (err error) {
	// Leading zero bytes carry no value and must not count against
	// the capacity.
	for len(data) > 0 && data[0] == 0 {
		data = data[1:]
	}

	if len(data) > Capacity*8 {
		return Error.New("value needs %d bytes, capacity is %d", len(data), Capacity*8)
	}

	n.Words = [Capacity]uint64{}
	n.Len = 0

	for i := len(data); i > 0; i -= 8 {
		lo := i - 8
		if lo < 0 {
			lo = 0
		}

		var w uint64
		for _, b := range data[lo:i] {
			w = w<<8 | uint64(b)
		}

		n.Words[n.Len] = w
		n.Len++
	}

	n.normalize()

	return nil
}

// Bytes returns the big-endian byte form of the number with no
// leading zero bytes. Zero yields an empty slice.
func (n *BigNum) Bytes() (data []byte) {
	if n.Len == 0 {
		return nil
	}

	data = make([]byte, 0, n.Len*8)

	top := n.Words[n.Len-1]
	for shift := (bits.Len64(top) - 1) / 8 * 8; shift >= 0; shift -= 8 {
		data = append(data, byte(top>>uint(shift)))
	}

	for i := n.Len - 2; i >= 0; i-- {
		for shift := wordBits - 8; shift >= 0; shift -= 8 {
			data = append(data, byte(n.Words[i]>>uint(shift)))
		}
	}

	return data
}

// IsZero returns true if the number is the canonical zero.
func (n *BigNum) IsZero() bool {
	return n.Len == 0
}

// BitLen returns the number of bits needed to represent the number.
// Zero has bit length 0.
func (n *BigNum) BitLen() int {
	if n.Len == 0 {
		return 0
	}

	return (n.Len-1)*wordBits + bits.Len64(n.Words[n.Len-1])
}

// Equal returns true if both numbers hold the same value. Both are
// assumed canonical.
func (n *BigNum) Equal(o *BigNum) bool {
	if n.Len != o.Len {
		return false
	}

	for i := 0; i < n.Len; i++ {
		if n.Words[i] != o.Words[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the number.
func (n *BigNum) Clone() *BigNum {
	c := *n

	return &c
}

// String returns the value in hex, highest word first.
func (n *BigNum) String() string {
	if n.Len == 0 {
		return "0x0"
	}

	sb := &strings.Builder{}

	fmt.Fprintf(sb, "0x%x", n.Words[n.Len-1])
	for i := n.Len - 2; i >= 0; i-- {
		fmt.Fprintf(sb, "%016x", n.Words[i])
	}

	return sb.String()
}

// normalize trims leading zero words so that the highest significant
// word is nonzero, leaving Len == 0 for zero. The zeroed-tail
// invariant is the caller's to maintain.
func (n *BigNum) normalize() {
	for n.Len > 0 && n.Words[n.Len-1] == 0 {
		n.Len--
	}
}
