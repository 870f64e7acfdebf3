// Package bignum provides in-place logical bit shifts over a
// fixed-capacity arbitrary-precision unsigned integer.
//
// A BigNum is an array of Capacity 64-bit words in little-endian word
// order plus a count of significant words. The represented value is:
//
//  value = sum(Words[i] * 2^(64*i)) for i in [0, Len)
//
// This diagram indicates the word layout for Capacity = 8. Index 0 is
// the least significant word; words at and above Len are always zero.
//
//  | Words[7] | Words[6] | Words[5] | Words[4] | Words[3] | Words[2] | Words[1] | Words[0] |
//  |----------|----------|----------|----------|----------|----------|----------|----------|
//  | 2^(64*7) | 2^(64*6) | 2^(64*5) | 2^(64*4) | 2^(64*3) | 2^(64*2) | 2^(64*1) | 2^(64*0) |
//
// The canonical form keeps the highest significant word nonzero
// (Words[Len-1] != 0 when Len > 0) and represents zero as Len == 0
// with every word zero. Both shift operations restore canonical form
// before returning.
//
// Shifting
//
// ShiftRight and ShiftLeft decompose the bit count into a whole-word
// move plus a sub-word rotation with carries between adjacent words:
//
//  amount = wordShift*64 + bitShift     (0 <= bitShift < 64)
//
// The word move is performed in place over overlapping ranges, so the
// copy direction is chosen by shift direction: ascending indices for
// right shifts, descending for left shifts. The sub-word rotation
// treats each adjacent word pair as a 128-bit value and keeps the half
// that lands in the destination word.
//
// A right shift that discards every significant bit reports Zeroed and
// leaves the canonical zero. A left shift that would carry any
// significant bit to or past bit 64*Capacity reports Overflow and
// leaves the number untouched.
//
// Concurrency
//
// The engine holds no package-level state and performs no allocation
// or I/O; each operation reads and writes only the BigNum it is given.
// Concurrent calls on distinct instances are safe. Concurrent calls on
// the same instance are a data race and the caller's responsibility.
package bignum
