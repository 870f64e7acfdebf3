package bignum

import "github.com/calebcase/oops"

// ShiftRight shifts num right by amount bits in place, equivalent to
// dividing by 2^amount with truncation.
//
// It returns Zeroed when the shift discards every significant bit;
// num is then the canonical zero. It fails with ErrNilNum when num is
// nil.
func ShiftRight(num *BigNum, amount uint) (Status, error) {
	if num == nil {
		return Success, oops.Trace(ErrNilNum)
	}

	if num.Len == 0 || amount == 0 {
		return Success, nil
	}

	wordShift := int(amount >> wordShiftLog)
	bitShift := uint(amount & bitShiftMask)

	if wordShift >= num.Len {
		for i := 0; i < num.Len; i++ {
			num.Words[i] = 0
		}
		num.Len = 0

		return Zeroed, nil
	}

	// Move whole words toward index 0. Destination indices never
	// exceed source indices, so an ascending copy reads every
	// source word before overwriting it.
	if wordShift > 0 {
		for i := 0; i < num.Len-wordShift; i++ {
			num.Words[i] = num.Words[i+wordShift]
		}

		for i := num.Len - wordShift; i < num.Len; i++ {
			num.Words[i] = 0
		}

		num.Len -= wordShift
	}

	// Sub-word shift with carries from the next-higher word. Each
	// pair of adjacent words acts as a 128-bit value: two shifts
	// and an OR keep the low half. Ascending order consumes the
	// pre-shift value of the higher word. bitShift == 0 must skip
	// this entirely: a 64-bit shift by 64 is not defined.
	if bitShift > 0 {
		for i := 0; i < num.Len-1; i++ {
			num.Words[i] = num.Words[i]>>bitShift | num.Words[i+1]<<(wordBits-bitShift)
		}

		num.Words[num.Len-1] >>= bitShift
	}

	num.normalize()

	if num.Len == 0 {
		return Zeroed, nil
	}

	return Success, nil
}

// ShiftLeft shifts num left by amount bits in place, equivalent to
// multiplying by 2^amount, bounded by the fixed capacity.
//
// It returns Overflow when any significant bit would land at or past
// bit 64*Capacity; num is then byte-for-byte unchanged. Overflow is
// detected before any word moves, since an in-place shift cannot be
// undone. It fails with ErrNilNum when num is nil.
func ShiftLeft(num *BigNum, amount uint) (Status, error) {
	if num == nil {
		return Success, oops.Trace(ErrNilNum)
	}

	if num.Len == 0 || amount == 0 {
		return Success, nil
	}

	// Overflow pre-check. num.Len > 0 here, so BitLen >= 1 and the
	// subtraction cannot wrap.
	if amount > Capacity*wordBits-uint(num.BitLen()) {
		return Overflow, nil
	}

	wordShift := int(amount >> wordShiftLog)
	bitShift := uint(amount & bitShiftMask)

	// Move whole words toward the top. Destination indices never
	// fall below source indices, so a descending copy reads every
	// source word before overwriting it.
	if wordShift > 0 {
		for i := num.Len - 1; i >= 0; i-- {
			num.Words[i+wordShift] = num.Words[i]
		}

		for i := 0; i < wordShift; i++ {
			num.Words[i] = 0
		}

		num.Len += wordShift
	}

	// Sub-word shift with carries from the next-lower word,
	// processed top down so each step consumes the pre-shift value
	// of the lower word. Bits leaving the old top word land in a
	// fresh word above it; the pre-check guarantees room.
	if bitShift > 0 {
		carry := num.Words[num.Len-1] >> (wordBits - bitShift)

		for i := num.Len - 1; i > wordShift; i-- {
			num.Words[i] = num.Words[i]<<bitShift | num.Words[i-1]>>(wordBits-bitShift)
		}

		num.Words[wordShift] <<= bitShift

		if carry != 0 {
			num.Words[num.Len] = carry
			num.Len++
		}
	}

	// No downward renormalization is needed: a left shift cannot
	// zero the top word, so Len already names the highest nonzero
	// word + 1.
	return Success, nil
}
