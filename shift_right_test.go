package bignum_test

import (
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bignum"
)

func TestShiftRight(t *testing.T) {
	type TC struct {
		Name   string
		Num    *bignum.BigNum
		Amount uint
		Status bignum.Status
		Want   *bignum.BigNum
		Mark   error
	}

	tcs := []TC{
		{
			Name:   "shift by zero",
			Num:    bignum.FromWords(123),
			Amount: 0,
			Status: bignum.Success,
			Want:   bignum.FromWords(123),
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "within one word",
			Num:    bignum.FromWords(0xD),
			Amount: 2,
			Status: bignum.Success,
			Want:   bignum.FromWords(0x3),
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "carry between words",
			Num:    bignum.FromWords(0xAAAAAAAAAAAAAAAA, 0xF),
			Amount: 4,
			Status: bignum.Success,
			Want:   bignum.FromWords(0xFAAAAAAAAAAAAAAA),
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "whole word",
			Num:    bignum.FromWords(1, 2, 3),
			Amount: 64,
			Status: bignum.Success,
			Want:   bignum.FromWords(2, 3),
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "overlapping word move",
			Num:    bignum.FromWords(0x11, 0x22, 0x33, 0x44),
			Amount: 64,
			Status: bignum.Success,
			Want:   bignum.FromWords(0x22, 0x33, 0x44),
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "word and bit composite",
			Num:    bignum.FromWords(0xFF, 0xEE, 0xDD),
			Amount: 66,
			Status: bignum.Success,
			Want:   bignum.FromWords(0x400000000000003B, 0x37),
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "edge bit shift 1",
			Num:    bignum.FromWords(0x8000000000000001, 0x2),
			Amount: 1,
			Status: bignum.Success,
			Want:   bignum.FromWords(0x4000000000000000, 0x1),
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "edge bit shift 63",
			Num:    bignum.FromWords(0x8000000000000001, 0x2),
			Amount: 63,
			Status: bignum.Success,
			Want:   bignum.FromWords(0x5),
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "last bit out",
			Num:    bignum.FromWords(1),
			Amount: 1,
			Status: bignum.Zeroed,
			Want:   &bignum.BigNum{},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "shift equal to bit length",
			Num:    bignum.FromWords(0xFF),
			Amount: 8,
			Status: bignum.Zeroed,
			Want:   &bignum.BigNum{},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "beyond length",
			Num:    bignum.FromWords(1, 2, 3),
			Amount: 200,
			Status: bignum.Zeroed,
			Want:   &bignum.BigNum{},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "zero num",
			Num:    &bignum.BigNum{},
			Amount: 10,
			Status: bignum.Success,
			Want:   &bignum.BigNum{},
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "normalization after pure word move",
			Num:    bignum.FromWords(0, 0, 1),
			Amount: 128,
			Status: bignum.Success,
			Want:   bignum.FromWords(1),
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			status, err := bignum.ShiftRight(tc.Num, tc.Amount)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Status, status, tc.Mark)
			requireSame(t, tc.Want, tc.Num, tc.Mark)
		})
	}

	t.Run("nil num", func(t *testing.T) {
		_, err := bignum.ShiftRight(nil, 10)
		require.Error(t, err)
		require.Contains(t, err.Error(), "nil bignum")
	})
}
