package bignum

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("bignum")

// ErrNilNum is returned when an operation is given a nil BigNum.
var ErrNilNum = Error.New("nil bignum")
