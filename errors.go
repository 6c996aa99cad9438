// Copyright 2020 Aleksandr Demakin. All rights reserved.

package biquinary

import "github.com/zeebo/errs"

// Error classes returned by the package. Use Has to check the kind of an error:
//
//	if biquinary.RangeError.Has(err) { ... }
var (
	// RangeError is returned for a digit value outside [0, 9], a carry other than 0 or 1,
	// or a number which does not fit the requested width.
	RangeError          = errs.Class("range")
	// InvalidPatternError is returned when a 4-bit code is not one of the ten assigned patterns.
	InvalidPatternError = errs.Class("invalid pattern")
	// LengthError is returned for a width other than 3, 15, or 18, and for mantissas of different widths.
	LengthError         = errs.Class("length")
	// TypeError is returned when a value that is not a digit is supplied where a digit is required.
	TypeError           = errs.Class("type")
)
