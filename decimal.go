// Copyright 2020 Aleksandr Demakin. All rights reserved.

package biquinary

import (
	"github.com/shopspring/decimal"

	"github.com/avdva/biquinary/internal/mathutil"
)

// Decimal returns the number represented by m as a decimal.Decimal with zero exponent.
func (m Mantissa) Decimal() decimal.Decimal {
	// every allowed width fits an int64.
	return decimal.New(int64(m.Uint64()), 0)
}

// FromDecimal returns a mantissa of given width for a non-negative integral decimal.
// Returns a RangeError if d is negative, has a fractional part, or does not fit the width.
func FromDecimal(d decimal.Decimal, width int) (Mantissa, error) {
	if err := checkWidth(width); err != nil {
		return Mantissa{}, err
	}
	if d.Sign() < 0 {
		return Mantissa{}, RangeError.New("negative value %s", d)
	}
	if !d.Equal(d.Truncate(0)) {
		return Mantissa{}, RangeError.New("%s is not an integer", d)
	}
	limit := decimal.New(int64(mathutil.Pow10(width)), 0)
	if d.Cmp(limit) >= 0 {
		return Mantissa{}, RangeError.New("%s does not fit %d digits", d, width)
	}
	return FromUint64(uint64(d.IntPart()), width)
}
