// Copyright 2020 Aleksandr Demakin. All rights reserved.

package biquinary

import (
	"strings"

	"github.com/avdva/biquinary/internal/mathutil"
)

// Allowed mantissa widths.
const (
	// Width3 is a short width for tests and examples.
	Width3  = 3
	Width15 = 15
	Width18 = 18
)

// ValidWidth returns true, if n is one of the allowed mantissa widths.
func ValidWidth(n int) bool {
	switch n {
	case Width3, Width15, Width18:
		return true
	default:
		return false
	}
}

func checkWidth(n int) error {
	if !ValidWidth(n) {
		return LengthError.New("mantissa must have 3, 15 or 18 digits, got %d", n)
	}
	return nil
}

// Mantissa is an unsigned fixed-width decimal number.
// Digits are stored most significant first.
//
// The zero Mantissa has no digits and can't be used in arithmetic.
type Mantissa struct {
	digits []Digit
}

// FromDigits returns a mantissa with a copy of given digits.
// Returns a LengthError if the number of digits is not an allowed width,
// and a TypeError if any of the elements is not a valid digit.
func FromDigits(digits []Digit) (Mantissa, error) {
	return fromOwnedDigits(append([]Digit(nil), digits...))
}

func fromOwnedDigits(digits []Digit) (Mantissa, error) {
	if err := checkWidth(len(digits)); err != nil {
		return Mantissa{}, err
	}
	for i, d := range digits {
		if !d.Valid() {
			return Mantissa{}, TypeError.New("element %d is not a digit: %04b", i, d.Code())
		}
	}
	return Mantissa{digits: digits}, nil
}

// FromValues returns a mantissa for given digit values, most significant first.
// Returns a RangeError if any of the values is outside [0, 9].
func FromValues(values []int) (Mantissa, error) {
	digits := make([]Digit, len(values))
	for i, v := range values {
		code, err := Encode(v)
		if err != nil {
			return Mantissa{}, RangeError.New("element %d: digit value %d out of range [0, 9]", i, v)
		}
		digits[i] = Digit(code)
	}
	return fromOwnedDigits(digits)
}

// MustFromValues is like FromValues, but panics on error.
func MustFromValues(values ...int) Mantissa {
	m, err := FromValues(values)
	if err != nil {
		panic(err)
	}
	return m
}

// FromCodes returns a mantissa for given bi-quinary codes, most significant first.
// Returns an InvalidPatternError if any of the codes is not assigned.
func FromCodes(codes []byte) (Mantissa, error) {
	digits := make([]Digit, len(codes))
	for i, code := range codes {
		if decode(code) == invalidValue {
			return Mantissa{}, InvalidPatternError.New("element %d: unassigned code %04b", i, code)
		}
		digits[i] = Digit(code)
	}
	return fromOwnedDigits(digits)
}

// FromString parses a string of decimal characters, like "0123".
// Returns a RangeError for any other character.
func FromString(s string) (Mantissa, error) {
	digits := make([]Digit, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return Mantissa{}, RangeError.New("unexpected symbol %q at pos %d", r, i)
		}
		digits = append(digits, Digit(encodeTable[r-'0']))
	}
	return fromOwnedDigits(digits)
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Mantissa {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a mantissa of given width with all digits set to 0.
func Zero(width int) (Mantissa, error) {
	if err := checkWidth(width); err != nil {
		return Mantissa{}, err
	}
	digits := make([]Digit, width)
	for i := range digits {
		digits[i] = Digit(encodeTable[0])
	}
	return Mantissa{digits: digits}, nil
}

// FromUint64 returns a mantissa of given width representing v.
// Returns a RangeError if v has more than width digits.
func FromUint64(v uint64, width int) (Mantissa, error) {
	if err := checkWidth(width); err != nil {
		return Mantissa{}, err
	}
	if !mathutil.Fits(v, width) {
		return Mantissa{}, RangeError.New("%d does not fit %d digits", v, width)
	}
	values := make([]int, width)
	mathutil.SplitDigits(v, values)
	return FromValues(values)
}

// Len returns the number of digits.
func (m Mantissa) Len() int {
	return len(m.digits)
}

// Digit returns the i-th digit, counting from the most significant one.
// It panics if i is out of range.
func (m Mantissa) Digit(i int) Digit {
	return m.digits[i]
}

// Digits returns a copy of the digits.
func (m Mantissa) Digits() []Digit {
	return append([]Digit(nil), m.digits...)
}

// Values returns decimal values of the digits.
func (m Mantissa) Values() []int {
	values := make([]int, len(m.digits))
	for i, d := range m.digits {
		values[i] = d.Value()
	}
	return values
}

// Codes returns bi-quinary codes of the digits.
func (m Mantissa) Codes() []byte {
	codes := make([]byte, len(m.digits))
	for i, d := range m.digits {
		codes[i] = d.Code()
	}
	return codes
}

// Uint64 returns the number represented by m.
func (m Mantissa) Uint64() uint64 {
	return mathutil.JoinDigits(m.Values())
}

// IsZero returns true, if all digits are 0.
func (m Mantissa) IsZero() bool {
	for _, d := range m.digits {
		if d.Value() != 0 {
			return false
		}
	}
	return true
}

// Eq returns true, if both mantissas have the same width and digits.
func (m Mantissa) Eq(other Mantissa) bool {
	if len(m.digits) != len(other.digits) {
		return false
	}
	for i, d := range m.digits {
		if !d.Eq(other.digits[i]) {
			return false
		}
	}
	return true
}

// Cmp compares the numbers represented by two mantissas, regardless of their widths.
// Returns -1 if m < other, 0 if m == other, 1 if m > other.
func (m Mantissa) Cmp(other Mantissa) int {
	a, b := m.Uint64(), other.Uint64()
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// String returns decimal digits of m, most significant first.
func (m Mantissa) String() string {
	var builder strings.Builder
	builder.Grow(len(m.digits))
	for _, d := range m.digits {
		builder.WriteString(d.String())
	}
	return builder.String()
}

// GoString returns debug string representation.
func (m Mantissa) GoString() string {
	return "Mantissa(" + m.String() + ")"
}

func (m Mantissa) checkOperand(other Mantissa) error {
	if len(m.digits) != len(other.digits) {
		return LengthError.New("mantissa widths differ: %d and %d", len(m.digits), len(other.digits))
	}
	return checkWidth(len(m.digits))
}

// Add returns (m + other) mod 10^N.
// Returns a LengthError if the widths differ.
func (m Mantissa) Add(other Mantissa) (Mantissa, error) {
	return m.AddCarry(other, 0)
}

// AddCarry returns (m + other + carry) mod 10^N. Carry must be 0 or 1.
func (m Mantissa) AddCarry(other Mantissa, carry int) (Mantissa, error) {
	result, _, err := m.AddWithCarry(other, carry)
	return result, err
}

// AddWithCarry is like AddCarry, but also returns the carry out of the most significant digit.
// The carry is not an error: the result is always truncated to N digits.
func (m Mantissa) AddWithCarry(other Mantissa, carry int) (result Mantissa, carryOut int, err error) {
	if err = m.checkOperand(other); err != nil {
		return Mantissa{}, 0, err
	}
	if carry != 0 && carry != 1 {
		return Mantissa{}, 0, RangeError.New("carry must be 0 or 1, got %d", carry)
	}
	digits := make([]Digit, len(m.digits))
	// from the least significant digit to the most significant one.
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i], carry = addDigits(m.digits[i], other.digits[i], carry)
	}
	return Mantissa{digits: digits}, carry, nil
}

// Complement9 returns the 9's complement of m: every digit d becomes 9-d.
func (m Mantissa) Complement9() Mantissa {
	if m.digits == nil {
		return Mantissa{}
	}
	digits := make([]Digit, len(m.digits))
	for i, d := range m.digits {
		digits[i] = d.complement9()
	}
	return Mantissa{digits: digits}
}

// Sub returns (m - other) mod 10^N.
// It adds the 9's complement of other with an initial carry of 1,
// so if m < other, the result is 10^N - (other - m).
// Returns a LengthError if the widths differ.
func (m Mantissa) Sub(other Mantissa) (Mantissa, error) {
	if err := m.checkOperand(other); err != nil {
		return Mantissa{}, err
	}
	return m.AddCarry(other.Complement9(), 1)
}
