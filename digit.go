// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package biquinary implements a decimal arithmetic unit built on a modified
// bi-quinary digit encoding. Every decimal digit is stored as a 4-bit code,
// and fixed-width sequences of digits (mantissas) support addition and
// 9's-complement subtraction modulo 10^N.
//
// Only 10 of the 16 possible codes are assigned:
//
//	value  code
//	  0    0000
//	  1    0001
//	  2    0010
//	  3    0101
//	  4    0100
//	  5    1000
//	  6    1001
//	  7    1010
//	  8    1101
//	  9    1100
//
// All values are immutable and safe for concurrent use.
package biquinary

import (
	"fmt"
)

const (
	maxDigitValue = 9
	codeBits      = 4
	// invalidValue marks an unassigned slot of decodeTable.
	invalidValue  = -1
)

var (
	encodeTable = [maxDigitValue + 1]byte{
		0: 0b0000,
		1: 0b0001,
		2: 0b0010,
		3: 0b0101,
		4: 0b0100,
		5: 0b1000,
		6: 0b1001,
		7: 0b1010,
		8: 0b1101,
		9: 0b1100,
	}

	decodeTable = makeDecodeTable()
)

func makeDecodeTable() (table [1 << codeBits]int8) {
	for i := range table {
		table[i] = invalidValue
	}
	for value, code := range encodeTable {
		table[code] = int8(value)
	}
	return table
}

// Encode returns the 4-bit code for a digit value.
// Returns a RangeError if value is outside [0, 9].
func Encode(value int) (byte, error) {
	if value < 0 || value > maxDigitValue {
		return 0, RangeError.New("digit value %d out of range [0, 9]", value)
	}
	return encodeTable[value], nil
}

// Decode returns the digit value for a 4-bit code.
// Returns an InvalidPatternError if code is not one of the ten assigned codes.
func Decode(code byte) (int, error) {
	if v := decode(code); v != invalidValue {
		return v, nil
	}
	return 0, InvalidPatternError.New("unassigned code %04b", code)
}

func decode(code byte) int {
	if int(code) >= len(decodeTable) {
		return invalidValue
	}
	return int(decodeTable[code])
}

// Codes returns the code table indexed by digit value.
func Codes() [maxDigitValue + 1]byte {
	return encodeTable
}

// Digit is a decimal digit. It is stored as its bi-quinary code,
// so the zero Digit is the digit 0.
//
// Digits should be created with NewDigit or DigitFromCode.
// A conversion like Digit(0b0111) produces a value, which is not a digit:
// it is reported by Valid and rejected by mantissa constructors.
type Digit uint8

// NewDigit returns a digit for given value.
// Returns a RangeError if value is outside [0, 9].
func NewDigit(value int) (Digit, error) {
	code, err := Encode(value)
	if err != nil {
		return 0, err
	}
	return Digit(code), nil
}

// MustDigit is like NewDigit, but panics on error.
func MustDigit(value int) Digit {
	d, err := NewDigit(value)
	if err != nil {
		panic(err)
	}
	return d
}

// DigitFromCode returns a digit for given 4-bit code.
// Returns an InvalidPatternError if the code is not assigned.
func DigitFromCode(code byte) (Digit, error) {
	if _, err := Decode(code); err != nil {
		return 0, err
	}
	return Digit(code), nil
}

// Code returns the bi-quinary code of d.
func (d Digit) Code() byte {
	return byte(d)
}

// Value returns the decimal value of d, or -1 if d is not a valid digit.
func (d Digit) Value() int {
	return decode(byte(d))
}

// Valid returns true, if d holds one of the assigned codes.
func (d Digit) Valid() bool {
	return d.Value() != invalidValue
}

// Eq returns true, if both digits have the same code.
func (d Digit) Eq(other Digit) bool {
	return d == other
}

// Cmp compares decimal values of two digits.
// Returns -1 if d < other, 0 if d == other, 1 if d > other.
func (d Digit) Cmp(other Digit) int {
	return intCmp(d.Value(), other.Value())
}

// String returns the decimal character of d, or "?" for an invalid digit.
func (d Digit) String() string {
	v := d.Value()
	if v == invalidValue {
		return "?"
	}
	return string(rune('0' + v))
}

// GoString returns debug string representation.
func (d Digit) GoString() string {
	return fmt.Sprintf("Digit(%s){%04b}", d.String(), d.Code())
}

func (d Digit) complement9() Digit {
	return Digit(encodeTable[maxDigitValue-d.Value()])
}

// addDigits returns (a + b + carry) mod 10 and the carry to the next position.
func addDigits(a, b Digit, carry int) (Digit, int) {
	sum := a.Value() + b.Value() + carry
	return Digit(encodeTable[sum%10]), sum / 10
}

func intCmp(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
