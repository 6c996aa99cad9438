package mathutil

import (
	"math/bits"
)

// MaxDigits is the largest number of decimal digits for which every value fits a uint64.
const MaxDigits = 19

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow, or 0 if the result does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return 64 - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// Fits reports whether value can be written with at most n decimal digits.
func Fits(value uint64, n int) bool {
	if n <= 0 {
		return false
	}
	if n >= MaxDigits+1 {
		return true
	}
	return DecimalDigits(value) <= n
}

// SplitDigits writes the n least significant decimal digits of value into dst,
// most significant first. dst must have length n.
func SplitDigits(value uint64, dst []int) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = int(value % 10)
		value /= 10
	}
}

// JoinDigits is the inverse of SplitDigits.
// The result wraps around if digits represent a number larger than math.MaxUint64.
func JoinDigits(digits []int) uint64 {
	var result uint64
	for _, d := range digits {
		result = result*10 + uint64(d)
	}
	return result
}
