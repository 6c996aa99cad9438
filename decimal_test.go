// Copyright 2020 Aleksandr Demakin. All rights reserved.

package biquinary

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/biquinary/internal/mathutil"
)

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m Mantissa
		d string
	}{
		{MustFromValues(0, 0, 0), "0"},
		{MustFromValues(3, 0, 9), "309"},
		{MustFromString("000000000000123"), "123"},
		{MustFromString("999999999999999999"), "999999999999999999"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.d, test.m.Decimal().String())
		})
	}
}

func TestFromDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		d     string
		width int
		str   string
		check func(error) bool
	}{
		{"0", Width3, "000", nil},
		{"309", Width3, "309", nil},
		{"309.000", Width3, "309", nil},
		{"3.09e2", Width3, "309", nil},
		{"123", Width15, "000000000000123", nil},
		{"999999999999999999", Width18, "999999999999999999", nil},
		{"1000", Width3, "", RangeError.Has},
		{"1e18", Width18, "", RangeError.Has},
		{"-1", Width3, "", RangeError.Has},
		{"1.5", Width3, "", RangeError.Has},
		{"1", 5, "", LengthError.Has},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("[%d]%s", i, test.d), func(t *testing.T) {
			d, err := decimal.NewFromString(test.d)
			require.NoError(t, err)
			m, err := FromDecimal(d, test.width)
			if test.check != nil {
				a.True(test.check(err), "%v", err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.str, m.String())
			}
		})
	}
}

// TestDecimalOracle checks Add and Sub against decimal arithmetic modulo 10^N.
func TestDecimalOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, width := range []int{Width3, Width15, Width18} {
		t.Run(fmt.Sprintf("%d", width), func(t *testing.T) {
			a := assert.New(t)
			limit := mathutil.Pow10(width)
			mod := decimal.New(int64(limit), 0)
			for i := 0; i < 1000; i++ {
				x, err := FromUint64(rnd.Uint64()%limit, width)
				require.NoError(t, err)
				y, err := FromUint64(rnd.Uint64()%limit, width)
				require.NoError(t, err)

				sum, err := x.Add(y)
				require.NoError(t, err)
				diff, err := x.Sub(y)
				require.NoError(t, err)

				wantSum := x.Decimal().Add(y.Decimal()).Mod(mod)
				wantDiff := x.Decimal().Add(mod).Sub(y.Decimal()).Mod(mod)
				a.Truef(wantSum.Equal(sum.Decimal()), "%s + %s = %s, want %s\n%s", x, y, sum, wantSum, spew.Sdump(x, y))
				a.Truef(wantDiff.Equal(diff.Decimal()), "%s - %s = %s, want %s\n%s", x, y, diff, wantDiff, spew.Sdump(x, y))

				back, err := FromDecimal(sum.Decimal(), width)
				require.NoError(t, err)
				a.True(back.Eq(sum))
			}
		})
	}
}

func randomMantissa(rnd *rand.Rand, width int) Mantissa {
	m, err := FromUint64(rnd.Uint64()%mathutil.Pow10(width), width)
	if err != nil {
		panic(err)
	}
	return m
}

func BenchmarkAdd(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	m0, m1 := randomMantissa(rnd, Width18), randomMantissa(rnd, Width18)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m0.Add(m1)
	}
}

func BenchmarkSub(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	m0, m1 := randomMantissa(rnd, Width18), randomMantissa(rnd, Width18)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m0.Sub(m1)
	}
}

func BenchmarkAddOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Add(f1)
	}
}

func BenchmarkAddDecimal(b *testing.B) {
	f0 := decimal.New(123456789012345678, 0)
	f1 := decimal.New(876543210987654321, 0)

	for i := 0; i < b.N; i++ {
		f0.Add(f1)
	}
}

func BenchmarkSubDecimal(b *testing.B) {
	f0 := decimal.New(123456789012345678, 0)
	f1 := decimal.New(876543210987654321, 0)

	for i := 0; i < b.N; i++ {
		f0.Sub(f1)
	}
}
