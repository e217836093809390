// Package atof converts decimal numerals to binary floating point numbers
// with correct rounding.
//
// Every conversion goes through decimal.Decimal: the numeral is scaled by
// powers of two until it lies in [0.5, 1), the mantissa bits are shifted in,
// and the result is rounded half to even. No fast path is taken, which makes
// the package a reference for faster converters.
package atof

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/hpd/decimal"
)

var (
	// Error is the error class for this package.
	Error = errs.Class("atof")

	// SyntaxError is returned when the input is not a numeral.
	SyntaxError = errs.Class("invalid syntax")

	// RangeError is returned when the value is too large for the format.
	RangeError = errs.Class("value out of range")
)

type floatInfo struct {
	mantbits uint
	expbits  uint
	bias     int
}

var (
	float32info = floatInfo{23, 8, -127}
	float64info = floatInfo{52, 11, -1023}
)

// powtab maps a decimal point to a power of two that moves it at most to
// zero.
var powtab = []int{1, 3, 6, 9, 13, 16, 19, 23, 26}

// ParseFloat converts s to the nearest float of the given size (32 or 64).
//
// The accepted syntax is an optional sign followed by a numeral as accepted
// by decimal.Parse, which must make up the whole string. Values too large for
// the format return ±Inf and a RangeError.
func ParseFloat(s string, bitSize int) (f float64, err error) {
	defer Error.WrapP(&err)

	var flt *floatInfo
	switch bitSize {
	case 32:
		flt = &float32info
	case 64:
		flt = &float64info
	default:
		return 0, Error.New("invalid bit size: %d", bitSize)
	}

	neg := false
	body := s
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}

	var d decimal.Decimal

	n := d.Set(body)
	if n == 0 || n != len(body) {
		return 0, SyntaxError.New("%q", s)
	}

	b, overflow := floatBits(&d, neg, flt)

	if bitSize == 32 {
		f = float64(math.Float32frombits(uint32(b)))
	} else {
		f = math.Float64frombits(b)
	}

	if overflow {
		return f, RangeError.New("%q", s)
	}

	return f, nil
}

// floatBits assembles the bits of d in the given format. d is consumed.
func floatBits(d *decimal.Decimal, neg bool, flt *floatInfo) (b uint64, overflow bool) {
	mant, exp, overflow := mantissa(d, flt)
	if overflow {
		mant = 0
		exp = 1<<flt.expbits - 1 + flt.bias
	}

	b = mant & (uint64(1)<<flt.mantbits - 1)
	b |= uint64((exp-flt.bias)&(1<<flt.expbits-1)) << flt.mantbits
	if neg {
		b |= 1 << flt.mantbits << flt.expbits
	}

	return b, overflow
}

// mantissa returns the rounded mantissa (with its leading bit) and the
// unbiased exponent of d.
func mantissa(d *decimal.Decimal, flt *floatInfo) (mant uint64, exp int, overflow bool) {
	if d.NumDigits() == 0 {
		return 0, flt.bias, false
	}

	// These bounds are for 64-bit floats and are loose enough for 32-bit.
	if d.DecimalPoint() > 310 {
		return 0, 0, true
	}
	if d.DecimalPoint() < -330 {
		return 0, flt.bias, false
	}

	// Scale by powers of two until in range [0.5, 1.0).
	for d.DecimalPoint() > 0 {
		n := 27
		if d.DecimalPoint() < len(powtab) {
			n = powtab[d.DecimalPoint()]
		}
		d.Shift(-n)
		exp += n
	}
	for d.DecimalPoint() < 0 || d.DecimalPoint() == 0 && d.Digits()[0] < 5 {
		n := 27
		if -d.DecimalPoint() < len(powtab) {
			n = powtab[-d.DecimalPoint()]
		}
		d.Shift(n)
		exp -= n
	}

	// The range is [0.5, 1) but floating point range is [1, 2).
	exp--

	// Minimum representable exponent is bias+1. Smaller values are
	// denormalized.
	if exp < flt.bias+1 {
		n := flt.bias + 1 - exp
		d.Shift(-n)
		exp += n
	}

	if exp-flt.bias >= 1<<flt.expbits-1 {
		return 0, 0, true
	}

	// Extract 1+mantbits bits.
	d.Shift(int(1 + flt.mantbits))
	mant = decimal.Round[uint64](d)

	// Rounding might have added a bit.
	if mant == 2<<flt.mantbits {
		mant >>= 1
		exp++
		if exp-flt.bias >= 1<<flt.expbits-1 {
			return 0, 0, true
		}
	}

	// Denormalized.
	if mant&(1<<flt.mantbits) == 0 {
		exp = flt.bias
	}

	return mant, exp, false
}
