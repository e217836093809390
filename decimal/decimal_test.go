package decimal_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/hpd/decimal"
)

// digits converts a string of decimal characters to digit values.
func digits(s string) []uint8 {
	ds := make([]uint8, len(s))
	for i := range s {
		ds[i] = s[i] - '0'
	}

	return ds
}

func TestParse(t *testing.T) {
	type TC struct {
		name      string
		input     string
		n         int
		digits    []uint8
		dp        int
		truncated bool
		consumed  int
		Mark      error
	}

	tcs := []TC{
		{
			name:     "basic",
			input:    "1.2345",
			n:        -1,
			digits:   digits("12345"),
			dp:       1,
			consumed: 6,
		},
		{
			name:     "fraction only",
			input:    ".5",
			n:        -1,
			digits:   digits("5"),
			dp:       0,
			consumed: 2,
		},
		{
			name:     "trailing zeros before separator",
			input:    "500",
			n:        -1,
			digits:   digits("5"),
			dp:       3,
			consumed: 3,
		},
		{
			name:     "leading fraction zeros",
			input:    "0.05",
			n:        -1,
			digits:   digits("5"),
			dp:       -1,
			consumed: 4,
		},
		{
			name:     "leading and trailing zeros",
			input:    "000123.4500",
			n:        -1,
			digits:   digits("12345"),
			dp:       3,
			consumed: 11,
		},
		{
			name:     "big exponent",
			input:    "1e123456789",
			n:        -1,
			digits:   digits("1"),
			dp:       123456789 + 1,
			consumed: 11,
		},
		{
			name:     "big negative exponent",
			input:    "1e-123456789",
			n:        -1,
			digits:   digits("1"),
			dp:       -123456789 + 1,
			consumed: 12,
		},
		{
			name:     "budget cuts exponent",
			input:    "1e123456789",
			n:        5,
			digits:   digits("1"),
			dp:       123 + 1,
			consumed: 5,
		},
		{
			name:     "budget cuts signed exponent",
			input:    "1e-123456789",
			n:        5,
			digits:   digits("1"),
			dp:       -12 + 1,
			consumed: 5,
		},
		{
			name:     "budget ends at exponent marker",
			input:    "123456789e1",
			n:        10,
			digits:   digits("123456789"),
			dp:       9,
			consumed: 9,
		},
		{
			name:     "budget cuts digits",
			input:    "123456789e1",
			n:        5,
			digits:   digits("12345"),
			dp:       5,
			consumed: 5,
		},
		{
			name:     "budget larger than input",
			input:    "123456789e1",
			n:        100,
			digits:   digits("123456789"),
			dp:       10,
			consumed: 11,
		},
		{
			name:     "explicit positive exponent",
			input:    "12.5e+1",
			n:        -1,
			digits:   digits("125"),
			dp:       3,
			consumed: 7,
		},
		{
			name:     "upper case exponent",
			input:    "1E2",
			n:        -1,
			digits:   digits("1"),
			dp:       3,
			consumed: 3,
		},
		{
			name:     "saturated exponent",
			input:    "1e99999999999",
			n:        -1,
			digits:   digits("1"),
			dp:       999999999 + 1,
			consumed: 13,
		},
		{
			name:     "stops at unknown character",
			input:    "2.5x",
			n:        -1,
			digits:   digits("25"),
			dp:       1,
			consumed: 3,
		},
		{
			name:     "stops at second separator",
			input:    "1.2.3",
			n:        -1,
			digits:   digits("12"),
			dp:       1,
			consumed: 3,
		},
		{
			name:     "dangling exponent marker",
			input:    "1e",
			n:        -1,
			digits:   digits("1"),
			dp:       1,
			consumed: 1,
		},
		{
			name:     "dangling exponent sign",
			input:    "1e+",
			n:        -1,
			digits:   digits("1"),
			dp:       1,
			consumed: 1,
		},
		{
			name:     "zero with exponent",
			input:    "0e5",
			n:        -1,
			digits:   digits(""),
			dp:       0,
			consumed: 3,
		},
		{
			name:     "empty",
			input:    "",
			n:        -1,
			digits:   digits(""),
			dp:       0,
			consumed: 0,
		},
		{
			name:     "no digits",
			input:    ".e5",
			n:        -1,
			digits:   digits(""),
			dp:       0,
			consumed: 0,
		},
		{
			name:      "over capacity",
			input:     strings.Repeat("1", decimal.MaxDigits+1),
			n:         -1,
			digits:    digits(strings.Repeat("1", decimal.MaxDigits)),
			dp:        decimal.MaxDigits + 1,
			truncated: true,
			consumed:  decimal.MaxDigits + 1,
		},
		{
			name:     "over capacity with zeros only",
			input:    strings.Repeat("1", decimal.MaxDigits) + "000.000",
			n:        -1,
			digits:   digits(strings.Repeat("1", decimal.MaxDigits)),
			dp:       decimal.MaxDigits + 3,
			consumed: decimal.MaxDigits + 7,
		},
		{
			name:     "long leading zeros",
			input:    "0." + strings.Repeat("0", 1000) + "1",
			n:        -1,
			digits:   digits("1"),
			dp:       -1000,
			consumed: 1003,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			tc.Mark = oops.New("unexpected")

			d := decimal.ParseN(tc.input, tc.n)
			require.Equal(t, tc.digits, d.Digits(), tc.Mark)
			require.Equal(t, len(tc.digits), d.NumDigits(), tc.Mark)
			require.Equal(t, tc.dp, d.DecimalPoint(), tc.Mark)
			require.Equal(t, tc.truncated, d.Truncated(), tc.Mark)

			visible := tc.input
			if tc.n >= 0 && tc.n < len(visible) {
				visible = visible[:tc.n]
			}

			var s decimal.Decimal
			consumed := s.Set(visible)
			require.Equal(t, tc.consumed, consumed, tc.Mark)
			require.Equal(t, d.Digits(), s.Digits(), spew.Sdump(s.Digits()))
			require.Equal(t, d.DecimalPoint(), s.DecimalPoint(), tc.Mark)
		})
	}
}

func TestSetResets(t *testing.T) {
	d := decimal.Parse(strings.Repeat("7", decimal.MaxDigits+10))
	require.True(t, d.Truncated())

	n := d.Set("42")
	require.Equal(t, 2, n)
	require.Equal(t, digits("42"), d.Digits())
	require.Equal(t, 2, d.DecimalPoint())
	require.False(t, d.Truncated())
}

func TestCopy(t *testing.T) {
	a := decimal.Parse("1.2345")
	b := a

	b.Shift(1)

	require.Equal(t, digits("12345"), a.Digits())
	require.Equal(t, digits("2469"), b.Digits())
}

func TestSetTruncated(t *testing.T) {
	d := decimal.Parse("2.5")
	require.False(t, d.Truncated())

	d.SetTruncated(true)
	require.True(t, d.Truncated())

	d.Shift(3)
	d.Shift(-3)
	require.True(t, d.Truncated())

	d.SetTruncated(false)
	require.False(t, d.Truncated())
}
