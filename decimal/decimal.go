package decimal

// MaxDigits is the capacity of the digit buffer.
const MaxDigits = 800

// exponentCap bounds exponent accumulation while parsing. Any exponent of
// this size already puts the value far outside every binary format.
const exponentCap = 100_000_000

// Decimal is a fixed capacity decimal significand with a decimal point.
type Decimal struct {
	digits    [MaxDigits]uint8
	nd        int
	dp        int
	truncated bool
}

// Parse returns the decimal represented by the longest accepted prefix of s.
func Parse(s string) Decimal {
	return ParseN(s, -1)
}

// ParseN is like Parse, but only the first n characters of s are visible.
// A negative n, or one larger than s, makes the whole input visible.
func ParseN(s string, n int) Decimal {
	if n >= 0 && n < len(s) {
		s = s[:n]
	}

	var d Decimal
	d.Set(s)

	return d
}

// Digits returns the stored digits, most significant first. The slice aliases
// the receiver and must not be modified.
func (d *Decimal) Digits() []uint8 {
	return d.digits[:d.nd]
}

// NumDigits returns the number of stored digits.
func (d *Decimal) NumDigits() int {
	return d.nd
}

// DecimalPoint returns the number of digits to the left of the decimal
// separator. It may be negative or larger than NumDigits.
func (d *Decimal) DecimalPoint() int {
	return d.dp
}

// Truncated reports whether digits were discarded.
func (d *Decimal) Truncated() bool {
	return d.truncated
}

// SetTruncated marks (or unmarks) the value as a floor of a longer numeral.
// It is meant for callers that handed over only a prefix of their input.
func (d *Decimal) SetTruncated(truncated bool) {
	d.truncated = truncated
}

// Set resets d to the value of the longest accepted prefix of s and returns
// the length of that prefix.
func (d *Decimal) Set(s string) (n int) {
	d.nd = 0
	d.dp = 0
	d.truncated = false

	i := 0

	// seen counts significant digits, stored or not.
	seen := 0
	sawdot := false
	sawdigits := false

scan:
	for ; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '.':
			if sawdot {
				break scan
			}
			sawdot = true
			d.dp = seen
		case '0' <= c && c <= '9':
			sawdigits = true

			if c == '0' && seen == 0 {
				// Leading zero. Only the ones after the
				// separator move the decimal point.
				if sawdot {
					d.dp--
				}
				continue
			}

			if seen < MaxDigits {
				d.digits[seen] = c - '0'
			} else if c != '0' {
				d.truncated = true
			}
			seen++
		default:
			break scan
		}
	}

	if !sawdigits {
		return 0
	}

	if !sawdot {
		d.dp = seen
	}

	d.nd = seen
	if d.nd > MaxDigits {
		d.nd = MaxDigits
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		exp, consumed := exponent(s[i+1:])
		if consumed > 0 {
			d.dp += exp
			i += 1 + consumed
		}
	}

	d.trim()

	return i
}

// exponent reads an optionally signed run of digits. It consumes nothing
// unless at least one digit is present.
func exponent(s string) (exp, n int) {
	sign := 1

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	start := i
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		if exp < exponentCap {
			exp = exp*10 + int(s[i]-'0')
		}
	}

	if i == start {
		return 0, 0
	}

	return sign * exp, i
}

// trim removes trailing zeros. A value without digits is zero and gets a zero
// decimal point.
func (d *Decimal) trim() {
	for d.nd > 0 && d.digits[d.nd-1] == 0 {
		d.nd--
	}

	if d.nd == 0 {
		d.dp = 0
	}
}
