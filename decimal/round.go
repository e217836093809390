package decimal

// Unsigned is the set of integer types Round can produce.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Rounding selects how the fractional tail is resolved.
type Rounding uint8

const (
	// Nearest rounds to the nearest integer, ties to even. A truncated
	// value is never a tie.
	Nearest Rounding = iota
	// Up rounds toward positive infinity.
	Up
	// Down rounds toward zero.
	Down
)

// String implements fmt.Stringer.
func (r Rounding) String() string {
	switch r {
	case Nearest:
		return "nearest"
	case Up:
		return "up"
	case Down:
		return "down"
	}

	return "unknown"
}

// maxIntegerDigits is the length of the largest uint64.
const maxIntegerDigits = 20

// Round returns d rounded to the nearest integer of type T, ties to even.
//
// The result is undefined when the integer does not fit in T. Callers check
// NumDigits and DecimalPoint beforehand.
func Round[T Unsigned](d *Decimal) T {
	return RoundMode[T](d, Nearest)
}

// RoundMode is like Round with an explicit rounding direction.
func RoundMode[T Unsigned](d *Decimal, mode Rounding) T {
	if d.dp > maxIntegerDigits {
		return ^T(0)
	}

	var n T

	i := 0
	for ; i < d.dp && i < d.nd; i++ {
		n = n*10 + T(d.digits[i])
	}
	for ; i < d.dp; i++ {
		n *= 10
	}

	if d.roundUp(mode) {
		n++
	}

	return n
}

// roundUp reports whether the integer part must be incremented.
func (d *Decimal) roundUp(mode Rounding) bool {
	switch mode {
	case Down:
		return false
	case Up:
		return d.dp < d.nd || d.truncated
	}

	// The tail starts below the first stored digit: value < 0.1.
	if d.dp < 0 {
		return false
	}

	// No stored tail.
	if d.dp >= d.nd {
		return false
	}

	// Exactly half way, unless digits were lost.
	if d.digits[d.dp] == 5 && d.dp+1 == d.nd {
		if d.truncated {
			return true
		}

		return d.dp > 0 && d.digits[d.dp-1]%2 == 1
	}

	return d.digits[d.dp] >= 5
}
