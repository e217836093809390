package decimal

// maxShift is the largest single pass. Both 9<<60 + carry and rem*10 + 9
// stay below 2^64 for carries and remainders below 2^60.
const maxShift = 60

// Shift multiplies d by 2^k (k > 0) or divides it by 2^-k (k < 0).
func (d *Decimal) Shift(k int) {
	if d.nd == 0 {
		return
	}

	for k > maxShift {
		d.leftShift(maxShift)
		k -= maxShift
	}

	for k < -maxShift {
		d.rightShift(maxShift)
		k += maxShift
	}

	switch {
	case k > 0:
		d.leftShift(uint(k))
	case k < 0:
		d.rightShift(uint(-k))
	}
}

// leftShift multiplies by 2^k, k <= maxShift.
func (d *Decimal) leftShift(k uint) {
	var carry uint64

	for r := d.nd - 1; r >= 0; r-- {
		n := uint64(d.digits[r])<<k + carry
		carry = n / 10
		d.digits[r] = uint8(n - 10*carry)
	}

	// Count the digits of the final carry; they become the new most
	// significant digits.
	extra := 0
	for c := carry; c > 0; c /= 10 {
		extra++
	}

	if extra > 0 {
		end := d.nd + extra
		if end > MaxDigits {
			for _, c := range d.digits[MaxDigits-extra : d.nd] {
				if c != 0 {
					d.truncated = true
					break
				}
			}
			end = MaxDigits
		}

		copy(d.digits[extra:end], d.digits[:end-extra])

		for w := extra - 1; w >= 0; w-- {
			q := carry / 10
			d.digits[w] = uint8(carry - 10*q)
			carry = q
		}

		d.nd = end
		d.dp += extra
	}

	d.trim()
}

// rightShift divides by 2^k, k <= maxShift.
func (d *Decimal) rightShift(k uint) {
	r := 0 // read index
	w := 0 // write index

	// Pick up enough leading digits to produce the first nonzero quotient
	// digit. Running out of digits means the remainder is padded with zeros.
	var n uint64
	for ; n>>k == 0; r++ {
		if r >= d.nd {
			for n>>k == 0 {
				n *= 10
				r++
			}
			break
		}
		n = n*10 + uint64(d.digits[r])
	}
	d.dp -= r - 1

	mask := uint64(1)<<k - 1

	for ; r < d.nd; r++ {
		c := d.digits[r]
		d.digits[w] = uint8(n >> k)
		w++
		n = (n&mask)*10 + uint64(c)
	}

	// Exhaust the remainder.
	for n > 0 {
		dig := n >> k
		n &= mask
		if w < MaxDigits {
			d.digits[w] = uint8(dig)
			w++
		} else if dig > 0 {
			d.truncated = true
		}
		n *= 10
	}

	d.nd = w
	d.trim()
}
