// Package integer converts decimals to integers of arbitrary width.
package integer

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/hpd/decimal"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

var ten = big.NewInt(10)

// Block is a signed integer number.
type Block struct {
	// Value is the big-endian magnitude. Zero is a single zero byte.
	Value    []byte
	Negative bool
}

// Schema for an integer.
type Schema struct {
	Bits uint64

	Signed bool
}

// limit returns the largest magnitude the schema can hold for the given sign.
func (s Schema) limit(negative bool) *big.Int {
	bits := s.Bits
	if s.Signed {
		bits--
	}

	l := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	if !(s.Signed && negative) {
		l.Sub(l, big.NewInt(1))
	}

	return l
}

// Int returns the value of the block.
func (b *Block) Int() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Uint64 returns the value when it is non-negative and fits in 64 bits.
func (b *Block) Uint64() (_ uint64, ok bool) {
	i := b.Int()
	if !i.IsUint64() {
		return 0, false
	}

	return i.Uint64(), true
}

// String returns the value in base 10.
func (b *Block) String() string {
	return b.Int().String()
}

func newBlock(i *big.Int, negative bool) *Block {
	data := i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
		negative = false
	}

	return &Block{
		Value:    data,
		Negative: negative,
	}
}

// Round rounds d into a non-negative block that must fit the schema.
func Round(d *decimal.Decimal, schema Schema, mode decimal.Rounding) (b *Block, err error) {
	defer Error.WrapP(&err)

	i, err := round(d, schema, mode, false)
	if err != nil {
		return nil, err
	}

	return newBlock(i, false), nil
}

func round(d *decimal.Decimal, schema Schema, mode decimal.Rounding, negative bool) (_ *big.Int, err error) {
	if schema.Bits == 0 {
		return nil, Error.New("invalid schema: bits=0")
	}

	// 2^bits has at most bits*0.30103+1 digits. Anything with more integer
	// digits than that is too large and is rejected before it is built.
	if d.DecimalPoint()-1 > int(schema.Bits*31/100)+1 {
		return nil, Error.New(
			"overflow: decimal point=%d bits=%d",
			d.DecimalPoint(),
			schema.Bits,
		)
	}

	digits := d.Digits()

	i := new(big.Int)
	n := 0
	for ; n < d.DecimalPoint() && n < len(digits); n++ {
		i.Mul(i, ten)
		i.Add(i, big.NewInt(int64(digits[n])))
	}
	if n < d.DecimalPoint() {
		i.Mul(i, new(big.Int).Exp(ten, big.NewInt(int64(d.DecimalPoint()-n)), nil))
	}

	if up(d, mode) {
		i.Add(i, big.NewInt(1))
	}

	if i.Cmp(schema.limit(negative)) > 0 {
		return nil, Error.New("overflow: %s does not fit %d bits", i, schema.Bits)
	}

	return i, nil
}

// up reports whether rounding d adds one to its integer part. The decision
// only depends on the last integer digit and the tail, so it is made by the
// decimal rounder on that short numeral.
func up(d *decimal.Decimal, mode decimal.Rounding) bool {
	dp := d.DecimalPoint()
	if dp <= 0 {
		return decimal.RoundMode[uint8](d, mode) == 1
	}

	digits := d.Digits()

	var last uint8
	if dp <= len(digits) {
		last = digits[dp-1]
	}

	var frac []uint8
	if dp < len(digits) {
		frac = digits[dp:]
	}

	x := decimal.Parse(numeral(last, frac))
	x.SetTruncated(d.Truncated())

	return decimal.RoundMode[uint8](&x, mode) != last
}

// numeral formats a single integer digit and a fraction.
func numeral(last uint8, frac []uint8) string {
	buf := make([]byte, 0, len(frac)+2)
	buf = append(buf, '0'+last, '.')
	for _, c := range frac {
		buf = append(buf, '0'+c)
	}

	return string(buf)
}
