package integer

import (
	"github.com/calebcase/hpd/decimal"
)

// Parse reads an optionally signed decimal numeral, rounds it half to even
// and checks it against the schema. The whole string must be a numeral.
func Parse(s string, schema Schema) (b *Block, err error) {
	defer Error.WrapP(&err)

	negative := false
	body := s
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		negative = body[0] == '-'
		body = body[1:]
	}

	var d decimal.Decimal

	n := d.Set(body)
	if n == 0 || n != len(body) {
		return nil, Error.New("invalid syntax: %q", s)
	}

	i, err := round(&d, schema, decimal.Nearest, negative)
	if err != nil {
		return nil, err
	}

	if negative && !schema.Signed && i.Sign() != 0 {
		return nil, Error.New("negative value for unsigned schema: %q", s)
	}

	return newBlock(i, negative), nil
}
