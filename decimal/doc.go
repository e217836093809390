// Package decimal provides a fixed capacity, high precision decimal
// significand used for correctly rounded conversion between decimal numerals
// and binary integers and floats.
//
// The value of a decimal is:
//
//  value = 0.d[0] d[1] ... d[nd-1] * 10^dp
//
// Where d is the digit buffer (most significant first), nd is the number of
// valid digits, and dp is the decimal point. For example:
//
//  1.2345  = 0.12345 * 10^1    digits=[1 2 3 4 5] nd=5 dp=1
//  500     = 0.5 * 10^3        digits=[5]         nd=1 dp=3
//  0.05    = 0.5 * 10^-1       digits=[5]         nd=1 dp=-1
//  0       =                   digits=[]          nd=0 dp=0
//
// Leading zeros are never stored and trailing zeros are trimmed after every
// mutation, so every value has exactly one representation.
//
// Parsing
//
// The accepted grammar is:
//
//  [digits]['.' digits][('e' | 'E')['+' | '-']digits]
//
// Scanning stops at the first character that does not fit the grammar, or at
// the character budget given to ParseN. Whatever was scanned up to that point
// is the value. An exponent marker that is not followed by at least one
// visible digit is ignored. Exponent digits past the budget are not seen:
//
//  ParseN("1e123456789", 5)   => "1e123" => dp = 124
//  ParseN("1e-123456789", 5)  => "1e-12" => dp = -11
//  ParseN("123456789e1", 10)  => "123456789e" => 123456789
//
// Digits past MaxDigits are dropped and the value is marked truncated. The
// stored digits are then a floor of the true value.
//
// Shifting
//
// Shift multiplies (k > 0) or divides (k < 0) by 2^k in place. Large shifts
// are split into passes of at most 60 bits so that the per digit arithmetic
// stays within 64 bits:
//
//  left:  n = d<<k + carry, d = n % 10, carry = n / 10  (least significant first)
//  right: n = rem*10 + d,   d = n >> k, rem = n & mask  (most significant first)
//
// Several passes produce exactly the same digits as one pass of the combined
// size would. Digits that no longer fit in the buffer are dropped and the
// value is marked truncated.
//
// Rounding
//
// Round returns the integer nearest to the value. The digits in [0, dp) are
// the integer part and the digits from dp on are the tail:
//
//  | tail            | truncated | result                         |
//  |-----------------|-----------|--------------------------------|
//  | < 0.5           | any       | integer part                   |
//  | > 0.5           | any       | integer part + 1               |
//  | exactly 0.5     | false     | even neighbour                 |
//  | exactly 0.5     | true      | integer part + 1               |
//  |-----------------|-----------|--------------------------------|
//
// A truncated value is strictly larger than its stored digits, so an apparent
// tie is really above the half way point.
//
// Values are plain structs with no internal pointers. Copying is assignment
// and distinct values may be used from distinct goroutines without locking.
package decimal
