package radix

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

const radixPoint = '.'

// Number type represents a non-negative number as an arbitrary-precision whole
// part plus an exact proper fraction.
// The representation does not depend on any base, so converting a number to
// another base never loses precision before the requested scale is applied.
// Its zero value corresponds to the numeric value of 0.
// Number is designed to be safe for concurrent use by multiple goroutines.
type Number struct {
	whole *big.Int // integer part, nil means 0
	frac  Fraction // fractional part, 0 <= frac < 1
}

// newNumberUnsafe creates a new number without copying or checking the arguments.
// Use it only if you are absolutely sure that whole is non-negative and not shared,
// and that frac is within [0, 1).
func newNumberUnsafe(whole *big.Int, frac Fraction) Number {
	return Number{whole: whole, frac: frac}
}

// NewNumber returns a number equal to whole + frac.
//
// NewNumber returns an error if:
//   - the whole part is negative;
//   - the fraction is not within the range [0, 1).
func NewNumber(whole *big.Int, frac Fraction) (Number, error) {
	w := new(big.Int)
	if whole != nil {
		if whole.Sign() < 0 {
			return Number{}, fmt.Errorf("creating number: negative whole part %v: %w", whole, ErrInvalidNumber)
		}
		w.Set(whole)
	}
	if !frac.WithinOne() {
		return Number{}, fmt.Errorf("creating number: fraction %v is not within [0, 1): %w", frac, ErrInvalidFraction)
	}
	return newNumberUnsafe(w, frac), nil
}

// NewNumberFromFraction returns a number equal to num / den.
// The integer part of the ratio becomes the whole part of the number.
//
// NewNumberFromFraction returns an error if the fraction cannot be constructed,
// see [NewFraction].
func NewNumberFromFraction(num, den *big.Int) (Number, error) {
	f, err := NewFraction(num, den)
	if err != nil {
		return Number{}, fmt.Errorf("creating number: %w", err)
	}
	whole, frac := f.split()
	return newNumberUnsafe(whole, frac), nil
}

// NewNumberFromDecimal converts a decimal to a number.
// See also method [Number.Decimal].
//
// NewNumberFromDecimal returns an error if the decimal is negative.
func NewNumberFromDecimal(d decimal.Decimal) (Number, error) {
	if d.IsNeg() {
		return Number{}, fmt.Errorf("converting decimal %v: negative value: %w", d, ErrInvalidNumber)
	}
	coef := new(big.Int).SetUint64(d.Coef())
	n, err := NewNumberFromFraction(coef, pow10(d.Scale()))
	if err != nil {
		return Number{}, fmt.Errorf("converting decimal %v: %w", d, err)
	}
	return n, nil
}

// ParseNumber converts a base-10 string to a number.
// The input string must be in one of the following formats:
//
//	1234
//	1234.5678
//	0.001
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	digits         ::= digit { digit }
//	numeric-string ::= digits [ '.' digits ]
//
// ParseNumber returns an error if the string does not represent a valid
// non-negative decimal number.
func ParseNumber(s string) (Number, error) {
	whole, frac, hasPoint := strings.Cut(s, string(radixPoint))
	if !isDecimalDigits(whole) || (hasPoint && !isDecimalDigits(frac)) {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, ErrInvalidNumber)
	}
	w, _ := new(big.Int).SetString(whole, 10)
	n := newNumberUnsafe(w, Fraction{})
	if frac != "" {
		num, _ := new(big.Int).SetString(frac, 10)
		n.frac = newFractionUnsafe(num, pow10(len(frac)))
	}
	return n, nil
}

// MustParseNumber is like [ParseNumber] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNumber(%q) failed: %v", s, err))
	}
	return n
}

// ParseNumberBase converts a string written in the given base to a number.
// The digits of the string are the first base symbols of the alphabet,
// and the optional radix point is '.'.
// The whole part is the sum of d(i) * base^(len-1-i) over its digits, and the
// fractional part is computed the same way and divided by base^len.
//
// ParseNumberBase returns an error if:
//   - the alphabet does not have enough symbols for the base;
//   - the string is empty or contains more than one radix point;
//   - the string contains a symbol that is not a digit of the base.
func ParseNumberBase(s string, base int, a Alphabet) (Number, error) {
	n, err := parseNumberBase(s, base, a)
	if err != nil {
		return Number{}, fmt.Errorf("parsing base %v number %q: %w", base, s, err)
	}
	return n, nil
}

func parseNumberBase(s string, base int, a Alphabet) (Number, error) {
	if err := a.Validate(base); err != nil {
		return Number{}, err
	}
	whole, frac, hasPoint := strings.Cut(s, string(radixPoint))
	if whole == "" || (hasPoint && frac == "") {
		return Number{}, ErrInvalidNumber
	}
	w, _, err := digitsValue(whole, base, a)
	if err != nil {
		return Number{}, err
	}
	n := newNumberUnsafe(w, Fraction{})
	if frac != "" {
		num, den, err := digitsValue(frac, base, a)
		if err != nil {
			return Number{}, err
		}
		n.frac = newFractionUnsafe(num, den)
	}
	return n, nil
}

// digitsValue returns the value of the digit string s in the given base,
// and base^len(s).
func digitsValue(s string, base int, a Alphabet) (value, weight *big.Int, err error) {
	b := big.NewInt(int64(base))
	value, weight = new(big.Int), big.NewInt(1)
	d := new(big.Int)
	for _, r := range s {
		i, err := a.digit(r, base)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
		}
		value.Mul(value, b)
		value.Add(value, d.SetInt64(int64(i)))
		weight.Mul(weight, b)
	}
	return value, weight, nil
}

func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Whole returns a copy of the integer part of the number.
func (n Number) Whole() *big.Int {
	return new(big.Int).Set(n.wholePart())
}

func (n Number) wholePart() *big.Int {
	if n.whole == nil {
		return new(big.Int)
	}
	return n.whole
}

// Frac returns the fractional part of the number.
func (n Number) Frac() Fraction {
	return n.frac
}

// IsZero returns:
//
//	true  if n = 0
//	false otherwise
func (n Number) IsZero() bool {
	return n.wholePart().Sign() == 0 && n.frac.IsZero()
}

// IsInt returns true if the fractional part of the number is 0.
func (n Number) IsInt() bool {
	return n.frac.IsZero()
}

// Rat returns the number as a single fraction (whole * den + num) / den,
// which may be greater than or equal to 1.
func (n Number) Rat() (num, den *big.Int) {
	den = n.frac.Den()
	num = new(big.Int).Mul(n.wholePart(), den)
	num.Add(num, n.frac.numerator())
	return num, den
}

// Cmp compares numbers and returns:
//
//	-1 if n < m
//	 0 if n = m
//	+1 if n > m
func (n Number) Cmp(m Number) int {
	if c := n.wholePart().Cmp(m.wholePart()); c != 0 {
		return c
	}
	return n.frac.Cmp(m.frac)
}

// Decimal returns the number truncated to the given number of digits after
// the decimal point, as a decimal.
// See also constructor [NewNumberFromDecimal].
//
// Decimal returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the truncated number has more than [decimal.MaxPrec] digits.
func (n Number) Decimal(scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: scale %v: %w", n, scale, ErrInvalidScale)
	}
	num, den := n.Rat()
	coef := num.Mul(num, pow10(scale))
	coef.Quo(coef, den)
	if !coef.IsInt64() {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", n, ErrDecimalOverflow)
	}
	d, err := decimal.New(coef.Int64(), scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", n, err)
	}
	return d, nil
}

// String implements the [fmt.Stringer] interface and returns the exact value
// of the number in base 10, as the whole part followed by the reduced
// fractional part, for example "4 2/3".
// An integer is written without a fractional part.
// See also method [Converter.ToBase] for a positional representation.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	if n.IsInt() {
		return n.wholePart().String()
	}
	return n.wholePart().String() + " " + n.frac.String()
}
