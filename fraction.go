package radix

import (
	"fmt"
	"math/big"
)

// Fraction type represents a non-negative rational number num / den.
// A fraction is always stored in lowest terms, with a positive denominator.
// Its zero value corresponds to 0/1.
// Fraction is designed to be safe for concurrent use by multiple goroutines:
// operations return new values and never share their big integers with callers.
type Fraction struct {
	num *big.Int // numerator, nil means 0
	den *big.Int // denominator, nil means 1
}

var bigOne = big.NewInt(1)

// newFractionUnsafe reduces num / den in place and wraps it into a fraction.
// Use it only if you are absolutely sure that den is positive, num is
// non-negative, and neither is shared.
func newFractionUnsafe(num, den *big.Int) Fraction {
	if num.Sign() == 0 {
		return Fraction{}
	}
	gcd := new(big.Int).GCD(nil, nil, num, den)
	if gcd.Cmp(bigOne) != 0 {
		num.Quo(num, gcd)
		den.Quo(den, gcd)
	}
	return Fraction{num: num, den: den}
}

// NewFraction returns the fraction num / den reduced to lowest terms.
//
// NewFraction returns an error if:
//   - the denominator is 0;
//   - the numerator or the denominator is negative.
func NewFraction(num, den *big.Int) (Fraction, error) {
	switch {
	case num == nil || den == nil:
		return Fraction{}, fmt.Errorf("reducing fraction: missing operand: %w", ErrInvalidFraction)
	case den.Sign() == 0:
		return Fraction{}, fmt.Errorf("reducing fraction %v/0: %w", num, ErrInvalidFraction)
	case num.Sign() < 0 || den.Sign() < 0:
		return Fraction{}, fmt.Errorf("reducing fraction %v/%v: negative operand: %w", num, den, ErrInvalidFraction)
	}
	return newFractionUnsafe(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// NewFractionFromInt64 is like [NewFraction] but takes int64 operands.
func NewFractionFromInt64(num, den int64) (Fraction, error) {
	return NewFraction(big.NewInt(num), big.NewInt(den))
}

// MustNewFraction is like [NewFractionFromInt64] but panics if the fraction
// cannot be constructed.
func MustNewFraction(num, den int64) Fraction {
	f, err := NewFractionFromInt64(num, den)
	if err != nil {
		panic(fmt.Sprintf("NewFraction(%v, %v) failed: %v", num, den, err))
	}
	return f
}

func (f Fraction) numerator() *big.Int {
	if f.num == nil {
		return new(big.Int)
	}
	return f.num
}

func (f Fraction) denominator() *big.Int {
	if f.den == nil {
		return bigOne
	}
	return f.den
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	return new(big.Int).Set(f.numerator())
}

// Den returns a copy of the denominator.
func (f Fraction) Den() *big.Int {
	return new(big.Int).Set(f.denominator())
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f Fraction) IsZero() bool {
	return f.numerator().Sign() == 0
}

// WithinOne returns:
//
//	true  if 0 <= f < 1
//	false otherwise
func (f Fraction) WithinOne() bool {
	return f.numerator().Cmp(f.denominator()) < 0
}

// Add returns the sum of fractions f and g in lowest terms.
func (f Fraction) Add(g Fraction) Fraction {
	a := new(big.Int).Mul(f.numerator(), g.denominator())
	b := new(big.Int).Mul(g.numerator(), f.denominator())
	num := a.Add(a, b)
	den := new(big.Int).Mul(f.denominator(), g.denominator())
	return newFractionUnsafe(num, den)
}

// Cmp compares fractions and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
func (f Fraction) Cmp(g Fraction) int {
	a := new(big.Int).Mul(f.numerator(), g.denominator())
	b := new(big.Int).Mul(g.numerator(), f.denominator())
	return a.Cmp(b)
}

// split returns the integer part of f and its remaining proper fraction.
func (f Fraction) split() (*big.Int, Fraction) {
	q, r := new(big.Int).QuoRem(f.numerator(), f.denominator(), new(big.Int))
	return q, newFractionUnsafe(r, f.Den())
}

// Digits performs the long division of the fractional part of f in the given base
// and returns the digit values after the radix point.
//
// Each remainder is remembered together with the position of the digit it
// produces. When a remainder repeats, the digits from its first position onwards
// form the repetend, and the digits before it form the prefix.
// A terminating expansion has no repetend.
// Since there are fewer than den distinct remainders, a repetend is always found
// within den steps.
//
// If limit is non-negative, the division stops after limit digits even if
// neither termination nor a repetend has been reached; all digits produced so far
// are then returned as the prefix.
// In that case a nil repetend means "unknown", not "terminating": a prefix of
// exactly limit digits may continue. Only a prefix shorter than limit with a
// nil repetend proves that the expansion terminates.
//
// Digits returns an error if the base is less than 2.
func (f Fraction) Digits(base, limit int) (prefix, repetend []int, err error) {
	if base < 2 {
		return nil, nil, fmt.Errorf("dividing %v in base %v: %w", f, base, ErrInvalidBase)
	}
	ld := f.longDivision(base, limit)
	return ld.prefix, ld.repetend, nil
}

// longDivisionResult holds the outcome of [Fraction.longDivision].
type longDivisionResult struct {
	prefix   []int
	repetend []int
}

func (f Fraction) longDivision(base, limit int) longDivisionResult {
	den := f.denominator()
	rem := new(big.Int).Rem(f.numerator(), den)
	b := big.NewInt(int64(base))
	digit, tmp := new(big.Int), new(big.Int)

	var digits []int
	seen := make(map[string]int)
	for {
		if rem.Sign() == 0 {
			return longDivisionResult{prefix: digits}
		}
		key := string(rem.Bytes())
		if p, ok := seen[key]; ok {
			return longDivisionResult{prefix: digits[:p], repetend: digits[p:]}
		}
		if limit >= 0 && len(digits) >= limit {
			return longDivisionResult{prefix: digits}
		}
		seen[key] = len(digits)
		rem.Mul(rem, b)
		digit.QuoRem(rem, den, tmp)
		rem, tmp = tmp, rem
		digits = append(digits, int(digit.Int64()))
	}
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the fraction in the form "num/den".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	return f.numerator().String() + "/" + f.denominator().String()
}
