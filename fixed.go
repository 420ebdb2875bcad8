package radix

import (
	"fmt"
	"math/big"
	"strings"
)

// Fixed type represents a fixed-point decimal number equal to coef / 10^scale,
// where coef is an arbitrary-precision integer.
// Its zero value corresponds to the numeric value of 0.
//
// Arithmetic on Fixed follows scale-bounded semantics: every operation takes
// the number of digits after the decimal point to keep, and the exact result
// is truncated toward zero to that scale.
// Results are never rounded up, so two implementations of the same
// computation agree digit for digit.
//
// Fixed is designed to be safe for concurrent use by multiple goroutines.
type Fixed struct {
	coef  *big.Int // numeric value without decimal point, nil means 0
	scale int      // number of digits after the decimal point
}

var bigTen = big.NewInt(10)

// pow10 returns 10^n as a new big integer.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// newFixedUnsafe creates a fixed-point number without copying the coefficient.
// Use it only if you are absolutely sure that coef is not shared.
func newFixedUnsafe(coef *big.Int, scale int) Fixed {
	return Fixed{coef: coef, scale: scale}
}

// NewFixed returns a fixed-point number equal to coef / 10^scale.
//
// NewFixed returns an error if the scale is negative.
func NewFixed(coef *big.Int, scale int) (Fixed, error) {
	if scale < 0 {
		return Fixed{}, fmt.Errorf("scale %v: %w", scale, ErrInvalidScale)
	}
	c := new(big.Int)
	if coef != nil {
		c.Set(coef)
	}
	return newFixedUnsafe(c, scale), nil
}

// NewFixedFromInt64 returns a fixed-point number equal to the integer n
// with a scale of 0.
func NewFixedFromInt64(n int64) Fixed {
	return newFixedUnsafe(big.NewInt(n), 0)
}

// newFixedFromBigInt returns a fixed-point number equal to a copy of the integer n.
func newFixedFromBigInt(n *big.Int) Fixed {
	return newFixedUnsafe(new(big.Int).Set(n), 0)
}

// ParseFixed converts a string to a fixed-point number.
// The input string must be in one of the following formats:
//
//	1234
//	1.234
//	-0.001234
//
// The scale of the result is the number of digits after the decimal point,
// trailing zeros included.
//
// ParseFixed returns an error if the string does not represent a valid
// fixed-point number.
func ParseFixed(s string) (Fixed, error) {
	f, err := parseFixed(s)
	if err != nil {
		return Fixed{}, fmt.Errorf("parsing fixed-point number %q: %w", s, err)
	}
	return f, nil
}

func parseFixed(s string) (Fixed, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, hasPoint := strings.Cut(s, string(radixPoint))
	if !isDecimalDigits(whole) || (hasPoint && !isDecimalDigits(frac)) {
		return Fixed{}, ErrInvalidNumber
	}
	coef, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return Fixed{}, ErrInvalidNumber
	}
	if neg {
		coef.Neg(coef)
	}
	return newFixedUnsafe(coef, len(frac)), nil
}

// MustParseFixed is like [ParseFixed] but panics if the string cannot be parsed.
func MustParseFixed(s string) Fixed {
	f, err := ParseFixed(s)
	if err != nil {
		panic(fmt.Sprintf("ParseFixed(%q) failed: %v", s, err))
	}
	return f
}

func (f Fixed) coefficient() *big.Int {
	if f.coef == nil {
		return new(big.Int)
	}
	return f.coef
}

// Scale returns the number of digits after the decimal point.
func (f Fixed) Scale() int {
	return f.scale
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f Fixed) Sign() int {
	return f.coefficient().Sign()
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f Fixed) IsZero() bool {
	return f.Sign() == 0
}

// rescale returns the coefficient of f expressed with the given scale,
// truncating toward zero when digits are dropped.
// The result is always a new big integer.
func (f Fixed) rescale(scale int) *big.Int {
	c := new(big.Int).Set(f.coefficient())
	switch {
	case scale > f.scale:
		c.Mul(c, pow10(scale-f.scale))
	case scale < f.scale:
		c.Quo(c, pow10(f.scale-scale))
	}
	return c
}

// Trunc returns a fixed-point number truncated or zero-padded to the given
// number of digits after the decimal point using [rounding toward zero].
// If the given scale is negative, it is redefined to zero.
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (f Fixed) Trunc(scale int) Fixed {
	scale = max(scale, 0)
	return newFixedUnsafe(f.rescale(scale), scale)
}

// Int returns the integer part of f, truncated toward zero.
func (f Fixed) Int() *big.Int {
	return f.rescale(0)
}

// Add returns the sum f + g truncated to the given scale.
func (f Fixed) Add(g Fixed, scale int) Fixed {
	s := max(f.scale, g.scale)
	c := f.rescale(s)
	c.Add(c, g.rescale(s))
	return newFixedUnsafe(c, s).Trunc(scale)
}

// Sub returns the difference f - g truncated to the given scale.
func (f Fixed) Sub(g Fixed, scale int) Fixed {
	s := max(f.scale, g.scale)
	c := f.rescale(s)
	c.Sub(c, g.rescale(s))
	return newFixedUnsafe(c, s).Trunc(scale)
}

// Mul returns the product f * g truncated to the given scale.
func (f Fixed) Mul(g Fixed, scale int) Fixed {
	c := new(big.Int).Mul(f.coefficient(), g.coefficient())
	return newFixedUnsafe(c, f.scale+g.scale).Trunc(scale)
}

// Quo returns the quotient f / g truncated to the given scale.
// The quotient is never rounded up.
//
// Quo returns an error if the divisor is 0.
func (f Fixed) Quo(g Fixed, scale int) (Fixed, error) {
	if g.IsZero() {
		return Fixed{}, fmt.Errorf("computing [%v / %v]: %w", f, g, ErrDivisionByZero)
	}
	scale = max(scale, 0)
	// f / g = (cf / 10^sf) / (cg / 10^sg), so the coefficient of the quotient
	// at the given scale is cf * 10^(sg + scale) / (cg * 10^sf).
	n := new(big.Int).Mul(f.coefficient(), pow10(g.scale+scale))
	d := new(big.Int).Mul(g.coefficient(), pow10(f.scale))
	return newFixedUnsafe(n.Quo(n, d), scale), nil
}

// Pow returns f raised to the given power, truncated to the given scale.
// A negative power is computed as 1 / f^(-power).
//
// Pow returns an error if f is 0 and the power is negative.
func (f Fixed) Pow(power, scale int) (Fixed, error) {
	if power < 0 {
		p, err := f.Pow(-power, f.scale*-power)
		if err != nil {
			return Fixed{}, err
		}
		q, err := NewFixedFromInt64(1).Quo(p, scale)
		if err != nil {
			return Fixed{}, fmt.Errorf("computing [%v^%v]: %w", f, power, err)
		}
		return q, nil
	}
	c := new(big.Int).Exp(f.coefficient(), big.NewInt(int64(power)), nil)
	return newFixedUnsafe(c, f.scale*power).Trunc(scale), nil
}

// Cmp compares f and g after truncating both to the given scale and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
func (f Fixed) Cmp(g Fixed, scale int) int {
	scale = max(scale, 0)
	return f.rescale(scale).Cmp(g.rescale(scale))
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the fixed-point number with exactly [Fixed.Scale] digits
// after the decimal point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fixed) String() string {
	c := f.coefficient()
	digits := new(big.Int).Abs(c).String()
	if f.scale > 0 {
		if len(digits) <= f.scale {
			digits = strings.Repeat("0", f.scale-len(digits)+1) + digits
		}
		pos := len(digits) - f.scale
		digits = digits[:pos] + string(radixPoint) + digits[pos:]
	}
	if c.Sign() < 0 {
		return "-" + digits
	}
	return digits
}
