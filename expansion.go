package radix

import (
	"fmt"
	"math/big"
	"strings"
)

// Expansion type represents the positional expansion of a number in some base.
// The fractional part is split into a Prefix and a Repetend, the block of
// digits that repeats forever.
// Repetend is empty when the expansion terminates.
type Expansion struct {
	Whole    string // digits before the radix point, never empty
	Prefix   string // fractional digits before the repetend
	Repetend string // repeating fractional digits
	zero     rune   // zero symbol used for padding
}

// IsRepeating returns true if the expansion does not terminate.
func (e Expansion) IsRepeating() bool {
	return e.Repetend != ""
}

// IsInt returns true if the expansion has no fractional digits.
func (e Expansion) IsInt() bool {
	return e.Prefix == "" && e.Repetend == ""
}

// Truncate returns the expansion with exactly scale digits after the radix point.
// A repetend is repeated cyclically and then cut, and a terminating fraction is
// padded with the zero symbol.
// Digits are dropped, never rounded, so the result is not always the nearest
// approximation with the given scale.
// Zero, as well as any expansion truncated to scale 0, is written without
// a radix point.
func (e Expansion) Truncate(scale int) string {
	if scale <= 0 || e.isZero() {
		return e.Whole
	}
	zero := e.zeroSymbol()
	frac := make([]rune, 0, scale)
	frac = append(frac, []rune(e.Prefix)...)
	rep := []rune(e.Repetend)
	for i := 0; len(frac) < scale; i++ {
		if len(rep) == 0 {
			frac = append(frac, zero)
			continue
		}
		frac = append(frac, rep[i%len(rep)])
	}
	return e.Whole + string(radixPoint) + string(frac[:scale])
}

// zeroSymbol returns the padding symbol, '0' for an expansion that was not
// produced by [Number.Expand].
func (e Expansion) zeroSymbol() rune {
	if e.zero == 0 {
		return '0'
	}
	return e.zero
}

// isZero returns true if the expansion is a single zero symbol or empty.
func (e Expansion) isZero() bool {
	return e.IsInt() && (e.Whole == "" || e.Whole == string(e.zeroSymbol()))
}

// Notate returns the expansion with the repetend written between the markers
// of the repeat notation. A terminating expansion is written in full.
func (e Expansion) Notate(n RepeatNotation) string {
	var b strings.Builder
	b.WriteString(e.Whole)
	if e.IsInt() {
		return b.String()
	}
	b.WriteRune(radixPoint)
	b.WriteString(e.Prefix)
	if e.IsRepeating() {
		b.WriteString(n.Begin)
		b.WriteString(e.Repetend)
		b.WriteString(n.End)
	}
	return b.String()
}

// String implements the [fmt.Stringer] interface and returns the expansion
// in [DefaultRepeatNotation].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (e Expansion) String() string {
	return e.Notate(DefaultRepeatNotation)
}

// Expand returns the exact expansion of the number in the given base,
// with the repetend of the fractional part detected by long division.
// The length of the repetend can be as large as the denominator of the fraction,
// see [Fraction.Digits].
//
// Expand returns an error if the alphabet does not have enough symbols for the base.
func (n Number) Expand(base int, a Alphabet) (Expansion, error) {
	e, err := n.expand(base, a, -1)
	if err != nil {
		return Expansion{}, fmt.Errorf("expanding %v in base %v: %w", n, base, err)
	}
	return e, nil
}

// expand is like [Number.Expand], but when limit is non-negative the long
// division stops after limit fractional digits.
func (n Number) expand(base int, a Alphabet, limit int) (Expansion, error) {
	if err := a.Validate(base); err != nil {
		return Expansion{}, err
	}
	whole, err := formatWhole(n.wholePart(), base, a)
	if err != nil {
		return Expansion{}, err
	}
	e := Expansion{Whole: whole, zero: a.Zero()}
	if n.frac.IsZero() || limit == 0 {
		return e, nil
	}
	ld := n.frac.longDivision(base, limit)
	if e.Prefix, err = symbols(ld.prefix, a); err != nil {
		return Expansion{}, err
	}
	if e.Repetend, err = symbols(ld.repetend, a); err != nil {
		return Expansion{}, err
	}
	return e, nil
}

// format renders the number in the given base.
// With a repeat notation, a repetend is wrapped in the markers and the scale
// does not apply to it. Otherwise exactly scale fractional digits are produced,
// and only those are ever computed.
func (n Number) format(base int, a Alphabet, scale int, notation *RepeatNotation) (string, error) {
	if notation == nil {
		e, err := n.expand(base, a, scale)
		if err != nil {
			return "", err
		}
		return e.Truncate(scale), nil
	}
	e, err := n.expand(base, a, -1)
	if err != nil {
		return "", err
	}
	if e.IsRepeating() {
		return e.Notate(*notation), nil
	}
	return e.Truncate(scale), nil
}

// formatWhole returns the digits of a non-negative integer in the given base.
// The number of digits is derived by successive division, then digits are
// produced from the most significant power of the base down to the units.
func formatWhole(whole *big.Int, base int, a Alphabet) (string, error) {
	if whole.Sign() == 0 {
		return string(a.Zero()), nil
	}
	b := big.NewInt(int64(base))

	// Number of digits
	top := 0
	for t := new(big.Int).Set(whole); t.Sign() > 0; t.Quo(t, b) {
		top++
	}

	// Digits
	var sb strings.Builder
	rem := new(big.Int).Set(whole)
	expVal := new(big.Int).Exp(b, big.NewInt(int64(top-1)), nil)
	digit, tmp := new(big.Int), new(big.Int)
	for power := top - 1; power > 0; power-- {
		digit.QuoRem(rem, expVal, tmp)
		rem, tmp = tmp, rem
		r, err := a.Symbol(int(digit.Int64()))
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
		expVal.Quo(expVal, b)
	}
	r, err := a.Symbol(int(rem.Int64()))
	if err != nil {
		return "", err
	}
	sb.WriteRune(r)

	// Leading zeros
	s := strings.TrimLeft(sb.String(), string(a.Zero()))
	if s == "" {
		return string(a.Zero()), nil
	}
	return s, nil
}

// symbols maps digit values to the symbols of the alphabet.
func symbols(digits []int, a Alphabet) (string, error) {
	if len(digits) == 0 {
		return "", nil
	}
	rs := make([]rune, len(digits))
	for i, d := range digits {
		r, err := a.Symbol(d)
		if err != nil {
			return "", err
		}
		rs[i] = r
	}
	return string(rs), nil
}
