package radix

import (
	"fmt"
	"math/big"
	"strings"
)

// DecimalToBase converts a base-10 string to the given base using
// fixed-point arithmetic on the decimal fraction.
//
// The whole part is converted exactly. Each fractional digit k is found by
// dividing the remaining fraction by base^-k, and every intermediate value is
// truncated to the scale, see [Fixed]. The conversion stops after scale digits,
// once the remaining fraction is 0, or once base^-k truncates to 0.
// The result is not padded, and a radix point is only written when at least
// one fractional digit is produced.
// Use [Converter.ToBase] for conversions that track the fraction exactly.
//
// DecimalToBase returns an error if:
//   - the alphabet does not have enough symbols for the base;
//   - the scale is negative;
//   - the string does not represent a valid non-negative decimal number.
func DecimalToBase(dec string, base int, opts ...Option) (string, error) {
	s, err := decimalToBase(dec, base, opts)
	if err != nil {
		return "", fmt.Errorf("converting %q to base %v: %w", dec, base, err)
	}
	return s, nil
}

func decimalToBase(dec string, base int, opts []Option) (string, error) {
	c, err := newConfig(opts)
	if err != nil {
		return "", err
	}
	a, scale := c.alphabet, c.scale
	if err := a.Validate(base); err != nil {
		return "", err
	}

	// Parsing
	whole, frac, hasPoint := strings.Cut(dec, string(radixPoint))
	if !isDecimalDigits(whole) || (hasPoint && !isDecimalDigits(frac)) {
		return "", ErrInvalidNumber
	}
	w, _ := new(big.Int).SetString(whole, 10)
	rem := Fixed{}
	if frac != "" {
		num, _ := new(big.Int).SetString(frac, 10)
		rem = newFixedUnsafe(num, len(frac))
	}

	// Whole part
	ws, err := formatWhole(w, base, a)
	if err != nil {
		return "", err
	}

	// Fractional part
	var sb strings.Builder
	b := NewFixedFromInt64(int64(base))
	maxDigit := big.NewInt(int64(base - 1))
	zero := Fixed{}
	for k := 1; k <= scale && rem.Cmp(zero, scale) > 0; k++ {
		expVal, err := b.Pow(-k, scale)
		if err != nil {
			return "", err
		}
		if expVal.IsZero() {
			break
		}
		q, err := rem.Quo(expVal, scale)
		if err != nil {
			return "", err
		}
		digit := q.Int()
		// Truncated powers are slightly too small, which can push the quotient
		// up to the base itself.
		if digit.Cmp(maxDigit) > 0 {
			digit.Set(maxDigit)
		}
		r, err := a.Symbol(int(digit.Int64()))
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
		rem = rem.Sub(expVal.Mul(newFixedFromBigInt(digit), scale), scale)
	}

	if sb.Len() == 0 {
		return ws, nil
	}
	return ws + string(radixPoint) + sb.String(), nil
}

// BaseToDecimal converts a string written in the given base to base 10,
// with exactly scale digits after the decimal point.
// The digits of the input are the first base symbols of the alphabet,
// while the output always uses the decimal digits 0-9.
// The value is tracked exactly and only truncated at the end, see [Converter.ToBase].
//
// BaseToDecimal returns an error if:
//   - the alphabet does not have enough symbols for the base;
//   - the scale is negative;
//   - the string contains a symbol that is not a digit of the base.
func BaseToDecimal(number string, base int, opts ...Option) (string, error) {
	c, err := newConfig(opts)
	if err != nil {
		return "", fmt.Errorf("converting %q from base %v: %w", number, base, err)
	}
	n, err := ParseNumberBase(number, base, c.alphabet)
	if err != nil {
		return "", fmt.Errorf("converting %q from base %v: %w", number, base, err)
	}
	s, err := n.format(10, DefaultAlphabet(), c.scale, nil)
	if err != nil {
		return "", fmt.Errorf("converting %q from base %v: %w", number, base, err)
	}
	return s, nil
}
