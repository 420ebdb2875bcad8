package radix

import (
	"fmt"
	"sync"
)

// Converter converts a number into digit strings in other bases.
// It holds the number, the alphabet of digit symbols and the scale, which is
// the number of digits produced after the radix point.
//
// Converter is safe for concurrent use by multiple goroutines.
// Reconfiguration methods such as [Converter.SetDigits] replace the state as
// a whole, so conversions running at the same time see either the old or the
// new configuration, never a mix of both.
type Converter struct {
	mu       sync.RWMutex
	number   Number
	alphabet Alphabet
	scale    int
}

// Conversion is the result of converting a number to one base.
type Conversion struct {
	Base   int
	Digits string
}

// NewConverter returns a converter for the number written in the given base.
// A base 10 number is parsed with [ParseNumber], any other base with
// [ParseNumberBase] using the converter's alphabet.
// The scale defaults to [DefaultScale] and the alphabet to [DefaultAlphabet],
// see [WithScale] and [WithAlphabet].
//
// NewConverter returns an error if:
//   - the scale is negative;
//   - the number cannot be parsed in the given base.
func NewConverter(number string, base int, opts ...Option) (*Converter, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("creating converter: %w", err)
	}
	n, err := parseNumberIn(number, base, c.alphabet)
	if err != nil {
		return nil, fmt.Errorf("creating converter: %w", err)
	}
	return &Converter{number: n, alphabet: c.alphabet, scale: c.scale}, nil
}

// MustNewConverter is like [NewConverter] but panics if the converter cannot be created.
func MustNewConverter(number string, base int, opts ...Option) *Converter {
	c, err := NewConverter(number, base, opts...)
	if err != nil {
		panic(fmt.Sprintf("NewConverter(%q, %v) failed: %v", number, base, err))
	}
	return c
}

// NewConverterFromNumber returns a converter for the number n.
//
// NewConverterFromNumber returns an error if the scale is negative.
func NewConverterFromNumber(n Number, opts ...Option) (*Converter, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("creating converter: %w", err)
	}
	return &Converter{number: n, alphabet: c.alphabet, scale: c.scale}, nil
}

func parseNumberIn(s string, base int, a Alphabet) (Number, error) {
	if base == 10 {
		return ParseNumber(s)
	}
	return ParseNumberBase(s, base, a)
}

// snapshot returns the current configuration under the read lock.
func (c *Converter) snapshot() (Number, Alphabet, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.number, c.alphabet, c.scale
}

// Number returns the number being converted.
func (c *Converter) Number() Number {
	n, _, _ := c.snapshot()
	return n
}

// Alphabet returns the digit symbols in use.
func (c *Converter) Alphabet() Alphabet {
	_, a, _ := c.snapshot()
	return a
}

// Scale returns the number of digits produced after the radix point.
func (c *Converter) Scale() int {
	_, _, s := c.snapshot()
	return s
}

// ToBase returns the number written in the given base with exactly
// [Converter.Scale] digits after the radix point.
// Repeating digits are expanded and then truncated, terminating digits are
// padded with the zero symbol; digits are never rounded.
// Zero is written as a single zero symbol, and with scale 0 only the whole
// part is written.
//
// ToBase returns an error if the alphabet does not have enough symbols for the base.
func (c *Converter) ToBase(base int) (string, error) {
	n, a, scale := c.snapshot()
	s, err := n.format(base, a, scale, nil)
	if err != nil {
		return "", fmt.Errorf("converting %v to base %v: %w", n, base, err)
	}
	return s, nil
}

// ToBaseRepeat is like [Converter.ToBase], but a repetend is written once
// between the markers of the repeat notation, whatever its length.
// The scale is ignored in that case.
// For example, 1/3 in base 10 is written as "0.[3]" with the markers "[" and "]".
func (c *Converter) ToBaseRepeat(base int, notation RepeatNotation) (string, error) {
	n, a, scale := c.snapshot()
	s, err := n.format(base, a, scale, &notation)
	if err != nil {
		return "", fmt.Errorf("converting %v to base %v: %w", n, base, err)
	}
	return s, nil
}

// ToBases converts the number to each of the bases independently.
// The results follow the order of the bases.
//
// ToBases returns an error if any of the bases cannot be served by the alphabet,
// in which case no results are returned.
func (c *Converter) ToBases(bases []int) ([]Conversion, error) {
	return c.toBases(bases, nil)
}

// ToBasesRepeat is like [Converter.ToBases] but writes repetends
// in the repeat notation, see [Converter.ToBaseRepeat].
func (c *Converter) ToBasesRepeat(bases []int, notation RepeatNotation) ([]Conversion, error) {
	return c.toBases(bases, &notation)
}

func (c *Converter) toBases(bases []int, notation *RepeatNotation) ([]Conversion, error) {
	n, a, scale := c.snapshot()
	res := make([]Conversion, len(bases))
	for i, base := range bases {
		s, err := n.format(base, a, scale, notation)
		if err != nil {
			return nil, fmt.Errorf("converting %v to base %v: %w", n, base, err)
		}
		res[i] = Conversion{Base: base, Digits: s}
	}
	return res, nil
}

// Expand returns the exact expansion of the number in the given base,
// see [Number.Expand].
func (c *Converter) Expand(base int) (Expansion, error) {
	n, a, _ := c.snapshot()
	return n.Expand(base, a)
}

// SetNumber replaces the number with the one written in the given base,
// see [NewConverter].
// On error the converter is left unchanged.
func (c *Converter) SetNumber(number string, base int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, err := parseNumberIn(number, base, c.alphabet)
	if err != nil {
		return fmt.Errorf("setting number: %w", err)
	}
	c.number = n
	return nil
}

// SetDigits replaces the alphabet with the unique symbols of the string,
// see [NewAlphabet].
// On error the converter is left unchanged.
func (c *Converter) SetDigits(symbols string) error {
	a, err := NewAlphabet(symbols)
	if err != nil {
		return fmt.Errorf("setting digits: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alphabet = a
	return nil
}

// ResetDigits restores the [DefaultAlphabet].
func (c *Converter) ResetDigits() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alphabet = DefaultAlphabet()
}

// SetScale replaces the number of digits produced after the radix point.
//
// SetScale returns an error if the scale is negative.
func (c *Converter) SetScale(scale int) error {
	if scale < 0 {
		return fmt.Errorf("setting scale: %v: %w", scale, ErrInvalidScale)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scale = scale
	return nil
}
