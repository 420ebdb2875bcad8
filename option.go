package radix

import "fmt"

// DefaultScale is the number of digits after the radix point produced when
// no scale is given.
const DefaultScale = 14

// RepeatNotation is a pair of markers written around a repetend instead of
// expanding it, for example "0.1(6)" with Begin "(" and End ")".
type RepeatNotation struct {
	Begin string
	End   string
}

// DefaultRepeatNotation wraps a repetend in parentheses.
var DefaultRepeatNotation = RepeatNotation{Begin: "(", End: ")"}

type config struct {
	scale    int
	alphabet Alphabet
}

func newConfig(opts []Option) (config, error) {
	c := config{
		scale:    DefaultScale,
		alphabet: DefaultAlphabet(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.scale < 0 {
		return config{}, fmt.Errorf("scale %v: %w", c.scale, ErrInvalidScale)
	}
	return c, nil
}

// Option configures conversions.
type Option func(*config)

// WithScale sets the number of digits produced after the radix point.
// The default is [DefaultScale].
func WithScale(scale int) Option {
	return func(c *config) {
		c.scale = scale
	}
}

// WithAlphabet sets the digit symbols.
// The default is [DefaultAlphabet].
func WithAlphabet(a Alphabet) Option {
	return func(c *config) {
		c.alphabet = a
	}
}
