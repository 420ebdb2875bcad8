package radix

import "errors"

var (
	// ErrInvalidBase is returned when a base is less than 2 or exceeds the
	// size of the alphabet.
	ErrInvalidBase = errors.New("invalid base")
	// ErrInvalidNumber is returned when a string is not a valid non-negative
	// number in its base.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrDivisionByZero is returned by [Fixed.Quo] for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidFraction is returned when a fraction has a zero denominator,
	// a negative operand, or does not lie within [0, 1) where required.
	ErrInvalidFraction = errors.New("invalid fraction")
	// ErrInvalidDigitIndex is returned by [Alphabet.Symbol] for a digit value
	// the alphabet has no symbol for.
	ErrInvalidDigitIndex = errors.New("digit index out of range")
	// ErrUnknownSymbol is returned when a symbol is not in the alphabet or is
	// not a digit of the base.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrInvalidAlphabet is returned when an alphabet has fewer than 2
	// symbols or contains the radix point.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrInvalidScale is returned for a negative scale.
	ErrInvalidScale = errors.New("invalid scale")
	// ErrDecimalOverflow is returned by [Number.Decimal] when the number does
	// not fit into a [github.com/govalues/decimal.Decimal].
	ErrDecimalOverflow = errors.New("decimal overflow")
)
