package radix

import (
	"fmt"
	"unicode/utf8"
)

// DefaultDigits are the symbols of the default alphabet, which supports bases
// up to 36.
const DefaultDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

var defaultAlphabet = MustNewAlphabet(DefaultDigits)

// Alphabet type represents an ordered set of unique digit symbols.
// The symbol at index i denotes the digit value i, so index 0 is the zero symbol.
// The zero value is an empty alphabet that cannot serve any base.
// Alphabet is designed to be safe for concurrent use by multiple goroutines.
type Alphabet struct {
	rtu map[rune]int // symbol to digit value
	utr []rune       // digit value to symbol
}

// DefaultAlphabet returns the alphabet of [DefaultDigits]: 0-9 followed by a-z.
func DefaultAlphabet() Alphabet {
	return defaultAlphabet
}

// NewAlphabet builds an alphabet from the unique runes of the string s,
// in the order of their first occurrence.
// Duplicates are tolerated, but ignored.
//
// NewAlphabet returns an error if:
//   - fewer than two unique symbols remain;
//   - the string contains the radix point '.'.
func NewAlphabet(symbols string) (Alphabet, error) {
	a := Alphabet{
		rtu: make(map[rune]int, utf8.RuneCountInString(symbols)),
		utr: make([]rune, 0, utf8.RuneCountInString(symbols)),
	}
	for _, r := range symbols {
		if r == radixPoint {
			return Alphabet{}, fmt.Errorf("building alphabet from %q: radix point %q is reserved: %w", symbols, radixPoint, ErrInvalidAlphabet)
		}
		if _, ok := a.rtu[r]; ok {
			continue
		}
		a.rtu[r] = len(a.utr)
		a.utr = append(a.utr, r)
	}
	if len(a.utr) < 2 {
		return Alphabet{}, fmt.Errorf("building alphabet from %q: %w", symbols, ErrInvalidAlphabet)
	}
	return a, nil
}

// MustNewAlphabet is like [NewAlphabet] but panics if the alphabet cannot be built.
// It simplifies safe initialization of global variables holding alphabets.
func MustNewAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(fmt.Sprintf("NewAlphabet(%q) failed: %v", symbols, err))
	}
	return a
}

// Size returns the number of symbols, which is also the largest base
// the alphabet can serve.
func (a Alphabet) Size() int {
	return len(a.utr)
}

// Symbol returns the symbol of the digit value i.
//
// Symbol returns an error if i is not within the range [0, Size).
func (a Alphabet) Symbol(i int) (rune, error) {
	if i < 0 || i >= len(a.utr) {
		return 0, fmt.Errorf("digit %v not in [0..%v]: %w", i, len(a.utr)-1, ErrInvalidDigitIndex)
	}
	return a.utr[i], nil
}

// Index returns the digit value of the symbol r.
//
// Index returns an error if r is not in the alphabet.
func (a Alphabet) Index(r rune) (int, error) {
	i, ok := a.rtu[r]
	if !ok {
		return 0, fmt.Errorf("symbol %q: %w", r, ErrUnknownSymbol)
	}
	return i, nil
}

// Validate returns an error if the alphabet does not have enough symbols for the base,
// or if the base is less than 2.
func (a Alphabet) Validate(base int) error {
	if base < 2 || base > len(a.utr) {
		return fmt.Errorf("base %v with %v symbol(s): %w", base, len(a.utr), ErrInvalidBase)
	}
	return nil
}

// Zero returns the zero symbol.
func (a Alphabet) Zero() rune {
	if len(a.utr) == 0 {
		return '0'
	}
	return a.utr[0]
}

// digit is like [Alphabet.Index] but also rejects symbols that are not among
// the first base symbols.
func (a Alphabet) digit(r rune, base int) (int, error) {
	i, err := a.Index(r)
	if err != nil {
		return 0, err
	}
	if i >= base {
		return 0, fmt.Errorf("symbol %q is not a base %v digit: %w", r, base, ErrUnknownSymbol)
	}
	return i, nil
}

// String implements the [fmt.Stringer] interface and returns the symbols
// of the alphabet in order.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Alphabet) String() string {
	return string(a.utr)
}
