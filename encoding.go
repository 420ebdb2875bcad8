package radix

import (
	"database/sql/driver"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// parseNumberText converts the exact text form of a number back to a number.
// The input string must be in one of the following formats:
//
//	4
//	4.25
//	4 2/3
//	14/3
func parseNumberText(s string) (Number, error) {
	whole, frac, hasSpace := strings.Cut(s, " ")
	if !hasSpace {
		if !strings.ContainsRune(s, '/') {
			return ParseNumber(s)
		}
		whole, frac = "0", s
	}
	if !isDecimalDigits(whole) {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, ErrInvalidNumber)
	}
	num, den, ok := strings.Cut(frac, "/")
	if !ok || !isDecimalDigits(num) || !isDecimalDigits(den) {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, ErrInvalidNumber)
	}
	w, _ := new(big.Int).SetString(whole, 10)
	p, _ := new(big.Int).SetString(num, 10)
	q, _ := new(big.Int).SetString(den, 10)
	f, err := NewNumberFromFraction(p, q)
	if err != nil {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, err)
	}
	return newNumberUnsafe(w, Fraction{}).Add(f), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both the exact form "4 2/3" and decimal strings are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *Number) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*n, err = parseNumberText(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Number{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the exact form as a JSON string, see [Number.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	s := n.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (n *Number) UnmarshalText(text []byte) error {
	var err error
	*n, err = parseNumberText(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Number{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (n Number) AppendText(text []byte) ([]byte, error) {
	return append(text, n.String()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (n *Number) UnmarshalBinary(data []byte) error {
	var err error
	*n, err = parseNumberText(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Number{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (n Number) AppendBinary(data []byte) ([]byte, error) {
	return append(data, n.String()...), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (n Number) MarshalBinary() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// Only BSON strings and nulls are supported.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *Number) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		*n, err = parseBSONString(data)
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Number{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a BSON string with the exact form.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n Number) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, n.bsonString(), nil
}

// parseBSONString parses a BSON string to a number.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Number, error) {
	if len(data) < 4 {
		return Number{}, fmt.Errorf("%w: invalid data length %v", ErrInvalidNumber, len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Number{}, fmt.Errorf("%w: invalid string length %v", ErrInvalidNumber, l)
	}
	if data[l+4-1] != 0 {
		return Number{}, fmt.Errorf("%w: invalid null terminator %v", ErrInvalidNumber, data[l+4-1])
	}
	return parseNumberText(string(data[4 : l+4-1]))
}

// bsonString returns the BSON string representation of the number.
// The byte order of the result is little-endian.
func (n Number) bsonString() []byte {
	s := n.String()
	l := len(s) + 1
	data := make([]byte, 4+l)
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
// Strings are parsed in the exact form or as decimals, and integer columns
// are accepted as long as they are not negative.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *Number) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*n, err = parseNumberText(value)
	case []byte:
		*n, err = parseNumberText(string(value))
	case int64:
		if value < 0 {
			err = fmt.Errorf("negative value %v: %w", value, ErrInvalidNumber)
			break
		}
		*n = newNumberUnsafe(big.NewInt(value), Fraction{})
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Number{}, NullNumber{}, Number{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Number{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns the exact form, see [Number.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n Number) Value() (driver.Value, error) {
	return n.String(), nil
}

// NullNumber represents a number that can be null.
// Its zero value is null.
// NullNumber is not thread-safe.
type NullNumber struct {
	Number Number
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Number.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullNumber) Scan(value any) error {
	if value == nil {
		n.Number = Number{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Number.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Number.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullNumber) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Number.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Number.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullNumber) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Number = Number{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Number.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Number.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Number.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Number.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullNumber) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == 10 {
		n.Number = Number{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Number.UnmarshalBSONValue(typ, data)
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Number.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullNumber) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return 10, nil, nil
	}
	return n.Number.MarshalBSONValue()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example   | Description              |
//	| ------ | --------- | ------------------------ |
//	| %s, %v | 4 2/3     | Exact form               |
//	| %q     | "4 2/3"   | Quoted exact form        |
//	| %f     | 4.666     | Base 10                  |
//	| %b     | 100.101   | Base 2                   |
//	| %o     | 4.525     | Base 8                   |
//	| %x, %X | 4.aaa     | Base 16                  |
//
// The '-' format flag can be used with all verbs.
// The '0' format flag can be used with all verbs except %s, %v and %q.
//
// Precision is the number of digits after the radix point, digits are
// truncated and never rounded.
// The default precision is the length of the expansion if it terminates within
// [DefaultScale] digits, and [DefaultScale] otherwise.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (n Number) Format(state fmt.State, verb rune) {
	var s string
	numeric := false
	switch verb {
	case 's', 'S', 'v', 'V':
		s = n.String()
	case 'q', 'Q':
		s = `"` + n.String() + `"`
	case 'f', 'F', 'b', 'o', 'O', 'x', 'X':
		numeric = true
		base := verbBase(verb)
		scale, ok := state.Precision()
		if !ok {
			scale = n.defaultScale(base)
		}
		// The default alphabet serves every base up to 16.
		s, _ = n.format(base, DefaultAlphabet(), scale, nil)
		if verb == 'X' {
			s = strings.ToUpper(s)
		}
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(radix.Number=%s)", verb, n.String())
		return
	}

	// Calculating padding
	width := utf8.RuneCountInString(s)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && numeric:
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lspaces))
	b.WriteString(strings.Repeat("0", lzeros))
	b.WriteString(s)
	b.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	//nolint:errcheck
	state.Write([]byte(b.String()))
}

func verbBase(verb rune) int {
	switch verb {
	case 'b':
		return 2
	case 'o', 'O':
		return 8
	case 'x', 'X':
		return 16
	}
	return 10
}

// defaultScale returns the number of fractional digits of the expansion in
// the given base if it terminates within [DefaultScale] digits.
// Otherwise it returns [DefaultScale].
func (n Number) defaultScale(base int) int {
	if n.frac.IsZero() {
		return 0
	}
	ld := n.frac.longDivision(base, DefaultScale+1)
	if len(ld.repetend) == 0 && len(ld.prefix) <= DefaultScale {
		return len(ld.prefix)
	}
	return DefaultScale
}
