/*
Package radix implements exact conversion of non-negative numbers between
positional bases.
It represents a number as an arbitrary-precision whole part plus an exact
[Fraction], so that a value written in one base can be rewritten in any other
base without accumulating rounding errors.

# Features

  - Conversion between any bases from 2 up to the size of the digit alphabet
  - Exact rational arithmetic, values are truncated only when formatted
  - Detection of repeating digits using long division
  - Custom alphabets, including multi-byte symbols
  - Addition of numbers written in different bases
  - Immutable values, safe for use across multiple goroutines

# Representation

A [Number] consists of a whole part stored as a [math/big.Int] and
a fractional part stored as a [Fraction] in lowest terms.
An [Alphabet] maps digit values to symbols and back.
The default alphabet consists of the symbols "0"-"9" followed by "a"-"z",
which gives bases 2 through 36.

A [Converter] binds a number to an alphabet and a scale, the number of digits
produced after the radix point.
Conversions truncate, they never round: 2/3 in base 10 with scale 2 is "0.66".

# Repeating Digits

Every rational number has a positional expansion that either terminates or
ends in a block of digits repeating forever, called the repetend.
[Number.Expand] and [Converter.ToBaseRepeat] detect the repetend by remembering
the remainders of the long division; the repetend starts at the first
remainder seen twice.
For example, 1/6 in base 10 is "0.1(6)" and 1/10 in base 2 is "0.0(0011)".

# Fixed-Point Conversion

[DecimalToBase] implements a different algorithm, which works on decimal
strings with fixed-point arithmetic, see [Fixed].
Every intermediate value is truncated to the scale, so the last digits may
differ from the exact expansion.
For example, "3.14159265358979" in base 8 with scale 10 is "3.1103755243"
using fixed-point arithmetic and "3.1103755242" using exact arithmetic.

# Errors

Errors occur when parsing numbers with symbols that are not digits of the base,
when a base is not supported by the alphabet, or when a scale is negative.
All errors wrap one of the exported sentinel errors, such as [ErrInvalidBase],
and can be tested with [errors.Is].
*/
package radix
