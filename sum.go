package radix

import "math/big"

// Sum returns the exact sum of the numbers.
// Whole parts are added as integers and fractional parts as fractions; whenever
// the fractions add up to one or more, one is carried into the whole part.
// Sum of no numbers is 0.
// The arguments are not modified.
func Sum(numbers ...Number) Number {
	whole := new(big.Int)
	frac := Fraction{}
	for _, n := range numbers {
		whole.Add(whole, n.wholePart())
		frac = frac.Add(n.frac)
		// Carry
		if !frac.WithinOne() {
			whole.Add(whole, bigOne)
			num := frac.Num()
			num.Sub(num, frac.denominator())
			frac = newFractionUnsafe(num, frac.Den())
		}
	}
	return newNumberUnsafe(whole, frac)
}

// Add returns the exact sum of numbers n and m.
// See also function [Sum].
func (n Number) Add(m Number) Number {
	return Sum(n, m)
}
