package qvalue

import "math"

// Subtraction returns Q[n1-n2] for non-negative n1 and n2.
//
// Same digit sweep as Addition, with a running borrow instead of a carry.
// Following Thomas, the short constellation for subtraction omits the
// final result digit, so it holds both input digits, their absolute
// difference, the pending borrow, and a 10 when the position borrows:
//
//	no borrow out:  log10(d1 + d2 + |d1-d2| + borrow)
//	borrow out:     log10(d1 + d2 + |d1-d2| + 10 + borrow)
//
// Omitting the result digit makes positions without a borrow out
// invariant to the exact value of d2, and positions with one invariant to
// d1. Thomas does not discuss this, but it follows from his rule that
// "it is the answer which should be omitted"; it is reproduced here
// as documented rather than corrected.
//
// A position that subtracts nothing (d2 and the incoming borrow both
// zero) scores 0. n1 may be smaller than n2; a borrow out of the most
// significant position is not separately scored.
func Subtraction(n1, n2 int) (float64, error) {
	if err := checkNonNegative(OpSubtraction, n1, n2); err != nil {
		return 0, err
	}

	length := digitLen(n1)
	if l := digitLen(n2); l > length {
		length = l
	}

	var q float64
	borrow := 0
	for i := 0; i < length; i++ {
		d1 := digit(n1, i)
		d2 := digit(n2, i)
		diff := d1 - d2
		if diff < 0 {
			diff = -diff
		}
		switch {
		case d2 == 0 && borrow == 0:
			// subtracting nothing, no calculation necessary
		case d1-d2-borrow >= 0:
			q += math.Log10(float64(d1 + d2 + diff + borrow))
			borrow = 0
		default:
			q += math.Log10(float64(d1 + d2 + diff + 10 + borrow))
			borrow = 1
		}
	}
	return q, nil
}
