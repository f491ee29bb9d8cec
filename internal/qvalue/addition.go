package qvalue

import "math"

// Addition returns Q[n1+n2] for non-negative n1 and n2.
//
// The calculation is decomposed into one sub-calculation per digit
// position, least significant first, with a running carry. A position
// where either digit is zero and no carry is pending requires no work and
// scores 0. Otherwise the short constellation holds both digits, their
// sum, the pending carry, and a 10 when the position itself carries:
//
//	no carry out:  log10(d1 + d2 + (d1+d2) + carry)
//	carry out:     log10(d1 + d2 + (d1+d2) + 10 + carry)
//
// A carry out of the most significant position is written down, not
// calculated with, and is not separately scored.
func Addition(n1, n2 int) (float64, error) {
	if err := checkNonNegative(OpAddition, n1, n2); err != nil {
		return 0, err
	}

	length := digitLen(n1)
	if l := digitLen(n2); l > length {
		length = l
	}

	var q float64
	carry := 0
	for i := 0; i < length; i++ {
		d1 := digit(n1, i)
		d2 := digit(n2, i)
		switch {
		case (d1 == 0 || d2 == 0) && carry == 0:
			// at most one non-zero participant, no calculation necessary
		case d1+d2+carry < 10:
			q += math.Log10(float64(d1 + d2 + (d1 + d2) + carry))
			carry = 0
		default:
			q += math.Log10(float64(d1 + d2 + (d1 + d2) + 10 + carry))
			carry = 1
		}
	}
	return q, nil
}
