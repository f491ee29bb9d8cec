package qvalue

import (
	"fmt"
	"math"
)

// Multiplication returns Q[x*m] for a single-digit multiplier x in [0,9]
// and a non-negative multiplicand m. Multi-digit multipliers are not
// supported: Thomas never generalized the formulation beyond one digit,
// and doing so would need a combined multiplication-and-addition scheme.
//
// The calculation is decomposed into one sub-calculation per digit of m,
// least significant first, as in long multiplication. Unlike addition and
// subtraction the carry here is the tens part of the intermediate product
// and may reach 8. The constellation always holds x, the digit d, and the
// single-digit product x*d; positions whose intermediate product spills
// into the tens additionally hold the pending carry, the intermediate
// product, and (when the position is neither final nor a round ten) the
// split into its tens part and ones digit.
//
// A position with nothing to multiply or carry (x*d == 0 and no pending
// carry) scores 0, the same zero generalization applied to addition and
// subtraction. In particular Multiplication(0, m) == 0 for every m.
func Multiplication(x, m int) (float64, error) {
	if x < 0 || x > 9 {
		return 0, fmt.Errorf("qvalue: %s: %w: multiplier must be a single digit, got %d", OpMultiplication, ErrInvalidOperand, x)
	}
	if m < 0 {
		return 0, fmt.Errorf("qvalue: %s: %w: multiplicand must be non-negative, got %d", OpMultiplication, ErrInvalidOperand, m)
	}

	length := digitLen(m)

	var q float64
	carry := 0
	for i := 0; i < length; i++ {
		d := digit(m, i)
		last := i == length-1
		if x*d == 0 && carry == 0 {
			// nothing to multiply or carry
			continue
		}
		ip := x*d + carry
		switch {
		case ip < 10:
			// no spill into the tens
			q += math.Log10(float64(x + d + x*d + carry))
			carry = 0
		case last && carry == 0:
			// final digit: the spill is written down as-is
			q += math.Log10(float64(x + d + x*d))
		default:
			tens := ip - ip%10
			ones := ip % 10
			switch {
			case ones == 0 || last:
				q += math.Log10(float64(x + d + x*d + carry + ip))
			case carry > 0:
				q += math.Log10(float64(x + d + x*d + carry + ip + tens + ones))
			default:
				q += math.Log10(float64(x + d + x*d + tens + ones))
			}
			carry = tens / 10
		}
	}
	return q, nil
}
