// Package qvalue computes Q-values for elementary calculations, after
//
//	H. B. G. Thomas (1963), Communication theory and the constellation
//	hypothesis of calculation, Quarterly Journal of Experimental
//	Psychology, 15:3, 173-191.
//
// A Q-value estimates the information requirement of a calculation by
// breaking it into single-digit sub-calculations and scoring each one as
// the log10 of its "short constellation" sum -- the digit values the
// solver actually has to hold, with the value that follows arithmetically
// from the others left implicit. Carries and borrows link consecutive
// sub-calculations and raise their cost.
//
// This package uses the short addition constellations and generalizes the
// original formulation to operands containing zero digits: any
// sub-calculation with at most one non-zero participant (counting a
// carried 1) scores 0. So Addition(10, 1) = 0 while Addition(11, 1) =
// log10(4). Thomas himself excluded zeros entirely.
//
// All functions are pure and safe for concurrent use.
package qvalue

import (
	"errors"
	"fmt"
)

// ErrInvalidOperand is returned when an input is outside the documented
// domain: negative operands anywhere, or a multiplier outside [0,9].
var ErrInvalidOperand = errors.New("invalid operand")

// Op identifies a scored operation.
type Op string

const (
	OpAddition       Op = "addition"
	OpSubtraction    Op = "subtraction"
	OpMultiplication Op = "multiplication"
)

func (o Op) Valid() bool {
	switch o {
	case OpAddition, OpSubtraction, OpMultiplication:
		return true
	}
	return false
}

// Symbol returns the operator sign for display.
func (o Op) Symbol() string {
	switch o {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "x"
	default:
		return "?"
	}
}

// digit returns the i-th decimal digit of n, counting from the least
// significant at i = 0. Positions beyond the end of n are 0, which gives
// the zero-padding of the shorter operand for free.
func digit(n, i int) int {
	for ; i > 0; i-- {
		n /= 10
	}
	return n % 10
}

// digitLen returns the number of decimal digits in n (1 for 0).
func digitLen(n int) int {
	l := 1
	for n >= 10 {
		l++
		n /= 10
	}
	return l
}

func checkNonNegative(op Op, n1, n2 int) error {
	if n1 < 0 || n2 < 0 {
		return fmt.Errorf("qvalue: %s: %w: operands must be non-negative, got %d and %d", op, ErrInvalidOperand, n1, n2)
	}
	return nil
}
