// Package sampler draws random calculations whose Q-value falls inside a
// target range, by rejection sampling against the qvalue scorer.
package sampler

import (
	"fmt"
	"math/rand/v2"

	"github.com/dshills/qcalc/internal/qvalue"
)

// DefaultTrials is the draw budget used when a Request leaves Trials unset.
const DefaultTrials = 20000

// Request bounds one sampling run. The probability of a hit depends on
// every field together: a narrow Q window, an operand range that cannot
// reach it, or a small budget may all produce a miss even though matching
// calculations exist.
type Request struct {
	QMin       float64
	QMax       float64
	MinOperand int
	MaxOperand int
	Trials     int
}

func (r Request) trials() int {
	if r.Trials <= 0 {
		return DefaultTrials
	}
	return r.Trials
}

func (r Request) valid() bool {
	return r.MinOperand >= 0 && r.MinOperand <= r.MaxOperand && r.QMin <= r.QMax
}

// Calculation is one sampled problem together with its Q-value. For
// multiplication N1 is the single-digit multiplier and N2 the
// multiplicand.
type Calculation struct {
	Op qvalue.Op `json:"op"`
	N1 int       `json:"n1"`
	N2 int       `json:"n2"`
	Q  float64   `json:"q"`
}

// Result returns the arithmetic result of the calculation.
func (c Calculation) Result() int {
	switch c.Op {
	case qvalue.OpSubtraction:
		return c.N1 - c.N2
	case qvalue.OpMultiplication:
		return c.N1 * c.N2
	default:
		return c.N1 + c.N2
	}
}

// String renders the problem without its result, e.g. "345 + 9585".
func (c Calculation) String() string {
	return fmt.Sprintf("%d %s %d", c.N1, c.Op.Symbol(), c.N2)
}

// Sampler draws calculations from a seeded source, so a run can be
// replayed exactly.
type Sampler struct {
	rng *rand.Rand
}

// New returns a Sampler seeded with the given value.
func New(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// intN draws uniformly from [lo, hi] inclusive.
func (s *Sampler) intN(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// Addition draws operand pairs in [MinOperand, MaxOperand] until
// Q[n1+n2] lands in [QMin, QMax] or the budget runs out. A miss is a
// normal outcome, reported as ok == false.
func (s *Sampler) Addition(req Request) (Calculation, bool) {
	if !req.valid() {
		return Calculation{}, false
	}
	for i := 0; i < req.trials(); i++ {
		n1 := s.intN(req.MinOperand, req.MaxOperand)
		n2 := s.intN(req.MinOperand, req.MaxOperand)
		q, err := qvalue.Addition(n1, n2)
		if err != nil {
			continue
		}
		if q >= req.QMin && q <= req.QMax {
			return Calculation{Op: qvalue.OpAddition, N1: n1, N2: n2, Q: q}, true
		}
	}
	return Calculation{}, false
}

// Subtraction draws n1 in [MinOperand, MaxOperand] and n2 in
// [MinOperand, n1], so results never go negative.
func (s *Sampler) Subtraction(req Request) (Calculation, bool) {
	if !req.valid() {
		return Calculation{}, false
	}
	for i := 0; i < req.trials(); i++ {
		n1 := s.intN(req.MinOperand, req.MaxOperand)
		n2 := s.intN(req.MinOperand, n1)
		q, err := qvalue.Subtraction(n1, n2)
		if err != nil {
			continue
		}
		if q >= req.QMin && q <= req.QMax {
			return Calculation{Op: qvalue.OpSubtraction, N1: n1, N2: n2, Q: q}, true
		}
	}
	return Calculation{}, false
}

// Multiplication draws a multiplier in [2, 9] and a multiplicand in
// [MinOperand, MaxOperand]. Multipliers 0 and 1 are accepted by the
// scorer but make for pointless practice, so they are never drawn.
func (s *Sampler) Multiplication(req Request) (Calculation, bool) {
	if !req.valid() {
		return Calculation{}, false
	}
	for i := 0; i < req.trials(); i++ {
		x := s.intN(2, 9)
		m := s.intN(req.MinOperand, req.MaxOperand)
		q, err := qvalue.Multiplication(x, m)
		if err != nil {
			continue
		}
		if q >= req.QMin && q <= req.QMax {
			return Calculation{Op: qvalue.OpMultiplication, N1: x, N2: m, Q: q}, true
		}
	}
	return Calculation{}, false
}

// Sample dispatches on op.
func (s *Sampler) Sample(op qvalue.Op, req Request) (Calculation, bool) {
	switch op {
	case qvalue.OpAddition:
		return s.Addition(req)
	case qvalue.OpSubtraction:
		return s.Subtraction(req)
	case qvalue.OpMultiplication:
		return s.Multiplication(req)
	default:
		return Calculation{}, false
	}
}
