// Package render produces text and Markdown output from sampled
// calculations.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/qcalc/internal/sampler"
)

// Text renders one calculation per line. With answers enabled each line
// carries the result and the Q-value.
func Text(calcs []sampler.Calculation, answers bool) string {
	var b strings.Builder
	for _, c := range calcs {
		if answers {
			fmt.Fprintf(&b, "%s = %d\tQ = %.4f\n", c.String(), c.Result(), c.Q)
		} else {
			fmt.Fprintf(&b, "%s =\n", c.String())
		}
	}
	return b.String()
}

// Markdown renders a numbered worksheet. With answers enabled an answer
// key with Q-values follows the problems.
func Markdown(title string, calcs []sampler.Calculation, answers bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)

	if len(calcs) == 0 {
		b.WriteString("No problems generated.\n")
		return b.String()
	}

	for i, c := range calcs {
		fmt.Fprintf(&b, "%d. %s =\n", i+1, c.String())
	}

	if answers {
		b.WriteString("\n## Answer key\n\n")
		for i, c := range calcs {
			fmt.Fprintf(&b, "%d. %s = %d (Q = %.4f)\n", i+1, c.String(), c.Result(), c.Q)
		}
	}

	return b.String()
}
