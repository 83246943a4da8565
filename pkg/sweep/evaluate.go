package sweep

import (
	"context"

	"github.com/arthur-debert/sweeps/pkg/errors"
)

// Outcome pairs one input sequence with its sweep result or error
type Outcome struct {
	Index    int     `json:"index" yaml:"index"`
	Sequence []int   `json:"sequence" yaml:"sequence"`
	Result   *Result `json:"result,omitempty" yaml:"result,omitempty"`
	Err      error   `json:"-" yaml:"-"`
}

// Failed reports whether the sequence could not be swept
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Evaluate traces every sequence independently. A failing sequence does not
// stop the others; once ctx is done the remaining outcomes carry a CANCELED
// error wrapping ctx.Err().
func Evaluate(ctx context.Context, sequences [][]int) []Outcome {
	outcomes := make([]Outcome, len(sequences))

	for i, seq := range sequences {
		outcomes[i] = Outcome{Index: i, Sequence: seq}

		if err := ctx.Err(); err != nil {
			outcomes[i].Err = errors.Wrap(err, errors.ErrCanceled, "sweep canceled")
			continue
		}

		outcomes[i].Result, outcomes[i].Err = Trace(seq)
	}

	return outcomes
}

// AnyFailed reports whether at least one outcome carries an error
func AnyFailed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Failed() {
			return true
		}
	}
	return false
}
