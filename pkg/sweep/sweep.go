package sweep

import (
	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/logging"
)

// Pass records the values collected during one scan of the sequence
type Pass struct {
	Number    int   `json:"number" yaml:"number"`
	Collected []int `json:"collected" yaml:"collected"`
}

// Result is the outcome of sweeping one sequence
type Result struct {
	Length     int    `json:"length" yaml:"length"`
	Operations int    `json:"operations" yaml:"operations"`
	Passes     []Pass `json:"passes" yaml:"passes"`
}

// MinOperations returns the number of passes needed to collect the sequence
// in ascending order.
func MinOperations(sequence []int) (int, error) {
	operations, err := sweep(sequence, nil)
	if err != nil {
		return 0, err
	}
	return operations, nil
}

// Trace sweeps the sequence like MinOperations and also records which values
// each pass collected.
func Trace(sequence []int) (*Result, error) {
	result := &Result{
		Length: len(sequence),
		Passes: []Pass{},
	}

	operations, err := sweep(sequence, func(pass, value int) {
		if len(result.Passes) < pass {
			result.Passes = append(result.Passes, Pass{Number: pass})
		}
		last := &result.Passes[len(result.Passes)-1]
		last.Collected = append(last.Collected, value)
	})
	if err != nil {
		return nil, err
	}

	result.Operations = operations
	return result, nil
}

// sweep runs the pass loop. collect, when set, is called for every placed
// value with the 1-based pass number.
func sweep(sequence []int, collect func(pass, value int)) (int, error) {
	logger := logging.GetLogger("sweep")

	n := len(sequence)
	sortedCount := 0
	operations := 0

	for sortedCount < n {
		operations++
		before := sortedCount

		for _, value := range sequence {
			if value == sortedCount+1 {
				sortedCount++
				if collect != nil {
					collect(operations, value)
				}
			}
		}

		logger.Trace().
			Int("pass", operations).
			Int("placed", sortedCount).
			Msg("Pass complete")

		if sortedCount == before {
			return 0, errors.Newf(errors.ErrNoProgress,
				"value %d not found in pass %d", sortedCount+1, operations).
				WithDetail("placed", sortedCount).
				WithDetail("missing", sortedCount+1).
				WithDetail("length", n).
				WithDetail("pass", operations)
		}
	}

	logger.Debug().
		Int("length", n).
		Int("operations", operations).
		Msg("Sequence swept")

	return operations, nil
}
