package sweep_test

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/sweep"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ascending(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i + 1
	}
	return seq
}

func descending(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = n - i
	}
	return seq
}

func TestMinOperations(t *testing.T) {
	tests := []struct {
		name     string
		sequence []int
		expected int
	}{
		{name: "empty", sequence: []int{}, expected: 0},
		{name: "nil", sequence: nil, expected: 0},
		{name: "single", sequence: []int{1}, expected: 1},
		{name: "sorted", sequence: ascending(10), expected: 1},
		{name: "reversed", sequence: descending(10), expected: 10},
		{name: "tail_pair_first", sequence: []int{5, 3, 4, 1, 2}, expected: 3},
		{name: "interleaved", sequence: []int{3, 1, 4, 2, 5}, expected: 2},
		{name: "swapped_pair", sequence: []int{2, 1}, expected: 2},
		{name: "last_first", sequence: []int{4, 1, 2, 3}, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sweep.MinOperations(tt.sequence)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMinOperationsPermutationBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 1; n <= 40; n++ {
		seq := ascending(n)
		rng.Shuffle(n, func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })

		got, err := sweep.MinOperations(seq)
		require.NoError(t, err, "sequence %v", seq)
		assert.GreaterOrEqual(t, got, 1, "sequence %v", seq)
		assert.LessOrEqual(t, got, n, "sequence %v", seq)
	}
}

func TestMinOperationsIsRepeatable(t *testing.T) {
	seq := []int{3, 1, 4, 2, 5}
	original := append([]int(nil), seq...)

	first, err := sweep.MinOperations(seq)
	require.NoError(t, err)
	second, err := sweep.MinOperations(seq)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, original, seq, "input must not be modified")
}

func TestMinOperationsNoProgress(t *testing.T) {
	tests := []struct {
		name        string
		sequence    []int
		wantPlaced  int
		wantMissing int
		wantPass    int
	}{
		{name: "gap", sequence: []int{1, 2, 4}, wantPlaced: 2, wantMissing: 3, wantPass: 2},
		{name: "no_one", sequence: []int{2, 3}, wantPlaced: 0, wantMissing: 1, wantPass: 1},
		{name: "duplicate", sequence: []int{2, 1, 1}, wantPlaced: 2, wantMissing: 3, wantPass: 3},
		{name: "zero_and_negative", sequence: []int{0, -1}, wantPlaced: 0, wantMissing: 1, wantPass: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sweep.MinOperations(tt.sequence)
			require.Error(t, err)
			assert.Equal(t, 0, got)
			assert.True(t, errors.IsErrorCode(err, errors.ErrNoProgress))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.wantPlaced, details["placed"])
			assert.Equal(t, tt.wantMissing, details["missing"])
			assert.Equal(t, len(tt.sequence), details["length"])
			assert.Equal(t, tt.wantPass, details["pass"])
		})
	}
}

func TestTrace(t *testing.T) {
	t.Run("records_collected_values_per_pass", func(t *testing.T) {
		result, err := sweep.Trace([]int{3, 1, 4, 2, 5})
		require.NoError(t, err)

		assert.Equal(t, 5, result.Length)
		assert.Equal(t, 2, result.Operations)
		assert.Equal(t, []sweep.Pass{
			{Number: 1, Collected: []int{1, 2}},
			{Number: 2, Collected: []int{3, 4, 5}},
		}, result.Passes)
	})

	t.Run("value_behind_the_cursor_waits_a_pass", func(t *testing.T) {
		result, err := sweep.Trace([]int{5, 3, 4, 1, 2})
		require.NoError(t, err)

		assert.Equal(t, []sweep.Pass{
			{Number: 1, Collected: []int{1, 2}},
			{Number: 2, Collected: []int{3, 4}},
			{Number: 3, Collected: []int{5}},
		}, result.Passes)
	})

	t.Run("empty_sequence_has_no_passes", func(t *testing.T) {
		result, err := sweep.Trace(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Operations)
		assert.Empty(t, result.Passes)
	})

	t.Run("passes_concatenate_to_ascending_run", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		seq := ascending(25)
		rng.Shuffle(len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })

		result, err := sweep.Trace(seq)
		require.NoError(t, err)

		var all []int
		for _, p := range result.Passes {
			all = append(all, p.Collected...)
		}
		assert.Equal(t, ascending(25), all)
		assert.Len(t, result.Passes, result.Operations)

		count, err := sweep.MinOperations(seq)
		require.NoError(t, err)
		assert.Equal(t, count, result.Operations)
	})

	t.Run("malformed_input_errors", func(t *testing.T) {
		result, err := sweep.Trace([]int{1, 3})
		assert.Nil(t, result)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoProgress))
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("evaluates_each_sequence_independently", func(t *testing.T) {
		outcomes := sweep.Evaluate(context.Background(), [][]int{
			{5, 3, 4, 1, 2},
			{1, 3},
			{3, 1, 4, 2, 5},
		})
		require.Len(t, outcomes, 3)

		assert.False(t, outcomes[0].Failed())
		assert.Equal(t, 3, outcomes[0].Result.Operations)

		assert.True(t, outcomes[1].Failed())
		assert.Nil(t, outcomes[1].Result)

		assert.Equal(t, 2, outcomes[2].Index)
		assert.Equal(t, 2, outcomes[2].Result.Operations)

		assert.True(t, sweep.AnyFailed(outcomes))
	})

	t.Run("cancelled_context_marks_remaining", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcomes := sweep.Evaluate(ctx, [][]int{{1}, {2, 1}})
		for _, o := range outcomes {
			assert.ErrorIs(t, o.Err, context.Canceled)
			assert.True(t, errors.IsErrorCode(o.Err, errors.ErrCanceled))
		}
	})

	t.Run("no_sequences", func(t *testing.T) {
		outcomes := sweep.Evaluate(context.Background(), nil)
		assert.Empty(t, outcomes)
		assert.False(t, sweep.AnyFailed(outcomes))
	})
}

func TestSweepWritesNoLogsWithoutSetup(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })
	log.Logger = zerolog.New(&buf)

	ops, err := sweep.MinOperations([]int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, ops)

	_, err = sweep.Trace(descending(5))
	require.NoError(t, err)

	_, err = sweep.MinOperations([]int{1, 3})
	require.Error(t, err)

	assert.Empty(t, buf.String())
}
