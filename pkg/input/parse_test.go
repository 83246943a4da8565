package input_test

import (
	"testing"

	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		extraSeps string
		expected  []int
	}{
		{name: "commas", input: "5,3,4,1,2", expected: []int{5, 3, 4, 1, 2}},
		{name: "spaces", input: "5 3 4 1 2", expected: []int{5, 3, 4, 1, 2}},
		{name: "mixed_with_padding", input: "  3, 1 ,4,\t2  5 ", expected: []int{3, 1, 4, 2, 5}},
		{name: "brackets", input: "[2, 1]", expected: []int{2, 1}},
		{name: "extra_separators", input: "1;2|3", extraSeps: ";|", expected: []int{1, 2, 3}},
		{name: "negative_values_parse", input: "-1,2", expected: []int{-1, 2}},
		{name: "blank", input: "   ", expected: []int{}},
		{name: "empty_brackets", input: "[]", expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := input.ParseSequence(tt.input, tt.extraSeps)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseSequenceInvalidToken(t *testing.T) {
	_, err := input.ParseSequence("1,2,x,4", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "x", details["token"])
	assert.Equal(t, 3, details["position"])
}

func TestParseSequenceSeparatorNotConfigured(t *testing.T) {
	_, err := input.ParseSequence("1;2", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}

func TestParseAll(t *testing.T) {
	t.Run("one_sequence_per_argument", func(t *testing.T) {
		got, err := input.ParseAll([]string{"5,3,4,1,2", "3 1 4 2 5"}, "")
		require.NoError(t, err)
		assert.Equal(t, [][]int{{5, 3, 4, 1, 2}, {3, 1, 4, 2, 5}}, got)
	})

	t.Run("reports_failing_argument", func(t *testing.T) {
		_, err := input.ParseAll([]string{"1,2", "1,two"}, "")
		require.Error(t, err)
		assert.Equal(t, 2, errors.GetErrorDetails(err)["argument"])
	})
}
