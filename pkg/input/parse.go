// Package input turns command-line arguments and files into integer sequences.
package input

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/arthur-debert/sweeps/pkg/errors"
)

// ParseSequence parses integers separated by commas, whitespace, or any rune
// in extraSeps. Surrounding brackets are ignored. A blank string is an empty
// sequence.
func ParseSequence(s string, extraSeps string) ([]int, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r) || strings.ContainsRune(extraSeps, r)
	})

	seq := make([]int, 0, len(fields))
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrParse, "invalid integer %q", field).
				WithDetail("token", field).
				WithDetail("position", i+1)
		}
		seq = append(seq, value)
	}

	return seq, nil
}

// ParseAll parses each argument as one sequence
func ParseAll(args []string, extraSeps string) ([][]int, error) {
	sequences := make([][]int, 0, len(args))
	for i, arg := range args {
		seq, err := ParseSequence(arg, extraSeps)
		if err != nil {
			if se, ok := err.(*errors.SweepError); ok {
				se.WithDetail("argument", i+1)
			}
			return nil, err
		}
		sequences = append(sequences, seq)
	}
	return sequences, nil
}
