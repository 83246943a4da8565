package output

import (
	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/sweep"
)

// Mode selects how much of each outcome is rendered
type Mode int

const (
	// ModeCount renders the pass count only
	ModeCount Mode = iota
	// ModeTrace also renders the values collected in each pass
	ModeTrace
)

// record is the serialised form of one outcome
type record struct {
	Index      int          `json:"index" yaml:"index"`
	Sequence   []int        `json:"sequence" yaml:"sequence"`
	Operations *int         `json:"operations,omitempty" yaml:"operations,omitempty"`
	Passes     []sweep.Pass `json:"passes,omitempty" yaml:"passes,omitempty"`
	Error      *errorRecord `json:"error,omitempty" yaml:"error,omitempty"`
}

type errorRecord struct {
	Code    string                 `json:"code" yaml:"code"`
	Message string                 `json:"message" yaml:"message"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// document wraps every record so structured output has a single root
type document struct {
	Results []record `json:"results" yaml:"results"`
}

func toRecord(o sweep.Outcome, mode Mode) record {
	seq := o.Sequence
	if seq == nil {
		seq = []int{}
	}
	rec := record{Index: o.Index, Sequence: seq}

	if o.Err != nil {
		rec.Error = &errorRecord{
			Code:    string(errors.GetErrorCode(o.Err)),
			Message: o.Err.Error(),
			Details: errors.GetErrorDetails(o.Err),
		}
		return rec
	}

	ops := o.Result.Operations
	rec.Operations = &ops
	if mode == ModeTrace {
		rec.Passes = o.Result.Passes
	}
	return rec
}

func toDocument(outcomes []sweep.Outcome, mode Mode) document {
	doc := document{Results: make([]record, 0, len(outcomes))}
	for _, o := range outcomes {
		doc.Results = append(doc.Results, toRecord(o, mode))
	}
	return doc
}
