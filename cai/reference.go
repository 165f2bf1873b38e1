package cai

import "fmt"

// Reference is the data CAI weights are derived from. It is one of
// Sequences, RSCUTable or Weights.
type Reference interface {
	kind() string
	empty() bool
}

// Sequences is a reference set of coding sequences.
type Sequences []string

// RSCUTable maps sense codons to relative synonymous codon usage.
type RSCUTable map[string]float64

// Weights maps codons to relative adaptiveness.
type Weights map[string]float64

func (s Sequences) kind() string { return "reference sequences" }
func (s Sequences) empty() bool  { return len(s) == 0 }

func (t RSCUTable) kind() string { return "RSCU table" }
func (t RSCUTable) empty() bool  { return len(t) == 0 }

func (w Weights) kind() string { return "weights" }
func (w Weights) empty() bool  { return len(w) == 0 }

// Input holds the alternative reference inputs when the caller has
// all of them as optional values. Exactly one should be set.
type Input struct {
	Weights   Weights
	RSCU      RSCUTable
	Reference Sequences
}

// Resolve returns the only supplied (non-nil) input. If none or more
// than one is supplied, or the supplied one is empty,
// ErrInvalidArgument is returned.
func (in Input) Resolve() (Reference, error) {
	var res []Reference
	if in.Reference != nil {
		res = append(res, in.Reference)
	}
	if in.RSCU != nil {
		res = append(res, in.RSCU)
	}
	if in.Weights != nil {
		res = append(res, in.Weights)
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("%w: must provide either reference sequences, or RSCU table, or weights (got %d)",
			ErrInvalidArgument, len(res))
	}
	if err := checkReference(res[0]); err != nil {
		return nil, err
	}
	return res[0], nil
}

// checkReference rejects nil and empty references.
func checkReference(ref Reference) error {
	if ref == nil {
		return fmt.Errorf("%w: no reference data", ErrInvalidArgument)
	}
	if ref.empty() {
		return fmt.Errorf("%w: empty %s", ErrInvalidArgument, ref.kind())
	}
	return nil
}
