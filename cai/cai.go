package cai

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gocai/gocai/bio"
	"github.com/gocai/gocai/codon"
)

// Scorer computes CAI of query sequences against fixed weights. It
// is not modified after creation and can be shared by goroutines.
type Scorer struct {
	gcode   *bio.GeneticCode
	weights Weights
}

// NewScorer derives weights from the reference (unless weights are
// given directly) for the genetic code.
func NewScorer(ref Reference, gcodeID int) (*Scorer, error) {
	if err := checkReference(ref); err != nil {
		return nil, err
	}
	gcode, err := bio.Lookup(gcodeID)
	if err != nil {
		return nil, err
	}

	var w Weights
	if given, ok := ref.(Weights); ok {
		w = make(Weights, len(given))
		for c, v := range given {
			w[c] = v
		}
	} else {
		w, err = RelativeAdaptiveness(ref, gcodeID)
		if err != nil {
			return nil, err
		}
	}
	if err := checkWeights(w); err != nil {
		return nil, err
	}
	log.Debugf("Scorer for genetic code %d with %d weights", gcode.ID, len(w))
	return &Scorer{gcode: gcode, weights: w}, nil
}

// Weights returns a copy of the weights used for scoring.
func (s *Scorer) Weights() Weights {
	w := make(Weights, len(s.weights))
	for c, v := range s.weights {
		w[c] = v
	}
	return w
}

// GeneticCode returns the genetic code used for scoring.
func (s *Scorer) GeneticCode() *bio.GeneticCode {
	return s.gcode
}

// checkWeights rejects weights which are negative or not finite.
func checkWeights(w Weights) error {
	for c, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weight of %s is %v", ErrInvalidArgument, c, v)
		}
	}
	return nil
}

// weight returns the weight of a codon and whether the codon is
// scored at all. Codons without synonyms and stop codons are not
// scored; AUG and UGG "do not contribute to the CAI" (page 1285).
// Alternative stops are scored only if they have a weight.
func (s *Scorer) weight(c string) (float64, bool, error) {
	if s.gcode.NonSynonymous()[c] || s.gcode.IsStopCodon(c) {
		return 0, false, nil
	}
	w, ok := s.weights[c]
	if !ok {
		if s.gcode.IsAltStopCodon(c) {
			return 0, false, nil
		}
		return 0, false, &MissingWeightError{Codon: c}
	}
	return w, true, nil
}

// scored returns weights of the scored codons in order.
func (s *Scorer) scored(codons []string) ([]float64, error) {
	res := make([]float64, 0, len(codons))
	for _, c := range codons {
		w, ok, err := s.weight(c)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, w)
		}
	}
	return res, nil
}

// Score returns the CAI of the sequence, the geometric mean of the
// weights of its scored codons. If no codon is scored (e.g. the
// sequence is ATG) the result is NaN and the error is nil.
func (s *Scorer) Score(seq string) (float64, error) {
	if err := checkSequence(seq); err != nil {
		return 0, err
	}
	w, err := s.scored(codon.Split(seq))
	if err != nil {
		return 0, err
	}
	return geometricMean(w), nil
}

// CAI calculates the codon adaptation index of a DNA sequence,
//
//	CAI = (prod_k w_k)^(1/L),
//
// where w_k is the relative adaptiveness of the k-th codon and L is
// the number of scored codons. The reference is exactly one of
// Sequences, RSCUTable or Weights. NaN is returned (with a nil
// error) if the sequence has only codons without synonyms and stop
// codons.
func CAI(seq string, ref Reference, gcodeID int) (float64, error) {
	if err := checkReference(ref); err != nil {
		return 0, err
	}
	if err := checkSequence(seq); err != nil {
		return 0, err
	}
	s, err := NewScorer(ref, gcodeID)
	if err != nil {
		return 0, err
	}
	return s.Score(seq)
}

// geometricMean returns the exponent of the mean logarithm. The sum
// of logarithms is compensated, so n copies of the same value give
// that value back. Empty input gives NaN, any zero gives 0.
func geometricMean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	logs := make([]float64, len(x))
	for i, v := range x {
		if v == 0 {
			return 0
		}
		logs[i] = math.Log(v)
	}
	return math.Exp(floats.SumCompensated(logs) / float64(len(logs)))
}
