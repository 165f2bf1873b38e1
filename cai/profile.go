package cai

import (
	"fmt"

	"github.com/gocai/gocai/codon"
)

// Window is the CAI of a part of a sequence. Start and End are
// 0-based nucleotide positions, End is exclusive.
type Window struct {
	Start int
	End   int
	// Scored is the number of codons contributing to CAI.
	Scored int
	CAI    float64
}

// Profile computes CAI in sliding windows of window codons, moving
// the window by step codons. If the sequence is shorter than the
// window, a single window covers the whole sequence. Windows without
// scored codons have NaN CAI.
func (s *Scorer) Profile(seq string, window, step int) ([]Window, error) {
	if window < 1 || step < 1 {
		return nil, fmt.Errorf("%w: window (%d) and step (%d) must be positive", ErrInvalidArgument, window, step)
	}
	if err := checkSequence(seq); err != nil {
		return nil, err
	}

	codons := codon.Split(seq)
	weights := make([]float64, len(codons))
	isScored := make([]bool, len(codons))
	for i, c := range codons {
		w, ok, err := s.weight(c)
		if err != nil {
			return nil, err
		}
		weights[i] = w
		isScored[i] = ok
	}

	if window > len(codons) {
		window = len(codons)
	}
	res := make([]Window, 0, (len(codons)-window)/step+1)
	buf := make([]float64, 0, window)
	for start := 0; start+window <= len(codons); start += step {
		buf = buf[:0]
		for i := start; i < start+window; i++ {
			if isScored[i] {
				buf = append(buf, weights[i])
			}
		}
		res = append(res, Window{
			Start:  start * 3,
			End:    (start + window) * 3,
			Scored: len(buf),
			CAI:    geometricMean(buf),
		})
	}
	log.Debugf("Computed %d windows of %d codons", len(res), window)
	return res, nil
}
