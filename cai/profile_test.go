package cai

import (
	"errors"
	"math"
	"testing"
)

func TestProfile(tst *testing.T) {
	s, err := NewScorer(Sequences{"AAC"}, 11)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	// AAC AAC ATG AAT AAT TAA
	seq := "AACAACATGAATAATTAA"
	res, err := s.Profile(seq, 2, 2)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	exp := []Window{
		{0, 6, 2, 1},
		{6, 12, 1, 0.5},
		{12, 18, 1, 0.5},
	}
	if len(res) != len(exp) {
		tst.Fatal("Expected", len(exp), "windows, got", len(res))
	}
	for i, w := range res {
		e := exp[i]
		if w.Start != e.Start || w.End != e.End || w.Scored != e.Scored || !appreq(w.CAI, e.CAI) {
			tst.Errorf("window %d: expected %+v, got %+v", i, e, w)
		}
	}

	res, _ = s.Profile(seq, 1, 1)
	if len(res) != 6 || !math.IsNaN(res[2].CAI) || !math.IsNaN(res[5].CAI) {
		tst.Error("Expected NaN for ATG and TAA windows, got", res)
	}

	// window longer than the sequence
	res, _ = s.Profile(seq, 100, 10)
	whole, _ := s.Score(seq)
	if len(res) != 1 || res[0].End != len(seq) || res[0].CAI != whole {
		tst.Error("Expected a single window with CAI", whole, ", got", res)
	}
}

func TestProfileErrors(tst *testing.T) {
	s, _ := NewScorer(Sequences{"AAC"}, 11)
	if _, err := s.Profile("AAC", 0, 1); !errors.Is(err, ErrInvalidArgument) {
		tst.Error("Expected ErrInvalidArgument, got", err)
	}
	if _, err := s.Profile("AACA", 1, 1); !errors.Is(err, ErrMalformedSequence) {
		tst.Error("Expected ErrMalformedSequence, got", err)
	}
	var mw *MissingWeightError
	s, _ = NewScorer(Weights{"AAC": 1}, 11)
	if _, err := s.Profile("AACAAT", 1, 1); !errors.As(err, &mw) {
		tst.Error("Expected MissingWeightError, got", err)
	}
}
