package cai

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gocai/gocai/bio"
)

func TestRelativeAdaptiveness(tst *testing.T) {
	seqs := Sequences{"AACAACAATGCTGCTGCAATGTGG"}
	w, err := RelativeAdaptiveness(seqs, 11)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	gc, _ := bio.Lookup(11)
	if len(w) != gc.NCodon {
		tst.Errorf("Expected %d weights, got %d", gc.NCodon, len(w))
	}
	exp := map[string]float64{
		"AAC": 1,
		"AAT": 0.5,
		"GCT": 1,
		"GCA": 0.5,
		"GCC": 0.25,
		"ATG": 1,
		"TGG": 1,
		"CTG": 1,
	}
	for c, v := range exp {
		if !appreq(w[c], v) {
			tst.Errorf("%s: expected %v, got %v", c, v, w[c])
		}
	}

	// every amino acid has a codon with weight 1
	best := map[byte]float64{}
	for c, v := range w {
		if v <= 0 || v > 1 {
			tst.Errorf("%s: weight %v out of (0, 1]", c, v)
		}
		if v > best[gc.Map[c]] {
			best[gc.Map[c]] = v
		}
	}
	for aa, v := range best {
		if v != 1 {
			tst.Errorf("%c: maximum weight %v", aa, v)
		}
	}
}

func TestRelativeAdaptivenessFromRSCU(tst *testing.T) {
	seqs := Sequences{"AACAATAACGCT", "TTGCTG"}
	rscu, err := RSCU(seqs, 11)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	a, err1 := RelativeAdaptiveness(seqs, 11)
	b, err2 := RelativeAdaptiveness(rscu, 11)
	if err1 != nil || err2 != nil {
		tst.Fatal("Error: ", err1, err2)
	}
	if !reflect.DeepEqual(a, b) {
		tst.Error("Weights from sequences and from RSCU differ")
	}
}

func TestRelativeAdaptivenessErrors(tst *testing.T) {
	tests := []struct {
		ref Reference
		id  int
		err error
	}{
		{nil, 11, ErrInvalidArgument},
		{Sequences{}, 11, ErrInvalidArgument},
		{RSCUTable{}, 11, ErrInvalidArgument},
		{Weights{"AAC": 1}, 11, ErrInvalidArgument},
		{Sequences{"AACG"}, 11, ErrMalformedSequence},
		{Sequences{"AAC"}, 17, ErrInvalidCode},
		{RSCUTable{"TAA": 1}, 11, ErrInvalidArgument},
	}
	for _, t := range tests {
		_, err := RelativeAdaptiveness(t.ref, t.id)
		if !errors.Is(err, t.err) {
			tst.Errorf("%v: expected %v, got %v", t.ref, t.err, err)
		}
	}
}

func TestRelativeAdaptivenessMissingSynonym(tst *testing.T) {
	_, err := RelativeAdaptiveness(RSCUTable{"AAC": 1.5}, 11)
	var mw *MissingWeightError
	if !errors.As(err, &mw) || mw.Codon != "AAT" {
		tst.Error("Expected missing weight for AAT, got", err)
	}

	// TGA is a cysteine codon under code 10, but absent from a code 11 table
	rscu, _ := RSCU([]string{"TGC"}, 11)
	_, err = RelativeAdaptiveness(rscu, 10)
	if !errors.As(err, &mw) || mw.Codon != "TGA" {
		tst.Error("Expected missing weight for TGA, got", err)
	}
}
