package cai

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/gocai/gocai/bio"
)

// RelativeAdaptiveness calculates codon weights, "the frequency of
// use of that codon compared to the frequency of the optimal codon for
// that amino acid" (page 1283):
//
//	w_ij = RSCU_ij / RSCU_imax.
//
// The reference should be Sequences or an RSCUTable. Weights are
// computed for every codon of the RSCU table; the table must contain
// all the synonyms of each of its codons under the genetic code.
func RelativeAdaptiveness(ref Reference, gcodeID int) (Weights, error) {
	if err := checkReference(ref); err != nil {
		return nil, err
	}

	var rscu RSCUTable
	switch r := ref.(type) {
	case Sequences:
		var err error
		rscu, err = RSCU(r, gcodeID)
		if err != nil {
			return nil, err
		}
	case RSCUTable:
		rscu = r
	default:
		return nil, fmt.Errorf("%w: must provide either reference sequences or RSCU table, not %s",
			ErrInvalidArgument, ref.kind())
	}

	gcode, err := bio.Lookup(gcodeID)
	if err != nil {
		return nil, err
	}
	return weightsFromRSCU(rscu, gcode)
}

func weightsFromRSCU(rscu RSCUTable, gcode *bio.GeneticCode) (Weights, error) {
	syns := gcode.Synonyms()
	weights := make(Weights, len(rscu))
	values := make([]float64, 0, 6)
	for c, v := range rscu {
		group, ok := syns[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a sense codon of genetic code %d", ErrInvalidArgument, c, gcode.ID)
		}
		values = values[:0]
		for _, s := range group {
			sv, ok := rscu[s]
			if !ok {
				return nil, fmt.Errorf("genetic code %d: %w", gcode.ID, &MissingWeightError{Codon: s})
			}
			values = append(values, sv)
		}
		weights[c] = v / floats.Max(values)
	}
	return weights, nil
}
