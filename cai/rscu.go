/*
Package cai computes the codon adaptation index (Sharp & Li, 1987)
together with relative synonymous codon usage (RSCU) and relative
adaptiveness (codon weights).

The data flow is

	reference sequences -> RSCU -> weights -> CAI(query)

and each stage accepts the output of the previous one directly:

	w, err := cai.RelativeAdaptiveness(cai.Sequences(refs), 11)
	v, err := cai.CAI(query, w, 11)

All the functions are pure and can be called concurrently.
*/
package cai

import (
	"fmt"

	"github.com/op/go-logging"
	"gonum.org/v1/gonum/floats"

	"github.com/gocai/gocai/bio"
	"github.com/gocai/gocai/codon"
)

// log is the global logging variable.
var log = logging.MustGetLogger("cai")

// PseudoCount is the count assigned to sense codons never observed in
// the reference set ("assign [its count] a value of 0.5", page 1285).
const PseudoCount = 0.5

// RSCU calculates the relative synonymous codon usage of a reference
// set: the observed count of a codon divided by the count expected if
// all the synonymous codons were used equally,
//
//	RSCU_ij = X_ij / (1/n_i * sum_j X_ij).
//
// The table holds every sense codon of the genetic code. Stop codons
// and unknown triplets are counted but never reported. RSCU of several
// sequences equals RSCU of their concatenation.
func RSCU(seqs []string, gcodeID int) (RSCUTable, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%w: pass a list of sequences; to find the RSCU of a single sequence, pass a one element list",
			ErrInvalidArgument)
	}
	for i, seq := range seqs {
		if err := checkSequence(seq); err != nil {
			return nil, fmt.Errorf("reference sequence %d: %w", i+1, err)
		}
	}
	gcode, err := bio.Lookup(gcodeID)
	if err != nil {
		return nil, err
	}

	counts := codon.Count(seqs)
	log.Debugf("Counted %v codons in %d reference sequence(s)", counts.Total(), len(seqs))
	counts.Smooth(gcode, PseudoCount)

	syns := gcode.Synonyms()
	res := make(RSCUTable, gcode.NCodon)
	groupCounts := make([]float64, 0, 6)
	for _, c := range gcode.Codons {
		group := syns[c]
		groupCounts = groupCounts[:0]
		for _, s := range group {
			groupCounts = append(groupCounts, counts[s])
		}
		res[c] = counts[c] / ((1 / float64(len(group))) * floats.Sum(groupCounts))
	}
	return res, nil
}
