// Package codon splits nucleotide sequences into codons, counts them
// and reads or writes per-codon value tables.
package codon

import (
	"strings"

	"github.com/op/go-logging"

	"github.com/gocai/gocai/bio"
)

// log is the global logging variable.
var log = logging.MustGetLogger("codon")

// Split converts the sequence to capital letters and cuts it into
// consecutive non-overlapping triplets starting from the first
// letter. An incomplete trailing triplet is dropped.
func Split(seq string) []string {
	seq = strings.ToUpper(seq)
	codons := make([]string, 0, len(seq)/3)
	for i := 0; i+3 <= len(seq); i += 3 {
		codons = append(codons, seq[i:i+3])
	}
	return codons
}

// Counts maps codons to their counts. Counts are floating point so
// a pseudo-count can be stored.
type Counts map[string]float64

// Count tallies codons across all the sequences. Any triplet is
// counted, including stop codons and triplets with letters other than
// ACGT. Counting several sequences is equivalent to counting their
// concatenation.
func Count(seqs []string) Counts {
	counts := make(Counts, 64)
	for _, seq := range seqs {
		for _, codon := range Split(seq) {
			counts[codon]++
		}
	}
	return counts
}

// Total returns the sum of all the counts.
func (c Counts) Total() (total float64) {
	for _, n := range c {
		total += n
	}
	return
}

// Smooth sets the count of every sense codon of the genetic code
// which was never observed to pseudo. It returns the number of
// codons smoothed.
func (c Counts) Smooth(gcode *bio.GeneticCode, pseudo float64) (n int) {
	for _, codon := range gcode.Codons {
		if c[codon] == 0 {
			c[codon] = pseudo
			n++
		}
	}
	log.Debugf("%d of %d sense codons were not observed, count set to %v", n, gcode.NCodon, pseudo)
	return
}
