// Package bio provides NCBI genetic codes and nucleotide sequence
// helpers.
package bio

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidCode is returned when a genetic code id is not one of the
// NCBI translation tables.
var ErrInvalidCode = errors.New("invalid genetic code")

var (
	// nucleotides is the NCBI codon ordering alphabet.
	nucleotides = [...]byte{'T', 'C', 'A', 'G'}
	// allCodons lists the 64 codons in NCBI order (TTT, TTC, TTA, ...).
	allCodons = makeCodons()
)

func makeCodons() []string {
	codons := make([]string, 0, 64)
	for _, b1 := range nucleotides {
		for _, b2 := range nucleotides {
			for _, b3 := range nucleotides {
				codons = append(codons, string([]byte{b1, b2, b3}))
			}
		}
	}
	return codons
}

// AllCodons returns all 64 codons in NCBI order.
func AllCodons() []string {
	return append([]string(nil), allCodons...)
}

// GeneticCode is a translation table. Map and Stops are never
// modified after creation and can be shared between goroutines.
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string
	// Map maps sense codons (capital DNA letters) to amino acids.
	Map map[string]byte
	// Stops is the set of stop codons.
	Stops map[string]bool
	// AltStops is the set of sense codons which can also terminate
	// translation (e.g. TGA in code 27). They stay in Map.
	AltStops map[string]bool
	// Codons lists sense codons in NCBI order.
	Codons []string
	// NCodon is the number of sense codons.
	NCodon int

	once     sync.Once
	synonyms map[string][]string
	nonSyn   map[string]bool
}

// newGeneticCode creates a genetic code from the NCBI ncbieaa string,
// one amino acid (or '*') per codon in NCBI order. A '*' in sncbieaa
// for a codon with an amino acid in ncbieaa marks an alternative stop.
func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	if len(ncbieaa) != len(allCodons) || len(sncbieaa) != len(allCodons) {
		panic(fmt.Sprintf("genetic code %d: expected %d letters, got %d and %d",
			id, len(allCodons), len(ncbieaa), len(sncbieaa)))
	}
	gc := &GeneticCode{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		Map:       make(map[string]byte, len(allCodons)),
		Stops:     make(map[string]bool, 3),
		AltStops:  make(map[string]bool),
	}
	for i, codon := range allCodons {
		aa := ncbieaa[i]
		if aa == '*' {
			gc.Stops[codon] = true
			continue
		}
		gc.Map[codon] = aa
		gc.Codons = append(gc.Codons, codon)
		if sncbieaa[i] == '*' {
			gc.AltStops[codon] = true
		}
	}
	gc.NCodon = len(gc.Codons)
	return gc
}

// Lookup returns the genetic code with the NCBI id. Codes 27, 28
// and 31 have no stop codons in Stops: their stops depend on the
// context and are listed in AltStops.
func Lookup(id int) (*GeneticCode, error) {
	gc, ok := GeneticCodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrInvalidCode, id)
	}
	return gc, nil
}

// IsStopCodon tests if the codon (capital letters) is a stop codon.
func (gc *GeneticCode) IsStopCodon(codon string) bool {
	return gc.Stops[codon]
}

// IsAltStopCodon tests if the sense codon (capital letters) can also
// be read as a stop.
func (gc *GeneticCode) IsAltStopCodon(codon string) bool {
	return gc.AltStops[codon]
}

// IsSenseCodon tests if the codon (capital letters) codes for an
// amino acid.
func (gc *GeneticCode) IsSenseCodon(codon string) bool {
	_, ok := gc.Map[codon]
	return ok
}

// Synonyms maps every sense codon to all the codons coding for the
// same amino acid, the codon itself included. Stop codons are not
// present. The result is shared and must not be modified.
func (gc *GeneticCode) Synonyms() map[string][]string {
	gc.once.Do(gc.buildSynonyms)
	return gc.synonyms
}

// NonSynonymous returns the set of codons which are the only codon
// for their amino acid (e.g. ATG and TGG in the standard code). The
// result is shared and must not be modified.
func (gc *GeneticCode) NonSynonymous() map[string]bool {
	gc.once.Do(gc.buildSynonyms)
	return gc.nonSyn
}

func (gc *GeneticCode) buildSynonyms() {
	byAA := make(map[byte][]string, 21)
	for _, codon := range gc.Codons {
		aa := gc.Map[codon]
		byAA[aa] = append(byAA[aa], codon)
	}
	gc.synonyms = make(map[string][]string, gc.NCodon)
	gc.nonSyn = make(map[string]bool)
	for _, codon := range gc.Codons {
		syns := byAA[gc.Map[codon]]
		gc.synonyms[codon] = syns
		if len(syns) == 1 {
			gc.nonSyn[codon] = true
		}
	}
}

// String returns a short description of the genetic code.
func (gc *GeneticCode) String() string {
	return fmt.Sprintf("<GeneticCode: ID=%d, Name=%q, NCodon=%d>", gc.ID, gc.Name, gc.NCodon)
}
