package cai

import (
	"errors"
	"fmt"

	"github.com/gocai/gocai/bio"
)

var (
	// ErrInvalidArgument is returned when the caller supplies no
	// reference data, more than one kind of it, or a kind the
	// operation does not accept.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedSequence is returned for an empty sequence or a
	// sequence which length doesn't divide by 3.
	ErrMalformedSequence = errors.New("malformed sequence")
	// ErrInvalidCode is returned for an unknown genetic code id.
	ErrInvalidCode = bio.ErrInvalidCode
)

// MissingWeightError is returned when a scoreable codon has no value
// in a weights (or RSCU) table.
type MissingWeightError struct {
	Codon string
}

func (e *MissingWeightError) Error() string {
	return fmt.Sprintf("missing weight for codon %s", e.Codon)
}

// checkSequence returns ErrMalformedSequence if the sequence can not
// be split into codons.
func checkSequence(seq string) error {
	if len(seq)%3 != 0 {
		return fmt.Errorf("%w: length %d doesn't divide by 3", ErrMalformedSequence, len(seq))
	}
	if len(seq) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrMalformedSequence)
	}
	return nil
}
