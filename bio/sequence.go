package bio

import (
	"errors"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// Sequence is a type which is intended for storing nucleotide
// sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences, e.g. a reference set.
type Sequences []Sequence

// Letters returns the sequence letters of every record.
func (seqs Sequences) Letters() []string {
	res := make([]string, len(seqs))
	for i, s := range seqs {
		res[i] = s.Sequence
	}
	return res
}

// Len returns the total number of letters in all the sequences.
func (seqs Sequences) Len() (n int) {
	for _, s := range seqs {
		n += len(s.Sequence)
	}
	return
}

// Letters returns the letters of any biogo sequence as a string.
func Letters(s seq.Sequence) string {
	var b strings.Builder
	b.Grow(s.Len())
	for i := s.Start(); i < s.End(); i++ {
		b.WriteByte(byte(s.At(i).L))
	}
	return b.String()
}

// NewSeq wraps letters into a biogo DNA sequence.
func NewSeq(name, letters string) *linear.Seq {
	return linear.NewSeq(name, alphabet.BytesToLetters([]byte(letters)), alphabet.DNA)
}

// ParseFasta parses FASTA sequences from a reader.
func ParseFasta(rd io.Reader) (Sequences, error) {
	template := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(rd, template))

	seqs := make(Sequences, 0, 10)
	for sc.Next() {
		s := sc.Seq()
		seqs = append(seqs, Sequence{Name: s.Name(), Sequence: Letters(s)})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, errors.New("no sequences found")
	}
	return seqs, nil
}
