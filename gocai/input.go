package main

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"

	"github.com/gocai/gocai/bio"
	"github.com/gocai/gocai/cai"
	"github.com/gocai/gocai/codon"
)

// gzFile closes both the decompressor and the underlying file.
type gzFile struct {
	*pgzip.Reader
	f *os.File
}

func (g *gzFile) Close() error {
	g.Reader.Close()
	return g.f.Close()
}

// openInput opens a file for reading. Files with the .gz extension
// are decompressed.
func openInput(fn string) (io.ReadCloser, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(fn, ".gz") {
		return f, nil
	}
	zr, err := pgzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzFile{Reader: zr, f: f}, nil
}

func readSequences(fn string) (bio.Sequences, error) {
	f, err := openInput(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seqs, err := bio.ParseFasta(f)
	if err != nil {
		return nil, err
	}
	log.Infof("Read %d sequences (%d nucleotides) from %s", len(seqs), seqs.Len(), fn)
	return seqs, nil
}

func readTable(fn string) (codon.Table, error) {
	f, err := openInput(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := codon.ReadTable(f)
	if err != nil {
		return nil, err
	}
	log.Infof("Read %d codons from %s", len(t), fn)
	return t, nil
}

// refFiles are file names of the alternative reference inputs, empty
// if not given.
type refFiles struct {
	Reference string
	Weights   string
	RSCU      string
}

// loadReference reads all the given reference inputs. Exactly one
// should be given.
func loadReference(files refFiles) (cai.Reference, error) {
	var in cai.Input
	if files.Reference != "" {
		seqs, err := readSequences(files.Reference)
		if err != nil {
			return nil, err
		}
		in.Reference = cai.Sequences(seqs.Letters())
	}
	if files.Weights != "" {
		t, err := readTable(files.Weights)
		if err != nil {
			return nil, err
		}
		in.Weights = cai.Weights(t)
	}
	if files.RSCU != "" {
		t, err := readTable(files.RSCU)
		if err != nil {
			return nil, err
		}
		in.RSCU = cai.RSCUTable(t)
	}
	return in.Resolve()
}
