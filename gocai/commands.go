package main

import (
	"context"
	"fmt"
	"io"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/gocai/gocai/bio"
	"github.com/gocai/gocai/cache"
	"github.com/gocai/gocai/cai"
	"github.com/gocai/gocai/codon"
)

// config holds the settings shared by all the commands.
type config struct {
	gcode    int
	nThreads int
	// cache is the weights database file name, no caching if empty.
	cache string
}

// newScorer creates a scorer for the reference. Weights derived from
// reference sequences are looked up in and stored to the cache.
func newScorer(cfg config, ref cai.Reference, summary *RunSummary) (*cai.Scorer, error) {
	seqs, ok := ref.(cai.Sequences)
	if cfg.cache == "" || !ok {
		return cai.NewScorer(ref, cfg.gcode)
	}

	c, err := cache.Open(cfg.cache)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	defer c.Close()

	key := cache.Key(cfg.gcode, seqs)
	e, err := c.Load(key)
	if err != nil {
		log.Warning("Error reading cache:", err)
	}
	if e != nil {
		summary.CachedWeights = true
		return cai.NewScorer(cai.Weights(e.Weights), cfg.gcode)
	}

	s, err := cai.NewScorer(ref, cfg.gcode)
	if err != nil {
		return nil, err
	}
	err = c.Save(key, &cache.Entry{
		GeneticCode: cfg.gcode,
		NSequences:  len(seqs),
		Weights:     s.Weights(),
	})
	if err != nil {
		log.Warning("Error writing cache:", err)
	}
	return s, nil
}

// scoreAll computes CAI of every sequence using up to nThreads
// goroutines. The first error stops the computations.
func scoreAll(ctx context.Context, s *cai.Scorer, seqs bio.Sequences, nThreads int) ([]float64, error) {
	res := make([]float64, len(seqs))
	g, ctx := errgroup.WithContext(ctx)
	if nThreads > 0 {
		g.SetLimit(nThreads)
	}
	for i := range seqs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := s.Score(seqs[i].Sequence)
			if err != nil {
				return fmt.Errorf("sequence %s: %w", seqs[i].Name, err)
			}
			res[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// runCAI prints CAI of the query sequences. For a single sequence
// only the value is printed.
func runCAI(w io.Writer, cfg config, seqFile string, files refFiles, summary *RunSummary) error {
	ref, err := loadReference(files)
	if err != nil {
		return err
	}
	s, err := newScorer(cfg, ref, summary)
	if err != nil {
		return err
	}
	seqs, err := readSequences(seqFile)
	if err != nil {
		return err
	}

	values, err := scoreAll(context.Background(), s, seqs, cfg.nThreads)
	if err != nil {
		return err
	}

	for i, v := range values {
		if math.IsNaN(v) {
			log.Warningf("Sequence %s has no scored codons", seqs[i].Name)
		}
		summary.Results = append(summary.Results, Result{Name: seqs[i].Name, CAI: Float(v)})
		if len(seqs) == 1 {
			fmt.Fprintln(w, v)
		} else {
			fmt.Fprintf(w, "%s\t%v\n", seqs[i].Name, v)
		}
	}
	return nil
}

// runRSCU prints RSCU of the reference sequences.
func runRSCU(w io.Writer, cfg config, refFile string, summary *RunSummary) error {
	seqs, err := readSequences(refFile)
	if err != nil {
		return err
	}
	t, err := cai.RSCU(seqs.Letters(), cfg.gcode)
	if err != nil {
		return err
	}
	summary.Table = newTableSummary(t)
	return codon.Table(t).Write(w)
}

// runWeights prints relative adaptiveness of codons.
func runWeights(w io.Writer, cfg config, files refFiles, summary *RunSummary) error {
	ref, err := loadReference(files)
	if err != nil {
		return err
	}
	s, err := newScorer(cfg, ref, summary)
	if err != nil {
		return err
	}
	weights := s.Weights()
	summary.Table = newTableSummary(weights)
	return codon.Table(weights).Write(w)
}

// runProfile prints sliding window CAI of the first query sequence
// and optionally plots it.
func runProfile(w io.Writer, cfg config, seqFile string, files refFiles,
	window, step int, plotFile string, summary *RunSummary) error {
	ref, err := loadReference(files)
	if err != nil {
		return err
	}
	s, err := newScorer(cfg, ref, summary)
	if err != nil {
		return err
	}
	seqs, err := readSequences(seqFile)
	if err != nil {
		return err
	}
	if len(seqs) > 1 {
		log.Warningf("Using only the first of %d sequences", len(seqs))
	}

	query := seqs[0]
	windows, err := s.Profile(query.Sequence, window, step)
	if err != nil {
		return fmt.Errorf("sequence %s: %w", query.Name, err)
	}
	log.Infof("%d windows of %d codons, step %d", len(windows), window, step)
	summary.Windows = newWindowSummaries(windows)

	for _, win := range windows {
		fmt.Fprintf(w, "%d\t%d\t%v\n", win.Start, win.End, win.CAI)
	}

	if plotFile != "" {
		if err := plotProfile(windows, query.Name, plotFile); err != nil {
			return fmt.Errorf("plotting profile: %w", err)
		}
		log.Infof("Profile plot written to %s", plotFile)
	}
	return nil
}
