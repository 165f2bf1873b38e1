package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/op/go-logging"

	"github.com/gocai/gocai/cai"
)

const smallDiff = 1e-9

func init() {
	for _, module := range []string{"gocai", "cai", "codon", "cache"} {
		logging.SetLevel(logging.ERROR, module)
	}
}

func appreq(a, b float64) bool {
	return math.Abs(a-b) < smallDiff
}

// writeFile writes a file into a temporary directory, gzipped if the
// name ends with .gz.
func writeFile(tst *testing.T, name, content string) string {
	fn := filepath.Join(tst.TempDir(), name)
	f, err := os.Create(fn)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	defer f.Close()

	var w io.Writer = f
	if strings.HasSuffix(name, ".gz") {
		zw := pgzip.NewWriter(f)
		defer zw.Close()
		w = zw
	}
	if _, err := io.WriteString(w, content); err != nil {
		tst.Fatal("Error: ", err)
	}
	return fn
}

const (
	refFasta   = ">ref\nAAC\n"
	queryFasta = ">q1\nAACAAC\n>q2 second query\nAATAAT\n"
)

func TestOpenInput(tst *testing.T) {
	for _, name := range []string{"ref.fst", "ref.fst.gz"} {
		fn := writeFile(tst, name, refFasta)
		f, err := openInput(fn)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		b, err := io.ReadAll(f)
		f.Close()
		if err != nil || string(b) != refFasta {
			tst.Errorf("%s: expected %q, got %q (%v)", name, refFasta, b, err)
		}
	}

	bad := filepath.Join(tst.TempDir(), "bad.gz")
	if err := os.WriteFile(bad, []byte("not gzipped"), 0644); err != nil {
		tst.Fatal("Error: ", err)
	}
	if _, err := openInput(bad); err == nil {
		tst.Error("Expected error for a broken gzip file")
	}
}

func TestLoadReference(tst *testing.T) {
	ref := writeFile(tst, "ref.fst", refFasta)
	weights := writeFile(tst, "w.txt", "AAC 1\nAAT 0.5\n")

	r, err := loadReference(refFiles{Weights: weights})
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if w, ok := r.(cai.Weights); !ok || w["AAT"] != 0.5 {
		tst.Error("Expected weights, got", r)
	}

	r, err = loadReference(refFiles{Reference: ref})
	if s, ok := r.(cai.Sequences); err != nil || !ok || len(s) != 1 || s[0] != "AAC" {
		tst.Error("Expected reference sequences, got", r, err)
	}

	for _, files := range []refFiles{{}, {Reference: ref, Weights: weights}} {
		if _, err := loadReference(files); !errors.Is(err, cai.ErrInvalidArgument) {
			tst.Error("Expected ErrInvalidArgument, got", err)
		}
	}
}

func TestRunCAI(tst *testing.T) {
	ref := writeFile(tst, "ref.fst", refFasta)
	query := writeFile(tst, "query.fst.gz", queryFasta)
	cfg := config{gcode: 11, nThreads: 2}

	var b bytes.Buffer
	summary := &RunSummary{}
	if err := runCAI(&b, cfg, query, refFiles{Reference: ref}, summary); err != nil {
		tst.Fatal("Error: ", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 || lines[0] != "q1\t1" || !strings.HasPrefix(lines[1], "q2\t") {
		tst.Fatalf("Unexpected output %q", b.String())
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(lines[1], "q2\t"), 64)
	if err != nil || !appreq(v, 0.5) {
		tst.Error("Expected 0.5, got", v, err)
	}
	if len(summary.Results) != 2 || summary.Results[0].Name != "q1" {
		tst.Error("Unexpected results", summary.Results)
	}

	// a single sequence is printed without the name
	b.Reset()
	query = writeFile(tst, "single.fst", ">q1\nAACAAC\n")
	if err := runCAI(&b, cfg, query, refFiles{Reference: ref}, &RunSummary{}); err != nil {
		tst.Fatal("Error: ", err)
	}
	if b.String() != "1\n" {
		tst.Errorf("Expected \"1\\n\", got %q", b.String())
	}
}

func TestRunCAIErrors(tst *testing.T) {
	ref := writeFile(tst, "ref.fst", refFasta)
	cfg := config{gcode: 11, nThreads: 1}

	query := writeFile(tst, "query.fst", ">q1\nAACAAC\n>q2\nAACA\n")
	err := runCAI(io.Discard, cfg, query, refFiles{Reference: ref}, &RunSummary{})
	if !errors.Is(err, cai.ErrMalformedSequence) || !strings.Contains(err.Error(), "q2") {
		tst.Error("Expected ErrMalformedSequence for q2, got", err)
	}

	weights := writeFile(tst, "w.txt", "AAC 1\n")
	query = writeFile(tst, "query2.fst", ">q1\nAATAAC\n")
	var mw *cai.MissingWeightError
	err = runCAI(io.Discard, cfg, query, refFiles{Weights: weights}, &RunSummary{})
	if !errors.As(err, &mw) || mw.Codon != "AAT" {
		tst.Error("Expected missing weight for AAT, got", err)
	}

	weights = writeFile(tst, "neg.txt", "AAC 1\nAAT -0.5\n")
	err = runCAI(io.Discard, cfg, query, refFiles{Weights: weights}, &RunSummary{})
	if !errors.Is(err, cai.ErrInvalidArgument) {
		tst.Error("Expected ErrInvalidArgument for a negative weight, got", err)
	}
}

func TestRunCAICache(tst *testing.T) {
	ref := writeFile(tst, "ref.fst", refFasta)
	query := writeFile(tst, "query.fst", queryFasta)
	cfg := config{
		gcode:    11,
		nThreads: 1,
		cache:    filepath.Join(tst.TempDir(), "cache.db"),
	}

	var out [2]bytes.Buffer
	for i := range out {
		summary := &RunSummary{}
		if err := runCAI(&out[i], cfg, query, refFiles{Reference: ref}, summary); err != nil {
			tst.Fatal("Error: ", err)
		}
		if summary.CachedWeights != (i == 1) {
			tst.Errorf("run %d: CachedWeights=%v", i, summary.CachedWeights)
		}
	}
	if out[0].String() != out[1].String() {
		tst.Errorf("Cached run output differs: %q vs %q", out[0].String(), out[1].String())
	}
}

func TestRunRSCUWeights(tst *testing.T) {
	ref := writeFile(tst, "ref.fst", refFasta)
	cfg := config{gcode: 11}

	var b bytes.Buffer
	summary := &RunSummary{}
	if err := runRSCU(&b, cfg, ref, summary); err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(summary.Table) != 61 || !strings.Contains(b.String(), "TTT\t1\n") {
		tst.Errorf("Unexpected RSCU table %q", b.String())
	}

	rscu := writeFile(tst, "rscu.txt", b.String())
	for _, files := range []refFiles{{Reference: ref}, {RSCU: rscu}} {
		b.Reset()
		if err := runWeights(&b, cfg, files, &RunSummary{}); err != nil {
			tst.Fatal("Error: ", err)
		}
		out := b.String()
		if !strings.Contains(out, "AAC\t1\n") || !strings.Contains(out, "AAT\t0.5\n") {
			tst.Errorf("Unexpected weights %q", out)
		}
	}
}

func TestRunProfile(tst *testing.T) {
	ref := writeFile(tst, "ref.fst", refFasta)
	query := writeFile(tst, "query.fst", ">q\nAACAACATGAATAATTAA\n")
	plotFile := filepath.Join(tst.TempDir(), "profile.png")

	var b bytes.Buffer
	summary := &RunSummary{}
	err := runProfile(&b, config{gcode: 11}, query, refFiles{Reference: ref}, 2, 2, plotFile, summary)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 || lines[0] != "0\t6\t1" || len(summary.Windows) != 3 {
		tst.Errorf("Unexpected profile %q", b.String())
	}
	if fi, err := os.Stat(plotFile); err != nil || fi.Size() == 0 {
		tst.Error("Expected plot file, got", err)
	}

	err = runProfile(io.Discard, config{gcode: 11}, query, refFiles{Reference: ref}, 0, 1, "", &RunSummary{})
	if !errors.Is(err, cai.ErrInvalidArgument) {
		tst.Error("Expected ErrInvalidArgument, got", err)
	}
}

func TestPlotProfileNoScored(tst *testing.T) {
	w := []cai.Window{{Start: 0, End: 3, CAI: math.NaN()}}
	if err := plotProfile(w, "q", filepath.Join(tst.TempDir(), "p.png")); err == nil {
		tst.Error("Expected error for a profile without scored windows")
	}
}

func TestSummaryJSON(tst *testing.T) {
	s := RunSummary{
		Results: []Result{{"a", Float(math.NaN())}, {"b", 0.25}},
		Table:   newTableSummary(map[string]float64{"AAA": math.NaN()}),
	}
	j, err := json.Marshal(s)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if !strings.Contains(string(j), `"results":[{"name":"a","cai":null},{"name":"b","cai":0.25}]`) {
		tst.Error("Unexpected json", string(j))
	}
	if !strings.Contains(string(j), `"table":{"AAA":null}`) {
		tst.Error("Unexpected json", string(j))
	}
}
