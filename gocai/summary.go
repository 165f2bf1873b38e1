package main

import (
	"math"
	"strconv"

	"github.com/gocai/gocai/cai"
)

// Float is a float64 which is encoded as null in JSON when it is not
// a number, e.g. CAI of a sequence without scored codons.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// RunSummary is storing gocai run summary information.
type RunSummary struct {
	// Version stores gocai version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Command is the command which was run.
	Command string `json:"command"`
	// GeneticCode is the NCBI genetic code id.
	GeneticCode int `json:"geneticCode"`
	// NThreads is the number of processes used.
	NThreads int `json:"nThreads"`
	// CachedWeights is true if the weights were found in the cache.
	CachedWeights bool `json:"cachedWeights,omitempty"`
	// Results holds CAI of every query sequence.
	Results []Result `json:"results,omitempty"`
	// Table is the printed RSCU or weights table.
	Table map[string]Float `json:"table,omitempty"`
	// Windows is the CAI profile.
	Windows []WindowSummary `json:"windows,omitempty"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// Result is CAI of a single query sequence.
type Result struct {
	Name string `json:"name"`
	CAI  Float  `json:"cai"`
}

// WindowSummary is a single profile window.
type WindowSummary struct {
	Start  int   `json:"start"`
	End    int   `json:"end"`
	Scored int   `json:"scored"`
	CAI    Float `json:"cai"`
}

func newTableSummary(t map[string]float64) map[string]Float {
	res := make(map[string]Float, len(t))
	for c, v := range t {
		res[c] = Float(v)
	}
	return res
}

func newWindowSummaries(windows []cai.Window) []WindowSummary {
	res := make([]WindowSummary, len(windows))
	for i, w := range windows {
		res[i] = WindowSummary{w.Start, w.End, w.Scored, Float(w.CAI)}
	}
	return res
}
