/*

Gocai computes the codon adaptation index (CAI) of coding sequences.

The basic usage looks like this:

	gocai -s query.fst -r highly_expressed.fst

, this computes weights from the reference sequences and prints the
CAI of the query. Instead of reference sequences precomputed weights
(-w) or an RSCU table (--rscu) can be given.

Other commands print the RSCU table or the weights of a reference
set, or a sliding window CAI profile:

	gocai rscu -r highly_expressed.fst
	gocai weights --rscu rscu.txt
	gocai profile -s query.fst -w weights.txt --window 50 --plot cai.png

To see all the options run:

	gocai --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"github.com/gocai/gocai/bio"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("gocai")
var formatter = logging.MustStringFormatter(`%{message}`)

// refFlags are the alternative reference inputs of a command.
type refFlags struct {
	reference *string
	weights   *string
	rscu      *string
}

func (r refFlags) files() refFiles {
	f := refFiles{Reference: *r.reference, RSCU: *r.rscu}
	if r.weights != nil {
		f.Weights = *r.weights
	}
	return f
}

func newRefFlags(cmd *kingpin.CmdClause, withWeights bool) (r refFlags) {
	r.reference = cmd.Flag("reference", "reference set of highly expressed genes (FASTA)").Short('r').ExistingFile()
	if withWeights {
		r.weights = cmd.Flag("weights", "codon weights table").Short('w').ExistingFile()
	}
	r.rscu = cmd.Flag("rscu", "RSCU table").ExistingFile()
	return
}

// command-line options
var (
	// application
	app = kingpin.New("gocai", "codon adaptation index calculator").Version(version)

	// technical
	gcodeID  = app.Flag("gcode", "NCBI genetic code id, bacterial by default").Short('g').Default("11").Int()
	nThreads = app.Flag("nt", "number of threads to use").Int()
	cacheF   = app.Flag("cache", "cache weights derived from reference sequences in a database file").String()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()

	// cai
	caiCmd      = app.Command("cai", "compute CAI of the sequences").Default()
	caiSequence = caiCmd.Flag("sequence", "query sequences (FASTA)").Short('s').Required().ExistingFile()
	caiRef      = newRefFlags(caiCmd, true)

	// rscu
	rscuCmd       = app.Command("rscu", "print RSCU of the reference sequences")
	rscuReference = rscuCmd.Flag("reference", "reference set of highly expressed genes (FASTA)").Short('r').Required().ExistingFile()

	// weights
	weightsCmd = app.Command("weights", "print relative adaptiveness of codons")
	weightsRef = newRefFlags(weightsCmd, false)

	// profile
	profileCmd      = app.Command("profile", "compute sliding window CAI along the sequence")
	profileSequence = profileCmd.Flag("sequence", "query sequence (FASTA)").Short('s').Required().ExistingFile()
	profileRef      = newRefFlags(profileCmd, true)
	profileWindow   = profileCmd.Flag("window", "window size in codons").Default("50").Int()
	profileStep     = profileCmd.Flag("step", "step in codons").Default("10").Int()
	profilePlot     = profileCmd.Flag("plot", "draw the profile to a file (png, svg or pdf)").String()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, module := range []string{"gocai", "cai", "codon", "cache"} {
		logging.SetLevel(level, module)
	}

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *nThreads > 0 {
		runtime.GOMAXPROCS(*nThreads)
	}
	effectiveNThreads := runtime.GOMAXPROCS(0)
	log.Infof("Using threads: %d.", effectiveNThreads)

	gcode, err := bio.Lookup(*gcodeID)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Genetic code: %d, \"%s\"", gcode.ID, gcode.Name)

	startTime := time.Now()
	cfg := config{
		gcode:    gcode.ID,
		nThreads: effectiveNThreads,
		cache:    *cacheF,
	}
	summary := &RunSummary{
		Version:     version,
		CommandLine: os.Args,
		Command:     cmd,
		GeneticCode: gcode.ID,
		NThreads:    effectiveNThreads,
	}

	switch cmd {
	case caiCmd.FullCommand():
		err = runCAI(os.Stdout, cfg, *caiSequence, caiRef.files(), summary)
	case rscuCmd.FullCommand():
		err = runRSCU(os.Stdout, cfg, *rscuReference, summary)
	case weightsCmd.FullCommand():
		err = runWeights(os.Stdout, cfg, weightsRef.files(), summary)
	case profileCmd.FullCommand():
		err = runProfile(os.Stdout, cfg, *profileSequence, profileRef.files(),
			*profileWindow, *profileStep, *profilePlot, summary)
	}
	if err != nil {
		log.Fatal(err)
	}

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
