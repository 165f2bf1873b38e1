package codon

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Table stores a value per codon, e.g. RSCU or relative adaptiveness.
type Table map[string]float64

// ReadTable reads a codon table from a reader. Two text layouts are
// accepted, one record per line:
//
//	CODON VALUE
//	CODON AA FRACTION FREQUENCY COUNT
//
// The second one is the EMBOSS codon usage (.cut) layout; the
// fraction column is taken as the value. Empty lines and lines
// starting with '#' are skipped. RNA codons are converted to DNA.
func ReadTable(rd io.Reader) (Table, error) {
	t := make(Table, 64)

	scanner := bufio.NewScanner(rd)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		var value string
		switch len(fields) {
		case 2:
			value = fields[1]
		case 5:
			value = fields[2]
		default:
			return nil, fmt.Errorf("line %d: expected 2 or 5 fields, got %d", lineNo, len(fields))
		}
		codon := strings.Replace(strings.ToUpper(fields[0]), "U", "T", -1)
		if !isCodon(codon) {
			return nil, fmt.Errorf("line %d: wrong codon %q", lineNo, fields[0])
		}
		if _, ok := t[codon]; ok {
			return nil, fmt.Errorf("line %d: duplicate codon %s", lineNo, codon)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		t[codon] = f
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("empty codon table")
	}
	log.Debugf("Read table of %d codons", len(t))
	return t, nil
}

// Write writes the table in the two column layout accepted by
// ReadTable, codons sorted alphabetically.
func (t Table) Write(w io.Writer) error {
	codons := make([]string, 0, len(t))
	for codon := range t {
		codons = append(codons, codon)
	}
	sort.Strings(codons)

	bw := bufio.NewWriter(w)
	for _, codon := range codons {
		if _, err := fmt.Fprintf(bw, "%s\t%v\n", codon, t[codon]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// isCodon tests if s is three capital DNA letters.
func isCodon(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}
