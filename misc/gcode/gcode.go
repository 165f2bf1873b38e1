// gcode generates bio/gcodes.go from the NCBI genetic codes file
// in ASN.1 format.
//
//	go run ./misc/gcode gc.prt > bio/gcodes.go
//
// More information is available here:
// - https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
// - ftp://ftp.ncbi.nih.gov/entrez/misc/data/gc.prt
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Table is a genetic code as listed in gc.prt.
type Table struct {
	Name      string
	ShortName string
	ID        int
	Ncbieaa   string
	Sncbieaa  string
}

// GoString returns the table as a bio package constructor call.
func (t Table) GoString() string {
	return fmt.Sprintf("newGeneticCode(%d, %q, %q, %q, %q)", t.ID, t.Name, t.ShortName, t.Ncbieaa, t.Sncbieaa)
}

func isWordByte(b byte) bool {
	r := rune(b)
	return r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitTokens is a bufio.SplitFunc returning ASN.1 tokens: words,
// quoted strings (which can span lines), '::=', '{', '}' and ','.
// Comments ('--' to the end of line) are returned as tokens too.
func splitTokens(data []byte, atEOF bool) (int, []byte, error) {
	skip := 0
	for skip < len(data) && unicode.IsSpace(rune(data[skip])) {
		skip++
	}
	data = data[skip:]
	if len(data) == 0 {
		return skip, nil, nil
	}

	// more returns a request for more data or an error at EOF
	more := func(msg string) (int, []byte, error) {
		if atEOF {
			return 0, nil, errors.New(msg)
		}
		return skip, nil, nil
	}

	switch data[0] {
	case '-':
		if len(data) < 2 {
			return more("unexpected end of file")
		}
		if data[1] == '-' {
			a, t, err := bufio.ScanLines(data, atEOF)
			if a == 0 && t == nil && err == nil {
				return skip, nil, nil
			}
			return skip + a, t, err
		}
	case ':':
		if len(data) < 3 {
			return more("unexpected end of file")
		}
		if string(data[:3]) != "::=" {
			return 0, nil, errors.New("unexpected character after ':'")
		}
		return skip + 3, data[:3], nil
	case '"':
		if i := bytes.IndexByte(data[1:], '"'); i >= 0 {
			return skip + i + 2, data[:i+2], nil
		}
		return more("unfinished string literal")
	case '{', '}', ',':
		return skip + 1, data[:1], nil
	}

	if !isWordByte(data[0]) {
		return 0, nil, fmt.Errorf("unknown token starting with %q", data[0])
	}
	i := 1
	for i < len(data) && isWordByte(data[i]) {
		i++
	}
	if i == len(data) && !atEOF {
		return skip, nil, nil
	}
	return skip + i, data[:i], nil
}

// tokenizer returns tokens skipping comments.
type tokenizer struct {
	sc *bufio.Scanner
}

func (t *tokenizer) next() (string, error) {
	for t.sc.Scan() {
		tok := t.sc.Text()
		if strings.HasPrefix(tok, "--") {
			continue
		}
		return tok, nil
	}
	if err := t.sc.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

func (t *tokenizer) expect(want string) error {
	tok, err := t.next()
	if err != nil {
		return err
	}
	if tok != want {
		return fmt.Errorf("expecting '%s', got '%s'", want, tok)
	}
	return nil
}

func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("string %s is not quoted", s)
	}
	return strings.Replace(s[1:len(s)-1], "\n", "", -1), nil
}

// parseTable parses a single table after the opening brace.
func parseTable(t *tokenizer) (tab Table, err error) {
	for {
		name, err := t.next()
		if err != nil {
			return tab, err
		}
		value, err := t.next()
		if err != nil {
			return tab, err
		}
		switch name {
		case "name":
			s, err := unquote(value)
			if err != nil {
				return tab, err
			}
			if tab.Name == "" {
				tab.Name = s
			} else {
				tab.ShortName = s
			}
		case "id":
			if tab.ID, err = strconv.Atoi(value); err != nil {
				return tab, err
			}
		case "ncbieaa":
			if tab.Ncbieaa, err = unquote(value); err != nil {
				return tab, err
			}
		case "sncbieaa":
			if tab.Sncbieaa, err = unquote(value); err != nil {
				return tab, err
			}
		}

		sep, err := t.next()
		if err != nil {
			return tab, err
		}
		switch sep {
		case ",":
		case "}":
			if len(tab.Ncbieaa) != 64 {
				return tab, fmt.Errorf("table %d: ncbieaa has %d letters", tab.ID, len(tab.Ncbieaa))
			}
			if len(tab.Sncbieaa) != 64 {
				return tab, fmt.Errorf("table %d: sncbieaa has %d letters", tab.ID, len(tab.Sncbieaa))
			}
			return tab, nil
		default:
			return tab, fmt.Errorf("expecting ',' or '}', got '%s'", sep)
		}
	}
}

// ParseAsn1 parses genetic code tables from gc.prt.
func ParseAsn1(rd io.Reader) ([]Table, error) {
	sc := bufio.NewScanner(rd)
	sc.Split(splitTokens)
	t := &tokenizer{sc: sc}

	for _, want := range []string{"Genetic-code-table", "::=", "{"} {
		if err := t.expect(want); err != nil {
			return nil, err
		}
	}

	var res []Table
	for {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		if tok == "}" && len(res) == 0 {
			break
		}
		if tok != "{" {
			return nil, fmt.Errorf("expecting '{', got '%s'", tok)
		}
		tab, err := parseTable(t)
		if err != nil {
			return nil, err
		}
		res = append(res, tab)

		sep, err := t.next()
		if err != nil {
			return nil, err
		}
		if sep == "}" {
			break
		}
		if sep != "," {
			return nil, fmt.Errorf("expecting ',' or '}', got '%s'", sep)
		}
	}

	if tok, err := t.next(); err != io.ErrUnexpectedEOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected symbols at the end of file: '%s'", tok)
	}
	return res, nil
}

// Generate writes formatted go source of the bio package tables.
func Generate(w io.Writer, tables []Table) error {
	sort.Slice(tables, func(i, j int) bool { return tables[i].ID < tables[j].ID })

	var b bytes.Buffer
	fmt.Fprintln(&b, "// Code generated by misc/gcode from the NCBI gc.prt file. DO NOT EDIT.")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "package bio")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// GeneticCodes holds all NCBI genetic codes indexed by id.")
	fmt.Fprintln(&b, "var GeneticCodes = map[int]*GeneticCode{")
	for _, t := range tables {
		fmt.Fprintf(&b, "%d: %#v,\n", t.ID, t)
	}
	fmt.Fprintln(&b, "}")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "please specify a gc file in asn1 format")
		os.Exit(1)
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer f.Close()

	tables, err := ParseAsn1(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
	if err := Generate(os.Stdout, tables); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(4)
	}
}
