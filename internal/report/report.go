// Package report renders conformance results for people and tools.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bjaus/esprintf/internal/cases"
)

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is a report output format.
type Format string

const (
	Table    Format = "table"
	Plain    Format = "plain"
	Markdown Format = "markdown"
	YAML     Format = "yaml"
)

var formats = []Format{Table, Plain, Markdown, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns every supported format.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var (
	header = []string{"STATUS", "NAME", "FORMAT", "WANT", "GOT"}
	aligns = []Alignment{AlignCenter, AlignLeft, AlignLeft, AlignLeft, AlignLeft}
)

// Status is the one word verdict for r.
func Status(r cases.Result) string {
	switch {
	case r.Err != nil:
		return "error"
	case r.OK():
		return "ok"
	default:
		return "FAIL"
	}
}

func row(r cases.Result) []string {
	got := strconv.Quote(r.Got)
	if r.Err != nil {
		got = r.Err.Error()
	} else if r.N != len(r.Got) {
		got += " (n=" + strconv.Itoa(r.N) + ")"
	}
	return []string{Status(r), r.Case.Name, strconv.Quote(r.Case.Format), strconv.Quote(r.Case.Want), got}
}

// Summary counts results by outcome.
type Summary struct {
	Total  int `yaml:"total"`
	Passed int `yaml:"passed"`
	Failed int `yaml:"failed"`
}

// Summarize counts passed and failed results.
func Summarize(results []cases.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d cases, %d passed, %d failed", s.Total, s.Passed, s.Failed)
}

// Write renders results to w in format f.
func Write(w io.Writer, f Format, results []cases.Result) error {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = row(r)
	}
	switch f {
	case Table:
		return writeTable(w, rows, Summarize(results), true)
	case Plain:
		return writeTable(w, rows, Summarize(results), false)
	case Markdown:
		return writeMarkdown(w, rows)
	case YAML:
		return writeYAML(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
