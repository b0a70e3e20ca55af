// Package cases loads formatting conformance cases from YAML.
//
// A case file is a list of entries:
//
//	- name: hex
//	  format: "%#06x"
//	  args: [{uint: 90}]
//	  want: "0x005a"
//
// Each argument sets exactly one of char, int, uint, str or float. Floats
// accept the YAML spellings .nan, .inf and -.inf.
package cases

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/esprintf"
)

// ErrInvalidCase is returned for a case that cannot be turned into
// arguments.
var ErrInvalidCase = errors.New("invalid case")

// Arg is the YAML form of one argument.
type Arg struct {
	Char  *string  `yaml:"char,omitempty"`
	Int   *int     `yaml:"int,omitempty"`
	Uint  *uint    `yaml:"uint,omitempty"`
	Str   *string  `yaml:"str,omitempty"`
	Float *float64 `yaml:"float,omitempty"`
}

// Value converts a to an [esprintf.Arg].
func (a Arg) Value() (esprintf.Arg, error) {
	var out esprintf.Arg
	set := 0
	if a.Char != nil {
		if len(*a.Char) != 1 {
			return esprintf.Arg{}, fmt.Errorf("%w: char %q is not one byte", ErrInvalidCase, *a.Char)
		}
		out, set = esprintf.Char((*a.Char)[0]), set+1
	}
	if a.Int != nil {
		out, set = esprintf.Int(*a.Int), set+1
	}
	if a.Uint != nil {
		out, set = esprintf.Uint(*a.Uint), set+1
	}
	if a.Str != nil {
		out, set = esprintf.Str(*a.Str), set+1
	}
	if a.Float != nil {
		out, set = esprintf.Float(*a.Float), set+1
	}
	if set != 1 {
		return esprintf.Arg{}, fmt.Errorf("%w: argument sets %d kinds, want 1", ErrInvalidCase, set)
	}
	return out, nil
}

// Case is one format, its arguments and the expected output.
type Case struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Args   []Arg  `yaml:"args,omitempty"`
	Want   string `yaml:"want"`
	// Float marks cases that need float support.
	Float bool `yaml:"float,omitempty"`
}

// Values converts the case arguments.
func (c Case) Values() ([]esprintf.Arg, error) {
	out := make([]esprintf.Arg, len(c.Args))
	for i, a := range c.Args {
		v, err := a.Value()
		if err != nil {
			return nil, fmt.Errorf("case %q argument %d: %w", c.Name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Result is the outcome of running one case.
type Result struct {
	Case Case
	Got  string
	N    int
	Err  error
}

// OK reports whether the case produced the expected output and count.
func (r Result) OK() bool {
	return r.Err == nil && r.Got == r.Case.Want && r.N == len(r.Got)
}

// Run formats c with p into a buffer of size bufSize.
func Run(p esprintf.Printer, c Case, bufSize int) Result {
	args, err := c.Values()
	if err != nil {
		return Result{Case: c, Err: err}
	}
	buf := make([]byte, bufSize)
	n := p.Sprintf(buf, esprintf.String(c.Format), args...)
	return Result{Case: c, Got: string(buf[:n]), N: n}
}

// Load decodes a list of cases.
func Load(r io.Reader) ([]Case, error) {
	var cs []Case
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCase, err)
	}
	for i, c := range cs {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: case %d has no name", ErrInvalidCase, i)
		}
	}
	return cs, nil
}

// LoadFile reads cases from the named file.
func LoadFile(name string) ([]Case, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
