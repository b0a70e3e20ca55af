// Package main provides the esprintf command. It formats its arguments the
// way the library does, or runs a file of conformance cases and reports the
// results.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/bjaus/esprintf"
	"github.com/bjaus/esprintf/internal/cases"
	"github.com/bjaus/esprintf/internal/report"
)

// caseBufSize is the buffer each conformance case formats into.
const caseBufSize = 256

var (
	errNoFormat     = errors.New("a format argument is required")
	errCasesFailed  = errors.New("conformance cases failed")
	errBadArgument  = errors.New("invalid argument")
	errExtraCasePos = errors.New("-cases takes no positional arguments")
)

type options struct {
	configPath string
	casesPath  string
	reportFmt  report.Format
	logLevel   string
	crlf       bool
	positional []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, errNoFormat) || errors.Is(err, errExtraCasePos) {
			fs.Usage()
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger := newLogger(stderr, opts.logLevel)
	p, err := loadPrinter(opts)
	if err != nil {
		logger.Error().Err(err).Str("config", opts.configPath).Msg("cannot load config")
		return 1
	}

	if opts.casesPath != "" {
		err = runCases(p, opts, stdout, logger)
	} else {
		err = runFormat(p, opts.positional, stdout, logger)
	}
	if err != nil {
		logger.Error().Err(err).Msg("esprintf failed")
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("esprintf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: esprintf [flags] FORMAT [ARG...]")
		_, _ = fmt.Fprintln(stderr, "       esprintf [flags] -cases FILE")
		fs.PrintDefaults()
	}

	var opts options
	var reportName string
	fs.StringVar(&opts.configPath, "config", "", "YAML or TOML `file` with exp_digits and crlf settings")
	fs.StringVar(&opts.casesPath, "cases", "", "run the conformance cases in `file`")
	fs.StringVar(&reportName, "report", string(report.Table), "case report format: table, plain, markdown or yaml")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&opts.crlf, "crlf", false, "send \\r\\n for each \\n")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	f, err := report.ParseFormat(reportName)
	if err != nil {
		return nil, fs, err
	}
	opts.reportFmt = f
	opts.positional = fs.Args()

	switch {
	case opts.casesPath != "" && len(opts.positional) > 0:
		return nil, fs, errExtraCasePos
	case opts.casesPath == "" && len(opts.positional) == 0:
		return nil, fs, errNoFormat
	}
	return &opts, fs, nil
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	return zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func loadPrinter(opts *options) (esprintf.Printer, error) {
	var cfg esprintf.Config
	if opts.configPath != "" {
		var err error
		if cfg, err = esprintf.LoadConfigFile(opts.configPath); err != nil {
			return esprintf.Printer{}, err
		}
	}
	if opts.crlf {
		cfg.CRLF = true
	}
	return esprintf.New(cfg)
}

func runFormat(p esprintf.Printer, positional []string, stdout io.Writer, logger zerolog.Logger) error {
	format := positional[0]
	args, err := convertArgs(format, positional[1:])
	if err != nil {
		return err
	}
	if extra := len(positional) - 1 - len(args); extra > 0 {
		logger.Warn().Int("count", extra).Msg("extra arguments ignored")
	}

	sink := esprintf.NewWriterSink(stdout)
	n := p.Printf(sink, esprintf.String(format), args...)
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Debug().Int("chars", n).Int("args", len(args)).Msg("formatted")
	return nil
}

func runCases(p esprintf.Printer, opts *options, stdout io.Writer, logger zerolog.Logger) error {
	cs, err := cases.LoadFile(opts.casesPath)
	if err != nil {
		return err
	}
	results := make([]cases.Result, 0, len(cs))
	for _, c := range cs {
		if c.Float && !esprintf.FloatSupport {
			logger.Info().Str("case", c.Name).Msg("skipped: built without float support")
			continue
		}
		r := cases.Run(p, c, caseBufSize)
		if !r.OK() {
			logger.Debug().Str("case", c.Name).Str("want", c.Want).Str("got", r.Got).Msg("mismatch")
		}
		results = append(results, r)
	}
	if err := report.Write(stdout, opts.reportFmt, results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if sum := report.Summarize(results); sum.Failed > 0 {
		return fmt.Errorf("%w: %s", errCasesFailed, sum)
	}
	return nil
}

// convertArgs turns each command line value into the argument kind its
// conversion in format reads. Values beyond the last conversion are left
// out of the result.
func convertArgs(format string, vals []string) ([]esprintf.Arg, error) {
	kinds := argKinds(format)
	n := min(len(kinds), len(vals))
	out := make([]esprintf.Arg, n)
	for i := range n {
		a, err := convert(kinds[i], vals[i])
		if err != nil {
			return nil, fmt.Errorf("%w %d %q: %w", errBadArgument, i+1, vals[i], err)
		}
		out[i] = a
	}
	return out, nil
}

func convert(k esprintf.Kind, s string) (esprintf.Arg, error) {
	switch k {
	case esprintf.KindChar:
		if len(s) == 0 {
			return esprintf.Char(0), nil
		}
		return esprintf.Char(s[0]), nil
	case esprintf.KindInt:
		v, err := strconv.ParseInt(s, 0, 64)
		return esprintf.Int(int(v)), err
	case esprintf.KindUint:
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			// C callers pass negative values to unsigned conversions.
			sv, serr := strconv.ParseInt(s, 0, 64)
			if serr != nil {
				return esprintf.Arg{}, err
			}
			v = uint64(sv)
		}
		return esprintf.Uint(uint(v)), nil
	case esprintf.KindFloat:
		v, err := strconv.ParseFloat(s, 64)
		return esprintf.Float(v), err
	default:
		return esprintf.Str(s), nil
	}
}

// argKinds lists the argument kinds format consumes, in order, including
// the int read for each '*'.
func argKinds(format string) []esprintf.Kind {
	var kinds []esprintf.Kind
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("-0+ #", format[i]) >= 0 {
			i++
		}
		if i < len(format) && format[i] == '*' {
			kinds = append(kinds, esprintf.KindInt)
			i++
		}
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		if i < len(format) && format[i] == '.' {
			i++
			if i < len(format) && format[i] == '*' {
				kinds = append(kinds, esprintf.KindInt)
				i++
			}
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}
		if i >= len(format) {
			break
		}
		switch format[i] {
		case 'c':
			kinds = append(kinds, esprintf.KindChar)
		case 'd', 'i':
			kinds = append(kinds, esprintf.KindInt)
		case 'u', 'o', 'x', 'X':
			kinds = append(kinds, esprintf.KindUint)
		case 's':
			kinds = append(kinds, esprintf.KindStr)
		case 'f', 'e', 'E', 'g', 'G':
			if esprintf.FloatSupport {
				kinds = append(kinds, esprintf.KindFloat)
			}
		}
	}
	return kinds
}
