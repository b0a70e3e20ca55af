package esprintf

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedType = errors.New("unsupported argument type")
	ErrInvalidConfig   = errors.New("invalid config")
)

// FloatSupport reports whether the f, e, E, g and G conversions are compiled
// in. Builds tagged esprintf_nofloat print them literally.
const FloatSupport = floatEnabled

// Printf formats args according to format and sends the result to sink.
// It returns the number of characters produced.
func Printf(sink Sink, format string, args ...Arg) int {
	return Printer{}.Printf(sink, String(format), args...)
}

// Sprintf formats args according to format into dst and appends a 0
// terminator, which is not counted in the returned length.
//
// dst is not grown: it must hold the output plus the terminator. Formatting
// past its end panics with an index out of range.
func Sprintf(dst []byte, format string, args ...Arg) int {
	return Printer{}.Sprintf(dst, String(format), args...)
}

// Printer formats with a fixed [Config]. The zero Printer uses the default
// configuration. A Printer holds no mutable state and may be shared.
type Printer struct {
	cfg Config
}

// New returns a Printer for cfg.
func New(cfg Config) (Printer, error) {
	if err := cfg.Validate(); err != nil {
		return Printer{}, err
	}
	return Printer{cfg: cfg}, nil
}

// Config returns the configuration of p.
func (p Printer) Config() Config { return p.cfg }

// Printf formats args according to the format read from src and sends the
// result to sink. It returns the number of characters produced; with
// CRLF enabled the inserted '\r' characters are not counted.
func (p Printer) Printf(sink Sink, src Source, args ...Arg) int {
	t := target{sink: sink, crlf: p.cfg.CRLF}
	return p.doprnt(&t, src, args)
}

// Sprintf is the buffer form of [Printer.Printf]. The same capacity rules as
// [Sprintf] apply.
func (p Printer) Sprintf(dst []byte, src Source, args ...Arg) int {
	t := target{dst: dst}
	return p.doprnt(&t, src, args)
}
