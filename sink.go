package esprintf

import "io"

// Sink receives formatted output one character at a time, as a UART or
// console driver would.
type Sink interface {
	PutByte(c byte)
}

// SinkFunc adapts a function to [Sink].
type SinkFunc func(c byte)

// PutByte implements [Sink].
func (f SinkFunc) PutByte(c byte) { f(c) }

// WriterSink is a [Sink] that batches characters into w through a fixed
// buffer. The first write error is kept and later output is discarded.
// Call Flush when done.
type WriterSink struct {
	w   io.Writer
	buf [64]byte
	n   int
	err error
}

// NewWriterSink returns a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// PutByte implements [Sink].
func (s *WriterSink) PutByte(c byte) {
	if s.err != nil {
		return
	}
	s.buf[s.n] = c
	s.n++
	if s.n == len(s.buf) {
		_ = s.Flush()
	}
}

// Flush writes any buffered characters and returns the sticky error.
func (s *WriterSink) Flush() error {
	if s.err != nil || s.n == 0 {
		return s.err
	}
	_, s.err = s.w.Write(s.buf[:s.n])
	s.n = 0
	return s.err
}

// Err returns the first write error, if any.
func (s *WriterSink) Err() error { return s.err }

// target is the destination of one formatting call: a sink or a buffer,
// never both. crlf applies to sinks only.
type target struct {
	sink Sink
	dst  []byte
	n    int
	crlf bool
}

func (t *target) put(c byte) {
	if t.sink != nil {
		if c == '\n' && t.crlf {
			t.sink.PutByte('\r')
		}
		t.sink.PutByte(c)
	} else {
		t.dst[t.n] = c
	}
	t.n++
}

// terminate writes the trailing 0 of buffer mode. It is not counted.
func (t *target) terminate() {
	if t.sink == nil {
		t.dst[t.n] = 0
	}
}
