package esprintf

// bufMax is the capacity of a rendered numeric field. It holds the longest
// octal uint64 with prefix and sign, and the longest float form the
// converter will produce (sign, point, digits, exponent and carry digit).
const bufMax = 32

// field is a numeric field filled backwards, least significant character
// first. Writes beyond capacity are dropped.
type field struct {
	buf [bufMax]byte
	pos int
}

func (f *field) reset() { f.pos = bufMax }

// push prepends c. It reports false when the field is full.
func (f *field) push(c byte) bool {
	if f.pos == 0 {
		return false
	}
	f.pos--
	f.buf[f.pos] = c
	return true
}

func (f *field) len() int { return bufMax - f.pos }

// first returns the leading character, or 0 for an empty field.
func (f *field) first() byte {
	if f.pos == bufMax {
		return 0
	}
	return f.buf[f.pos]
}

func (f *field) bytes() []byte { return f.buf[f.pos:] }

// pad prepends c until the field is n characters long.
func (f *field) pad(c byte, n int) {
	for f.len() < n && f.push(c) {
	}
}
