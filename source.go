package esprintf

// Source supplies format bytes by position. ByteAt returns 0 at and beyond
// the end of the format; a 0 byte terminates formatting.
type Source interface {
	ByteAt(i int) byte
}

// String is a format held in ordinary memory.
type String string

// ByteAt implements [Source].
func (s String) ByteAt(i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// Bytes is a format held in a byte slice.
type Bytes []byte

// ByteAt implements [Source].
func (b Bytes) ByteAt(i int) byte {
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}

// Paged is a format stored across fixed-size memory banks, such as strings
// placed in a paged flash region. Position i lives in page i/Size at offset
// i%Size. A short or missing page ends the format.
type Paged struct {
	Size  int
	Pages [][]byte
}

// ByteAt implements [Source].
func (p Paged) ByteAt(i int) byte {
	if i < 0 || p.Size <= 0 {
		return 0
	}
	page, off := i/p.Size, i%p.Size
	if page >= len(p.Pages) || off >= len(p.Pages[page]) {
		return 0
	}
	return p.Pages[page][off]
}

// Page splits s into banks of size n. It is a convenience for building
// Paged sources in tests and tools; it allocates.
func Page(s string, n int) Paged {
	p := Paged{Size: n}
	if n <= 0 {
		return p
	}
	for len(s) > n {
		p.Pages = append(p.Pages, []byte(s[:n]))
		s = s[n:]
	}
	if len(s) > 0 {
		p.Pages = append(p.Pages, []byte(s))
	}
	return p
}
