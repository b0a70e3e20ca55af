package esprintf

type flags uint8

const (
	flagLeft flags = 1 << iota
	flagZero
	flagSpecial
	flagPlus
	flagSpace
	flagNeg
)

func flagOf(c byte) flags {
	switch c {
	case '-':
		return flagLeft
	case '0':
		return flagZero
	case '#':
		return flagSpecial
	case '+':
		return flagPlus
	case ' ':
		return flagSpace
	default:
		return 0
	}
}

// directive is one parsed %... sequence. prec is -1 when no precision was
// given.
type directive struct {
	flags flags
	width int
	prec  int
	conv  byte
}

func (s directive) has(f flags) bool { return s.flags&f != 0 }

// sign returns the sign character selected by the flags, or 0.
func (s directive) sign() byte {
	switch {
	case s.has(flagNeg):
		return '-'
	case s.has(flagPlus):
		return '+'
	case s.has(flagSpace):
		return ' '
	default:
		return 0
	}
}

// parseDirective reads flags, width and precision starting just after a '%'
// at position i. It returns the directive and the position of the
// conversion byte. A negative '*' width is kept as is; a negative '*'
// precision means none.
func parseDirective(src Source, i int, args *argList) (directive, int) {
	s := directive{prec: -1}
	c := src.ByteAt(i)
	for f := flagOf(c); f != 0; f = flagOf(c) {
		s.flags |= f
		i++
		c = src.ByteAt(i)
	}

	if c == '*' {
		s.width = args.pop().int()
		i++
		c = src.ByteAt(i)
	} else {
		for ; c >= '0' && c <= '9'; c = src.ByteAt(i) {
			s.width = s.width*10 + int(c-'0')
			i++
		}
	}

	if c == '.' {
		s.prec = 0
		i++
		c = src.ByteAt(i)
		if c == '*' {
			s.prec = args.pop().int()
			if s.prec < 0 {
				s.prec = -1
			}
			i++
			c = src.ByteAt(i)
		} else {
			for ; c >= '0' && c <= '9'; c = src.ByteAt(i) {
				s.prec = s.prec*10 + int(c-'0')
				i++
			}
		}
	}

	s.conv = c
	return s, i
}

// doprnt is the formatting engine shared by every entry point.
func (p Printer) doprnt(t *target, src Source, args []Arg) int {
	al := argList{args: args}
	var f field
	for i := 0; ; i++ {
		c := src.ByteAt(i)
		if c == 0 {
			break
		}
		if c != '%' {
			t.put(c)
			continue
		}

		var s directive
		s, i = parseDirective(src, i+1, &al)
		left := s.has(flagLeft)
		f.reset()

		switch s.conv {
		case 0:
			// Format ended inside a specifier.
			t.terminate()
			return t.n
		case 'c':
			f.push(byte(al.pop().uint()))
			emit(t, f.bytes(), s.width, left)
		case 'd', 'i':
			v := al.pop().int()
			u := uint64(v)
			if v < 0 {
				s.flags |= flagNeg
				u = -u
			}
			formatInt(&f, u, 10, s)
			emit(t, f.bytes(), s.width, left)
		case 'u':
			formatInt(&f, uint64(al.pop().uint()), 10, s)
			emit(t, f.bytes(), s.width, left)
		case 'o':
			formatInt(&f, uint64(al.pop().uint()), 8, s)
			emit(t, f.bytes(), s.width, left)
		case 'x', 'X':
			formatInt(&f, uint64(al.pop().uint()), 16, s)
			emit(t, f.bytes(), s.width, left)
		case 's':
			str := al.pop().str()
			if s.prec >= 0 && s.prec < len(str) {
				str = str[:s.prec]
			}
			emit(t, str, s.width, left)
		case 'f', 'e', 'E', 'g', 'G':
			if !floatEnabled {
				f.push(s.conv)
				emit(t, f.bytes(), s.width, left)
				break
			}
			formatFloat(&f, al.pop().float(), s, p.cfg.ExpDigits == 3)
			emit(t, f.bytes(), s.width, left)
		default:
			f.push(s.conv)
			emit(t, f.bytes(), s.width, left)
		}
	}
	t.terminate()
	return t.n
}

// emit writes one field, space filled to width on the left, or on the right
// when left is set. A width at or below the field length adds nothing.
func emit[T string | []byte](t *target, s T, width int, left bool) {
	n := len(s)
	if !left {
		for ; width > n; width-- {
			t.put(' ')
		}
	}
	for i := 0; i < n; i++ {
		t.put(s[i])
	}
	if left {
		for ; width > n; width-- {
			t.put(' ')
		}
	}
}

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// formatInt renders u in base with the sign, prefix, zero fill and minimum
// digit count selected by s.
func formatInt(f *field, u, base uint64, s directive) {
	prec := s.prec
	if prec < 0 {
		prec = 1
	} else {
		s.flags &^= flagZero
	}
	// Leave room for the sign and a two character prefix.
	if prec > bufMax-3 {
		prec = bufMax - 3
	}
	if base != 10 || s.conv == 'u' {
		s.flags &^= flagPlus | flagNeg | flagSpace
	}
	if base == 10 {
		s.flags &^= flagSpecial
	}

	digits := lowerDigits
	if s.conv == 'X' {
		digits = upperDigits
	}
	zero := u == 0
	for u != 0 || prec > 0 {
		f.push(digits[u%base])
		u /= base
		prec--
	}

	var prefix [2]byte
	np := 0
	if s.has(flagSpecial) {
		switch {
		case base == 8 && f.first() != '0':
			prefix[0], np = '0', 1
		case base == 16 && !zero:
			prefix[0], prefix[1], np = '0', s.conv, 2
		}
	}
	sign := s.sign()
	ns := 0
	if sign != 0 {
		ns = 1
	}

	if s.has(flagZero) && !s.has(flagLeft) {
		f.pad('0', min(s.width, bufMax)-np-ns)
	}
	for k := np - 1; k >= 0; k-- {
		f.push(prefix[k])
	}
	if sign != 0 {
		f.push(sign)
	}
}
