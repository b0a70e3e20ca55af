//go:build !esprintf_nofloat

package esprintf

import "math"

const floatEnabled = true

const (
	// sigDigits is the number of significant digits taken from a float64.
	// Later digits are generated as '0'.
	sigDigits = 16
	// mantScale turns a mantissa in [1, 10) into a sigDigits digit integer.
	mantScale = 1e15
	// maxDecpt bounds range reduction; beyond it a value prints as Inf.
	maxDecpt = 1000
)

// Range reduction tables. pow10Big[k] is 10^pow10Shift[k]; a value below
// pow10Small[k] is scaled up by pow10Big[k].
var (
	pow10Big   = [...]float64{1e256, 1e128, 1e64, 1e32, 1e16, 1e8, 1e4, 1e2, 1e1}
	pow10Small = [...]float64{1e-255, 1e-127, 1e-63, 1e-31, 1e-15, 1e-7, 1e-3, 1e-1, 1e0}
	pow10Shift = [...]int{256, 128, 64, 32, 16, 8, 4, 2, 1}
)

// decimal is a float64 as ASCII digits d[0:nd] with value
// d[0].d[1]d[2]... * 10^(decpt-1).
type decimal struct {
	d     [bufMax + 1]byte
	nd    int
	decpt int
}

// digitAt returns digit i, or '0' outside the generated digits.
func (d *decimal) digitAt(i int) byte {
	if i < 0 || i >= d.nd {
		return '0'
	}
	return d.d[i]
}

// normalize scales a finite v >= 0 into [1, 10) and returns the scaled value
// with its decpt. Zero gives decpt 1. ok is false when the reduction does
// not settle within maxDecpt.
func normalize(v float64) (x float64, decpt int, ok bool) {
	if v == 0 {
		return 0, 1, true
	}
	x, decpt = v, 1
	switch {
	case x >= 10:
		for k, p := range pow10Big {
			if x >= p {
				x /= p
				decpt += pow10Shift[k]
			}
		}
	case x < 1:
		for k, p := range pow10Small {
			if x < p {
				x *= pow10Big[k]
				decpt -= pow10Shift[k]
			}
		}
	}
	for x >= 10 {
		x /= 10
		if decpt++; decpt > maxDecpt {
			return 0, 0, false
		}
	}
	for x < 1 {
		x *= 10
		if decpt--; decpt < -maxDecpt {
			return 0, 0, false
		}
	}
	return x, decpt, true
}

// generate fills d with ndigits digits of x (normalized, with decpt) rounded
// half up on the following digit. A negative ndigits leaves no digits: the
// value rounds to zero at that position. extend grows the digit count when
// rounding carries out of the leading digit, as fixed notation needs.
func (d *decimal) generate(x float64, decpt, ndigits int, extend bool) {
	d.decpt = decpt
	d.nd = 0
	if ndigits < 0 {
		return
	}

	m := uint64(x*mantScale + 0.5)
	if m >= 10*mantScale {
		m /= 10
		d.decpt++
	}
	for i := 0; i <= ndigits; i++ {
		if i >= sigDigits {
			d.d[i] = '0'
			continue
		}
		d.d[i] = byte('0' + m/mantScale)
		m = m % mantScale * 10
	}
	d.nd = ndigits

	if d.d[ndigits] < '5' {
		return
	}
	for i := ndigits - 1; i >= 0; i-- {
		if d.d[i] < '9' {
			d.d[i]++
			return
		}
		d.d[i] = '0'
	}
	// 9.99...9 became 10.0...0.
	if extend || d.nd == 0 {
		d.d[d.nd] = '0'
		d.nd++
	}
	d.d[0] = '1'
	d.decpt++
}

// trim drops trailing '0' digits from the count digits starting at first.
func (d *decimal) trim(first, count int) int {
	for count > 0 && d.digitAt(first+count-1) == '0' {
		count--
	}
	return count
}

// fixed writes d in positional notation with prec fraction digits.
func (d *decimal) fixed(f *field, prec int, point bool) {
	for i := d.decpt + prec - 1; i >= d.decpt; i-- {
		f.push(d.digitAt(i))
	}
	if prec > 0 || point {
		f.push('.')
	}
	if d.decpt <= 0 {
		f.push('0')
		return
	}
	for i := d.decpt - 1; i >= 0; i-- {
		f.push(d.digitAt(i))
	}
}

// scientific writes d as one digit, prec fraction digits and an exponent of
// at least two digits, three when it exceeds 99 or exp3 is set.
func (d *decimal) scientific(f *field, prec int, point bool, marker byte, exp3 bool) {
	e := d.decpt - 1
	esign := byte('+')
	if e < 0 {
		esign = '-'
		e = -e
	}
	f.push(byte('0' + e%10))
	e /= 10
	f.push(byte('0' + e%10))
	e /= 10
	if e > 0 || exp3 {
		f.push(byte('0' + e%10))
	}
	f.push(esign)
	f.push(marker)

	for i := prec; i >= 1; i-- {
		f.push(d.digitAt(i))
	}
	if prec > 0 || point {
		f.push('.')
	}
	f.push(d.digitAt(0))
}

func pushToken(f *field, tok string) {
	for i := len(tok) - 1; i >= 0; i-- {
		f.push(tok[i])
	}
}

// formatFloat renders v into f for one of the f, e, E, g and G conversions.
func formatFloat(f *field, v float64, s directive, exp3 bool) {
	if math.IsNaN(v) {
		pushToken(f, "NaN")
		return
	}
	if math.Signbit(v) {
		s.flags |= flagNeg
		v = -v
	}
	var x float64
	var decpt int
	ok := !math.IsInf(v, 0)
	if ok {
		x, decpt, ok = normalize(v)
	}
	if !ok {
		pushToken(f, "Inf")
		if sign := s.sign(); sign != 0 {
			f.push(sign)
		}
		return
	}

	prec := s.prec
	if prec < 0 {
		prec = 6
	}
	point := s.has(flagSpecial)
	marker := byte('e')
	if s.conv == 'E' || s.conv == 'G' {
		marker = 'E'
	}
	mode := s.conv | 0x20

	// Sign, point and a carry digit must fit beside the integer part.
	const room = bufMax - 3
	if mode == 'f' && max(decpt, 1) > room {
		mode = 'e'
	}

	var d decimal
	switch mode {
	case 'f':
		prec = min(prec, room-max(decpt, 1))
		d.generate(x, decpt, decpt+prec, true)
		d.fixed(f, prec, point)
	case 'e':
		prec = min(prec, bufMax-8)
		d.generate(x, decpt, prec+1, false)
		d.scientific(f, prec, point, marker, exp3)
	case 'g':
		if prec == 0 {
			prec = 1
		}
		prec = min(prec, bufMax-8)
		d.generate(x, decpt, prec, false)
		if -4 < d.decpt && d.decpt <= prec {
			fp := prec - d.decpt
			if !point {
				fp = d.trim(d.decpt, fp)
			}
			d.fixed(f, fp, point)
		} else {
			ep := prec - 1
			if !point {
				ep = d.trim(1, ep)
			}
			d.scientific(f, ep, point, marker, exp3)
		}
	}

	sign := s.sign()
	if s.has(flagZero) && !s.has(flagLeft) {
		ns := 0
		if sign != 0 {
			ns = 1
		}
		f.pad('0', min(s.width, bufMax)-ns)
	}
	if sign != 0 {
		f.push(sign)
	}
}
