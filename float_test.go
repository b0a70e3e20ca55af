//go:build !esprintf_nofloat

package esprintf_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/esprintf"
)

func TestFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		arg    float64
		want   string
	}{
		"fixed":               {format: "%f", arg: 1.5, want: "1.500000"},
		"fixed no fraction":   {format: "%.0f", arg: 123450.0, want: "123450"},
		"scientific":          {format: "%e", arg: 123450.0, want: "1.234500e+05"},
		"carry out":           {format: "%.0f", arg: 9.5, want: "10"},
		"round down":          {format: "%.0f", arg: 0.4, want: "0"},
		"round up":            {format: "%.0f", arg: 0.6, want: "1"},
		"carry below one":     {format: "%.2f", arg: 0.996, want: "1.00"},
		"carry from nothing":  {format: "%.1f", arg: 0.05, want: "0.1"},
		"below precision":     {format: "%.1f", arg: 0.04, want: "0.0"},
		"scientific carry":    {format: "%.3e", arg: 9.9996, want: "1.000e+01"},
		"general trims":       {format: "%g", arg: 100.0, want: "100"},
		"general one":         {format: "%g", arg: 1.0, want: "1"},
		"general alternate":   {format: "%#g", arg: 1.0, want: "1.00000"},
		"general small":       {format: "%g", arg: 1e-5, want: "1e-05"},
		"general fixed small": {format: "%g", arg: 0.0001, want: "0.0001"},
		"general large":       {format: "%g", arg: 123456789.0, want: "1.23457e+08"},
		"general precision":   {format: "%.10g", arg: 123456789.0, want: "123456789"},
		"general zero prec":   {format: "%.0g", arg: 2.0, want: "2"},
		"general carry":       {format: "%g", arg: 999999.5, want: "1e+06"},
		"general upper":       {format: "%G", arg: 1e-10, want: "1E-10"},
		"forced point":        {format: "%#.0f", arg: 1.0, want: "1."},
		"forced point sci":    {format: "%#.0e", arg: 3.0, want: "3.e+00"},
		"no point sci":        {format: "%.0e", arg: 3.0, want: "3e+00"},
		"zero fixed":          {format: "%f", arg: 0.0, want: "0.000000"},
		"zero scientific":     {format: "%e", arg: 0.0, want: "0.000000e+00"},
		"zero general":        {format: "%g", arg: 0.0, want: "0"},
		"negative zero":       {format: "%f", arg: math.Copysign(0, -1), want: "-0.000000"},
		"plus":                {format: "%+e", arg: 0.0, want: "+0.000000e+00"},
		"space":               {format: "% f", arg: 1.0, want: " 1.000000"},
		"zero pad":            {format: "%08.2f", arg: -1.5, want: "-0001.50"},
		"left":                {format: "%-8.2f|", arg: 1.5, want: "1.50    |"},
		"width":               {format: "%10.3e", arg: 1234.56, want: " 1.235e+03"},
		"narrow":              {format: "%5.1f|", arg: 3.14159, want: "  3.1|"},
		"tiny":                {format: "%E", arg: 1.5e-300, want: "1.500000E-300"},
		"subnormal":           {format: "%e", arg: 5e-324, want: "4.940656e-324"},
		"huge fixed":          {format: "%f", arg: 1e300, want: "1.000000e+300"},
		"wide fixed":          {format: "%.1f", arg: 1e20, want: "100000000000000000000.0"},
		"long fraction":       {format: "%.25f", arg: 1.0, want: "1." + strings.Repeat("0", 25)},
		"nan":                 {format: "%f", arg: math.NaN(), want: "NaN"},
		"nan plus":            {format: "%+f", arg: math.NaN(), want: "NaN"},
		"nan width":           {format: "%5f", arg: math.NaN(), want: "  NaN"},
		"inf":                 {format: "%f", arg: math.Inf(1), want: "Inf"},
		"negative inf":        {format: "%e", arg: math.Inf(-1), want: "-Inf"},
		"plus inf":            {format: "%+g", arg: math.Inf(1), want: "+Inf"},
		"inf not zero padded": {format: "%05f", arg: math.Inf(1), want: "  Inf"},
		"inf left":            {format: "%-5e|", arg: math.Inf(1), want: "Inf  |"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sprint(t, tt.format, esprintf.Float(tt.arg)))
		})
	}
}

func TestFloatFromInteger(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2.000000", sprint(t, "%f", esprintf.Int(2)))
	assert.Equal(t, "3e+00", sprint(t, "%.0e", esprintf.Uint(3)))
	assert.Equal(t, "0.000000", sprint(t, "%f"))
}

func TestFloatPrecisionClamp(t *testing.T) {
	t.Parallel()
	// Precision is reduced so the field fits its fixed buffer.
	assert.Equal(t, "1."+strings.Repeat("0", 28), sprint(t, "%.30f", esprintf.Float(1)))
	assert.Equal(t, "1."+strings.Repeat("0", 24)+"e+00", sprint(t, "%.30e", esprintf.Float(1)))
	assert.Equal(t, "-1.5"+strings.Repeat("0", 23)+"e+10", sprint(t, "%.40e", esprintf.Float(-1.5e10)))
}

func TestFloatStarPrecision(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "3.14", sprint(t, "%.*f", esprintf.Int(2), esprintf.Float(math.Pi)))
	assert.Equal(t, "  3.142", sprint(t, "%*.*f", esprintf.Int(7), esprintf.Int(3), esprintf.Float(math.Pi)))
	// Negative precision falls back to the default.
	assert.Equal(t, "3.141593", sprint(t, "%.*f", esprintf.Int(-1), esprintf.Float(math.Pi)))
}

func TestFloatThreeDigitExponent(t *testing.T) {
	t.Parallel()
	p, err := esprintf.New(esprintf.Config{ExpDigits: 3})
	require.NoError(t, err)
	tests := map[string]struct {
		format string
		arg    float64
		want   string
	}{
		"scientific": {format: "%e", arg: 1.5, want: "1.500000e+000"},
		"general":    {format: "%g", arg: 1e-5, want: "1e-005"},
		"large":      {format: "%e", arg: 1e123, want: "1.000000e+123"},
		"fixed":      {format: "%f", arg: 1.5, want: "1.500000"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf [64]byte
			n := p.Sprintf(buf[:], esprintf.String(tt.format), esprintf.Float(tt.arg))
			assert.Equal(t, tt.want, string(buf[:n]))
		})
	}
}

func TestFloatFieldLimits(t *testing.T) {
	t.Parallel()
	// Every rendering, whatever the precision, fits the numeric field.
	values := []float64{0, 1, -1, math.Pi, 1e-300, 5e-324, 9.999999999, 1e22, -1e308, math.MaxFloat64}
	for _, v := range values {
		for _, conv := range []string{"f", "e", "g", "#g"} {
			for prec := 0; prec <= 40; prec += 5 {
				format := "%+" + conv[:len(conv)-1] + "." + strconv.Itoa(prec) + conv[len(conv)-1:]
				got := sprint(t, format, esprintf.Float(v))
				assert.LessOrEqual(t, len(got), 32, "%s of %g gave %q", format, v, got)
				assert.NotEmpty(t, got)
			}
		}
	}
}
