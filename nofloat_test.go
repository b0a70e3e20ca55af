//go:build esprintf_nofloat

package esprintf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/esprintf"
)

func TestFloatDisabled(t *testing.T) {
	t.Parallel()
	assert.False(t, esprintf.FloatSupport)
	// The conversion prints literally and leaves its argument for the next one.
	assert.Equal(t, "f 7", sprint(t, "%f %d", esprintf.Int(7)))
	assert.Equal(t, "   e|", sprint(t, "%4.2e|", esprintf.Float(1)))
	assert.Equal(t, "G-3", sprint(t, "%G%d", esprintf.Int(-3)))
}
