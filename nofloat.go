//go:build esprintf_nofloat

package esprintf

// Built without float support: f, e, E, g and G pass through literally and
// consume no argument.
const floatEnabled = false

func formatFloat(*field, float64, directive, bool) {}
