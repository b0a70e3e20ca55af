// Package esprintf is a small printf for targets where the fmt package is
// unavailable, too large, or too slow.
//
// Formatting allocates nothing and does not recurse. Output goes either to a
// [Sink], one character at a time, or into a caller supplied buffer:
//
//	n := esprintf.Printf(uart, "temp=%d.%02d\n", esprintf.Int(t/100), esprintf.Int(t%100))
//
//	var buf [32]byte
//	n := esprintf.Sprintf(buf[:], "%08.3f", esprintf.Float(v))
//
// # Arguments
//
// Arguments are [Arg] values built with [Char], [Int], [Uint], [Str] and
// [Float], or converted from Go values with [From] and [Args]. Numeric kinds
// are converted to whatever the conversion expects. A missing argument
// reads as zero or the empty string.
//
// # Format Language
//
// A specifier is
//
//	%[flags][width][.precision]conversion
//
// Flags, in any order:
//
//   - '-' left justify within the width
//   - '0' pad numbers with zeros after the sign and prefix
//   - '+' always print a sign for signed conversions
//   - ' ' print a space where a plus sign would go
//   - '#' alternate form: 0x/0X or leading 0 prefix, forced decimal point
//
// Width and precision are decimal numbers or '*', which takes the next
// argument. A negative '*' width is not treated as left justification; the
// field is simply not padded. A '.' with no digits is precision 0.
//
// Conversions:
//
//   - c          one character
//   - d, i       signed decimal
//   - u          unsigned decimal
//   - o, x, X    unsigned octal, hexadecimal
//   - s          string; precision limits the length
//   - f          fixed point, precision fraction digits (default 6)
//   - e, E       scientific, precision fraction digits (default 6)
//   - g, G       f or e by exponent, precision significant digits
//
// Any other byte after '%', including '%', is printed as is.
//
// Floating point values carry at most 16 significant digits; NaN and
// infinities print as "NaN" and "Inf". Build with the esprintf_nofloat
// tag to leave float support out; the float conversions then print
// literally.
//
// # Format Sources
//
// [Printer.Printf] and [Printer.Sprintf] read the format through a
// [Source], which lets formats live outside ordinary memory. [String] and
// [Bytes] are flat; [Paged] reads from fixed-size banks.
//
// # Buffer Capacity
//
// Sprintf takes no capacity. The destination must be sized for the
// longest output plus the 0 terminator; writing past it panics.
//
// # Configuration
//
// [Config] selects three-digit exponents and CRLF line endings. It can be
// loaded from YAML with [ParseConfig] or [LoadConfig], from TOML with
// [ParseTOMLConfig], or from a file of either kind with [LoadConfigFile].
//
// # Errors
//
// Formatting never fails. The package exports sentinel errors for the
// helpers around it:
//
//   - [ErrUnsupportedType]: a Go value with no Arg kind
//   - [ErrInvalidConfig]: a malformed or invalid Config
package esprintf
