package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/esprintf"
)

func runCmd(args ...string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"literal":      {args: []string{"hello"}, want: "hello"},
		"int":          {args: []string{"[%5d]", "-42"}, want: "[  -42]"},
		"hex input":    {args: []string{"%d", "0x1f"}, want: "31"},
		"unsigned":     {args: []string{"%#x", "255"}, want: "0xff"},
		"negative hex": {args: []string{"%x", "-1"}, want: "ffffffffffffffff"},
		"char":         {args: []string{"%c%c", "hi", "!"}, want: "h!"},
		"string":       {args: []string{"%-4s|", "ab"}, want: "ab  |"},
		"star":         {args: []string{"%*s", "6", "x"}, want: "     x"},
		"missing":      {args: []string{"%d %s."}, want: "0 ."},
		"extra":        {args: []string{"%d", "1", "2"}, want: "1"},
		"crlf":         {args: []string{"-crlf", "a\nb"}, want: "a\r\nb"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, _, code := runCmd(tt.args...)
			assert.Equal(t, 0, code)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunFloat(t *testing.T) {
	t.Parallel()
	if !esprintf.FloatSupport {
		t.Skip("built without float support")
	}
	out, _, code := runCmd("%.2f %e", "3.14159", "1234.5")
	assert.Equal(t, 0, code)
	assert.Equal(t, "3.14 1.234500e+03", out)
}

func TestRunConfig(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "config.yaml", "crlf: true\n")
	out, _, code := runCmd("-config", path, "x\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "x\r\n", out)

	path = writeFile(t, "config.toml", "crlf = true\n")
	out, _, code = runCmd("-config", path, "y\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "y\r\n", out)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()
	badConfig := writeFile(t, "bad.yaml", "exp_digits: 4\n")
	tests := map[string]struct {
		args []string
		code int
	}{
		"no format":      {args: nil, code: 2},
		"unknown flag":   {args: []string{"-nope", "x"}, code: 2},
		"bad report":     {args: []string{"-report", "json", "x"}, code: 2},
		"cases and args": {args: []string{"-cases", "f.yaml", "x"}, code: 2},
		"bad int":        {args: []string{"%d", "ten"}, code: 1},
		"bad uint":       {args: []string{"%u", "many"}, code: 1},
		"bad config":     {args: []string{"-config", badConfig, "x"}, code: 1},
		"missing config": {args: []string{"-config", filepath.Join(t.TempDir(), "none.yaml"), "x"}, code: 1},
		"missing cases":  {args: []string{"-cases", filepath.Join(t.TempDir(), "none.yaml")}, code: 1},
		"help":           {args: []string{"-h"}, code: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, _, code := runCmd(tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, out)
		})
	}
}

func TestRunCases(t *testing.T) {
	t.Parallel()
	out, _, code := runCmd("-cases", "../../testdata/cases.yaml", "-report", "plain")
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "0 failed")
	assert.NotContains(t, out, "FAIL")
}

func TestRunCasesFailure(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "cases.yaml", `
- name: good
  format: "%d"
  args: [{int: 7}]
  want: "7"
- name: wrong
  format: "%d"
  args: [{int: 7}]
  want: "8"
`)
	out, stderr, code := runCmd("-cases", path, "-report", "table")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "2 cases, 1 passed, 1 failed")
	assert.Contains(t, stderr, "conformance cases failed")
}

func TestArgKinds(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		want   []esprintf.Kind
	}{
		"none":      {format: "plain %% text", want: nil},
		"ints":      {format: "%d %i %u %x", want: []esprintf.Kind{esprintf.KindInt, esprintf.KindInt, esprintf.KindUint, esprintf.KindUint}},
		"char str":  {format: "%c%-8s", want: []esprintf.Kind{esprintf.KindChar, esprintf.KindStr}},
		"stars":     {format: "%*.*s", want: []esprintf.Kind{esprintf.KindInt, esprintf.KindInt, esprintf.KindStr}},
		"unknown":   {format: "%z%d", want: []esprintf.Kind{esprintf.KindInt}},
		"truncated": {format: "%d%-5", want: []esprintf.Kind{esprintf.KindInt}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, argKinds(tt.format))
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(" info "))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("whatever"))
}
