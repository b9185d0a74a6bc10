package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestConvert(t *testing.T) {
	code, stdout, stderr := runCLI("convert", "M45", "431", "R01")

	assert.Equal(t, 0, code)
	assert.Equal(t, "M45\t1912\n431\t2019\nR01\t2019\n", stdout)
	assert.Empty(t, stderr)
}

func TestConvert_PartialFailure(t *testing.T) {
	code, stdout, stderr := runCLI("convert", "M45", "M46", "X01")

	assert.Equal(t, 1, code)
	assert.Equal(t, "M45\t1912\n", stdout)
	assert.Contains(t, stderr, "M46\tera_year_out_of_range\tMeiji until 45.")
	assert.Contains(t, stderr, "X01\tunknown_era\tUnknown era.")
}

func TestConvert_Lenient(t *testing.T) {
	code, stdout, _ := runCLI("convert", "-lenient", "ｈ３１")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ｈ３１\t2019\n", stdout)

	code, _, stderr := runCLI("convert", "ｈ３１")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid_year")
}

func TestReverse(t *testing.T) {
	code, stdout, _ := runCLI("reverse", "1868", "1989", "2117")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1868\tM01\n1989\tH01\n2117\tR99\n", stdout)

	code, stdout, _ = runCLI("reverse", "-digits", "1926")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1926\t301\n", stdout)
}

func TestReverse_Failures(t *testing.T) {
	code, _, stderr := runCLI("reverse", "1867", "2118", "soon")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "1867\tyear_out_of_range")
	assert.Contains(t, stderr, "2118\tyear_out_of_range")
	assert.Contains(t, stderr, "soon\tinvalid_input")
}

func TestEras(t *testing.T) {
	code, stdout, _ := runCLI("eras")

	assert.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[1], "Meiji")
	assert.Contains(t, lines[5], "Reiwa")
	assert.True(t, strings.HasSuffix(lines[5], "-"), "Reiwa has no last year")
}

func TestUsage(t *testing.T) {
	code, _, stderr := runCLI()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Available Commands")

	code, _, stderr = runCLI("bogus")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "bogus"`)

	code, _, stderr = runCLI("convert")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: wareki convert")

	code, _, _ = runCLI("help")
	assert.Equal(t, 0, code)
}
