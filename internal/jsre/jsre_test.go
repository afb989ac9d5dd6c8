package jsre

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kardiachain/fracsh/internal/eval"
	"github.com/kardiachain/fracsh/lib/log"
	kmath "github.com/kardiachain/fracsh/lib/math"
)

func newTestJSRE(t *testing.T) *JSRE {
	t.Helper()
	re, err := New(log.NewNopLogger())
	require.NoError(t, err)
	return re
}

func render(t *testing.T, re *JSRE, line string) string {
	t.Helper()
	res, err := re.Eval(line)
	require.NoError(t, err, line)
	text, err := res.Render()
	require.NoError(t, err, line)
	return text
}

func TestEval_Bindings(t *testing.T) {
	re := newTestJSRE(t)

	res, err := re.Eval("let x = frac(1, 2)")
	require.NoError(t, err)
	assert.Equal(t, eval.ResultNone, res.Kind)

	res, err = re.Eval("x")
	require.NoError(t, err)
	assert.Equal(t, eval.ResultCustom, res.Kind)
	assert.Equal(t, "Fraction", res.TypeName)

	_, err = re.Eval("let y = frac(2, 3)")
	require.NoError(t, err)
	assert.Equal(t, "7/6", render(t, re, "plus(x, y)"))

	_, err = re.Eval("x = minus(x, y)")
	require.NoError(t, err)
	assert.Equal(t, "-1/6", render(t, re, "x"))
}

func TestEval_Arithmetic(t *testing.T) {
	re := newTestJSRE(t)
	testCases := []struct {
		line string
		exp  string
	}{
		{"frac(4, 8)", "1/2"},
		{"globalThis.new(6, -4)", "-3/2"},
		{"plus(frac(1, 2), frac(1, 3))", "5/6"},
		{"minus(frac(1, 2), frac(1, 2))", "0/1"},
		{"mul(frac(2, 3), frac(3, 4))", "1/2"},
		{"div(frac(1, 2), frac(1, 4))", "2/1"},
		{"neg(frac(1, 2))", "-1/2"},
		{"reciprocal(frac(-2, 3))", "-3/2"},
		{"plus(frac(1, 2), 1)", "3/2"},
		{"is_positive(frac(-1, 2))", "false"},
		{"is_positive(frac(0, 5))", "true"},
		{"decimal(frac(1, 3), 4)", "0.3333"},
		{"frac(1, 2).String()", "1/2"},
		{"1 + 1", "2"},
		{"'a' + 'b'", "ab"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.exp, render(t, re, tc.line), tc.line)
	}
}

func TestEval_DivisionByZero(t *testing.T) {
	re := newTestJSRE(t)
	for _, line := range []string{
		"frac(1, 0)",
		"div(frac(1, 2), frac(0, 1))",
		"reciprocal(frac(0, 3))",
	} {
		_, err := re.Eval(line)
		require.Error(t, err, line)

		var evalErr *eval.EvaluationError
		require.True(t, errors.As(err, &evalErr), line)
		assert.Equal(t, line, evalErr.Source)
		assert.Equal(t, "division by zero", err.Error())
		assert.True(t, errors.Is(err, kmath.ErrDivisionByZero), line)
	}
}

func TestEval_ErrorsDoNotBreakSession(t *testing.T) {
	re := newTestJSRE(t)

	_, err := re.Eval("let x = frac(1, 2)")
	require.NoError(t, err)

	_, err = re.Eval("let = ;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SyntaxError")

	_, err = re.Eval("z")
	require.Error(t, err)
	assert.Equal(t, "ReferenceError: z is not defined", err.Error())

	_, err = re.Eval("plus(1)")
	require.Error(t, err)
	assert.Equal(t, "TypeError: plus expects 2 arguments, got 1", err.Error())

	_, err = re.Eval("plus('a', 1)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected Fraction, got string")

	assert.Equal(t, "1/2", render(t, re, "x"))
}

func TestEval_FunctionsAreNamed(t *testing.T) {
	re := newTestJSRE(t)

	assert.Equal(t, "function frac() { [native code] }", render(t, re, "frac"))
	assert.Equal(t, "plus", render(t, re, "plus.name"))
	assert.Equal(t, "2", render(t, re, "plus.length"))
	assert.Equal(t, "1", render(t, re, "neg.length"))
}

func TestEval_ExceptionMessages(t *testing.T) {
	re := newTestJSRE(t)

	_, err := re.Eval("plus(")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "SyntaxError: "), err.Error())
	assert.NotContains(t, err.Error(), "SyntaxError: SyntaxError")

	_, err = re.Eval("throw 5")
	require.Error(t, err)
	assert.Equal(t, "5", err.Error())

	_, err = re.Eval("throw 'bad input'")
	require.Error(t, err)
	assert.Equal(t, "bad input", err.Error())

	_, err = re.Eval("throw new Error('boom')")
	require.Error(t, err)
	assert.Equal(t, "Error: boom", err.Error())
}

func TestEval_UnrecognizedType(t *testing.T) {
	re := newTestJSRE(t)

	res, err := re.Eval("new Date(0)")
	require.NoError(t, err)
	assert.Equal(t, eval.ResultCustom, res.Kind)
	assert.Equal(t, "time.Time", res.TypeName)

	_, err = res.Render()
	var unrecognized *eval.UnrecognizedTypeError
	require.True(t, errors.As(err, &unrecognized))
}

func TestEval_Undefined(t *testing.T) {
	re := newTestJSRE(t)
	res, err := re.Eval("undefined")
	require.NoError(t, err)
	assert.Equal(t, eval.ResultNone, res.Kind)

	assert.Equal(t, "null", render(t, re, "null"))
	assert.Equal(t, Name, re.Name())
}
