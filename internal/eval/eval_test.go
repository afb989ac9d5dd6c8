package eval

import (
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kmath "github.com/kardiachain/fracsh/lib/math"
)

func findFunc(t *testing.T, name string) Func {
	t.Helper()
	for _, f := range Funcs() {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("function %s is not registered", name)
	return Func{}
}

func TestSignatures(t *testing.T) {
	funcs := Funcs()
	require.NotEmpty(t, funcs)
	sigs := make([]string, len(funcs))
	for i, fn := range funcs {
		assert.NotEmpty(t, fn.Doc, fn.Name)
		sigs[i] = fn.Signature()
	}
	assert.Equal(t, "frac(int, int) -> Fraction", sigs[0])
	assert.Contains(t, sigs, "plus(Fraction, Fraction) -> Fraction")
	assert.Contains(t, sigs, "minus(Fraction, Fraction) -> Fraction")
	assert.Contains(t, sigs, "mul(Fraction, Fraction) -> Fraction")
	assert.Contains(t, sigs, "div(Fraction, Fraction) -> Fraction")
	assert.Contains(t, sigs, "is_positive(Fraction) -> bool")
	assert.Contains(t, sigs, "decimal(Fraction, int) -> string")
}

func TestLookup(t *testing.T) {
	typ, ok := Lookup("Fraction")
	require.True(t, ok)
	assert.Equal(t, "frac", typ.Constructor.Name)

	typ, ok = LookupValue(kmath.FromInt(1))
	require.True(t, ok)
	assert.Equal(t, "Fraction", typ.Name)

	_, ok = LookupValue(int64(1))
	assert.False(t, ok)
	_, ok = LookupValue(nil)
	assert.False(t, ok)
	_, ok = Lookup("Matrix")
	assert.False(t, ok)
}

func TestNewFraction(t *testing.T) {
	testCases := []struct {
		a, b int64
		exp  string
		err  error
	}{
		{a: 1, b: 2, exp: "1/2"},
		{a: 4, b: 8, exp: "1/2"},
		{a: 1, b: -2, exp: "-1/2"},
		{a: -1, b: -2, exp: "1/2"},
		{a: 0, b: -3, exp: "0/1"},
		{a: math.MinInt64, b: -1, exp: "9223372036854775808/1"},
		{a: 3, b: math.MinInt64, exp: "-3/9223372036854775808"},
		{a: 1, b: 0, err: kmath.ErrDivisionByZero},
	}
	for idx, tc := range testCases {
		f, err := NewFraction(tc.a, tc.b)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, idx)
			continue
		}
		require.NoError(t, err, idx)
		assert.Equal(t, tc.exp, f.String(), idx)
	}
}

func TestFuncs_Call(t *testing.T) {
	half, err := NewFraction(1, 2)
	require.NoError(t, err)
	third, err := NewFraction(1, 3)
	require.NoError(t, err)

	out, err := findFunc(t, "plus").Call([]interface{}{half, third})
	require.NoError(t, err)
	assert.Equal(t, "5/6", out.(kmath.Fraction).String())

	out, err = findFunc(t, "minus").Call([]interface{}{half, half})
	require.NoError(t, err)
	assert.Equal(t, "0/1", out.(kmath.Fraction).String())

	out, err = findFunc(t, "div").Call([]interface{}{half, third})
	require.NoError(t, err)
	assert.Equal(t, "3/2", out.(kmath.Fraction).String())

	_, err = findFunc(t, "div").Call([]interface{}{half, kmath.FromInt(0)})
	assert.ErrorIs(t, err, kmath.ErrDivisionByZero)

	out, err = findFunc(t, "is_positive").Call([]interface{}{half.Neg()})
	require.NoError(t, err)
	assert.Equal(t, false, out)

	out, err = findFunc(t, "decimal").Call([]interface{}{third, int64(3)})
	require.NoError(t, err)
	assert.Equal(t, "0.333", out)

	_, err = findFunc(t, "decimal").Call([]interface{}{third, int64(-1)})
	assert.Error(t, err)

	out, err = findFunc(t, "new").Call([]interface{}{int64(6), int64(-4)})
	require.NoError(t, err)
	assert.Equal(t, "-3/2", out.(kmath.Fraction).String())
}

func TestCoerce(t *testing.T) {
	v, err := Coerce(KindInt, float64(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	v, err = Coerce(KindFraction, int64(-2))
	require.NoError(t, err)
	assert.Equal(t, kmath.FromInt(-2), v)

	_, err = Coerce(KindInt, 2.5)
	assert.True(t, errors.Is(err, ErrArgument))

	_, err = Coerce(KindFraction, "1/2")
	assert.True(t, errors.Is(err, ErrArgument))
	assert.Contains(t, err.Error(), "expected Fraction, got string")

	_, err = Coerce(KindInt, kmath.FromInt(1))
	assert.Contains(t, err.Error(), "expected int, got Fraction")

	_, err = Coerce(KindBool, nil)
	assert.Contains(t, err.Error(), "got nothing")
}

func TestResult_Render(t *testing.T) {
	half, err := NewFraction(1, 2)
	require.NoError(t, err)

	text, err := Custom("Fraction", half).Render()
	require.NoError(t, err)
	assert.Equal(t, "1/2", text)

	text, err = Value("42").Render()
	require.NoError(t, err)
	assert.Equal(t, "42", text)

	text, err = None().Render()
	require.NoError(t, err)
	assert.Empty(t, text)

	_, err = Custom("time.Time", time.Unix(0, 0).UTC()).Render()
	var unrecognized *UnrecognizedTypeError
	require.True(t, errors.As(err, &unrecognized))
	assert.Equal(t, "time.Time", unrecognized.TypeName)
	assert.Contains(t, err.Error(), "unrecognized type time.Time")
}

func TestEvaluationError(t *testing.T) {
	err := error(&EvaluationError{Source: "div(x, y)", Err: kmath.ErrDivisionByZero})
	assert.Equal(t, "division by zero", err.Error())
	assert.True(t, errors.Is(err, kmath.ErrDivisionByZero))
}
