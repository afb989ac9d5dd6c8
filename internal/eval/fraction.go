/*
 *  Copyright 2020 KardiaChain
 *  This file is part of the go-kardia library.
 *
 *  The go-kardia library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The go-kardia library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 *  GNU Lesser General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with the go-kardia library. If not, see <http://www.gnu.org/licenses/>.
 */

package eval

import (
	"math/big"
	"reflect"

	kmath "github.com/kardiachain/fracsh/lib/math"
)

const fractionTypeName = "Fraction"

// NewFraction is the script constructor frac(a, b). A negative denominator
// moves its sign to the numerator, so frac(1, -2) is -1/2. A zero
// denominator is always rejected with kmath.ErrDivisionByZero.
func NewFraction(a, b int64) (kmath.Fraction, error) {
	if b == 0 {
		return kmath.Fraction{}, kmath.ErrDivisionByZero
	}
	if b < 0 {
		// -a and -b overflow int64 at the minimum value
		num := new(big.Int).Neg(big.NewInt(a))
		den := new(big.Int).Neg(big.NewInt(b))
		return kmath.NewBig(num, den)
	}
	return kmath.New(a, uint64(b))
}

func fractionType() *Type {
	construct := func(args []interface{}) (interface{}, error) {
		return NewFraction(args[0].(int64), args[1].(int64))
	}
	return &Type{
		Name:   fractionTypeName,
		GoType: reflect.TypeOf(kmath.Fraction{}),
		Constructor: Func{
			Name:   "frac",
			Doc:    "frac(a, b) builds the fraction a/b in lowest terms",
			Params: []Kind{KindInt, KindInt},
			Result: KindFraction,
			Call:   construct,
		},
		Display: func(v interface{}) string {
			return v.(kmath.Fraction).String()
		},
		Funcs: []Func{
			{
				Name:   "new",
				Doc:    "new(a, b) is the same as frac(a, b)",
				Params: []Kind{KindInt, KindInt},
				Result: KindFraction,
				Call:   construct,
			},
			binary("plus", "plus(x, y) returns x + y", kmath.Fraction.Add),
			binary("minus", "minus(x, y) returns x - y", kmath.Fraction.Sub),
			binary("mul", "mul(x, y) returns x * y", kmath.Fraction.Mul),
			binary("div", "div(x, y) returns x / y", kmath.Fraction.Div),
			{
				Name:   "neg",
				Doc:    "neg(x) returns -x",
				Params: []Kind{KindFraction},
				Result: KindFraction,
				Call: func(args []interface{}) (interface{}, error) {
					return args[0].(kmath.Fraction).Neg(), nil
				},
			},
			{
				Name:   "reciprocal",
				Doc:    "reciprocal(x) returns 1/x",
				Params: []Kind{KindFraction},
				Result: KindFraction,
				Call: func(args []interface{}) (interface{}, error) {
					return args[0].(kmath.Fraction).Reciprocal()
				},
			},
			{
				Name:   "is_positive",
				Doc:    "is_positive(x) reports whether x >= 0",
				Params: []Kind{KindFraction},
				Result: KindBool,
				Call: func(args []interface{}) (interface{}, error) {
					return args[0].(kmath.Fraction).IsPositive(), nil
				},
			},
			{
				Name:   "decimal",
				Doc:    "decimal(x, places) renders x with the given number of decimal places",
				Params: []Kind{KindFraction, KindInt},
				Result: KindString,
				Call: func(args []interface{}) (interface{}, error) {
					places := args[1].(int64)
					if places < 0 || places > maxDecimalPlaces {
						return nil, errDecimalPlaces
					}
					return args[0].(kmath.Fraction).Decimal(int32(places)), nil
				},
			},
		},
	}
}

func binary(name, doc string, op func(kmath.Fraction, kmath.Operand) (kmath.Fraction, error)) Func {
	return Func{
		Name:   name,
		Doc:    doc,
		Params: []Kind{KindFraction, KindFraction},
		Result: KindFraction,
		Call: func(args []interface{}) (interface{}, error) {
			return op(args[0].(kmath.Fraction), args[1].(kmath.Fraction))
		},
	}
}
