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

package celre

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/kardiachain/fracsh/internal/eval"
	kmath "github.com/kardiachain/fracsh/lib/math"
)

// FractionType is the CEL type of fraction values.
var FractionType = cel.OpaqueType("Fraction")

// fractionVal carries a kmath.Fraction through CEL programs.
type fractionVal struct {
	f kmath.Fraction
}

func (v fractionVal) ConvertToNative(typeDesc reflect.Type) (interface{}, error) {
	if reflect.TypeOf(v.f).AssignableTo(typeDesc) {
		return v.f, nil
	}
	return nil, fmt.Errorf("type conversion error from Fraction to '%v'", typeDesc)
}

func (v fractionVal) ConvertToType(typeVal ref.Type) ref.Val {
	switch typeVal.TypeName() {
	case FractionType.TypeName():
		return v
	case types.StringType.TypeName():
		return types.String(v.f.String())
	case types.TypeType.TypeName():
		return FractionType
	}
	return types.NewErr("type conversion error from 'Fraction' to '%s'", typeVal.TypeName())
}

func (v fractionVal) Equal(other ref.Val) ref.Val {
	o, ok := other.(fractionVal)
	if !ok {
		return types.False
	}
	return types.Bool(v.f == o.f)
}

func (v fractionVal) Type() ref.Type {
	return FractionType
}

func (v fractionVal) Value() interface{} {
	return v.f
}

// String renders the fraction when it is printed inside a list or map.
func (v fractionVal) String() string {
	return v.f.String()
}

func celType(k eval.Kind) *cel.Type {
	switch k {
	case eval.KindInt:
		return cel.IntType
	case eval.KindBool:
		return cel.BoolType
	case eval.KindString:
		return cel.StringType
	case eval.KindFraction:
		return FractionType
	}
	return cel.DynType
}

// declare turns a table function into a CEL function with a single typed
// overload, e.g. plus_fraction_fraction.
func declare(fn eval.Func) (cel.EnvOption, error) {
	params := make([]*cel.Type, len(fn.Params))
	id := []string{fn.Name}
	for i, k := range fn.Params {
		params[i] = celType(k)
		id = append(id, strings.ToLower(k.String()))
	}

	call := func(args ...ref.Val) ref.Val {
		native := make([]interface{}, len(args))
		for i, arg := range args {
			v, err := toNative(fn.Params[i], arg)
			if err != nil {
				return types.NewErr("%s: %v", fn.Name, err)
			}
			native[i] = v
		}
		out, err := fn.Call(native)
		if err != nil {
			return types.WrapErr(err)
		}
		return toVal(out)
	}

	var binding cel.OverloadOpt
	switch len(params) {
	case 1:
		binding = cel.UnaryBinding(func(arg ref.Val) ref.Val { return call(arg) })
	case 2:
		binding = cel.BinaryBinding(func(lhs, rhs ref.Val) ref.Val { return call(lhs, rhs) })
	default:
		binding = cel.FunctionBinding(call)
	}
	return cel.Function(fn.Name, cel.Overload(strings.Join(id, "_"), params, celType(fn.Result), binding)), nil
}

func toNative(k eval.Kind, v ref.Val) (interface{}, error) {
	switch k {
	case eval.KindInt:
		if n, ok := v.(types.Int); ok {
			return int64(n), nil
		}
	case eval.KindBool:
		if b, ok := v.(types.Bool); ok {
			return bool(b), nil
		}
	case eval.KindString:
		if s, ok := v.(types.String); ok {
			return string(s), nil
		}
	case eval.KindFraction:
		if f, ok := v.(fractionVal); ok {
			return f.f, nil
		}
	}
	return eval.Coerce(k, v.Value())
}

func toVal(v interface{}) ref.Val {
	switch v := v.(type) {
	case kmath.Fraction:
		return fractionVal{f: v}
	case bool:
		return types.Bool(v)
	case string:
		return types.String(v)
	case int64:
		return types.Int(v)
	}
	return types.NewErr("unsupported result %T", v)
}
