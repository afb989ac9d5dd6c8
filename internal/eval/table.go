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
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	kmath "github.com/kardiachain/fracsh/lib/math"
)

// Kind is the type of a function parameter or result as seen by scripts.
type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindString
	KindFraction
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindFraction:
		return fractionTypeName
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Func is a named operation callable from scripts. Call receives its
// arguments already converted to the Go types of Params: int64, bool, string
// or kmath.Fraction.
type Func struct {
	Name   string
	Doc    string
	Params []Kind
	Result Kind
	Call   func(args []interface{}) (interface{}, error)
}

// Signature renders the function as "name(int, int) -> Fraction".
func (f Func) Signature() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("%s(%s) -> %s", f.Name, strings.Join(params, ", "), f.Result)
}

// Type is one entry of the capability table: a host type made available to
// scripts together with its constructor, display function and operations.
type Type struct {
	Name        string
	GoType      reflect.Type
	Constructor Func
	Display     func(v interface{}) string
	Funcs       []Func
}

type capabilities struct {
	types    []*Type
	byName   map[string]*Type
	byGoType map[reflect.Type]*Type
}

// table is built once at init and never modified afterwards.
var table = newCapabilities(fractionType())

func newCapabilities(types ...*Type) *capabilities {
	c := &capabilities{
		byName:   make(map[string]*Type),
		byGoType: make(map[reflect.Type]*Type),
	}
	for _, t := range types {
		c.types = append(c.types, t)
		c.byName[t.Name] = t
		c.byGoType[t.GoType] = t
	}
	return c
}

// Lookup returns the registered type called name.
func Lookup(name string) (*Type, bool) {
	t, ok := table.byName[name]
	return t, ok
}

// LookupValue returns the registered type of the Go value v.
func LookupValue(v interface{}) (*Type, bool) {
	if v == nil {
		return nil, false
	}
	t, ok := table.byGoType[reflect.TypeOf(v)]
	return t, ok
}

// Funcs returns every callable function, constructors first.
func Funcs() []Func {
	var funcs []Func
	for _, t := range table.types {
		funcs = append(funcs, t.Constructor)
		funcs = append(funcs, t.Funcs...)
	}
	return funcs
}

// ErrArgument is returned when a script passes a value of the wrong kind.
var ErrArgument = errors.New("invalid argument")

// Coerce converts a dynamically typed script value to the Go type of kind.
// Integers are accepted where a Fraction is expected and become n/1.
func Coerce(kind Kind, v interface{}) (interface{}, error) {
	switch kind {
	case KindInt:
		if n, ok := toInt64(v); ok {
			return n, nil
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindFraction:
		if f, ok := v.(kmath.Fraction); ok {
			return f, nil
		}
		if n, ok := toInt64(v); ok {
			return kmath.FromInt(n), nil
		}
	}
	return nil, errors.Wrapf(ErrArgument, "expected %s, got %s", kind, describe(v))
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		// JS numbers with an integral value
		if n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
			return int64(n), true
		}
	}
	return 0, false
}

func describe(v interface{}) string {
	if v == nil {
		return "nothing"
	}
	if t, ok := LookupValue(v); ok {
		return t.Name
	}
	return fmt.Sprintf("%T", v)
}
