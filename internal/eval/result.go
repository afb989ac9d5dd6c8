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

// ResultKind tells the console what an evaluation produced.
type ResultKind int

const (
	// ResultNone means the line produced no value, e.g. a binding.
	ResultNone ResultKind = iota
	// ResultCustom carries a host value that should be rendered through
	// the capability table.
	ResultCustom
	// ResultValue carries a script value already rendered as text.
	ResultValue
)

// Result is the outcome of evaluating one line.
type Result struct {
	Kind ResultKind

	// TypeName and Value are set for ResultCustom.
	TypeName string
	Value    interface{}

	// Text is set for ResultValue.
	Text string
}

func None() Result {
	return Result{Kind: ResultNone}
}

func Custom(typeName string, v interface{}) Result {
	return Result{Kind: ResultCustom, TypeName: typeName, Value: v}
}

func Value(text string) Result {
	return Result{Kind: ResultValue, Text: text}
}

// Render returns the text to print for r. It returns an
// *UnrecognizedTypeError for custom values that are not in the
// capability table.
func (r Result) Render() (string, error) {
	switch r.Kind {
	case ResultCustom:
		t, ok := Lookup(r.TypeName)
		if !ok {
			return "", &UnrecognizedTypeError{TypeName: r.TypeName, Value: r.Value}
		}
		return t.Display(r.Value), nil
	case ResultValue:
		return r.Text, nil
	}
	return "", nil
}
