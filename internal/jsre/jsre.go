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

// Package jsre evaluates console lines as JavaScript using goja. The
// functions of the capability table are installed as globals and top-level
// bindings persist between lines.
package jsre

import (
	"math/big"
	"reflect"
	"strings"
	"sync"

	"github.com/dop251/goja"
	"github.com/pkg/errors"

	"github.com/kardiachain/fracsh/internal/eval"
	"github.com/kardiachain/fracsh/lib/log"
)

const Name = "js"

// JSRE wraps a goja runtime. It is safe for concurrent use; lines are
// evaluated one at a time.
type JSRE struct {
	mu     sync.Mutex
	vm     *goja.Runtime
	logger log.Logger
}

// New creates a runtime with every function of the capability table bound.
func New(logger log.Logger) (*JSRE, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	re := &JSRE{
		vm:     goja.New(),
		logger: logger.New("engine", Name),
	}
	for _, fn := range eval.Funcs() {
		if err := re.install(fn); err != nil {
			return nil, err
		}
	}
	return re, nil
}

// install defines fn as a global. The name and length properties follow the
// table so that scripts see frac rather than the Go closure.
func (re *JSRE) install(fn eval.Func) error {
	obj, ok := re.vm.ToValue(re.bind(fn)).(*goja.Object)
	if !ok {
		return errors.Errorf("cannot install %s", fn.Name)
	}
	if err := obj.DefineDataProperty("name", re.vm.ToValue(fn.Name), goja.FLAG_FALSE, goja.FLAG_TRUE, goja.FLAG_FALSE); err != nil {
		return err
	}
	if err := obj.DefineDataProperty("length", re.vm.ToValue(len(fn.Params)), goja.FLAG_FALSE, goja.FLAG_TRUE, goja.FLAG_FALSE); err != nil {
		return err
	}
	return re.vm.Set(fn.Name, obj)
}

func (re *JSRE) Name() string { return Name }

// bind turns fn into a native JS function. Arguments are coerced at the
// call boundary and failures are thrown as JS exceptions.
func (re *JSRE) bind(fn eval.Func) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) != len(fn.Params) {
			panic(re.vm.NewTypeError("%s expects %d arguments, got %d", fn.Name, len(fn.Params), len(call.Arguments)))
		}
		args := make([]interface{}, len(fn.Params))
		for i, kind := range fn.Params {
			v, err := eval.Coerce(kind, call.Argument(i).Export())
			if err != nil {
				panic(re.vm.NewTypeError("%s: argument %d: %v", fn.Name, i+1, err))
			}
			args[i] = v
		}
		out, err := fn.Call(args)
		if err != nil {
			panic(re.vm.NewGoError(err))
		}
		return re.vm.ToValue(out)
	}
}

// Eval runs line in the global scope.
func (re *JSRE) Eval(line string) (eval.Result, error) {
	re.mu.Lock()
	defer re.mu.Unlock()

	v, err := re.vm.RunString(line)
	if err != nil {
		re.logger.Debug("Evaluation failed", "line", line, "err", err)
		return eval.Result{}, &eval.EvaluationError{Source: line, Err: unwrapException(err)}
	}
	return classify(v), nil
}

func classify(v goja.Value) eval.Result {
	if v == nil || goja.IsUndefined(v) {
		return eval.None()
	}
	exported := v.Export()
	if t, ok := eval.LookupValue(exported); ok {
		return eval.Custom(t.Name, exported)
	}
	if hostValue(exported) {
		return eval.Custom(reflect.TypeOf(exported).String(), exported)
	}
	return eval.Value(v.String())
}

// hostValue reports whether v is a Go value that only the capability table
// could render. Date objects export as time.Time and end up here.
func hostValue(v interface{}) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(*big.Int); ok {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Struct, reflect.Ptr:
		return true
	}
	return false
}

// syntaxErrorPrefix is repeated when a compile error is rethrown as a
// SyntaxError object whose message already carries the prefix.
const syntaxErrorPrefix = "SyntaxError: "

// unwrapException recovers the Go error behind a GoError thrown by a bound
// function and strips the stack from other exceptions.
func unwrapException(err error) error {
	ex, ok := err.(*goja.Exception)
	if !ok {
		return err
	}
	val := ex.Value()
	if val == nil {
		return err
	}
	obj, ok := val.(*goja.Object)
	if !ok {
		// throw 5
		return &exception{msg: val.String()}
	}
	if inner := obj.Get("value"); inner != nil {
		if goErr, ok := inner.Export().(error); ok {
			return goErr
		}
	}
	msg := obj.String()
	if strings.HasPrefix(msg, syntaxErrorPrefix+syntaxErrorPrefix) {
		msg = msg[len(syntaxErrorPrefix):]
	}
	return &exception{msg: msg}
}

type exception struct {
	msg string
}

func (e *exception) Error() string { return e.msg }
