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

// Package celre evaluates console lines as CEL expressions. A line holds one
// or more statements separated by ';'. A statement is a bare expression,
// "let name = expr" or "name = expr".
package celre

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/kardiachain/fracsh/internal/eval"
	"github.com/kardiachain/fracsh/lib/log"
)

const (
	Name = "cel"

	DefaultCacheSize = 128
)

var (
	errUndefinedVariable = errors.New("undefined variable")
	errReservedName      = errors.New("name is reserved")
)

// keywords are reserved by the CEL grammar. The type identifiers resolve to
// type values in every environment and cannot be shadowed by a variable.
var keywords = []string{
	"true", "false", "null", "in", "as", "break", "const", "continue", "else",
	"for", "function", "if", "import", "let", "loop", "package", "namespace",
	"return", "var", "void", "while",
	"int", "uint", "double", "bool", "string", "bytes", "list", "map", "type",
	"dyn", "null_type",
}

// CELRE holds a base environment with the capability table declared and the
// variables bound so far.
type CELRE struct {
	mu       sync.Mutex
	env      *cel.Env
	vars     map[string]ref.Val
	reserved mapset.Set
	programs *lru.Cache
	logger   log.Logger
}

// New builds the base environment. cacheSize bounds the number of compiled
// programs kept between lines.
func New(cacheSize int, logger log.Logger) (*CELRE, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	programs, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	reserved := mapset.NewSet()
	for _, kw := range keywords {
		reserved.Add(kw)
	}
	opts := []cel.EnvOption{cel.Types(FractionType)}
	for _, fn := range eval.Funcs() {
		reserved.Add(fn.Name)
		opt, err := declare(fn)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "cel environment")
	}
	re := &CELRE{
		env:      env,
		vars:     make(map[string]ref.Val),
		reserved: reserved,
		programs: programs,
		logger:   logger.New("engine", Name),
	}
	re.logger.Debug("CEL environment ready", "functions", len(eval.Funcs()), "cache", cacheSize)
	return re, nil
}

func (re *CELRE) Name() string { return Name }

// Eval runs every statement of line in order. Bindings made by statements
// before a failing one are kept.
func (re *CELRE) Eval(line string) (eval.Result, error) {
	re.mu.Lock()
	defer re.mu.Unlock()

	res := eval.None()
	for _, src := range splitStatements(line) {
		stmt, err := parseStatement(src)
		if err != nil {
			return eval.Result{}, &eval.EvaluationError{Source: line, Err: err}
		}
		if res, err = re.exec(stmt); err != nil {
			re.logger.Debug("Statement failed", "statement", src, "err", err)
			return eval.Result{}, &eval.EvaluationError{Source: line, Err: err}
		}
	}
	return res, nil
}

func (re *CELRE) exec(stmt statement) (eval.Result, error) {
	if stmt.name != "" {
		if re.reserved.Contains(stmt.name) {
			return eval.Result{}, errors.Wrap(errReservedName, stmt.name)
		}
		if _, ok := re.vars[stmt.name]; !ok && !stmt.declare {
			return eval.Result{}, errors.Wrap(errUndefinedVariable, stmt.name)
		}
	}
	out, err := re.run(stmt.expr)
	if err != nil {
		return eval.Result{}, err
	}
	if stmt.name != "" {
		if err := re.declarable(stmt.name, out); err != nil {
			return eval.Result{}, err
		}
		re.vars[stmt.name] = out
		return eval.None(), nil
	}
	return classify(out), nil
}

// declarable reports whether name can be declared with the type of v and
// then referenced on its own. A binding that would break every later compile
// is refused.
func (re *CELRE) declarable(name string, v ref.Val) error {
	env, err := re.env.Extend(cel.Variable(name, varType(v)))
	if err != nil {
		return errors.Wrap(errReservedName, name)
	}
	if _, iss := env.Compile(name); iss != nil && iss.Err() != nil {
		return errors.Wrap(errReservedName, name)
	}
	return nil
}

func (re *CELRE) run(expr string) (ref.Val, error) {
	prg, err := re.program(expr)
	if err != nil {
		return nil, err
	}
	activation := make(map[string]interface{}, len(re.vars))
	for name, v := range re.vars {
		activation[name] = v
	}
	out, _, err := prg.Eval(activation)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// program compiles expr against the current variable declarations. Programs
// are cached by source text and declarations.
func (re *CELRE) program(expr string) (cel.Program, error) {
	names := make([]string, 0, len(re.vars))
	for name := range re.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var key strings.Builder
	key.WriteString(expr)
	decls := make([]cel.EnvOption, 0, len(names))
	for _, name := range names {
		t := varType(re.vars[name])
		fmt.Fprintf(&key, "\x00%s:%s", name, t)
		decls = append(decls, cel.Variable(name, t))
	}
	if cached, ok := re.programs.Get(key.String()); ok {
		return cached.(cel.Program), nil
	}

	env, err := re.env.Extend(decls...)
	if err != nil {
		return nil, err
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, err
	}
	re.programs.Add(key.String(), prg)
	return prg, nil
}

func varType(v ref.Val) *cel.Type {
	if t, ok := v.Type().(*types.Type); ok {
		return t
	}
	return cel.DynType
}

func classify(out ref.Val) eval.Result {
	native := out.Value()
	if t, ok := eval.LookupValue(native); ok {
		return eval.Custom(t.Name, native)
	}
	if native != nil && reflect.TypeOf(native).Kind() == reflect.Struct {
		return eval.Custom(reflect.TypeOf(native).String(), native)
	}
	if s := out.ConvertToType(types.StringType); !types.IsError(s) {
		if text, ok := s.Value().(string); ok {
			return eval.Value(text)
		}
	}
	return eval.Value(fmt.Sprint(native))
}
