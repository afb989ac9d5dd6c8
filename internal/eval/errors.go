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

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

const maxDecimalPlaces = 1000

var errDecimalPlaces = errors.Errorf("decimal places must be between 0 and %d", maxDecimalPlaces)

// EvaluationError reports a line that could not be evaluated: a syntax
// error, an undefined name or a failing call.
type EvaluationError struct {
	Source string
	Err    error
}

func (e *EvaluationError) Error() string {
	return e.Err.Error()
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// UnrecognizedTypeError reports a custom result whose type is not in the
// capability table.
type UnrecognizedTypeError struct {
	TypeName string
	Value    interface{}
}

func (e *UnrecognizedTypeError) Error() string {
	return fmt.Sprintf("unrecognized type %s, value <%s>", e.TypeName, spew.Sprintf("%+v", e.Value))
}
