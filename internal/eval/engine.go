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

// Package eval holds what the evaluators and the console share: the
// capability table of host types exposed to scripts, the result of one
// evaluation and the errors reported back to the user.
package eval

// Engine evaluates one line of script at a time against a variable scope
// that lives as long as the engine.
type Engine interface {
	// Name identifies the script dialect, e.g. "js" or "cel".
	Name() string

	// Eval runs line and classifies what it produced. Failures are
	// returned as *EvaluationError.
	Eval(line string) (Result, error)
}
