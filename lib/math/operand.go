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

package math

// Operand is a value that can take part in Fraction arithmetic. It is
// implemented by Fraction and Int only; the conversion to Fraction happens
// once, when an arithmetic method receives the operand.
type Operand interface {
	fraction() Fraction
}

// Int is a plain integer operand, treated as v/1.
type Int int64

func (v Int) fraction() Fraction { return FromInt(int64(v)) }

func (x Fraction) fraction() Fraction { return x }
