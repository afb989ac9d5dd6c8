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

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrNegativeDenominator = errors.New("denominator is negative")
)

// Fraction is an exact rational number kept in lowest terms. The sign lives
// on the numerator only and the denominator is always positive.
//
// Both parts are held in 256-bit words and their magnitudes never exceed
// 2^255-1, so Neg and Reciprocal of a valid value cannot overflow.
//
// The denominator is stored biased by one, which makes the zero value valid
// and equal to 0/1. Fraction has value semantics: it can be copied freely and
// two valid values can be compared with == and !=.
type Fraction struct {
	// numerator in two's complement
	num uint256.Int
	// denominator minus one
	den uint256.Int
}

// New creates a fraction equal to numerator/denominator, reduced to lowest
// terms. It returns ErrDivisionByZero if the denominator is zero.
func New(numerator int64, denominator uint64) (Fraction, error) {
	var den uint256.Int
	den.SetUint64(denominator)
	mag := magnitude64(numerator)
	return makeFraction(numerator < 0, &mag, &den)
}

// NewBig is like New for wide values. The denominator must be positive and
// both magnitudes must fit in 255 bits.
func NewBig(numerator, denominator *big.Int) (Fraction, error) {
	switch denominator.Sign() {
	case 0:
		return Fraction{}, ErrDivisionByZero
	case -1:
		return Fraction{}, ErrNegativeDenominator
	}
	mag, overflow := uint256.FromBig(new(big.Int).Abs(numerator))
	if overflow {
		return Fraction{}, ErrOverflow
	}
	den, overflow := uint256.FromBig(denominator)
	if overflow {
		return Fraction{}, ErrOverflow
	}
	return makeFraction(numerator.Sign() < 0, mag, den)
}

// FromInt converts a plain integer to v/1. No reduction is needed.
func FromInt(v int64) Fraction {
	var f Fraction
	mag := magnitude64(v)
	if v < 0 {
		f.num.Neg(&mag)
	} else {
		f.num = mag
	}
	return f
}

// makeFraction divides mag/den by their gcd and packs the result.
func makeFraction(neg bool, mag, den *uint256.Int) (Fraction, error) {
	if den.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	g := gcd(*mag, *den)
	var m, d uint256.Int
	m.Div(mag, &g)
	d.Div(den, &g)
	if m.Gt(maxMagnitude) || d.Gt(maxMagnitude) {
		return Fraction{}, ErrOverflow
	}

	var f Fraction
	if neg && !m.IsZero() {
		f.num.Neg(&m)
	} else {
		f.num = m
	}
	f.den.Sub(&d, one)
	return f, nil
}

// magnitude returns |numerator| and whether the numerator is negative.
func (x Fraction) magnitude() (uint256.Int, bool) {
	var m uint256.Int
	if x.num.Sign() < 0 {
		m.Neg(&x.num)
		return m, true
	}
	return x.num, false
}

func (x Fraction) denominator() uint256.Int {
	var d uint256.Int
	d.Add(&x.den, one)
	return d
}

// Numerator returns a copy of the signed numerator.
func (x Fraction) Numerator() *big.Int {
	m, neg := x.magnitude()
	n := m.ToBig()
	if neg {
		n.Neg(n)
	}
	return n
}

// Denominator returns a copy of the denominator. It is always positive.
func (x Fraction) Denominator() *big.Int {
	d := x.denominator()
	return d.ToBig()
}

// IsZero reports whether x == 0/1.
func (x Fraction) IsZero() bool {
	return x.num.IsZero()
}

// IsPositive reports whether the numerator is not negative. Zero counts as
// positive.
func (x Fraction) IsPositive() bool {
	return x.num.Sign() >= 0
}

// Add returns x + y.
func (x Fraction) Add(y Operand) (Fraction, error) {
	z := y.fraction()
	a, aneg := x.magnitude()
	c, cneg := z.magnitude()
	b, d := x.denominator(), z.denominator()

	// (a/b) + (c/d) = (a*d + b*c) / (b*d)
	ad, err := safeMul(&a, &d)
	if err != nil {
		return Fraction{}, err
	}
	bc, err := safeMul(&b, &c)
	if err != nil {
		return Fraction{}, err
	}
	neg, num, err := safeAddSigned(aneg, &ad, cneg, &bc)
	if err != nil {
		return Fraction{}, err
	}
	den, err := safeMul(&b, &d)
	if err != nil {
		return Fraction{}, err
	}
	return makeFraction(neg, &num, &den)
}

// Sub returns x - y, computed as x + (-y).
func (x Fraction) Sub(y Operand) (Fraction, error) {
	return x.Add(y.fraction().Neg())
}

// Mul returns x * y.
func (x Fraction) Mul(y Operand) (Fraction, error) {
	z := y.fraction()
	a, aneg := x.magnitude()
	c, cneg := z.magnitude()
	b, d := x.denominator(), z.denominator()

	// (a/b) * (c/d) = (a*c) / (b*d)
	num, err := safeMul(&a, &c)
	if err != nil {
		return Fraction{}, err
	}
	den, err := safeMul(&b, &d)
	if err != nil {
		return Fraction{}, err
	}
	return makeFraction(aneg != cneg, &num, &den)
}

// Div returns x / y, computed as x * (1/y). Dividing by zero returns
// ErrDivisionByZero.
func (x Fraction) Div(y Operand) (Fraction, error) {
	r, err := y.fraction().Reciprocal()
	if err != nil {
		return Fraction{}, err
	}
	return x.Mul(r)
}

// Neg returns -x. Only the numerator changes sign.
func (x Fraction) Neg() Fraction {
	if x.IsZero() {
		return x
	}
	f := x
	f.num.Neg(&x.num)
	return f
}

// Reciprocal returns 1/x, keeping the sign on the numerator: -2/3 becomes
// -3/2. The reciprocal of zero is ErrDivisionByZero.
func (x Fraction) Reciprocal() (Fraction, error) {
	if x.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	m, neg := x.magnitude()
	d := x.denominator()
	return makeFraction(neg, &d, &m)
}

// Decimal renders x rounded half away from zero to the given number of
// fractional digits. Negative places are treated as zero.
func (x Fraction) Decimal(places int32) string {
	if places < 0 {
		places = 0
	}
	num := decimal.NewFromBigInt(x.Numerator(), 0)
	den := decimal.NewFromBigInt(x.Denominator(), 0)
	return num.DivRound(den, places).StringFixed(places)
}

// String renders x as "numerator/denominator", e.g. 2/3, -1/2 or 5/1.
func (x Fraction) String() string {
	return x.Numerator().String() + "/" + x.Denominator().String()
}
