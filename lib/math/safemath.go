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

	"github.com/holiman/uint256"
)

var ErrOverflow = errors.New("fraction overflow")

var (
	one = uint256.NewInt(1)

	// maxMagnitude is the largest magnitude a numerator or denominator may
	// hold, 2^255-1.
	maxMagnitude = new(uint256.Int).Rsh(new(uint256.Int).SetAllOne(), 1)
)

// magnitude64 returns |v| as a 256-bit word. It is exact for math.MinInt64.
func magnitude64(v int64) uint256.Int {
	var m uint256.Int
	if v < 0 {
		m.SetUint64(uint64(-(v + 1)) + 1)
	} else {
		m.SetUint64(uint64(v))
	}
	return m
}

// safeMul multiplies two magnitudes.
// If the product does not fit in 256 bits it returns ErrOverflow
func safeMul(x, y *uint256.Int) (uint256.Int, error) {
	var z uint256.Int
	if _, overflow := z.MulOverflow(x, y); overflow {
		return z, ErrOverflow
	}
	return z, nil
}

// safeAdd adds two magnitudes.
// If the sum does not fit in 256 bits it returns ErrOverflow
func safeAdd(x, y *uint256.Int) (uint256.Int, error) {
	var z uint256.Int
	if _, overflow := z.AddOverflow(x, y); overflow {
		return z, ErrOverflow
	}
	return z, nil
}

// safeAddSigned adds two sign-magnitude values and returns the sign and
// magnitude of the sum.
func safeAddSigned(xneg bool, x *uint256.Int, yneg bool, y *uint256.Int) (bool, uint256.Int, error) {
	if xneg == yneg {
		z, err := safeAdd(x, y)
		return xneg, z, err
	}
	var z uint256.Int
	if x.Lt(y) {
		z.Sub(y, x)
		return yneg, z, nil
	}
	z.Sub(x, y)
	return xneg && !z.IsZero(), z, nil
}

// gcd returns the greatest common divisor of a and b using the Euclidean
// algorithm: gcd(a, 0) = a, gcd(a, b) = gcd(b, a mod b).
func gcd(a, b uint256.Int) uint256.Int {
	for !b.IsZero() {
		var r uint256.Int
		r.Mod(&a, &b)
		a, b = b, r
	}
	return a
}
