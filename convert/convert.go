/**
 * Copyright 2024 a002845 authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License"): you may
 * not use this file except in compliance with the License. You may obtain
 * a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations
 * under the License.
 */

// Package convert is the testing-only conversion surface between
// tower.Int and a conventional arbitrary-precision integer (math/big)
// or an invariant decimal string. It is only meaningful for values that
// actually fit into a big.Int — tower-sized values never will, and that
// is by design (§1 Non-goals).
package convert

import (
	"math"
	"math/big"

	"github.com/l0vest0rm/a002845/internal/towererr"
	"github.com/l0vest0rm/a002845/tower"
)

// ToBigInt converts x to a *big.Int. It fails with
// towererr.TooLargeForBigInt the moment some position's own numeric
// value does not fit in a signed 32-bit integer, without ever
// materializing x bit by bit.
func ToBigInt(x tower.Int) (*big.Int, error) {
	if x.IsSmall() {
		return new(big.Int).SetUint64(x.Word()), nil
	}
	sum := new(big.Int)
	for _, p := range x.Positions() {
		bit, err := positionBit(p)
		if err != nil {
			return nil, err
		}
		term := new(big.Int).Lsh(big.NewInt(1), uint(bit))
		sum.Add(sum, term)
	}
	return sum, nil
}

// positionBit returns a position's value as a non-negative int usable as
// a shift count, failing with TooLargeForBigInt if the position itself
// is not representable in 32 bits.
func positionBit(p tower.Int) (int32, error) {
	if !p.IsSmall() || p.Word() > math.MaxInt32 {
		return 0, towererr.TooLargeForBigInt
	}
	return int32(p.Word()), nil
}

// FromBigInt converts a non-negative *big.Int to a tower.Int. It fails
// with towererr.NegativeValue for a negative input. It walks b one bit at
// a time, shifting a copy right by one on each of b.BitLen() steps, so its
// cost grows quadratically with b.BitLen(); that is acceptable only
// because this surface exists for testing and debugging with
// ordinarily-sized integers, never tower-sized ones.
func FromBigInt(b *big.Int) (tower.Int, error) {
	if b.Sign() < 0 {
		return tower.Int{}, towererr.NegativeValue
	}
	if b.IsUint64() {
		return tower.FromUint64(b.Uint64()), nil
	}
	var pos []tower.Int
	tmp := new(big.Int).Set(b)
	for bit := 0; tmp.Sign() != 0; bit++ {
		if tmp.Bit(0) == 1 {
			pos = append(pos, tower.FromUint64(uint64(bit)))
		}
		tmp.Rsh(tmp, 1)
	}
	return tower.FromPositions(pos), nil
}

// String formats x using an invariant, culture-independent decimal
// representation. It fails the same way ToBigInt does when x cannot be
// represented as a big.Int.
func String(x tower.Int) (string, error) {
	b, err := ToBigInt(x)
	if err != nil {
		return "", err
	}
	return b.Text(10), nil
}

// ParseDecimal parses a non-negative decimal integer literal into a
// tower.Int. It fails with towererr.ParseError if s is not such a
// literal.
func ParseDecimal(s string) (tower.Int, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return tower.Int{}, towererr.ParseError
	}
	return FromBigInt(b)
}
