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

package tower

import (
	"math"
	"math/bits"

	"github.com/l0vest0rm/a002845/internal/towererr"
	"github.com/l0vest0rm/a002845/sortedset"
)

// PlusOne returns x + 1. A Small value below the 64-bit maximum is
// incremented in place (conceptually — Int is immutable, so a new value
// is returned); at the maximum it escalates to Large{64}, i.e. 2^64. A
// Large value either sets its (absent) bit 0 directly, or — if bit 0 is
// already set — cascades: bit 0 is removed and the carry Exp2(PlusOne(0)),
// i.e. 2, is added back via Add, whose own carry handling moves the 1-bit
// up to the lowest clear bit; this is well founded because the carry's
// 1-bit strictly increases in position each step.
func PlusOne(x Int) Int {
	if !x.large {
		if x.word != math.MaxUint64 {
			return Int{word: x.word + 1}
		}
		return newLarge([]Int{{word: 64}})
	}
	zero := Int{}
	rest, present := sortedset.Remove(x.pos, zero, Compare)
	if !present {
		return newLarge(mustInsertUnique(rest, zero))
	}
	carry := Exp2(PlusOne(zero))
	return Add(newLarge(rest), carry)
}

// Add returns x + y.
func Add(x, y Int) Int {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	if !x.large && !y.large {
		sum := x.word + y.word
		if sum >= x.word { // no overflow: unsigned wraparound would make sum < x.word
			return Int{word: sum}
		}
	}
	xs, ys := x.Positions(), y.Positions()
	if len(ys) > len(xs) {
		xs, ys = ys, xs
	}
	for _, q := range ys {
		rest, present := sortedset.Remove(xs, q, Compare)
		if !present {
			xs = mustInsertUnique(rest, q)
			continue
		}
		// Carry: the bit at q is already set in xs, so folding y's bit in
		// here overflows into the next position. The new accumulator is
		// Large(xs without q) + Exp2(PlusOne(q)); recursion terminates
		// because the carry's bit position strictly increases each time.
		carry := Exp2(PlusOne(q))
		xs = Add(newLarge(rest), carry).Positions()
	}
	return newLarge(xs)
}

// Mul returns x * y.
func Mul(x, y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	if x.isOne() {
		return y
	}
	if y.isOne() {
		return x
	}
	if !x.large && !y.large {
		hi, lo := bits.Mul64(x.word, y.word)
		if hi == 0 {
			return Int{word: lo}
		}
	}
	acc := Int{}
	for _, q := range y.Positions() {
		acc = Add(acc, MulByExp2(x, q))
	}
	return acc
}

// Exp2 returns 2^x.
func Exp2(x Int) Int {
	if !x.large && x.word < 64 {
		return Int{word: uint64(1) << x.word}
	}
	return newLarge([]Int{x})
}

// Log2 returns k such that x == Exp2(k). It fails with
// towererr.NotPowerOfTwo if x is not an exact power of two.
func Log2(x Int) (Int, error) {
	if !x.large {
		if x.word != 0 && x.word&(x.word-1) == 0 {
			return Int{word: uint64(bits.TrailingZeros64(x.word))}, nil
		}
		return Int{}, towererr.NotPowerOfTwo
	}
	if len(x.pos) != 1 {
		return Int{}, towererr.NotPowerOfTwo
	}
	return x.pos[0], nil
}

// MulByExp2 returns x * 2^k.
func MulByExp2(x, k Int) Int {
	if x.IsZero() || k.IsZero() {
		return x
	}
	if !x.large && !k.large && k.word < 63 {
		shifted := x.word << k.word
		if shifted>>k.word == x.word {
			return Int{word: shifted}
		}
	}
	pos := x.Positions()
	out := make([]Int, len(pos))
	for i, p := range pos {
		// Addition of the same k is strictly monotone and injective, so
		// out stays strictly sorted without needing to re-sort.
		out[i] = Add(p, k)
	}
	return newLarge(out)
}

// Power returns base^exp. base must be an exact power of two; otherwise
// it fails with towererr.NotPowerOfTwo.
func Power(base, exp Int) (Int, error) {
	l, err := Log2(base)
	if err != nil {
		return Int{}, err
	}
	return Exp2(Mul(l, exp)), nil
}
