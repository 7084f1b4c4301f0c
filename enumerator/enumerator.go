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

// Package enumerator computes A002845: for each size n, the set of
// distinct SparseInteger values of 2^2^…^2 over all bracketings using n
// twos, and a(n), its cardinality. Every candidate expression of size n
// splits uniquely into a left (base) subexpression of size i and a right
// (exponent) subexpression of size n-i; all bases produced this way are
// themselves exact powers of two, so tower.Power's precondition holds
// inductively from the size-1 seed {2}.
package enumerator

import (
	"github.com/l0vest0rm/a002845/internal/diag"
	"github.com/l0vest0rm/a002845/internal/towererr"
	"github.com/l0vest0rm/a002845/tower"
)

// Enumerator owns the size -> value-set cache. It is not thread-safe and
// holds no global state: each instance has its own cache, and the cache
// lives for the instance's lifetime.
type Enumerator struct {
	cache map[int][]tower.Int
}

// New returns an Enumerator with its cache seeded with size 1 -> {2}.
func New() *Enumerator {
	e := &Enumerator{cache: make(map[int][]tower.Int)}
	e.cache[1] = []tower.Int{tower.FromUint64(2)}
	return e
}

// ValuesOfSize returns the set of distinct values of size-n expressions,
// computing and caching it on first request. It fails with
// towererr.InvalidIndex for n <= 0.
func (e *Enumerator) ValuesOfSize(n int) ([]tower.Int, error) {
	if n < 1 {
		return nil, towererr.InvalidIndex
	}
	if v, ok := e.cache[n]; ok {
		return v, nil
	}

	set := newValueSet(estimateSize(n))
	for i := 1; i < n; i++ {
		bases, err := e.ValuesOfSize(i)
		if err != nil {
			return nil, err
		}
		exps, err := e.ValuesOfSize(n - i)
		if err != nil {
			return nil, err
		}
		for _, base := range bases {
			for _, exp := range exps {
				val, err := tower.Power(base, exp)
				if err != nil {
					// Every base reachable here descends from the {2}
					// seed through Power itself, so it is always an
					// exact power of two; NotPowerOfTwo here means a
					// canonicalization invariant broke upstream.
					diag.Fatal(err, "enumerator: base was not an exact power of two")
				}
				set.Add(val)
			}
		}
	}

	values := set.Values()
	e.cache[n] = values
	return values, nil
}

// A returns a(n), the cardinality of ValuesOfSize(n).
func (e *Enumerator) A(n int) (int, error) {
	v, err := e.ValuesOfSize(n)
	if err != nil {
		return 0, err
	}
	return len(v), nil
}

// estimateSize gives the value set a starting capacity hint. It is a
// cheap heuristic, not a bound: the set itself grows as needed.
func estimateSize(n int) int {
	if n <= 1 {
		return 1
	}
	return n * n
}

// Sequence is a restartable, lazy cursor over a(1), a(2), … backed by the
// owning Enumerator's cache: two Sequences from the same Enumerator never
// redo each other's work.
type Sequence struct {
	e *Enumerator
	n int
}

// Sequence returns a cursor positioned just before a(1).
func (e *Enumerator) Sequence() *Sequence {
	return &Sequence{e: e}
}

// Next advances the cursor and returns the next term.
func (s *Sequence) Next() (int, error) {
	s.n++
	return s.e.A(s.n)
}
