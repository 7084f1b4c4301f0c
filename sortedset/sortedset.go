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

// Package sortedset holds the two pure operations the tower-integer carry
// machinery needs over a strictly sorted, duplicate-free sequence:
// Remove and InsertUnique. Neither mutates its input; whenever the result
// differs from the input it is a fresh sequence, so that a caller's
// existing slice (which may be shared by several SparseInteger values)
// stays valid.
package sortedset

import (
	"sort"

	"github.com/l0vest0rm/a002845/internal/towererr"
)

// Cmp orders two elements the way sort.Search expects: negative if a < b,
// zero if equal, positive if a > b.
type Cmp[T any] func(a, b T) int

// Remove returns a new sequence equal to a with one occurrence of x
// removed, and whether x was present. If x is absent, a is returned
// unchanged and present is false. O(log n) comparisons via binary search,
// O(n) element moves on a hit.
func Remove[T any](a []T, x T, cmp Cmp[T]) (out []T, present bool) {
	i := search(a, x, cmp)
	if i >= len(a) || cmp(a[i], x) != 0 {
		return a, false
	}
	out = make([]T, len(a)-1)
	copy(out, a[:i])
	copy(out[i:], a[i+1:])
	return out, true
}

// InsertUnique returns a new strictly sorted sequence containing a ∪ {x}.
// It fails with towererr.DuplicateInsert if x is already present — that
// signals a broken caller invariant and is never meant to surface to an
// end user.
func InsertUnique[T any](a []T, x T, cmp Cmp[T]) ([]T, error) {
	i := search(a, x, cmp)
	if i < len(a) && cmp(a[i], x) == 0 {
		return a, towererr.DuplicateInsert
	}
	out := make([]T, len(a)+1)
	copy(out, a[:i])
	out[i] = x
	copy(out[i+1:], a[i:])
	return out, nil
}

// search returns the index of the first element >= x, or len(a) if none.
func search[T any](a []T, x T, cmp Cmp[T]) int {
	return sort.Search(len(a), func(i int) bool { return cmp(a[i], x) >= 0 })
}
