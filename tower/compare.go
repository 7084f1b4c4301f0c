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

// Compare returns a negative number if a < b, zero if a == b, and a
// positive number if a > b. Small values compare by word; a Small value
// is always strictly less than any Large value, since the construction
// funnel guarantees a Large value exceeds 2^64-1. Two Large values
// compare from the highest position downward: the first differing
// position decides, and if one sequence is a suffix of the other (a
// common high run) the longer sequence — more high bits — is greater.
func Compare(a, b Int) int {
	if !a.large && !b.large {
		switch {
		case a.word < b.word:
			return -1
		case a.word > b.word:
			return 1
		default:
			return 0
		}
	}
	if a.large != b.large {
		if a.large {
			return 1
		}
		return -1
	}
	if samePositions(a.pos, b.pos) {
		return 0
	}
	i, j := len(a.pos)-1, len(b.pos)-1
	for i >= 0 && j >= 0 {
		if c := Compare(a.pos[i], b.pos[j]); c != 0 {
			return c
		}
		i--
		j--
	}
	switch {
	case i > j:
		return 1
	case i < j:
		return -1
	default:
		return 0
	}
}

// samePositions reports whether a and b are backed by the same
// underlying array, the fast path for comparing a value against itself
// or a value sharing positions with it.
func samePositions(a, b []Int) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

// CompareWord compares x against the unsigned word w, equivalent to
// Compare(x, FromUint64(w)).
func CompareWord(x Int, w uint64) int {
	return Compare(x, Int{word: w})
}

// Equal reports whether a and b denote the same numeric value.
func Equal(a, b Int) bool {
	return Compare(a, b) == 0
}

// Less reports whether a < b.
func Less(a, b Int) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a <= b.
func LessOrEqual(a, b Int) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a > b.
func Greater(a, b Int) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual(a, b Int) bool {
	return Compare(a, b) >= 0
}
