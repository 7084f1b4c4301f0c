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

// Package towererr holds the sentinel errors shared by every component of
// the tower-integer core, so a caller can test the kind of a failure with
// errors.Is regardless of which package raised it.
package towererr

import "github.com/pkg/errors"

var (
	// InvalidIndex is returned when a(n) is requested for n <= 0.
	InvalidIndex = errors.New("a002845: n must be >= 1")

	// NotPowerOfTwo is returned by Log2 or Power when the operand is not an
	// exact power of two.
	NotPowerOfTwo = errors.New("a002845: value is not an exact power of two")

	// DuplicateInsert signals a broken sorted-sequence invariant. It must
	// never reach a caller outside this module; every site that can
	// observe it treats it as fatal.
	DuplicateInsert = errors.New("a002845: duplicate insert into sorted sequence")

	// TooLargeForBigInt is returned when converting a SparseInteger whose
	// positions exceed what a conventional big integer can address.
	TooLargeForBigInt = errors.New("a002845: value too large to convert to big.Int")

	// NegativeValue is returned when converting a negative big.Int into a
	// SparseInteger.
	NegativeValue = errors.New("a002845: value is negative")

	// ParseError is returned when a decimal string is not a non-negative
	// integer literal.
	ParseError = errors.New("a002845: not a valid non-negative decimal integer")
)
