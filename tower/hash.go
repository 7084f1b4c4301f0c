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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit digest of x suitable for deduplicating sets of
// SparseIntegers (the expression enumerator's value sets). For a Small
// value it hashes the stored word directly. For a Large value it folds
// the hashes of every position together in position order using a
// streaming xxhash.Digest — order-sensitive, since the positions
// sequence is itself canonical and commutativity is not required.
func (x Int) Hash() uint64 {
	var buf [8]byte
	if !x.large {
		binary.LittleEndian.PutUint64(buf[:], x.word)
		return xxhash.Sum64(buf[:])
	}
	d := xxhash.New()
	for _, p := range x.pos {
		binary.LittleEndian.PutUint64(buf[:], p.Hash())
		d.Write(buf[:]) //nolint:errcheck // hash.Hash64.Write never fails
	}
	return d.Sum64()
}
