// Copyright 2026 Carlos Martin.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package term

// FNV-1a constants, used throughout this package to combine the cached
// hashcodes of subterms into the hashcode of their parent.  Mirrors the
// scheme used by pkg/util/collection/hash.Array.
const (
	hashOffset uint64 = 14695981039346656037
	hashPrime  uint64 = 1099511628211
)

// hashString computes an FNV-1a hash of a string.
func hashString(s string) uint64 {
	h := hashOffset
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= hashPrime
	}

	return h
}

// hashUint folds a small integer into the hash space.
func hashUint(n uint) uint64 {
	h := hashOffset
	h ^= uint64(n)
	h *= hashPrime

	return h
}

// combine folds a child hashcode into an accumulator, in the same style as
// Array.Hash() in pkg/util/collection/hash.
func combine(acc, child uint64) uint64 {
	acc ^= child
	acc *= hashPrime

	return acc
}

// Tags distinguish the various term and type constructors when seeding their
// hashcodes, so that e.g. a variable and a constant never collide purely
// because they happen to hash the same underlying string or index.
const (
	tagBase uint64 = iota + 1
	tagArrow
	tagConst
	tagVar
	tagAbs
	tagApp
)
