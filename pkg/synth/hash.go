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
package synth

// FNV-1a constants, used to build composite memo-table keys out of
// contexts, step counts and types.  Mirrors the scheme used throughout
// pkg/term and pkg/util/collection/hash.
const (
	hashOffset uint64 = 14695981039346656037
	hashPrime  uint64 = 1099511628211
)

func combine(acc, child uint64) uint64 {
	acc ^= child
	acc *= hashPrime

	return acc
}

func hashUint(n uint) uint64 {
	return combine(hashOffset, uint64(n))
}
