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

import "github.com/carlosgmartin/razor/pkg/util/collection/hash"

// Enumeration and reduction build an enormous number of structurally
// duplicate terms and types (every use of a bound variable, every recursive
// unfolding of iter).  Interning collapses these back down to a single
// representative, so that downstream memo tables keyed by Term or Type can
// rely on cheap, already-computed hashcodes rather than re-walking terms on
// every lookup.
var (
	typeTable = hash.NewMap[Type, Type](0)
	termTable = hash.NewMap[Term, Term](0)
)

// internType returns the canonical representative of a freshly constructed
// type, inserting it if this is the first time it has been seen.
func internType(t Type) Type {
	if existing, ok := typeTable.Get(t); ok {
		return existing
	}

	typeTable.Insert(t, t)

	return t
}

// internTerm returns the canonical representative of a freshly constructed
// term, inserting it if this is the first time it has been seen.
func internTerm(t Term) Term {
	if existing, ok := termTable.Get(t); ok {
		return existing
	}

	termTable.Insert(t, t)

	return t
}

// ResetCaches discards every memo table maintained by this package,
// including the interning tables and the normalization, lift and
// substitution memos.  Intended for use between independent synthesis runs,
// so that memory does not grow without bound across a long-lived process.
func ResetCaches() {
	typeTable = hash.NewMap[Type, Type](0)
	termTable = hash.NewMap[Term, Term](0)
	liftMemo = hash.NewMap[liftKey, Term](0)
	substMemo = hash.NewMap[substKey, Term](0)
	normalizeMemo = hash.NewMap[Term, Term](0)
}
