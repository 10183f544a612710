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

// Package synth implements the typed term enumerator: the bottom-up,
// size-bounded search over well-typed terms of a context, together with
// its redundancy filter and inductive-equivalence congruence.
package synth

import (
	"fmt"
	"strings"

	"github.com/carlosgmartin/razor/pkg/term"
)

// Binding pairs a term with its type, the unit of currency throughout
// enumeration.
type Binding struct {
	Term term.Term
	Type term.Type
}

// Context is an ordered sequence of (term, type) pairs seeding enumeration
// at step 0.  It also implements hash.Hasher so it can be used directly as
// a memo-table key.
type Context []Binding

// Equals implements hash.Hasher.
func (c Context) Equals(other Context) bool {
	if len(c) != len(other) {
		return false
	}

	for i := range c {
		if !c[i].Term.Equals(other[i].Term) || !c[i].Type.Equals(other[i].Type) {
			return false
		}
	}

	return true
}

// Hash implements hash.Hasher.
func (c Context) Hash() uint64 {
	h := hashOffset
	for _, b := range c {
		h = combine(combine(h, b.Term.Hash()), b.Type.Hash())
	}

	return h
}

func (c Context) String() string {
	var sb strings.Builder

	sb.WriteString("[")

	for i, b := range c {
		if i != 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%s:%s", b.Term, b.Type)
	}

	sb.WriteString("]")

	return sb.String()
}

// Augment extends a context with a new innermost binding of the given type,
// realizing scope extension under a fresh Abs.  The new binding occupies
// Var(0); every existing entry's term is shifted up by one free-variable
// index, since it is now one binder further from the top level.
func Augment(ctx Context, annotation term.Type) Context {
	result := make(Context, 0, len(ctx)+1)
	result = append(result, Binding{term.NewVar(0), annotation})

	for _, b := range ctx {
		result = append(result, Binding{term.Lift(b.Term, 1, 0), b.Type})
	}

	return result
}

// CanonicalContext is the context used throughout this system for program
// search:
//
//	zero : ℕ
//	succ : ℕ → ℕ
//	iter : ℕ → (ℕ → ℕ) → (ℕ → ℕ)
func CanonicalContext() Context {
	natArrow := term.NewArrow(term.Nat, term.Nat)
	iterType := term.NewArrow(term.Nat, term.NewArrow(natArrow, natArrow))

	return Context{
		{term.Zero, term.Nat},
		{term.Succ, natArrow},
		{term.Iter, iterType},
	}
}
