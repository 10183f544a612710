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

import (
	"fmt"

	"github.com/carlosgmartin/razor/pkg/term"
)

type replaceKey struct {
	term        term.Term
	needle      term.Term
	replacement term.Term
}

func (k replaceKey) Equals(o replaceKey) bool {
	return k.term.Equals(o.term) && k.needle.Equals(o.needle) && k.replacement.Equals(o.replacement)
}

func (k replaceKey) Hash() uint64 {
	return combine(combine(k.term.Hash(), k.needle.Hash()), k.replacement.Hash())
}

// Replace performs structural subterm replacement: every occurrence of
// needle within t is replaced by replacement; constants and variables that
// are not equal to needle are returned unchanged.
func (e *Engine) Replace(t, needle, replacement term.Term) term.Term {
	if t.Equals(needle) {
		return replacement
	}

	key := replaceKey{t, needle, replacement}
	if cached, ok := e.replaceCache.Get(key); ok {
		return cached
	}

	var result term.Term

	switch v := t.(type) {
	case *term.Abs:
		result = term.NewAbs(v.Annotation, e.Replace(v.Body, needle, replacement))
	case *term.App:
		result = term.NewApp(e.Replace(v.Function, needle, replacement), e.Replace(v.Argument, needle, replacement))
	default:
		result = t
	}

	e.replaceCache.Insert(key, result)

	return result
}

// freshConstant mints a constant guaranteed distinct from every other
// constant this Engine has ever minted, via a monotonic counter rather
// than the source's random integer — a deliberate deviation made for
// reproducibility, since inductive equivalence otherwise could not be
// tested deterministically.
func (e *Engine) freshConstant() term.Term {
	e.freshCounter++
	return term.NewConst(fmt.Sprintf("#%d", e.freshCounter))
}

// InductivelyEqual is the symmetric closure of the helper congruence of
// §4.3: two functions of the same type are deemed equal if they agree at
// zero and, assuming they agree at n, agree at succ(n) as well.  This is a
// heuristic over-approximation, not a decision procedure — it may
// occasionally judge distinct functions equal, and it is not reflexively
// complete on function types whose argument is not ℕ (those simply fall
// through to the `false` case below, for either direction of the
// closure).
func (e *Engine) InductivelyEqual(f term.Term, tf term.Type, g term.Term, tg term.Type) bool {
	return e.inductivelyEqualHelper(f, tf, g, tg) || e.inductivelyEqualHelper(g, tf, f, tg)
}

func (e *Engine) inductivelyEqualHelper(f term.Term, tf term.Type, g term.Term, tg term.Type) bool {
	if !tf.Equals(tg) {
		return false
	}

	if tf.Equals(term.Nat) {
		fn, err := term.Normalize(f)
		if err != nil {
			return false
		}

		gn, err := term.Normalize(g)
		if err != nil {
			return false
		}

		return fn.Equals(gn)
	}

	argument, result, ok := term.IsArrow(tf)
	if !ok || !argument.Equals(term.Nat) {
		return false
	}

	f0, err := term.Normalize(term.NewApp(f, term.Zero))
	if err != nil {
		return false
	}

	g0, err := term.Normalize(term.NewApp(g, term.Zero))
	if err != nil {
		return false
	}

	n := e.freshConstant()
	succN := term.NewApp(term.Succ, n)

	fn, err := term.Normalize(term.NewApp(f, n))
	if err != nil {
		return false
	}

	gn, err := term.Normalize(term.NewApp(g, n))
	if err != nil {
		return false
	}

	fSuccN, err := term.Normalize(term.NewApp(f, succN))
	if err != nil {
		return false
	}

	gSuccN, err := term.Normalize(term.NewApp(g, succN))
	if err != nil {
		return false
	}

	fSuccNReplaced := e.Replace(fSuccN, fn, gn)

	if !e.InductivelyEqual(f0, result, g0, result) {
		return false
	}

	return e.InductivelyEqual(fSuccNReplaced, result, gSuccN, result)
}
