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

import (
	"errors"

	"github.com/carlosgmartin/razor/pkg/util/collection/hash"
)

// ErrNotARedex is returned by BetaReduce, EtaReduce and IterReduce when
// applied to a term that is not an instance of the rule in question.
var ErrNotARedex = errors.New("term: not a redex for this rule")

// ErrBudgetExceeded is returned by NormalizeWithBudget (and hence Normalize)
// when a term fails to reach a normal form within the allotted number of
// reduction steps.  A non-terminating term (e.g. one built from an
// unguarded fixpoint combinator smuggled in as an uninterpreted constant)
// will never stop producing this error, so callers that enumerate
// candidate terms must treat it as an ordinary, expected outcome rather
// than a defect.
var ErrBudgetExceeded = errors.New("term: reduction budget exceeded")

// DefaultReductionBudget bounds the number of single-step reductions
// Normalize will attempt before giving up.
const DefaultReductionBudget = 100_000

// occurs reports whether the variable with the given de Bruijn index occurs
// free in t.
func occurs(index uint, t Term) bool {
	switch v := t.(type) {
	case *Const:
		return false
	case *Var:
		return v.Index == index
	case *Abs:
		return occurs(index+1, v.Body)
	case *App:
		return occurs(index, v.Function) || occurs(index, v.Argument)
	default:
		panic("unreachable: unknown term constructor")
	}
}

// IsBetaReducible reports whether t is an application of an abstraction,
// i.e. an immediate beta-redex.
func IsBetaReducible(t Term) bool {
	a, ok := t.(*App)
	if !ok {
		return false
	}

	_, ok = a.Function.(*Abs)

	return ok
}

// BetaReduce performs one step of beta-reduction: (λ:T b) a ⇝ b[a/0].
func BetaReduce(t Term) (Term, error) {
	a, ok := t.(*App)
	if !ok {
		return nil, ErrNotARedex
	}

	f, ok := a.Function.(*Abs)
	if !ok {
		return nil, ErrNotARedex
	}

	return Substitute(f.Body, a.Argument, 0), nil
}

// IsEtaReducible reports whether t is of the form (λ:T (f 0)) where the
// bound variable does not otherwise occur free in f, i.e. an eta-redex.
// Example: (λ:ℕ (succ 0)) is eta-reducible to succ.
func IsEtaReducible(t Term) bool {
	abs, ok := t.(*Abs)
	if !ok {
		return false
	}

	app, ok := abs.Body.(*App)
	if !ok {
		return false
	}

	argVar, ok := app.Argument.(*Var)

	return ok && argVar.Index == 0 && !occurs(0, app.Function)
}

// EtaReduce performs one step of eta-reduction: (λ:T (f 0)) ⇝ f, with f's
// indices shifted down to account for the removed binder.
func EtaReduce(t Term) (Term, error) {
	if !IsEtaReducible(t) {
		return nil, ErrNotARedex
	}

	abs := t.(*Abs)
	app := abs.Body.(*App)

	return Lift(app.Function, -1, 0), nil
}

// IsIterReducible reports whether t is an application of iter to zero, or
// to an application of succ, i.e. an immediate iota-redex.
func IsIterReducible(t Term) bool {
	a, ok := t.(*App)
	if !ok || !a.Function.Equals(Iter) {
		return false
	}

	if a.Argument.Equals(Zero) {
		return true
	}

	inner, ok := a.Argument.(*App)

	return ok && inner.Function.Equals(Succ)
}

// IterReduce performs one step of iota-reduction, unfolding the primitive
// recursor one layer:
//
//	iter zero        ⇝ λf:ℕ→ℕ. λx:ℕ. x
//	iter (succ i)     ⇝ λf:ℕ→ℕ. λx:ℕ. f ((iter i) f x)
func IterReduce(t Term) (Term, error) {
	if !IsIterReducible(t) {
		return nil, ErrNotARedex
	}

	a := t.(*App)

	natArrow := NewArrow(Nat, Nat)

	if a.Argument.Equals(Zero) {
		return NewAbs(natArrow, NewAbs(Nat, NewVar(0))), nil
	}

	inner := a.Argument.(*App)
	i := inner.Argument

	step := Apply(Iter, Lift(i, 2, 0), NewVar(1), NewVar(0))

	return NewAbs(natArrow, NewAbs(Nat, NewApp(NewVar(1), step))), nil
}

// IsHeadReducible reports whether t is a redex for any of the three
// reduction rules.
func IsHeadReducible(t Term) bool {
	return IsEtaReducible(t) || IsBetaReducible(t) || IsIterReducible(t)
}

// HeadReduce performs one step of whichever rule applies at the root of t,
// trying eta, then beta, then iota, in that order.
func HeadReduce(t Term) (Term, error) {
	if r, err := EtaReduce(t); err == nil {
		return r, nil
	}

	if r, err := BetaReduce(t); err == nil {
		return r, nil
	}

	return IterReduce(t)
}

// HeadNormalize repeatedly applies HeadReduce until t is no longer
// head-reducible.
func HeadNormalize(t Term) Term {
	for IsHeadReducible(t) {
		t, _ = HeadReduce(t)
	}

	return t
}

// reduce performs a single reduction step anywhere in t: at the root if t
// is itself a redex, otherwise inside an abstraction's body, or inside an
// application's function and then its argument.  The second return value
// is false if t contains no redex at all.
func reduce(t Term) (Term, bool) {
	if r, err := HeadReduce(t); err == nil {
		return r, true
	}

	switch v := t.(type) {
	case *Abs:
		if r, ok := reduce(v.Body); ok {
			return NewAbs(v.Annotation, r), true
		}

		return nil, false
	case *App:
		if r, ok := reduce(v.Function); ok {
			return NewApp(r, v.Argument), true
		}

		if r, ok := reduce(v.Argument); ok {
			return NewApp(v.Function, r), true
		}

		return nil, false
	default:
		return nil, false
	}
}

var normalizeMemo = hash.NewMap[Term, Term](0)

// Normalize reduces t to its normal form, within DefaultReductionBudget
// steps.
func Normalize(t Term) (Term, error) {
	return NormalizeWithBudget(t, DefaultReductionBudget)
}

// NormalizeWithBudget reduces t to its normal form, trying at most budget
// single-step reductions before returning ErrBudgetExceeded.  Results are
// memoized by the term normalization started from, so normalizing that
// term again is free, and a normalization that reaches such a term stops
// there.  Intermediate terms are not memoized.
func NormalizeWithBudget(t Term, budget int) (Term, error) {
	if v, ok := normalizeMemo.Get(t); ok {
		return v, nil
	}

	original := t

	for i := 0; ; i++ {
		if v, ok := normalizeMemo.Get(t); ok {
			normalizeMemo.Insert(original, v)
			return v, nil
		}

		r, ok := reduce(t)
		if !ok {
			normalizeMemo.Insert(original, t)
			return t, nil
		}

		if i >= budget {
			return nil, ErrBudgetExceeded
		}

		t = r
	}
}
