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

// Package oracle tests candidate programs produced by pkg/synth against a
// target function, and drives the bottom-up search for a candidate that
// matches it on a finite sample of inputs.  This sits outside the core
// specified by the term/type algebra, the reducer and the enumerator: it
// is the thing the core's output is ultimately judged against, not part
// of the core's own soundness argument.
package oracle

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/carlosgmartin/razor/pkg/synth"
	"github.com/carlosgmartin/razor/pkg/term"
)

// Target is a candidate's yardstick: an arity-fixed function on naturals,
// e.g. multiplication.
type Target struct {
	Name  string
	Arity uint
	Func  func(args []uint) uint
}

// arity returns how many ℕ-arguments a type accepts before bottoming out,
// and whether the type is shaped like a curried chain of ℕ arrows ending
// in ℕ (i.e. ℕ→ℕ→...→ℕ).
func arity(t term.Type) (uint, bool) {
	n := uint(0)

	for {
		argument, result, ok := term.IsArrow(t)
		if !ok {
			return n, t.Equals(term.Nat)
		}

		if !argument.Equals(term.Nat) {
			return 0, false
		}

		n++
		t = result
	}
}

// Evaluate applies candidate to church(args[0]), church(args[1]), ...,
// normalizes, and unchurches the result.  An error indicates the
// candidate either isn't shaped like a ℕ-arity function matching len(args)
// or failed to normalize within budget (treated as disqualifying, not as
// the oracle's problem).
func Evaluate(candidate term.Term, candidateType term.Type, args []uint) (uint, error) {
	n, ok := arity(candidateType)
	if !ok || n != uint(len(args)) {
		return 0, fmt.Errorf("oracle: type %s does not accept %d natural arguments", candidateType, len(args))
	}

	applied := candidate
	for _, a := range args {
		applied = term.NewApp(applied, term.Church(a))
	}

	normalized, err := term.Normalize(applied)
	if err != nil {
		return 0, fmt.Errorf("oracle: %w", err)
	}

	return term.Unchurch(normalized)
}

// Matches reports whether candidate agrees with target on every tuple of
// arguments in [0, maxInput]^arity.
func Matches(candidate synth.Binding, target Target, maxInput uint) bool {
	n, ok := arity(candidate.Type)
	if !ok || n != target.Arity {
		return false
	}

	for args := range tuples(target.Arity, maxInput) {
		got, err := Evaluate(candidate.Term, candidate.Type, args)
		if err != nil {
			return false
		}

		if got != target.Func(args) {
			return false
		}
	}

	return true
}

// tuples enumerates every tuple in [0, maxInput]^arity, in lexicographic
// order, feeding them one at a time to the returned iterator.
func tuples(arity uint, maxInput uint) func(yield func([]uint) bool) {
	return func(yield func([]uint) bool) {
		if arity == 0 {
			yield(nil)
			return
		}

		args := make([]uint, arity)

		var recurse func(i uint) bool
		recurse = func(i uint) bool {
			if i == arity {
				return yield(append([]uint(nil), args...))
			}

			for v := uint(0); v <= maxInput; v++ {
				args[i] = v

				if !recurse(i + 1) {
					return false
				}
			}

			return true
		}

		recurse(0)
	}
}

// Search enumerates terms(ctx, steps) for steps in [0, maxSteps], and
// returns the first accepted binding matching target on every input up to
// maxInput.  Each step is logged at debug level; a driver typically wants
// this visible behind a verbose flag rather than always-on.
func Search(engine *synth.Engine, ctx synth.Context, target Target, maxSteps, maxInput uint) (synth.Binding, bool) {
	for steps := uint(0); steps <= maxSteps; steps++ {
		candidates := engine.Terms(ctx, steps)

		log.WithFields(log.Fields{
			"steps":      steps,
			"candidates": len(candidates),
			"target":     target.Name,
		}).Debug("searching step")

		for _, c := range candidates {
			if Matches(c, target, maxInput) {
				return c, true
			}
		}
	}

	return synth.Binding{}, false
}
