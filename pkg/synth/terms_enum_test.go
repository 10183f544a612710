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
	"testing"

	"github.com/carlosgmartin/razor/pkg/term"
)

// Test_S6 corresponds to scenario S6: terms(context, 0) equals the context
// verbatim.
func Test_S6(t *testing.T) {
	e := NewEngine()
	ctx := CanonicalContext()

	got := e.Terms(ctx, 0)
	if len(got) != len(ctx) {
		t.Fatalf("expected %d bindings, got %d", len(ctx), len(got))
	}

	for i := range ctx {
		if !got[i].Term.Equals(ctx[i].Term) || !got[i].Type.Equals(ctx[i].Type) {
			t.Errorf("binding %d: expected %s:%s, got %s:%s", i, ctx[i].Term, ctx[i].Type, got[i].Term, got[i].Type)
		}
	}
}

// Test_Terms_AllNormalize checks that every binding enumerated at steps 0
// to 3 reaches a normal form within the default reduction budget.  It does
// not type-check the bindings.
func Test_Terms_AllNormalize(t *testing.T) {
	e := NewEngine()
	ctx := CanonicalContext()

	for steps := uint(0); steps <= 3; steps++ {
		for _, b := range e.Terms(ctx, steps) {
			if _, err := term.Normalize(b.Term); err != nil {
				t.Errorf("steps=%d: term %s failed to normalize: %s", steps, b.Term, err)
			}
		}
	}
}

// Test_Terms_NonRedundant checks that no binding accepted at a step shares
// its normal form and type with a binding accepted at an earlier step -- the
// normal-form half of the redundancy filter of §4.6.  Bindings of the same
// step are filtered against earlier steps only, not against each other (at
// step 2, (λ:(ℕ → ℕ) 0) and (iter (succ zero)) are both accepted with the
// same normal form), so they are not compared with each other here.
func Test_Terms_NonRedundant(t *testing.T) {
	e := NewEngine()
	ctx := CanonicalContext()

	for steps := uint(1); steps <= 2; steps++ {
		bindings := e.Terms(ctx, steps)

		for k := uint(0); k < steps; k++ {
			for _, a := range e.Terms(ctx, k) {
				for _, b := range bindings {
					if !a.Type.Equals(b.Type) {
						continue
					}

					an, err1 := term.Normalize(a.Term)
					bn, err2 := term.Normalize(b.Term)

					if err1 == nil && err2 == nil && an.Equals(bn) {
						t.Errorf("steps=%d: %s and %s (step %d) share a normal form", steps, b.Term, a.Term, k)
					}
				}
			}
		}
	}
}

// Test_Terms_Memoized checks that repeated calls return the same slice
// contents (interning makes the underlying terms comparable by pointer).
func Test_Terms_Memoized(t *testing.T) {
	e := NewEngine()
	ctx := CanonicalContext()

	first := e.Terms(ctx, 1)
	second := e.Terms(ctx, 1)

	if len(first) != len(second) {
		t.Fatalf("memoized result changed length: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i].Term != second[i].Term {
			t.Errorf("memoized term changed at index %d", i)
		}
	}
}

func Test_Augment(t *testing.T) {
	ctx := Context{{term.Zero, term.Nat}}

	augmented := Augment(ctx, term.Nat)
	if len(augmented) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(augmented))
	}

	if !augmented[0].Term.Equals(term.NewVar(0)) {
		t.Errorf("expected new binding to be Var(0), got %s", augmented[0].Term)
	}

	want := term.Lift(term.Zero, 1, 0)
	if !augmented[1].Term.Equals(want) {
		t.Errorf("expected shifted zero, got %s", augmented[1].Term)
	}
}
