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

func containsType(types []term.Type, t term.Type) bool {
	for _, c := range types {
		if c.Equals(t) {
			return true
		}
	}

	return false
}

// Test_S5 corresponds to scenario S5: types(0)={ℕ}, types(1)={ℕ→ℕ},
// types(2)={ℕ→ℕ→ℕ, (ℕ→ℕ)→ℕ}.
func Test_S5(t *testing.T) {
	e := NewEngine()

	types0 := e.Types(0)
	if len(types0) != 1 || !types0[0].Equals(term.Nat) {
		t.Fatalf("expected types(0)={ℕ}, got %v", types0)
	}

	natArrow := term.NewArrow(term.Nat, term.Nat)

	types1 := e.Types(1)
	if len(types1) != 1 || !types1[0].Equals(natArrow) {
		t.Fatalf("expected types(1)={ℕ→ℕ}, got %v", types1)
	}

	types2 := e.Types(2)
	if len(types2) != 2 {
		t.Fatalf("expected exactly 2 types at size 2, got %d: %v", len(types2), types2)
	}

	natNatNat := term.NewArrow(term.Nat, natArrow)
	natArrowNat := term.NewArrow(natArrow, term.Nat)

	if !containsType(types2, natNatNat) {
		t.Errorf("expected ℕ→ℕ→ℕ in types(2), got %v", types2)
	}

	if !containsType(types2, natArrowNat) {
		t.Errorf("expected (ℕ→ℕ)→ℕ in types(2), got %v", types2)
	}
}

func Test_Types_Deduplicated(t *testing.T) {
	e := NewEngine()

	seen := make(map[term.Type]bool)
	for _, ty := range e.Types(3) {
		if seen[ty] {
			t.Errorf("duplicate type %s at size 3", ty)
		}

		seen[ty] = true
	}
}

func Test_Types_Memoized(t *testing.T) {
	e := NewEngine()

	first := e.Types(2)
	second := e.Types(2)

	if len(first) != len(second) {
		t.Fatalf("memoized result changed length: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("memoized result changed at index %d", i)
		}
	}
}
