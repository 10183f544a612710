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

import "testing"

// Test_Lift_RoundTrip checks property 3 of the testable properties:
// lift(lift(t, +k), -k) = t when no bound variable is crossed.
func Test_Lift_RoundTrip(t *testing.T) {
	terms := []Term{
		Zero,
		NewVar(3),
		NewAbs(Nat, NewApp(NewVar(0), NewVar(1))),
		Apply(Iter, Church(2), Succ, Zero),
	}

	for _, e := range terms {
		up := Lift(e, 5, 0)
		back := Lift(up, -5, 0)

		if !back.Equals(e) {
			t.Errorf("lift round-trip failed for %s: got %s", e, back)
		}
	}
}

func Test_Lift_RespectsDepth(t *testing.T) {
	// Within λ. 0, the bound variable 0 must not be shifted.
	body := NewVar(0)
	lifted := Lift(body, 5, 1)

	if !lifted.Equals(body) {
		t.Errorf("expected bound variable to be untouched, got %s", lifted)
	}
}

func Test_Substitute_Zero(t *testing.T) {
	// (λ. 0)[zero/0] applied manually: substituting at index 0 in "0"
	// itself should yield the replacement, lifted by 0.
	result := Substitute(NewVar(0), Zero, 0)
	if !result.Equals(Zero) {
		t.Errorf("expected zero, got %s", result)
	}
}

func Test_Substitute_ShiftsHigherIndices(t *testing.T) {
	// Substituting index 0 out of "1" (a free variable one level up)
	// should decrement it to "0".
	result := Substitute(NewVar(1), Zero, 0)
	if !result.Equals(NewVar(0)) {
		t.Errorf("expected Var(0), got %s", result)
	}
}
