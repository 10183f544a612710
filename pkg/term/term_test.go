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
	"testing"

	"github.com/carlosgmartin/razor/pkg/util/assert"
)

func Test_Intern_Terms(t *testing.T) {
	a := NewAbs(Nat, NewApp(Succ, NewVar(0)))
	b := NewAbs(Nat, NewApp(Succ, NewVar(0)))

	assert.True(t, a == b, "structurally equal terms should be the same pointer")
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func Test_Intern_Types(t *testing.T) {
	a := NewArrow(Nat, NewArrow(Nat, Nat))
	b := NewArrow(Nat, NewArrow(Nat, Nat))

	assert.True(t, a == b)
}

func Test_Size(t *testing.T) {
	if Size(Zero) != 0 {
		t.Errorf("expected size 0 for zero, got %d", Size(Zero))
	}

	f := NewAbs(Nat, NewApp(Succ, NewVar(0)))
	// Abs(1) + type_size(ℕ)(0) + App(1) = 2
	if Size(f) != 2 {
		t.Errorf("expected size 2, got %d", Size(f))
	}
}

func Test_TypeSize(t *testing.T) {
	if TypeSize(Nat) != 0 {
		t.Errorf("expected type size 0 for ℕ, got %d", TypeSize(Nat))
	}

	arrow := NewArrow(Nat, NewArrow(Nat, Nat))
	if TypeSize(arrow) != 2 {
		t.Errorf("expected type size 2, got %d", TypeSize(arrow))
	}
}

func Test_String(t *testing.T) {
	f := NewAbs(Nat, NewApp(Succ, NewVar(0)))
	assert.Equal(t, "(λ:ℕ (succ 0))", f.String())

	arrow := NewArrow(Nat, Nat)
	assert.Equal(t, "(ℕ → ℕ)", arrow.String())
}

func Test_Apply(t *testing.T) {
	e := Apply(Iter, Church(3), Succ, Zero)
	want := NewApp(NewApp(NewApp(Iter, Church(3)), Succ), Zero)
	assert.True(t, e == want)
}
