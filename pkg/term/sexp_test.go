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

func Test_Lisp(t *testing.T) {
	f := NewAbs(Nat, NewApp(Succ, NewVar(0)))

	got := Lisp(f).String(false)
	want := "(λ ℕ (succ 0))"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func Test_TypeLisp(t *testing.T) {
	arrow := NewArrow(Nat, Nat)

	got := TypeLisp(arrow).String(false)
	want := "(→ ℕ ℕ)"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
