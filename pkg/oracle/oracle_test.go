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
package oracle

import (
	"testing"

	"github.com/carlosgmartin/razor/pkg/synth"
	"github.com/carlosgmartin/razor/pkg/term"
)

var addTarget = Target{
	Name:  "add",
	Arity: 2,
	Func:  func(args []uint) uint { return args[0] + args[1] },
}

func Test_Evaluate_Add(t *testing.T) {
	natArrow := term.NewArrow(term.Nat, term.Nat)
	// λx. λy. iter x succ y
	add := term.NewAbs(term.Nat, term.NewAbs(term.Nat, term.Apply(term.Iter, term.NewVar(1), term.Succ, term.NewVar(0))))
	addType := term.NewArrow(term.Nat, natArrow)

	got, err := Evaluate(add, addType, []uint{2, 3})
	if err != nil {
		t.Fatal(err)
	}

	if got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func Test_Evaluate_WrongArity(t *testing.T) {
	_, err := Evaluate(term.Succ, term.NewArrow(term.Nat, term.Nat), []uint{1, 2})
	if err == nil {
		t.Error("expected an arity mismatch error")
	}
}

func Test_Matches_Add(t *testing.T) {
	natArrow := term.NewArrow(term.Nat, term.Nat)
	add := term.NewAbs(term.Nat, term.NewAbs(term.Nat, term.Apply(term.Iter, term.NewVar(1), term.Succ, term.NewVar(0))))
	binding := synth.Binding{Term: add, Type: term.NewArrow(term.Nat, natArrow)}

	if !Matches(binding, addTarget, 3) {
		t.Error("expected the iter-based adder to match add on [0,3]")
	}
}

// Test_S4 corresponds to scenario S4: searching the canonical context for
// "add" succeeds within a small step budget.
func Test_S4(t *testing.T) {
	engine := synth.NewEngine()
	ctx := synth.CanonicalContext()

	found, ok := Search(engine, ctx, addTarget, 8, 3)
	if !ok {
		t.Fatal("expected to find a candidate matching add")
	}

	got, err := Evaluate(found.Term, found.Type, []uint{2, 2})
	if err != nil {
		t.Fatal(err)
	}

	if got != 4 {
		t.Errorf("expected add(2,2)=4, got %d", got)
	}
}

func Test_Search_NotFound(t *testing.T) {
	engine := synth.NewEngine()
	ctx := synth.CanonicalContext()

	impossible := Target{
		Name:  "predecessor-of-zero",
		Arity: 1,
		Func:  func(args []uint) uint { return args[0] - 1 },
	}

	_, ok := Search(engine, ctx, impossible, 2, 1)
	if ok {
		t.Error("expected no candidate to be found within such a tiny budget")
	}
}
