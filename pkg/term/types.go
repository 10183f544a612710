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

import "fmt"

// Type represents a simple type: either a base type or an arrow (function)
// type.  Values are immutable once constructed and are interned, so that two
// structurally equal types are always represented by the same pointer.
type Type interface {
	fmt.Stringer
	// Equals checks structural equality against another type.
	Equals(Type) bool
	// Hash returns this type's precomputed hashcode.
	Hash() uint64
	// size returns the precomputed structural size of this type.
	size() uint
	isType()
}

// TypeSize returns the structural size of a type, per the same accounting
// used for terms: a base type has size zero, and an arrow has size one plus
// the size of its argument and result.
func TypeSize(t Type) uint {
	return t.size()
}

// Base is an uninterpreted base type, identified by name.  The natural
// number type used throughout this package is just a Base with a
// conventional name; see Nat.
type Base struct {
	name string
	hash uint64
}

// Nat is the base type of natural numbers, constructed via Church encoding
// (zero, succ) and eliminated via iter.  It is defined exactly once here,
// rather than wherever a natural-number type happens to be needed.
var Nat Type = NewBase("ℕ")

// NewBase constructs (or retrieves the interned instance of) a base type
// with the given name.
func NewBase(name string) Type {
	return internType(&Base{name, combine(tagBase, hashString(name))})
}

// Name returns the base type's name.
func (b *Base) Name() string { return b.name }

func (b *Base) isType() {}

func (b *Base) size() uint { return 0 }

// Hash implements Type.
func (b *Base) Hash() uint64 { return b.hash }

// Equals implements Type.
func (b *Base) Equals(other Type) bool {
	o, ok := other.(*Base)
	return ok && o.name == b.name
}

func (b *Base) String() string { return b.name }

// Arrow is the type of functions from Argument to Result.
type Arrow struct {
	Argument Type
	Result   Type
	hash     uint64
	sz       uint
}

// NewArrow constructs (or retrieves the interned instance of) the function
// type from argument to result.
func NewArrow(argument, result Type) Type {
	h := combine(combine(tagArrow, argument.Hash()), result.Hash())
	sz := 1 + argument.size() + result.size()

	return internType(&Arrow{argument, result, h, sz})
}

func (a *Arrow) isType() {}

func (a *Arrow) size() uint { return a.sz }

// Hash implements Type.
func (a *Arrow) Hash() uint64 { return a.hash }

// Equals implements Type.
func (a *Arrow) Equals(other Type) bool {
	o, ok := other.(*Arrow)
	return ok && a.Argument.Equals(o.Argument) && a.Result.Equals(o.Result)
}

func (a *Arrow) String() string {
	return fmt.Sprintf("(%s → %s)", a.Argument, a.Result)
}

// IsArrow splits a type into its argument and result, if it is an Arrow.
func IsArrow(t Type) (argument, result Type, ok bool) {
	if a, isArrow := t.(*Arrow); isArrow {
		return a.Argument, a.Result, true
	}

	return nil, nil, false
}
