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

import "github.com/carlosgmartin/razor/pkg/util/collection/hash"

// liftKey memoizes Lift by the triple (term, offset, depth).
type liftKey struct {
	term   Term
	offset int
	depth  uint
}

func (k liftKey) Equals(o liftKey) bool {
	return k.offset == o.offset && k.depth == o.depth && k.term.Equals(o.term)
}

func (k liftKey) Hash() uint64 {
	return combine(combine(k.term.Hash(), hashUint(uint(int64(k.offset)))), hashUint(k.depth))
}

var liftMemo = hash.NewMap[liftKey, Term](0)

// Lift shifts every free variable in t (that is, every variable whose index
// is at least depth) by offset.  depth tracks how many abstractions have
// been entered since the top-level call, and should be 0 at the initial
// call site.  offset may be negative, e.g. when a binder is stripped away.
func Lift(t Term, offset int, depth uint) Term {
	if offset == 0 {
		return t
	}

	key := liftKey{t, offset, depth}
	if v, ok := liftMemo.Get(key); ok {
		return v
	}

	result := liftUncached(t, offset, depth)
	liftMemo.Insert(key, result)

	return result
}

func liftUncached(t Term, offset int, depth uint) Term {
	switch v := t.(type) {
	case *Const:
		return t
	case *Var:
		if v.Index < depth {
			return t
		}

		return NewVar(uint(int64(v.Index) + int64(offset)))
	case *Abs:
		return NewAbs(v.Annotation, Lift(v.Body, offset, depth+1))
	case *App:
		return NewApp(Lift(v.Function, offset, depth), Lift(v.Argument, offset, depth))
	default:
		panic("unreachable: unknown term constructor")
	}
}

// substKey memoizes Substitute by the triple (term, replacement, index).
type substKey struct {
	term        Term
	replacement Term
	index       uint
}

func (k substKey) Equals(o substKey) bool {
	return k.index == o.index && k.term.Equals(o.term) && k.replacement.Equals(o.replacement)
}

func (k substKey) Hash() uint64 {
	return combine(combine(k.term.Hash(), k.replacement.Hash()), hashUint(k.index))
}

var substMemo = hash.NewMap[substKey, Term](0)

// Substitute replaces every free occurrence of Var(index) in t with
// replacement, adjusting indices so that replacement's own free variables
// remain correctly scoped as it is carried under binders.  index should be
// 0 at the initial call site; this is exactly the substitution performed by
// beta-reduction.
func Substitute(t Term, replacement Term, index uint) Term {
	key := substKey{t, replacement, index}
	if v, ok := substMemo.Get(key); ok {
		return v
	}

	result := substituteUncached(t, replacement, index)
	substMemo.Insert(key, result)

	return result
}

func substituteUncached(t Term, replacement Term, index uint) Term {
	switch v := t.(type) {
	case *Const:
		return t
	case *Var:
		switch {
		case v.Index == index:
			return Lift(replacement, int(index), 0)
		case v.Index > index:
			return NewVar(v.Index - 1)
		default:
			return t
		}
	case *Abs:
		return NewAbs(v.Annotation, Substitute(v.Body, replacement, index+1))
	case *App:
		return NewApp(Substitute(v.Function, replacement, index), Substitute(v.Argument, replacement, index))
	default:
		panic("unreachable: unknown term constructor")
	}
}
