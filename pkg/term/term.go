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

// Package term implements the term and type algebra of a simply-typed
// lambda calculus with de Bruijn indices, extended with a primitive
// recursor over naturals (iter), along with its substitution kernel and
// reducer.
package term

import "fmt"

// Term is a lambda-calculus term using de Bruijn indices: Const, Var, Abs or
// App.  Values are immutable once constructed and are interned, so that two
// structurally equal terms are always represented by the same pointer.
type Term interface {
	fmt.Stringer
	// Equals checks structural equality against another term.
	Equals(Term) bool
	// Hash returns this term's precomputed hashcode.
	Hash() uint64
	// size returns the precomputed structural size of this term.
	size() uint
	isTerm()
}

// Size returns the structural size of a term: a variable or constant has
// size zero; an abstraction has size one plus the size of its annotation
// and body; an application has size one plus the size of its function and
// argument.
func Size(t Term) uint {
	return t.size()
}

// Const is an uninterpreted constant, identified by name.  The recursor
// "iter", and the natural number constructors "zero" and "succ", are all
// ordinary constants from the point of view of the term algebra; their
// special reduction behaviour lives entirely in the reducer.
type Const struct {
	name string
	hash uint64
}

// NewConst constructs (or retrieves the interned instance of) a constant
// with the given name.
func NewConst(name string) Term {
	return internTerm(&Const{name, combine(tagConst, hashString(name))})
}

// Name returns the constant's name.
func (c *Const) Name() string { return c.name }

func (c *Const) isTerm() {}

func (c *Const) size() uint { return 0 }

// Hash implements Term.
func (c *Const) Hash() uint64 { return c.hash }

// Equals implements Term.
func (c *Const) Equals(other Term) bool {
	o, ok := other.(*Const)
	return ok && o.name == c.name
}

func (c *Const) String() string { return c.name }

// Var is a bound variable referenced by de Bruijn index: the number of
// enclosing abstractions between the variable's own binder and its use.
type Var struct {
	Index uint
	hash  uint64
}

// NewVar constructs (or retrieves the interned instance of) the variable
// with the given de Bruijn index.
func NewVar(index uint) Term {
	return internTerm(&Var{index, combine(tagVar, hashUint(index))})
}

func (v *Var) isTerm() {}

func (v *Var) size() uint { return 0 }

// Hash implements Term.
func (v *Var) Hash() uint64 { return v.hash }

// Equals implements Term.
func (v *Var) Equals(other Term) bool {
	o, ok := other.(*Var)
	return ok && o.Index == v.Index
}

func (v *Var) String() string { return fmt.Sprintf("%d", v.Index) }

// Abs is a lambda abstraction.  Annotation is the type of the bound
// variable; the variable itself has no name, and occurrences of it inside
// Body are Var(0) (modulo further nested abstractions).
type Abs struct {
	Annotation Type
	Body       Term
	hash       uint64
	sz         uint
}

// NewAbs constructs (or retrieves the interned instance of) the abstraction
// binding a variable of the given annotation type over body.
func NewAbs(annotation Type, body Term) Term {
	h := combine(combine(tagAbs, annotation.Hash()), body.Hash())
	sz := 1 + annotation.size() + body.size()

	return internTerm(&Abs{annotation, body, h, sz})
}

func (a *Abs) isTerm() {}

func (a *Abs) size() uint { return a.sz }

// Hash implements Term.
func (a *Abs) Hash() uint64 { return a.hash }

// Equals implements Term.
func (a *Abs) Equals(other Term) bool {
	o, ok := other.(*Abs)
	return ok && a.Annotation.Equals(o.Annotation) && a.Body.Equals(o.Body)
}

func (a *Abs) String() string {
	return fmt.Sprintf("(λ:%s %s)", a.Annotation, a.Body)
}

// App is the application of Function to Argument.
type App struct {
	Function Term
	Argument Term
	hash     uint64
	sz       uint
}

// NewApp constructs (or retrieves the interned instance of) the application
// of function to argument.
func NewApp(function, argument Term) Term {
	h := combine(combine(tagApp, function.Hash()), argument.Hash())
	sz := 1 + function.size() + argument.size()

	return internTerm(&App{function, argument, h, sz})
}

func (a *App) isTerm() {}

func (a *App) size() uint { return a.sz }

// Hash implements Term.
func (a *App) Hash() uint64 { return a.hash }

// Equals implements Term.
func (a *App) Equals(other Term) bool {
	o, ok := other.(*App)
	return ok && a.Function.Equals(o.Function) && a.Argument.Equals(o.Argument)
}

func (a *App) String() string {
	return fmt.Sprintf("(%s %s)", a.Function, a.Argument)
}

// Apply constructs the application of function to each of the given
// arguments in turn, i.e. Apply(f, a, b, c) is ((f a) b) c.
func Apply(function Term, arguments ...Term) Term {
	result := function
	for _, arg := range arguments {
		result = NewApp(result, arg)
	}

	return result
}

// Names of the constants with built-in reduction behaviour.  These are
// ordinary constants as far as the term algebra is concerned; Iter, Zero and
// Succ are merely the conventional names the reducer looks for.
const (
	IterName = "iter"
	ZeroName = "zero"
	SuccName = "succ"
)

// Zero is the constant "zero", the base case of a Church-style natural.
var Zero = NewConst(ZeroName)

// Succ is the constant "succ", the successor constructor of a Church-style
// natural.
var Succ = NewConst(SuccName)

// Iter is the constant "iter", the primitive recursor eliminating naturals.
var Iter = NewConst(IterName)
