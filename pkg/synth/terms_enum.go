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

import "github.com/carlosgmartin/razor/pkg/term"

type ctxStepsKey struct {
	ctx   Context
	steps uint
}

func (k ctxStepsKey) Equals(o ctxStepsKey) bool {
	return k.steps == o.steps && k.ctx.Equals(o.ctx)
}

func (k ctxStepsKey) Hash() uint64 {
	return combine(k.ctx.Hash(), hashUint(k.steps))
}

type ctxStepsTypeKey struct {
	ctx   Context
	steps uint
	typ   term.Type
}

func (k ctxStepsTypeKey) Equals(o ctxStepsTypeKey) bool {
	return k.steps == o.steps && k.typ.Equals(o.typ) && k.ctx.Equals(o.ctx)
}

func (k ctxStepsTypeKey) Hash() uint64 {
	return combine(combine(k.ctx.Hash(), hashUint(k.steps)), k.typ.Hash())
}

// Terms returns the accepted (term, type) bindings of exactly the given
// step, per §4.5: the context itself at step 0, and abstractions ∪
// applications filtered by the redundancy predicate of §4.6 beyond that.
func (e *Engine) Terms(ctx Context, steps uint) []Binding {
	key := ctxStepsKey{ctx, steps}
	if cached, ok := e.termsCache.Get(key); ok {
		return cached
	}

	seen := e.seenFor(ctx)

	if steps == 0 {
		result := append([]Binding(nil), ctx...)

		for _, b := range result {
			if nf, err := term.Normalize(b.Term); err == nil {
				e.commit(seen, nf, b.Type)
			}
		}

		e.termsCache.Insert(key, result)

		return result
	}

	// Force SeenNF(ctx, steps-1) to be fully materialized before filtering
	// this step's candidates against it.
	e.Terms(ctx, steps-1)

	var candidates []Binding

	candidates = append(candidates, e.abstractions(ctx, steps)...)
	candidates = append(candidates, e.applications(ctx, steps)...)

	var (
		result  []Binding
		commits []nfPair
	)

	for _, c := range candidates {
		nf, accepted := e.checkAccept(seen, c)
		if !accepted {
			continue
		}

		result = append(result, c)
		commits = append(commits, nfPair{nf, c.Type})
	}

	for _, c := range commits {
		e.commit(seen, c.term, c.typ)
	}

	e.termsCache.Insert(key, result)

	return result
}

// abstractions yields every (Abs(τ, e), Arrow(τ, σ)) splitting steps as
// 1 (for the Abs itself) + n (the annotation's type-size) + m (the body's
// size), per §4.5.
func (e *Engine) abstractions(ctx Context, steps uint) []Binding {
	key := ctxStepsKey{ctx, steps}
	if cached, ok := e.abstractionsCache.Get(key); ok {
		return cached
	}

	var result []Binding

	for n := uint(0); n < steps; n++ {
		m := steps - 1 - n

		for _, annotation := range e.Types(n) {
			inner := Augment(ctx, annotation)

			for _, b := range e.Terms(inner, m) {
				abs := term.NewAbs(annotation, b.Term)
				arrow := term.NewArrow(annotation, b.Type)
				result = append(result, Binding{abs, arrow})
			}
		}
	}

	e.abstractionsCache.Insert(key, result)

	return result
}

// applications yields every (App(e1, e2), σ) splitting steps as 1 (for the
// App itself) + n (the argument's size) + m (the function's size), per
// §4.5.
func (e *Engine) applications(ctx Context, steps uint) []Binding {
	key := ctxStepsKey{ctx, steps}
	if cached, ok := e.applicationsCache.Get(key); ok {
		return cached
	}

	var result []Binding

	for n := uint(0); n < steps; n++ {
		m := steps - 1 - n

		for _, arg := range e.Terms(ctx, n) {
			for _, fn := range e.Functions(ctx, m, arg.Type) {
				_, res, _ := term.IsArrow(fn.Type)

				app := term.NewApp(fn.Term, arg.Term)
				result = append(result, Binding{app, res})
			}
		}
	}

	e.applicationsCache.Insert(key, result)

	return result
}

// Functions selects, from Terms(ctx, steps), exactly those bindings whose
// type is Arrow(argument, _) for the given argument type.
func (e *Engine) Functions(ctx Context, steps uint, argument term.Type) []Binding {
	key := ctxStepsTypeKey{ctx, steps, argument}
	if cached, ok := e.functionsCache.Get(key); ok {
		return cached
	}

	var result []Binding

	for _, b := range e.Terms(ctx, steps) {
		if a, _, ok := term.IsArrow(b.Type); ok && a.Equals(argument) {
			result = append(result, b)
		}
	}

	e.functionsCache.Insert(key, result)

	return result
}
