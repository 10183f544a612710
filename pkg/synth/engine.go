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
	"github.com/carlosgmartin/razor/pkg/term"
	"github.com/carlosgmartin/razor/pkg/util/collection/hash"
)

// Engine bundles every memo table used by the enumerator and the
// redundancy filter, plus the fresh-constant counter used by inductive
// equivalence.  A single Engine is meant to back one synthesis run; its
// caches grow monotonically over the run and may be discarded wholesale
// by Reset between runs.
//
// Types are interned (see pkg/term), so a plain Go map keyed by term.Type
// or term.Term is already collision-free; Engine reaches for
// pkg/util/collection/hash.Map only where the key is a composite
// (context+steps, or context+steps+type) that is not itself interned.
type Engine struct {
	typesCache        map[typesKey][]term.Type
	abstractionsCache *hash.Map[ctxStepsKey, []Binding]
	applicationsCache *hash.Map[ctxStepsKey, []Binding]
	termsCache        *hash.Map[ctxStepsKey, []Binding]
	functionsCache    *hash.Map[ctxStepsTypeKey, []Binding]
	replaceCache      *hash.Map[replaceKey, term.Term]
	seenNF            *hash.Map[Context, *seenEntry]
	freshCounter      uint64
}

// NewEngine constructs a fresh Engine with empty caches.
func NewEngine() *Engine {
	return &Engine{
		typesCache:        make(map[typesKey][]term.Type),
		abstractionsCache: hash.NewMap[ctxStepsKey, []Binding](0),
		applicationsCache: hash.NewMap[ctxStepsKey, []Binding](0),
		termsCache:        hash.NewMap[ctxStepsKey, []Binding](0),
		functionsCache:    hash.NewMap[ctxStepsTypeKey, []Binding](0),
		replaceCache:      hash.NewMap[replaceKey, term.Term](0),
		seenNF:            hash.NewMap[Context, *seenEntry](0),
	}
}

// Reset discards every memo table and resets the fresh-constant counter.
// Per §7, cache growth is purely advisory memory pressure; Reset is how a
// long-lived driver process bounds it between independent runs.
func (e *Engine) Reset() {
	*e = *NewEngine()
}
