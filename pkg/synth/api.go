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

// defaultEngine backs the package-level convenience functions below, for
// callers that don't need more than one synthesis run's worth of memo
// tables at a time.
var defaultEngine = NewEngine()

// Types returns every type of exactly the given type-size, per §4.4.
func Types(steps uint) []term.Type {
	return defaultEngine.Types(steps)
}

// Terms returns the accepted (term, type) bindings of exactly the given
// step under ctx, per §4.5–§4.6.
func Terms(ctx Context, steps uint) []Binding {
	return defaultEngine.Terms(ctx, steps)
}

// InductivelyEqual is the symmetric heuristic congruence of §4.3.
func InductivelyEqual(f term.Term, tf term.Type, g term.Term, tg term.Type) bool {
	return defaultEngine.InductivelyEqual(f, tf, g, tg)
}

// Reset discards the default engine's memo tables and the term package's
// interning and reduction caches, starting the next run from a clean
// slate.
func Reset() {
	defaultEngine.Reset()
	term.ResetCaches()
}
