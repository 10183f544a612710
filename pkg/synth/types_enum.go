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

// DefaultPenalty is the cost charged to type-size by each Arrow, per §4.4.
// With penalty 1, type size is simply the number of arrows.
const DefaultPenalty = 1

type typesKey struct {
	steps   uint
	penalty uint
}

// Types returns every type of exactly the given type-size (using the
// default penalty of 1), deduplicated by structural equality.  Results are
// memoized across calls.
func (e *Engine) Types(steps uint) []term.Type {
	return e.TypesWithPenalty(steps, DefaultPenalty)
}

// TypesWithPenalty is Types, but with the Arrow size penalty made explicit.
func (e *Engine) TypesWithPenalty(steps, penalty uint) []term.Type {
	key := typesKey{steps, penalty}
	if cached, ok := e.typesCache[key]; ok {
		return cached
	}

	var result []term.Type

	if steps == 0 {
		result = []term.Type{term.Nat}
	} else if steps >= penalty {
		seen := make(map[term.Type]bool)

		for n := uint(0); n+penalty <= steps; n++ {
			m := steps - penalty - n

			for _, arg := range e.TypesWithPenalty(n, penalty) {
				for _, res := range e.TypesWithPenalty(m, penalty) {
					arrow := term.NewArrow(arg, res)
					if !seen[arrow] {
						seen[arrow] = true

						result = append(result, arrow)
					}
				}
			}
		}
	}

	e.typesCache[key] = result

	return result
}
