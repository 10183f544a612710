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
	"errors"
	"fmt"
)

// ErrNotChurchNumeral is returned by Unchurch when given a term that is not
// a finite tower of succ applied to zero.
var ErrNotChurchNumeral = errors.New("term: not a Church numeral")

// Church constructs the term representing a natural number n as a tower of
// succ applications over zero: Church(0) is zero, Church(2) is
// succ (succ zero).
func Church(n uint) Term {
	t := Term(Zero)
	for i := uint(0); i < n; i++ {
		t = NewApp(Succ, t)
	}

	return t
}

// Unchurch recovers the natural number represented by t, which must be
// zero, or succ applied (directly or recursively) to such a term.  An
// error is returned rather than a panic since, unlike Church, Unchurch may
// legitimately be handed an arbitrary normalized term whose shape is not
// known in advance.
func Unchurch(t Term) (uint, error) {
	if t.Equals(Zero) {
		return 0, nil
	}

	a, ok := t.(*App)
	if !ok || !a.Function.Equals(Succ) {
		return 0, fmt.Errorf("%w: %s", ErrNotChurchNumeral, t)
	}

	rest, err := Unchurch(a.Argument)
	if err != nil {
		return 0, err
	}

	return rest + 1, nil
}
