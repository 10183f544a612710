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
	"fmt"

	"github.com/carlosgmartin/razor/pkg/util/source/sexp"
)

// Lisp renders a term as an S-Expression, for use in debug traces where the
// infix String() form is harder to scan mechanically (e.g. diffing two
// terms line by line).
func Lisp(t Term) sexp.SExp {
	switch v := t.(type) {
	case *Const:
		return sexp.NewSymbol(v.name)
	case *Var:
		return sexp.NewSymbol(fmt.Sprintf("%d", v.Index))
	case *Abs:
		return sexp.NewList([]sexp.SExp{
			sexp.NewSymbol("λ"),
			sexp.NewSymbol(v.Annotation.String()),
			Lisp(v.Body),
		})
	case *App:
		return sexp.NewList([]sexp.SExp{Lisp(v.Function), Lisp(v.Argument)})
	default:
		panic("unreachable: unknown term constructor")
	}
}

// TypeLisp renders a type as an S-Expression.
func TypeLisp(t Type) sexp.SExp {
	switch v := t.(type) {
	case *Base:
		return sexp.NewSymbol(v.name)
	case *Arrow:
		return sexp.NewList([]sexp.SExp{
			sexp.NewSymbol("→"),
			TypeLisp(v.Argument),
			TypeLisp(v.Result),
		})
	default:
		panic("unreachable: unknown type constructor")
	}
}
