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
	log "github.com/sirupsen/logrus"

	"github.com/carlosgmartin/razor/pkg/term"
	"github.com/carlosgmartin/razor/pkg/util/collection/hash"
)

// nfPair is a (normal form, type) pair, the unit stored in SeenNF.
type nfPair struct {
	term term.Term
	typ  term.Type
}

func (p nfPair) Equals(o nfPair) bool {
	return p.typ.Equals(o.typ) && p.term.Equals(o.term)
}

func (p nfPair) Hash() uint64 {
	return combine(p.term.Hash(), p.typ.Hash())
}

// seenEntry tracks SeenNF(Γ, ·) for one context: a set for the O(1)
// normal-form/type membership test, plus an append-only slice so the
// inductive-equivalence scan (which must compare against every previously
// accepted normal form, not just test set membership) has something to
// range over.
//
// Candidates generated within a single step are filtered against a
// snapshot of this entry as it stood after the *previous* step, and are
// only folded in once the whole step's candidate set has been decided —
// mirroring the source's normal_forms(context, steps-1), which is built
// from terms up to steps-1 and never from terms still being filtered.
type seenEntry struct {
	nf       *hash.Set[nfPair]
	accepted []Binding
}

func newSeenEntry() *seenEntry {
	return &seenEntry{nf: hash.NewSet[nfPair](0)}
}

func (e *Engine) seenFor(ctx Context) *seenEntry {
	if existing, ok := e.seenNF.Get(ctx); ok {
		return existing
	}

	entry := newSeenEntry()
	e.seenNF.Insert(ctx, entry)

	return entry
}

// checkAccept evaluates the redundancy filter of §4.6 for one candidate
// against the entry as it stands, without mutating it.  It reports the
// candidate's normal form (needed by the caller to commit it afterwards)
// and whether the candidate is accepted.
func (e *Engine) checkAccept(seen *seenEntry, candidate Binding) (nf term.Term, accepted bool) {
	nf, err := term.Normalize(candidate.Term)
	if err != nil {
		log.WithError(err).WithField("term", candidate.Term).Debug("discarding candidate: failed to normalize")
		return nil, false
	}

	if seen.nf.Contains(nfPair{nf, candidate.Type}) {
		return nf, false
	}

	for _, prior := range seen.accepted {
		if !prior.Type.Equals(candidate.Type) {
			continue
		}

		if e.InductivelyEqual(nf, candidate.Type, prior.Term, prior.Type) {
			return nf, false
		}
	}

	return nf, true
}

// commit folds an accepted candidate's normal form into the entry, making
// it visible to subsequent steps.
func (e *Engine) commit(seen *seenEntry, nf term.Term, typ term.Type) {
	pair := nfPair{nf, typ}
	if !seen.nf.Contains(pair) {
		seen.nf.Insert(pair)
	}

	seen.accepted = append(seen.accepted, Binding{nf, typ})
}
