// Copyright Consensys Software Inc.
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
package logic

// Proposition is an immutable tree of connectives over atomic propositions.
// Every proposition is in canonical form: double negations, identity
// wrappers and nested associative connectives are rewritten away during
// construction, and duplicate operands of n-ary connectives are removed
// (preserving first-seen order).  Equality and hashing are structural, based
// on a 64-bit hash computed once at construction.  All transformations
// (Reduce, Expand, PartialEval, the combinators) return new propositions and
// never mutate in place.
type Proposition struct {
	connective Connective
	children   []*Proposition
	// atom is non-nil exactly for atomic leaves.
	atom *atom
	// hash is the structural hash of this node.
	hash uint64
	// atoms memoises all atomic propositions reachable from this node,
	// sorted by id.
	atoms []*Proposition
	// seen memoises all connectives reachable from this node.
	seen connectiveMask
}

// ============================================================================
// Construction
// ============================================================================

// New combines the given operand propositions under a connective, returning
// the canonical result.  Nilary and unary n-ary applications are adjusted as
// for the other constructors (no operands yields the empty proposition, a
// single operand is returned as is).  An error is reported if the operand
// count does not satisfy the connective's arity, or if a quantifier is asked
// to bind a non-atomic proposition.
func New(connective Connective, operands ...*Proposition) (*Proposition, error) {
	// adjust n-ary corner cases
	if connective.Arity() == Nary {
		switch len(operands) {
		case 0:
			connective = Empty
		case 1:
			connective = None
		}
	}
	//
	if !connective.Arity().Accepts(len(operands)) {
		return nil, &Error{
			Msg: "incompatible number of operands for connective " + connective.String() +
				", expected " + connective.Arity().String(),
			Formula: connective.String(),
		}
	}
	//
	if connective.IsQuantifier() && !operands[0].IsAtomic() {
		return nil, errorf(operands[0], "quantified proposition must be atomic")
	}
	//
	return mk(connective, operands), nil
}

// newLeaf wraps an atom record into a leaf proposition.
func newLeaf(a *atom) *Proposition {
	p := &Proposition{connective: None, atom: a, seen: maskOf(None)}
	p.hash = leafHash(a.id)
	p.atoms = []*Proposition{p}
	//
	return p
}

// mk is the canonicalizing constructor.  Operands are themselves canonical
// (this is an invariant of Proposition), so only the topmost combination has
// to be rewritten: negations of truth constants, double negations, identity
// wrappers, one level of associative flattening, and duplicate removal for
// n-ary connectives.  Canonicalizing an already-canonical tree is a no-op.
func mk(connective Connective, operands []*Proposition) *Proposition {
	switch connective {
	case None:
		return operands[0]
	case Neg:
		arg := operands[0]
		//
		switch {
		case arg == Top:
			return Bottom
		case arg == Bottom:
			return Top
		case arg.connective == Neg:
			return arg.children[0]
		}
	case And, Or:
		operands = flatten(connective, operands)
		//
		switch len(operands) {
		case 0:
			connective = Empty
		case 1:
			return operands[0]
		}
	}
	//
	p := &Proposition{connective: connective, children: operands}
	p.hash = nodeHash(connective, operands)
	p.seen = maskOf(connective)
	//
	for _, q := range operands {
		p.atoms = mergeAtoms(p.atoms, q.atoms)
		p.seen |= q.seen
	}
	//
	return p
}

// flatten splices operands sharing the parent's associative connective into
// the parent's operand list, drops empty propositions, and removes
// duplicates whilst preserving first-seen order.
func flatten(connective Connective, operands []*Proposition) []*Proposition {
	var (
		flat = make([]*Proposition, 0, len(operands))
		dups = make(map[uint64]struct{}, len(operands))
	)
	//
	for _, q := range operands {
		var args []*Proposition
		// splice matching operands
		if q.connective == connective {
			args = q.children
		} else if q.connective == Empty {
			continue
		} else {
			args = []*Proposition{q}
		}
		//
		for _, r := range args {
			if _, seen := dups[r.hash]; !seen {
				dups[r.hash] = struct{}{}
				flat = append(flat, r)
			}
		}
	}
	//
	return flat
}

// ============================================================================
// Combinators
// ============================================================================

// Conjunction returns the conjunction of the given propositions.
func Conjunction(props ...*Proposition) *Proposition {
	if len(props) == 0 {
		return mk(Empty, nil)
	} else if len(props) == 1 {
		return props[0]
	}
	//
	return mk(And, props)
}

// Disjunction returns the disjunction of the given propositions.
func Disjunction(props ...*Proposition) *Proposition {
	if len(props) == 0 {
		return mk(Empty, nil)
	} else if len(props) == 1 {
		return props[0]
	}
	//
	return mk(Or, props)
}

// Exists existentially quantifies the given atom over a body.  An error is
// reported if the binder is not atomic.
func Exists(binder *Proposition, body *Proposition) (*Proposition, error) {
	return New(Exist, binder, body)
}

// ForAll universally quantifies the given atom over a body.  An error is
// reported if the binder is not atomic.
func ForAll(binder *Proposition, body *Proposition) (*Proposition, error) {
	return New(Univ, binder, body)
}

// Not returns the negation of this proposition.
func (p *Proposition) Not() *Proposition {
	return mk(Neg, []*Proposition{p})
}

// And returns the conjunction of this proposition with one or more others.
func (p *Proposition) And(props ...*Proposition) *Proposition {
	return Conjunction(append([]*Proposition{p}, props...)...)
}

// Or returns the disjunction of this proposition with one or more others.
func (p *Proposition) Or(props ...*Proposition) *Proposition {
	return Disjunction(append([]*Proposition{p}, props...)...)
}

// Implies returns the material implication p -> q.
func (p *Proposition) Implies(q *Proposition) *Proposition {
	return mk(RImpl, []*Proposition{p, q})
}

// ImpliedBy returns the material implication p <- q.
func (p *Proposition) ImpliedBy(q *Proposition) *Proposition {
	return mk(LImpl, []*Proposition{p, q})
}

// Iff returns the biconditional p <-> q.
func (p *Proposition) Iff(q *Proposition) *Proposition {
	return mk(Iff, []*Proposition{p, q})
}

// ============================================================================
// Accessors
// ============================================================================

// Connective returns the connective of this proposition.
func (p *Proposition) Connective() Connective {
	return p.connective
}

// Children returns the operand propositions of this node.  The returned slice
// must not be mutated.
func (p *Proposition) Children() []*Proposition {
	return p.children
}

// Len returns the number of operands of this node.
func (p *Proposition) Len() int {
	return len(p.children)
}

// Atoms returns all atomic propositions reachable from this node, sorted by
// id.  The returned slice must not be mutated.
func (p *Proposition) Atoms() []*Proposition {
	return p.atoms
}

// Name returns the volatile display name of an atomic proposition, or the
// empty string for compound propositions.  Names are for printing only and
// are not unique across runs.
func (p *Proposition) Name() string {
	if p.atom == nil {
		return ""
	}
	//
	return p.atom.name
}

// Id returns the process-unique id of an atomic proposition, or zero for
// compound propositions.
func (p *Proposition) Id() uint64 {
	if p.atom == nil {
		return 0
	}
	//
	return p.atom.id
}

// ============================================================================
// Predicates
// ============================================================================

// IsEmpty determines whether this is the empty proposition.
func (p *Proposition) IsEmpty() bool {
	return p.connective == Empty
}

// IsAtomic determines whether this proposition is an atomic leaf.
func (p *Proposition) IsAtomic() bool {
	return p.atom != nil
}

// IsLiteral determines whether this proposition is a literal, i.e. an atomic
// proposition or the negation of one.
func (p *Proposition) IsLiteral() bool {
	return p.IsAtomic() || (p.connective == Neg && p.children[0].IsAtomic())
}

// IsQuantifier determines whether this proposition is a quantifier node (an
// atomic proposition bound existentially or universally), possibly under
// negations.
func (p *Proposition) IsQuantifier() bool {
	if p.connective.IsQuantifier() {
		return p.children[0].IsAtomic()
	}
	//
	return p.connective == Neg && p.children[0].IsQuantifier()
}

// IsQuantified determines whether any quantifier occurs anywhere within this
// proposition.
func (p *Proposition) IsQuantified() bool {
	return p.seen.contains(Exist) || p.seen.contains(Univ)
}

// IsCNF determines whether this proposition is in conjunctive normal form,
// i.e. a conjunction of literals or disjunctions of literals.
func (p *Proposition) IsCNF() bool {
	if p.connective != And {
		return false
	}
	//
	for _, q := range p.children {
		if !q.IsLiteral() && !q.isClause(Or) {
			return false
		}
	}
	//
	return true
}

// IsDNF determines whether this proposition is in disjunctive normal form,
// i.e. a disjunction of literals or conjunctions of literals.
func (p *Proposition) IsDNF() bool {
	if p.connective != Or {
		return false
	}
	//
	for _, q := range p.children {
		if !q.IsLiteral() && !q.isClause(And) {
			return false
		}
	}
	//
	return true
}

// isClause checks whether this node combines literals under the given
// connective.
func (p *Proposition) isClause(connective Connective) bool {
	if p.connective != connective {
		return false
	}
	//
	for _, q := range p.children {
		if !q.IsLiteral() {
			return false
		}
	}
	//
	return true
}

// ============================================================================
// Structural equality
// ============================================================================

// Hash returns the structural hash of this proposition, computed once at
// construction.
func (p *Proposition) Hash() uint64 {
	return p.hash
}

// Equals determines whether two propositions have exactly the same canonical
// shape.  This is syntactic equality, not logical equivalence.
func (p *Proposition) Equals(o *Proposition) bool {
	return p == o || p.hash == o.hash
}

// Contains determines whether a given proposition occurs as a direct operand
// of this node.
func (p *Proposition) Contains(o *Proposition) bool {
	for _, q := range p.children {
		if q.Equals(o) {
			return true
		}
	}
	//
	return false
}

// IsSubPropositionOf determines whether this proposition occurs somewhere
// within another, either as an exact sub-tree or as a subset of the operands
// of a matching n-ary node.
func (p *Proposition) IsSubPropositionOf(o *Proposition) bool {
	if p.Equals(o) {
		return true
	}
	// subset of a matching n-ary node
	if p.connective.Arity() == Nary && p.connective == o.connective {
		subset := true
		//
		for _, q := range p.children {
			subset = subset && o.Contains(q)
		}
		//
		if subset {
			return true
		}
	}
	//
	for _, q := range o.children {
		if p.Equals(q) || (!q.IsAtomic() && p.IsSubPropositionOf(q)) {
			return true
		}
	}
	//
	return false
}

// ============================================================================
// Hashing
// ============================================================================

// 64-bit FNV-1a constants.
const (
	fnvOffset = 0xcbf29ce484222325
	fnvPrime  = 0x100000001b3
)

func mix(h uint64, word uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= word & 0xff
		h *= fnvPrime
		word >>= 8
	}
	//
	return h
}

func leafHash(id uint64) uint64 {
	return mix(fnvOffset, id)
}

func nodeHash(connective Connective, operands []*Proposition) uint64 {
	h := mix(fnvOffset, ^uint64(connective))
	//
	for _, q := range operands {
		h = mix(h, q.hash)
	}
	//
	return h
}

// mergeAtoms merges two id-sorted atom slices, dropping duplicates.
func mergeAtoms(left []*Proposition, right []*Proposition) []*Proposition {
	if len(left) == 0 {
		return right
	} else if len(right) == 0 {
		return left
	}
	//
	merged := make([]*Proposition, 0, len(left)+len(right))
	i, j := 0, 0
	//
	for i < len(left) && j < len(right) {
		switch {
		case left[i].atom.id < right[j].atom.id:
			merged = append(merged, left[i])
			i++
		case left[i].atom.id > right[j].atom.id:
			merged = append(merged, right[j])
			j++
		default:
			merged = append(merged, left[i])
			i++
			j++
		}
	}
	//
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	//
	return merged
}
