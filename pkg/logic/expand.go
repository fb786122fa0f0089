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

// Expand rewrites this proposition into a syntactically less compact,
// logically equivalent form: implications and biconditionals are eliminated
// in favour of negation, conjunction and disjunction, and literals are
// distributed over compound siblings of the opposite connective.  The result
// is built only from literals, negation, conjunction and disjunction
// (quantifiers are left untouched).
func (p *Proposition) Expand() *Proposition {
	if p.IsLiteral() {
		return p
	}
	//
	switch p.connective {
	case RImpl:
		lhs, rhs := p.children[0].Expand(), p.children[1].Expand()
		// a -> b becomes !a | b
		return lhs.Not().Or(rhs).Expand()
	case LImpl:
		lhs, rhs := p.children[0].Expand(), p.children[1].Expand()
		// a <- b becomes a | !b
		return lhs.Or(rhs.Not()).Expand()
	case Iff:
		lhs, rhs := p.children[0].Expand(), p.children[1].Expand()
		// a <-> b becomes (a & b) | (!a & !b)
		return lhs.And(rhs).Or(lhs.Not().And(rhs.Not())).Expand()
	case And, Or:
		return p.expandNary()
	}
	// expand operands, default exit
	children := make([]*Proposition, len(p.children))
	for i, q := range p.children {
		children[i] = q.Expand()
	}
	//
	return mk(p.connective, children)
}

// expandNary distributes a literal operand over a compound sibling of the
// opposite connective, e.g. a & (b | c) becomes (a & b) | (a & c), and
// recursively re-expands the result.
func (p *Proposition) expandNary() *Proposition {
	opposite := And
	if p.connective == And {
		opposite = Or
	}
	//
	children := make([]*Proposition, len(p.children))
	for i, q := range p.children {
		children[i] = q.Expand()
	}
	//
	for _, literal := range children {
		if !literal.IsLiteral() {
			continue
		}
		//
		for _, compound := range children {
			if compound.IsLiteral() || compound.connective != opposite {
				continue
			}
			// distribute the literal over the compound's operands
			distributed := make([]*Proposition, len(compound.children))
			for i, r := range compound.children {
				distributed[i] = mk(p.connective, []*Proposition{literal, r})
			}
			//
			expanded := mk(opposite, distributed)
			rest := without(without(children, literal), compound)
			//
			return mk(p.connective, append([]*Proposition{expanded}, rest...)).Expand()
		}
	}
	//
	return mk(p.connective, children)
}

// SimplifyNegations pushes negations inward as far as possible: double
// negations vanish, negated implications and biconditionals are unfolded,
// negated quantifiers flip, and De Morgan's laws are applied to negated
// conjunctions and disjunctions.
func (p *Proposition) SimplifyNegations() *Proposition {
	if p.IsAtomic() {
		return p
	}
	//
	if p.connective == Neg {
		arg := p.children[0]
		//
		switch arg.connective {
		case RImpl:
			// !(a -> b) becomes a & !b
			lhs, rhs := arg.children[0], arg.children[1]
			return lhs.SimplifyNegations().And(rhs.Not().SimplifyNegations())
		case LImpl:
			// !(a <- b) becomes !a & b
			lhs, rhs := arg.children[0], arg.children[1]
			return lhs.Not().SimplifyNegations().And(rhs.SimplifyNegations())
		case Iff:
			// !(a <-> b) becomes (a | b) & (!a | !b)
			lhs, rhs := arg.children[0], arg.children[1]
			either := lhs.SimplifyNegations().Or(rhs.SimplifyNegations())
			notBoth := lhs.Not().SimplifyNegations().Or(rhs.Not().SimplifyNegations())
			//
			return either.And(notBoth)
		case Univ:
			// !#a body becomes ?a !body
			body := arg.children[1].Not().SimplifyNegations()
			return mk(Exist, []*Proposition{arg.children[0], body})
		case Exist:
			// !?a body becomes #a !body
			body := arg.children[1].Not().SimplifyNegations()
			return mk(Univ, []*Proposition{arg.children[0], body})
		case And, Or:
			// De Morgan
			flipped := Or
			if arg.connective == Or {
				flipped = And
			}
			//
			negated := make([]*Proposition, len(arg.children))
			for i, q := range arg.children {
				negated[i] = q.Not().SimplifyNegations()
			}
			//
			return mk(flipped, negated)
		}
	}
	// no negation, simply apply to all operands
	children := make([]*Proposition, len(p.children))
	for i, q := range p.children {
		children[i] = q.SimplifyNegations()
	}
	//
	return mk(p.connective, children)
}
