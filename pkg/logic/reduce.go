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

// Reduce rewrites this proposition into a syntactically more compact,
// logically equivalent form.  Applied rules include implication and
// biconditional elimination against the truth constants, short-circuiting of
// conjunctions and disjunctions, removal of complementary pairs, absorption
// of literals into compound siblings, factoring via distributivity, and
// re-detection of implication and biconditional shapes.  Reduction never
// changes the truth value of the formula under any assignment.
//
// The rules are heuristic pattern matches applied bottom-up with one
// depth-limited settle pass to catch patterns exposed by a rewrite; the
// rule-application order is significant for the output shape (though not for
// its meaning).
func (p *Proposition) Reduce() *Proposition {
	return p.recReduce(0)
}

func (p *Proposition) recReduce(depth int) *Proposition {
	if p.IsLiteral() {
		return p
	}
	//
	switch p.connective {
	case RImpl:
		if q := reduceImplication(p.children[0], p.children[1]); q != nil {
			return q
		}
	case LImpl:
		if q := reduceImplication(p.children[1], p.children[0]); q != nil {
			return q
		}
	case Iff:
		if q := reduceBiconditional(p.children[0], p.children[1]); q != nil {
			return q
		}
	case And, Or:
		if q := p.reduceNary(); q != nil {
			return q
		}
	}
	// no rule matched, reduce operands and settle
	children := make([]*Proposition, len(p.children))
	for i, q := range p.children {
		children[i] = q.recReduce(0)
	}
	//
	reduced := mk(p.connective, children)
	if depth < 1 {
		return reduced.recReduce(depth + 1)
	}
	//
	return reduced
}

// reduceImplication applies the implication rules to lhs -> rhs, returning
// nil if none match.  Left implications are handled by flipping the operands
// beforehand.
func reduceImplication(lhs *Proposition, rhs *Proposition) *Proposition {
	switch {
	case lhs.Equals(Bottom), rhs.Equals(Top), lhs.Equals(rhs):
		// _|_ -> a, a -> T, a -> a
		return Top
	case lhs.connective == And && lhs.Contains(rhs):
		// a & b -> a
		return Top
	case rhs.connective == Or && rhs.Contains(lhs):
		// a -> a | b
		return Top
	case rhs.Equals(Bottom), rhs.connective == And && rhs.Contains(lhs.Not()):
		// a -> _|_, a -> !a & b
		return lhs.Not()
	case lhs.Equals(Top), lhs.connective == Or && lhs.Contains(rhs.Not()):
		// T -> a, !a | b -> a
		return rhs
	}
	//
	return nil
}

// reduceBiconditional applies the biconditional rules to lhs <-> rhs,
// returning nil if none match.
func reduceBiconditional(lhs *Proposition, rhs *Proposition) *Proposition {
	switch {
	case lhs.Equals(Top):
		return rhs
	case rhs.Equals(Top):
		return lhs
	case lhs.Equals(Bottom):
		return rhs.Not()
	case rhs.Equals(Bottom):
		return lhs.Not()
	case lhs.Equals(rhs):
		return Top
	case lhs.Equals(rhs.Not()):
		return Bottom
	}
	//
	return nil
}

// reduceNary applies the conjunction/disjunction rules to this node,
// returning nil if none match.
func (p *Proposition) reduceNary() *Proposition {
	var absorbed, short *Proposition
	// decide which truth constant short-circuits and which is absorbed
	if p.connective == And {
		absorbed, short = Top, Bottom
	} else {
		absorbed, short = Bottom, Top
	}
	//
	if p.Contains(short) {
		return short
	}
	//
	if p.Contains(absorbed) {
		return mk(p.connective, without(p.children, absorbed)).recReduce(0)
	}
	// pairwise rules
	for i, lhs := range p.children {
		for j, rhs := range p.children {
			if i == j {
				continue
			}
			//
			if q := p.reducePair(lhs, rhs); q != nil {
				return q
			}
		}
	}
	//
	return nil
}

// reducePair applies the pairwise conjunction/disjunction rules to two
// distinct operands of this node, returning nil if none match.
func (p *Proposition) reducePair(lhs *Proposition, rhs *Proposition) *Proposition {
	opposite := And
	if p.connective == And {
		opposite = Or
	}
	//
	switch {
	case lhs.Equals(rhs.Not()):
		// complementary pair collapses the whole node
		if p.connective == And {
			return Bottom
		}
		//
		return Top
	case lhs.IsLiteral() != rhs.IsLiteral():
		// absorption of a literal against a compound sibling
		compound, literal := lhs, rhs
		if lhs.IsLiteral() {
			compound, literal = rhs, lhs
		}
		//
		if compound.connective == opposite && compound.Contains(literal) {
			return mk(p.connective, without(p.children, compound)).recReduce(0)
		}
	case !lhs.IsLiteral() && !rhs.IsLiteral() &&
		lhs.connective == rhs.connective && lhs.connective == opposite:
		// distributivity: factor the common part out of two compounds
		if q := p.factorPair(lhs, rhs); q != nil {
			return q
		}
	}
	// implication shape hidden in a disjunction: !a | b becomes a -> b
	if p.connective == Or && lhs.connective == Neg && rhs.connective != Neg {
		impl := lhs.children[0].Implies(rhs)
		rest := without(without(p.children, lhs), rhs)
		//
		return mk(Or, append([]*Proposition{impl}, rest...)).recReduce(0)
	}
	// biconditional shape hidden in a conjunction of opposite implications
	if p.connective == And && isImplication(lhs) && isImplication(rhs) {
		a, b := implicationOperands(lhs)
		c, d := implicationOperands(rhs)
		//
		if a.Equals(d) && b.Equals(c) {
			iff := a.Iff(b)
			rest := without(without(p.children, lhs), rhs)
			//
			return mk(And, append([]*Proposition{iff}, rest...)).recReduce(0)
		}
	}
	//
	return nil
}

// factorPair factors the common operands out of two compound siblings which
// share the connective opposite to this node's, e.g. (P & Q) | (P & R)
// becomes P & (Q | R).  When one sibling's operands subsume the other's, the
// larger sibling is dropped instead (it contributes nothing).
func (p *Proposition) factorPair(lhs *Proposition, rhs *Proposition) *Proposition {
	factor := intersect(lhs.children, rhs.children)
	if len(factor) == 0 {
		return nil
	}
	//
	lhsRest := difference(lhs.children, factor)
	rhsRest := difference(rhs.children, factor)
	// subsumption, e.g. (P & Q) | (P & Q & R) = P & Q
	if len(lhsRest) == 0 {
		return mk(p.connective, without(p.children, rhs)).recReduce(0)
	} else if len(rhsRest) == 0 {
		return mk(p.connective, without(p.children, lhs)).recReduce(0)
	}
	//
	inner := mk(p.connective, []*Proposition{
		mk(lhs.connective, lhsRest),
		mk(rhs.connective, rhsRest),
	})
	factored := mk(lhs.connective, append(append([]*Proposition{}, factor...), inner))
	rest := without(without(p.children, lhs), rhs)
	//
	return mk(p.connective, append([]*Proposition{factored}, rest...)).recReduce(0)
}

// isImplication checks for either implication connective.
func isImplication(p *Proposition) bool {
	return p.connective == RImpl || p.connective == LImpl
}

// implicationOperands returns premise and conclusion, flipping left
// implications into the right-implication view.
func implicationOperands(p *Proposition) (*Proposition, *Proposition) {
	if p.connective == LImpl {
		return p.children[1], p.children[0]
	}
	//
	return p.children[0], p.children[1]
}

// without returns the operands with all occurrences of the given proposition
// removed.
func without(children []*Proposition, drop *Proposition) []*Proposition {
	rest := make([]*Proposition, 0, len(children))
	//
	for _, q := range children {
		if !q.Equals(drop) {
			rest = append(rest, q)
		}
	}
	//
	return rest
}

// intersect returns the operands of lhs also occurring in rhs, in lhs order.
func intersect(lhs []*Proposition, rhs []*Proposition) []*Proposition {
	seen := make(map[uint64]struct{}, len(rhs))
	for _, q := range rhs {
		seen[q.hash] = struct{}{}
	}
	//
	common := make([]*Proposition, 0, len(lhs))
	//
	for _, q := range lhs {
		if _, ok := seen[q.hash]; ok {
			common = append(common, q)
		}
	}
	//
	return common
}

// difference returns the operands of lhs not occurring in rhs, in lhs order.
func difference(lhs []*Proposition, rhs []*Proposition) []*Proposition {
	seen := make(map[uint64]struct{}, len(rhs))
	for _, q := range rhs {
		seen[q.hash] = struct{}{}
	}
	//
	rest := make([]*Proposition, 0, len(lhs))
	//
	for _, q := range lhs {
		if _, ok := seen[q.hash]; !ok {
			rest = append(rest, q)
		}
	}
	//
	return rest
}
