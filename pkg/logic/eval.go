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

import (
	"sort"
	"strconv"
	"strings"
)

// Assignment maps atomic propositions to truth values.  The truth constants
// Top and Bottom must never appear as keys.
type Assignment map[*Proposition]bool

// String renders this assignment for error and log output, with entries
// sorted by display name.
func (a Assignment) String() string {
	entries := make([]string, 0, len(a))
	for p, v := range a {
		entries = append(entries, p.Name()+": "+strconv.FormatBool(v))
	}
	//
	sort.Strings(entries)
	//
	return "{" + strings.Join(entries, ", ") + "}"
}

// check rejects assignments which bind the truth constants.
func (a Assignment) check() error {
	if _, ok := a[Top]; ok {
		return &Error{"cannot assign to Top in assignment", a.String()}
	}
	//
	if _, ok := a[Bottom]; ok {
		return &Error{"cannot assign to Bottom in assignment", a.String()}
	}
	//
	return nil
}

// Eval computes the truth value of this proposition under the given
// assignment.  Errors are reported for assignments binding Top or Bottom,
// for quantified formulas (quantifier elimination must go through the QBF
// layer), for the empty proposition (which has no truth value without
// context), and for atomic propositions missing from the assignment.
func (p *Proposition) Eval(assignment Assignment) (bool, error) {
	if err := assignment.check(); err != nil {
		return false, err
	}
	//
	if p.IsQuantified() {
		return false, errorf(p, "no support for evaluating quantified formulas, see the qbf package instead")
	}
	//
	return p.evalRec(assignment)
}

func (p *Proposition) evalRec(assignment Assignment) (bool, error) {
	// truth constants and atoms
	switch {
	case p == Top:
		return true, nil
	case p == Bottom:
		return false, nil
	case p.IsAtomic():
		value, ok := assignment[p]
		if !ok {
			return false, errorf(p, "no matching truth value for proposition in assignment %s", assignment)
		}
		//
		return value, nil
	}
	//
	switch p.connective {
	case Empty:
		return false, errorf(p, "cannot determine truth value of empty proposition without context")
	case Neg:
		value, err := p.children[0].evalRec(assignment)
		return !value, err
	case RImpl:
		return p.evalImplication(assignment, p.children[0], p.children[1])
	case LImpl:
		return p.evalImplication(assignment, p.children[1], p.children[0])
	case Iff:
		lhs, err := p.children[0].evalRec(assignment)
		if err != nil {
			return false, err
		}
		//
		rhs, err := p.children[1].evalRec(assignment)
		//
		return lhs == rhs, err
	case And:
		for _, q := range p.children {
			value, err := q.evalRec(assignment)
			if err != nil || !value {
				return false, err
			}
		}
		//
		return true, nil
	case Or:
		for _, q := range p.children {
			value, err := q.evalRec(assignment)
			if err != nil || value {
				return value, err
			}
		}
		//
		return false, nil
	}
	//
	return false, errorf(p, "no evaluation case for connective %s", p.connective)
}

func (p *Proposition) evalImplication(assignment Assignment, lhs *Proposition, rhs *Proposition) (bool, error) {
	premise, err := lhs.evalRec(assignment)
	if err != nil {
		return false, err
	} else if !premise {
		return true, nil
	}
	//
	return rhs.evalRec(assignment)
}

// PartialEval substitutes the assigned atomic propositions with the truth
// constants Top and Bottom, leaving the rest of the tree structurally intact
// (modulo re-canonicalization).  With simplify set, the substituted
// proposition is additionally passed through Expand followed by Reduce.
func (p *Proposition) PartialEval(assignment Assignment, simplify bool) (*Proposition, error) {
	if err := assignment.check(); err != nil {
		return nil, err
	}
	//
	if p.IsQuantified() {
		return nil, errorf(p, "no support for evaluating quantified formulas, see the qbf package instead")
	}
	//
	prop := p.partialEvalRec(assignment)
	if simplify {
		prop = prop.Expand().Reduce()
	}
	//
	return prop, nil
}

func (p *Proposition) partialEvalRec(assignment Assignment) *Proposition {
	if p.IsAtomic() {
		if value, ok := assignment[p]; ok {
			if value {
				return Top
			}
			//
			return Bottom
		}
		//
		return p
	}
	//
	children := make([]*Proposition, len(p.children))
	for i, q := range p.children {
		children[i] = q.partialEvalRec(assignment)
	}
	//
	return mk(p.connective, children)
}
