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

import "fmt"

// Arity describes how many operands a connective accepts.  Each arity carries
// a predicate over operand counts which is consulted on every construction.
type Arity int

const (
	// Nilary accepts exactly 0 operands.
	Nilary Arity = iota
	// Unary accepts exactly 1 operand.
	Unary
	// Binary accepts exactly 2 operands.
	Binary
	// Nary accepts 2 or more operands.
	Nary
)

// Accepts determines whether a given number of operands is valid for this
// arity.
func (p Arity) Accepts(n int) bool {
	switch p {
	case Nilary:
		return n == 0
	case Unary:
		return n == 1
	case Binary:
		return n == 2
	case Nary:
		return n >= 2
	}
	//
	return false
}

// String returns a short description of this arity, for use in error output.
func (p Arity) String() string {
	switch p {
	case Nilary:
		return "exactly 0 operands"
	case Unary:
		return "exactly 1 operand"
	case Binary:
		return "exactly 2 operands"
	case Nary:
		return "2 or more operands"
	}
	//
	return "unknown arity"
}

// Connective identifies a logical operator.  Connectives are compared by
// identity, and each has a fixed arity along with a relative binding strength
// (which matters only for parenthesization when printing).
type Connective int

const (
	// Empty is the nilary connective of the empty proposition.
	Empty Connective = iota
	// None is the unary identity connective.  It never survives
	// canonicalization except on atomic leaves.
	None
	// Neg is logical negation.
	Neg
	// Exist is existential quantification, binding one atom to a body.
	Exist
	// Univ is universal quantification, binding one atom to a body.
	Univ
	// RImpl is material implication read left to right (p -> q).
	RImpl
	// LImpl is material implication read right to left (p <- q).
	LImpl
	// Iff is the biconditional (p <-> q).
	Iff
	// And is n-ary conjunction.
	And
	// Or is n-ary disjunction.
	Or
	// number of connectives, for table sizing.
	numConnectives
)

// connectiveInfo fixes the arity and binding strength of every connective.
var connectiveInfo = [numConnectives]struct {
	name     string
	arity    Arity
	strength int
}{
	Empty: {"EMPTY", Nilary, 100},
	None:  {"NONE", Unary, 100},
	Neg:   {"NEG", Unary, 80},
	Exist: {"EXIST", Binary, 80},
	Univ:  {"UNIV", Binary, 80},
	RImpl: {"R_IMPL", Binary, 30},
	LImpl: {"L_IMPL", Binary, 30},
	Iff:   {"IFF", Binary, 20},
	And:   {"AND", Nary, 50},
	Or:    {"OR", Nary, 40},
}

// Arity returns the arity of this connective.
func (c Connective) Arity() Arity {
	return connectiveInfo[c].arity
}

// Strength returns the relative binding strength of this connective.  For
// example, negation binds more strongly than material implication.
func (c Connective) Strength() int {
	return connectiveInfo[c].strength
}

// IsQuantifier determines whether this connective is one of the two
// quantifiers.
func (c Connective) IsQuantifier() bool {
	return c == Exist || c == Univ
}

// String returns the name of this connective.
func (c Connective) String() string {
	if c < 0 || c >= numConnectives {
		return fmt.Sprintf("Connective(%d)", int(c))
	}
	//
	return connectiveInfo[c].name
}

// connectiveMask is a bitset over connectives, used for the memoised set of
// connectives reachable from a given proposition.
type connectiveMask uint16

func maskOf(c Connective) connectiveMask {
	return connectiveMask(1) << uint(c)
}

// contains checks whether a given connective is in this mask.
func (m connectiveMask) contains(c Connective) bool {
	return m&maskOf(c) != 0
}
