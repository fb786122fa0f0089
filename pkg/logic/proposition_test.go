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
	"testing"
)

// Canonical forms

func Test_Prop_01(t *testing.T) {
	testCanonical(t, "a", "a")
}

func Test_Prop_02(t *testing.T) {
	testCanonical(t, "!!a", "a")
}

func Test_Prop_03(t *testing.T) {
	testCanonical(t, "!!!a", "!a")
}

func Test_Prop_04(t *testing.T) {
	testCanonical(t, "!top", "bottom")
}

func Test_Prop_05(t *testing.T) {
	testCanonical(t, "!bottom", "top")
}

// Flattening

func Test_Prop_10(t *testing.T) {
	testCanonical(t, "(a & b) & c", "a & b & c")
}

func Test_Prop_11(t *testing.T) {
	testCanonical(t, "a & (b & c)", "a & b & c")
}

func Test_Prop_12(t *testing.T) {
	testCanonical(t, "(a | b) | (c | d)", "a | b | c | d")
}

func Test_Prop_13(t *testing.T) {
	testCanonical(t, "a & (b | c)", "a & (b | c)")
}

// Duplicate removal

func Test_Prop_20(t *testing.T) {
	testCanonical(t, "a & a", "a")
}

func Test_Prop_21(t *testing.T) {
	testCanonical(t, "a & a & b", "a & b")
}

func Test_Prop_22(t *testing.T) {
	testCanonical(t, "a | (b & c) | a | (b & c)", "a | (b & c)")
}

func Test_Prop_23(t *testing.T) {
	testCanonical(t, "a | b | a | b | a", "a | b")
}

// Construction errors

func Test_Prop_30(t *testing.T) {
	env := make(map[string]*Proposition)
	a := parse(t, "a", env)
	//
	if _, err := New(Neg, a, a); err == nil {
		t.Errorf("expected arity error for binary negation")
	}
}

func Test_Prop_31(t *testing.T) {
	env := make(map[string]*Proposition)
	a := parse(t, "a", env)
	b := parse(t, "b", env)
	//
	if _, err := New(Exist, a.And(b), a); err == nil {
		t.Errorf("expected error for non-atomic quantifier binder")
	}
}

func Test_Prop_32(t *testing.T) {
	env := make(map[string]*Proposition)
	a := parse(t, "a", env)
	// Nilary and unary n-ary applications collapse
	p, err := New(And)
	if err != nil || !p.IsEmpty() {
		t.Errorf("expected empty proposition for nilary conjunction")
	}
	//
	p, err = New(Or, a)
	if err != nil || !p.Equals(a) {
		t.Errorf("expected identity collapse for unary disjunction")
	}
}

// Predicates

func Test_Prop_40(t *testing.T) {
	env := make(map[string]*Proposition)
	//
	if !parse(t, "a", env).IsAtomic() {
		t.Errorf("atom must be atomic")
	}
	//
	if !parse(t, "!a", env).IsLiteral() {
		t.Errorf("negated atom must be a literal")
	}
	//
	if parse(t, "!(a & b)", env).IsLiteral() {
		t.Errorf("negated conjunction must not be a literal")
	}
}

func Test_Prop_41(t *testing.T) {
	env := make(map[string]*Proposition)
	//
	if !parse(t, "? a (a | b)", env).IsQuantifier() {
		t.Errorf("existential must be a quantifier node")
	}
	//
	if !parse(t, "!(? a (a | b))", env).IsQuantified() {
		t.Errorf("formula containing a quantifier must report as quantified")
	}
	//
	if parse(t, "a | b", env).IsQuantified() {
		t.Errorf("quantifier-free formula must not report as quantified")
	}
}

func Test_Prop_42(t *testing.T) {
	env := make(map[string]*Proposition)
	//
	if !parse(t, "(a | !b) & (c | d)", env).IsCNF() {
		t.Errorf("expected CNF shape")
	}
	//
	if parse(t, "(a & b) | c", env).IsCNF() {
		t.Errorf("unexpected CNF shape")
	}
	//
	if !parse(t, "(a & !b) | (c & d)", env).IsDNF() {
		t.Errorf("expected DNF shape")
	}
}

// Containment

func Test_Prop_50(t *testing.T) {
	env := make(map[string]*Proposition)
	p := parse(t, "a & (b | c)", env)
	//
	if !p.Contains(parse(t, "b | c", env)) {
		t.Errorf("expected direct operand containment")
	}
	//
	if p.Contains(parse(t, "b", env)) {
		t.Errorf("containment must not look past direct operands")
	}
}

func Test_Prop_51(t *testing.T) {
	env := make(map[string]*Proposition)
	p := parse(t, "a & (b | !c)", env)
	//
	if !parse(t, "!c", env).IsSubPropositionOf(p) {
		t.Errorf("expected deep subproposition")
	}
	//
	if parse(t, "a & b", env).IsSubPropositionOf(p) {
		t.Errorf("unexpected deep subproposition")
	}
}

// Structural hashing

func Test_Prop_60(t *testing.T) {
	env := make(map[string]*Proposition)
	lhs := parse(t, "a & (b | c)", env)
	rhs := parse(t, "a & (b | c)", env)
	//
	if lhs.Hash() != rhs.Hash() {
		t.Errorf("structurally equal formulae must hash equal")
	}
}

func Test_Prop_61(t *testing.T) {
	env := make(map[string]*Proposition)
	lhs := parse(t, "a & b", env)
	rhs := parse(t, "a | b", env)
	//
	if lhs.Equals(rhs) {
		t.Errorf("conjunction and disjunction must differ")
	}
}

// Atoms

func Test_Prop_70(t *testing.T) {
	env := make(map[string]*Proposition)
	p := parse(t, "(a -> b) & (b -> c)", env)
	//
	if len(p.Atoms()) != 3 {
		t.Errorf("expected 3 atoms, got %d", len(p.Atoms()))
	}
}

// ============================================================================
// Helpers
// ============================================================================

func parse(t *testing.T, input string, env map[string]*Proposition) *Proposition {
	t.Helper()
	//
	term, errs := Parse(input, env)
	// Sanity check errors
	if len(errs) > 0 {
		t.Fatalf("internal failure: %s", errs[0].Message())
	}
	//
	return term
}

// Check that two renditions construct the same canonical tree.  Both sides
// share one environment, such that equal names denote equal atoms.
func testCanonical(t *testing.T, input string, expected string) {
	t.Helper()
	//
	env := make(map[string]*Proposition)
	lhs := parse(t, input, env)
	rhs := parse(t, expected, env)
	//
	if !lhs.Equals(rhs) {
		t.Errorf("not canonical: %s => %s but expected %s", input, lhs, rhs)
	}
	// Canonicalization must be idempotent
	re, err := New(lhs.Connective(), lhs.Children()...)
	//
	if lhs.IsAtomic() {
		return
	} else if err != nil {
		t.Fatalf("internal failure: %s", err)
	} else if !re.Equals(lhs) {
		t.Errorf("not idempotent: %s => %s", lhs, re)
	}
}
