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
package qbf

import (
	"testing"

	"github.com/consensys/go-prop/pkg/logic"
)

func Test_Pqbf_01(t *testing.T) {
	env := make(map[string]*logic.Proposition)
	prenex := fromFormula(t, "? a (a | !a)", env)
	//
	if len(prenex.Prefix()) != 1 {
		t.Fatalf("expected prefix of length 1, got %d", len(prenex.Prefix()))
	}
	//
	if !prenex.Matrix().Equals(parse(t, "a | !a", env)) {
		t.Errorf("unexpected matrix: %s", prenex.Matrix())
	}
}

func Test_Pqbf_02(t *testing.T) {
	env := make(map[string]*logic.Proposition)
	prenex := fromFormula(t, "? a # b (a -> b)", env)
	//
	if len(prenex.Prefix()) != 2 {
		t.Fatalf("expected prefix of length 2, got %d", len(prenex.Prefix()))
	}
	//
	if prenex.OutermostQuantifier() != logic.Exist {
		t.Errorf("unexpected outermost quantifier")
	}
	//
	if prenex.Prefix()[1].Quantifier != logic.Univ {
		t.Errorf("unexpected inner quantifier")
	}
}

func Test_Pqbf_03(t *testing.T) {
	// Round trip through Formula
	env := make(map[string]*logic.Proposition)
	formula := parse(t, "? a # b (a -> b)", env)
	//
	prenex, err := FromFormula(formula)
	if err != nil {
		t.Fatalf("internal failure: %s", err.Message())
	}
	//
	if !prenex.Formula().Equals(formula) {
		t.Errorf("round trip changed formula: %s", prenex.Formula())
	}
}

func Test_Pqbf_04(t *testing.T) {
	// Quantifier below the matrix is rejected
	env := make(map[string]*logic.Proposition)
	formula := parse(t, "!(? a a)", env)
	//
	if _, err := FromFormula(formula); err == nil {
		t.Errorf("expected prenex error for quantified matrix")
	}
}

func Test_Pqbf_05(t *testing.T) {
	// Duplicate prefix entries keep the first occurrence
	env := make(map[string]*logic.Proposition)
	formula := parse(t, "? a # a a", env)
	//
	prenex, err := FromFormula(formula)
	if err != nil {
		t.Fatalf("internal failure: %s", err.Message())
	}
	//
	if len(prenex.Prefix()) != 1 || prenex.Prefix()[0].Quantifier != logic.Exist {
		t.Errorf("expected deduplicated prefix keeping the first entry")
	}
}

func Test_Pqbf_06(t *testing.T) {
	env := make(map[string]*logic.Proposition)
	prenex := fromFormula(t, "? a (a & b)", env)
	//
	free := prenex.FreeVars()
	//
	if len(free) != 1 || free[0] != env["b"] {
		t.Errorf("expected exactly b free")
	}
	//
	vars := prenex.QuantifiedVars()
	//
	if len(vars) != 1 || vars[0] != env["a"] {
		t.Errorf("expected exactly a quantified")
	}
}

func Test_Pqbf_07(t *testing.T) {
	env := make(map[string]*logic.Proposition)
	prenex := fromFormula(t, "? a (a & b)", env)
	//
	trueBranch, falseBranch, err := prenex.PartialEvalOutermost()
	if err != nil {
		t.Fatalf("internal failure: %s", err)
	}
	//
	if !trueBranch.Matrix().Equals(env["b"]) {
		t.Errorf("unexpected true branch: %s", trueBranch.Matrix())
	}
	//
	if !falseBranch.Matrix().Equals(logic.Bottom) {
		t.Errorf("unexpected false branch: %s", falseBranch.Matrix())
	}
}

func Test_Pqbf_08(t *testing.T) {
	env := make(map[string]*logic.Proposition)
	prenex := fromFormula(t, "a | !a", env)
	//
	if _, _, err := prenex.PartialEvalOutermost(); err == nil {
		t.Errorf("expected error for empty prefix")
	}
}

func Test_Pqbf_09(t *testing.T) {
	// Negated quantifier below the prefix stops the walk and is rejected
	env := make(map[string]*logic.Proposition)
	formula := parse(t, "? a !(# b b)", env)
	//
	if _, err := FromFormula(formula); err == nil {
		t.Errorf("expected prenex error for quantified matrix")
	}
}

// Assignment trees

func Test_Tree_01(t *testing.T) {
	testTree(t, "? a (a | !a)", true)
}

func Test_Tree_02(t *testing.T) {
	testTree(t, "# a (a | !a)", true)
}

func Test_Tree_03(t *testing.T) {
	testTree(t, "# a a", false)
}

func Test_Tree_04(t *testing.T) {
	testTree(t, "? a a", true)
}

func Test_Tree_05(t *testing.T) {
	// For every a there is a matching b
	testTree(t, "# a ? b (a <-> b)", true)
}

func Test_Tree_06(t *testing.T) {
	// One b cannot match every a
	testTree(t, "? b # a (a <-> b)", false)
}

func Test_Tree_07(t *testing.T) {
	env := make(map[string]*logic.Proposition)
	prenex := fromFormula(t, "? a # b (a & b)", env)
	//
	tree, err := prenex.AssignmentTree()
	if err != nil {
		t.Fatalf("internal failure: %s", err)
	}
	// Two prefix entries give two levels above the leaves
	if tree.IsLeaf() || tree.Left().IsLeaf() || !tree.Left().Left().IsLeaf() {
		t.Errorf("unexpected tree shape")
	}
	//
	if tree.Quantifier() != logic.Exist || tree.Left().Quantifier() != logic.Univ {
		t.Errorf("unexpected quantifiers in tree")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func parse(t *testing.T, input string, env map[string]*logic.Proposition) *logic.Proposition {
	t.Helper()
	//
	term, errs := logic.Parse(input, env)
	// Sanity check errors
	if len(errs) > 0 {
		t.Fatalf("internal failure: %s", errs[0].Message())
	}
	//
	return term
}

func fromFormula(t *testing.T, input string, env map[string]*logic.Proposition) *PQBF {
	t.Helper()
	//
	prenex, err := FromFormula(parse(t, input, env))
	if err != nil {
		t.Fatalf("internal failure: %s", err.Message())
	}
	//
	return prenex
}

func testTree(t *testing.T, input string, expected bool) {
	t.Helper()
	//
	env := make(map[string]*logic.Proposition)
	prenex := fromFormula(t, input, env)
	//
	tree, err := prenex.AssignmentTree()
	if err != nil {
		t.Fatalf("internal failure: %s", err)
	}
	//
	if actual := tree.Eval(); actual != expected {
		t.Errorf("%s evaluates to %t, expected %t", input, actual, expected)
	}
}
