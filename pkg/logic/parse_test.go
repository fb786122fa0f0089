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

func Test_Parse_01(t *testing.T) {
	testParses(t, "a", "a")
}

func Test_Parse_02(t *testing.T) {
	testParses(t, "!a", "¬a")
}

func Test_Parse_03(t *testing.T) {
	testParses(t, "a & b & c", "a ∧ b ∧ c")
}

func Test_Parse_04(t *testing.T) {
	testParses(t, "a | (b & c)", "a ∨ (b ∧ c)")
}

func Test_Parse_05(t *testing.T) {
	testParses(t, "a -> b", "a → b")
}

func Test_Parse_06(t *testing.T) {
	testParses(t, "a <- b", "a ← b")
}

func Test_Parse_07(t *testing.T) {
	testParses(t, "a <-> b", "a ↔ b")
}

func Test_Parse_08(t *testing.T) {
	// Junctions bind tighter than implications
	testParses(t, "(a & b) | c -> d", "((a ∧ b) ∨ c) → d")
}

func Test_Parse_09(t *testing.T) {
	// Right implications associate rightwards
	testParses(t, "a -> b -> c", "a → (b → c)")
}

func Test_Parse_10(t *testing.T) {
	testParses(t, "? a (a | b)", "∃a. a ∨ b")
}

func Test_Parse_11(t *testing.T) {
	testParses(t, "# a !a", "∀a. ¬a")
}

func Test_Parse_12(t *testing.T) {
	testParses(t, "? a # b (a -> b)", "∃a. ∀b. a → b")
}

func Test_Parse_13(t *testing.T) {
	testParses(t, "top & !bottom", "⊤")
}

func Test_Parse_14(t *testing.T) {
	testParses(t, "!!a", "a")
}

// Shared environments

func Test_Parse_20(t *testing.T) {
	env := make(map[string]*Proposition)
	lhs := parse(t, "a & b", env)
	rhs := parse(t, "b & a", env)
	// Equal atoms, different operand order
	if len(lhs.Atoms()) != 2 || len(rhs.Atoms()) != 2 {
		t.Fatalf("expected 2 atoms on both sides")
	}
	//
	if lhs.Atoms()[0] != rhs.Atoms()[0] {
		t.Errorf("environment must map equal names to equal atoms")
	}
}

func Test_Parse_21(t *testing.T) {
	lhs, errs1 := Parse("a", nil)
	rhs, errs2 := Parse("a", nil)
	//
	if len(errs1) != 0 || len(errs2) != 0 {
		t.Fatalf("internal failure")
	}
	// Separate environments create separate atoms
	if lhs.Equals(rhs) {
		t.Errorf("separate parses must not share atoms")
	}
}

// Syntax errors

func Test_Parse_30(t *testing.T) {
	testFails(t, "a &")
}

func Test_Parse_31(t *testing.T) {
	testFails(t, "(a | b")
}

func Test_Parse_32(t *testing.T) {
	testFails(t, "a & b | c")
}

func Test_Parse_33(t *testing.T) {
	testFails(t, "a -> b <- c")
}

func Test_Parse_34(t *testing.T) {
	testFails(t, "? (a & b) c")
}

func Test_Parse_35(t *testing.T) {
	testFails(t, "a @ b")
}

func Test_Parse_36(t *testing.T) {
	testFails(t, "a b")
}

// ============================================================================
// Helpers
// ============================================================================

func testParses(t *testing.T, input string, expected string) {
	t.Helper()
	//
	env := make(map[string]*Proposition)
	p := parse(t, input, env)
	//
	if p.String() != expected {
		t.Errorf("%s parses to %s, expected %s", input, p, expected)
	}
}

func testFails(t *testing.T, input string) {
	t.Helper()
	//
	if _, errs := Parse(input, nil); len(errs) == 0 {
		t.Errorf("expected syntax error for %q", input)
	}
}
