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
package limboole

import (
	"strings"
	"testing"

	"github.com/consensys/go-prop/pkg/logic"
)

func Test_Model_01(t *testing.T) {
	env := make(map[string]*logic.Proposition)
	p := parse(t, "a & !b", env)
	//
	stdout := "% SATISFIABLE formula ( assignment follows )\na = 1\nb = 0\n"
	//
	model, err := parseModel(stdout, p)
	if err != nil {
		t.Fatalf("internal failure: %s", err)
	}
	//
	if len(model) != 2 || !model[env["a"]] || model[env["b"]] {
		t.Errorf("unexpected model: %s", model)
	}
	// Model must satisfy the formula
	value, err := p.Eval(model)
	if err != nil {
		t.Fatalf("internal failure: %s", err)
	}
	//
	if !value {
		t.Errorf("model does not satisfy formula")
	}
}

func Test_Model_02(t *testing.T) {
	env := make(map[string]*logic.Proposition)
	p := parse(t, "a | top", env)
	// Truth constant placeholders are skipped
	stdout := "% SATISFIABLE formula\na = 1\ntop = 1\n"
	//
	model, err := parseModel(stdout, p)
	if err != nil {
		t.Fatalf("internal failure: %s", err)
	}
	//
	if len(model) != 1 {
		t.Errorf("expected single binding, got %s", model)
	}
}

func Test_Model_03(t *testing.T) {
	env := make(map[string]*logic.Proposition)
	p := parse(t, "a", env)
	//
	stdout := "% SATISFIABLE formula\na = x\n"
	//
	if _, err := parseModel(stdout, p); err == nil {
		t.Errorf("expected error for malformed truth value")
	}
}

func Test_Model_04(t *testing.T) {
	// Primed names match their escaped rendering
	atom := logic.NewNamedAtom("a" + logic.PrimeMark)
	//
	stdout := "% SATISFIABLE formula\na-prime = 1\n"
	//
	model, err := parseModel(stdout, atom)
	if err != nil {
		t.Fatalf("internal failure: %s", err)
	}
	//
	if !model[atom] {
		t.Errorf("expected primed atom bound true")
	}
}

func Test_Solver_01(t *testing.T) {
	solver := &Solver{}
	// Quantified formulas must go through the prenex layer
	env := make(map[string]*logic.Proposition)
	p := parse(t, "? a a", env)
	//
	if _, err := solver.Valid(p); err == nil {
		t.Errorf("expected error for quantified formula")
	}
	//
	if _, err := solver.Sat(p); err == nil {
		t.Errorf("expected error for quantified formula")
	}
}

func Test_Solver_02(t *testing.T) {
	solver := &Solver{Binary: "no-such-solver-binary"}
	//
	env := make(map[string]*logic.Proposition)
	p := parse(t, "a | b", env)
	//
	if _, err := solver.Valid(p); err == nil {
		t.Errorf("expected error for missing solver binary")
	}
}

func Test_Marker_01(t *testing.T) {
	if !strings.Contains("% VALID formula\n", validMarker) {
		t.Errorf("marker mismatch")
	}
	//
	if strings.Contains("% NOT VALID formula\n% INVALID\n", validMarker) {
		t.Errorf("unexpected marker match")
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
