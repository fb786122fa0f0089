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
	"strings"
	"testing"
)

func Test_Atom_01(t *testing.T) {
	ids := make(map[uint64]bool, 10000)
	//
	for i := 0; i < 10000; i++ {
		id := NewAtom().Id()
		//
		if ids[id] {
			t.Fatalf("duplicate atom id %d after %d atoms", id, i)
		}
		//
		ids[id] = true
	}
}

func Test_Atom_02(t *testing.T) {
	lhs := NewNamedAtom("x")
	rhs := NewNamedAtom("x")
	// Same name, still distinct atoms
	if lhs.Equals(rhs) {
		t.Errorf("distinct atoms must not be equal")
	}
}

func Test_Atom_03(t *testing.T) {
	atoms := NewAtoms(30)
	//
	if len(atoms) != 30 {
		t.Fatalf("expected 30 atoms, got %d", len(atoms))
	}
	// Volatile names wrap into prime marks after z
	primed := false
	//
	for _, atom := range atoms {
		primed = primed || strings.Contains(atom.Name(), PrimeMark)
	}
	//
	if !primed {
		t.Errorf("expected primed volatile names after exhausting the alphabet")
	}
}

func Test_Atom_04(t *testing.T) {
	if Top.Id() != 1 || Bottom.Id() != 0 {
		t.Errorf("truth constants must have reserved ids")
	}
	//
	if Top.Name() != "top" || Bottom.Name() != "bottom" {
		t.Errorf("truth constants must have reserved names")
	}
}

func Test_Atom_05(t *testing.T) {
	if !Top.Not().Equals(Bottom) || !Bottom.Not().Equals(Top) {
		t.Errorf("negated truth constants must flip")
	}
}
