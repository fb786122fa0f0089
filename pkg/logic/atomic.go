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
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// PrimeMark is the character appended to volatile names once the alphabet has
// been exhausted (i.e. "a′" follows "z").  Format tables which cannot emit it
// directly define a textual replacement.
const PrimeMark = "′"

// atom carries the leaf state of an atomic proposition: a process-unique id
// and a volatile display name.  The name is used only for printing and is not
// guaranteed unique across runs; identity is by id.
type atom struct {
	id   uint64
	name string
}

// atomRegistry is the process-wide mutable state behind atom creation.  All
// access is guarded by the mutex.
var atomRegistry = struct {
	sync.Mutex
	// ids holds every id handed out so far, to rule out collisions.
	ids map[uint64]struct{}
	// next volatile name state.
	letter byte
	primes int
}{ids: make(map[uint64]struct{})}

// nextID reserves a fresh process-unique id.  Ids are derived from the
// monotonic clock with a random offset and checked against the registry, so a
// collision only forces another draw.  The registry lock must be held.
func nextID() uint64 {
	for {
		id := uint64(time.Now().UnixNano()) + rand.Uint64N(1_000_000)
		//
		if _, taken := atomRegistry.ids[id]; !taken {
			atomRegistry.ids[id] = struct{}{}
			return id
		}
	}
}

// nextVolatileName produces the next display name in the sequence a, b, ...,
// z, a′, b′, etc.  The registry lock must be held.
func nextVolatileName() string {
	if atomRegistry.letter == 0 {
		atomRegistry.letter = 'a'
	} else if atomRegistry.letter < 'z' {
		atomRegistry.letter++
	} else {
		atomRegistry.letter = 'a'
		atomRegistry.primes++
	}
	//
	return string(atomRegistry.letter) + strings.Repeat(PrimeMark, atomRegistry.primes)
}

// NewAtom creates a fresh atomic proposition with a generated volatile name.
// Two atoms are never structurally equal, even if their display names happen
// to collide.
func NewAtom() *Proposition {
	atomRegistry.Lock()
	defer atomRegistry.Unlock()
	//
	return newLeaf(&atom{nextID(), nextVolatileName()})
}

// NewNamedAtom creates a fresh atomic proposition with the given display
// name.  The name only affects printing; the atom is as unique as any other.
func NewNamedAtom(name string) *Proposition {
	atomRegistry.Lock()
	defer atomRegistry.Unlock()
	//
	return newLeaf(&atom{nextID(), name})
}

// NewAtoms creates n fresh atomic propositions in one go.
func NewAtoms(n uint) []*Proposition {
	atoms := make([]*Proposition, n)
	for i := range atoms {
		atoms[i] = NewAtom()
	}
	//
	return atoms
}

// Top is the constant-true proposition.  It carries the reserved id 1 and
// must never appear as a key in an assignment.
var Top *Proposition

// Bottom is the constant-false proposition.  It carries the reserved id 0 and
// must never appear as a key in an assignment.
var Bottom *Proposition

func init() {
	atomRegistry.ids[0] = struct{}{}
	atomRegistry.ids[1] = struct{}{}
	//
	Top = newLeaf(&atom{1, "top"})
	Bottom = newLeaf(&atom{0, "bottom"})
}
