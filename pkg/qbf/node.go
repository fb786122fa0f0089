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
	"fmt"
	"strings"

	"github.com/consensys/go-prop/pkg/logic"
)

// Node is one vertex of an assignment tree.  Each inner node corresponds to
// the elimination of one prefix entry, with the left child holding the true
// branch and the right child the false branch.  Leaves hold quantifier-free
// formulae.
type Node struct {
	pqbf       *PQBF
	quantifier logic.Connective
	left       *Node
	right      *Node
}

// AssignmentTree eliminates the entire prefix of this formula, branching on
// true and false for every quantified atom in prefix order.  The resulting
// tree has one level per prefix entry and 2^n leaves.
func (p *PQBF) AssignmentTree() (*Node, error) {
	if len(p.prefix) == 0 {
		return &Node{p, logic.Empty, nil, nil}, nil
	}
	//
	trueBranch, falseBranch, err := p.PartialEvalOutermost()
	if err != nil {
		return nil, err
	}
	//
	left, err := trueBranch.AssignmentTree()
	if err != nil {
		return nil, err
	}
	//
	right, err := falseBranch.AssignmentTree()
	if err != nil {
		return nil, err
	}
	//
	return &Node{p, p.prefix[0].Quantifier, left, right}, nil
}

// Formula returns the prenex formula held at this node.
func (n *Node) Formula() *PQBF {
	return n.pqbf
}

// Quantifier returns the quantifier eliminated at this node, or the empty
// connective at a leaf.
func (n *Node) Quantifier() logic.Connective {
	return n.quantifier
}

// IsLeaf checks whether this node has no further quantifiers to eliminate.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Left returns the true branch of this node, or nil at a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the false branch of this node, or nil at a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Eval determines the truth value of this subtree.  An existential node holds
// if either branch holds, a universal node only if both do.  A leaf holds if
// its matrix simplified to the constant true.
func (n *Node) Eval() bool {
	if n.IsLeaf() {
		return n.pqbf.matrix.Equals(logic.Top)
	}
	//
	if n.quantifier == logic.Exist {
		return n.left.Eval() || n.right.Eval()
	}
	//
	return n.left.Eval() && n.right.Eval()
}

// String renders this tree with one line per node, indenting each level and
// annotating branches with the assignment taken.
func (n *Node) String() string {
	var builder strings.Builder
	//
	n.write(&builder, 0, "")
	//
	return builder.String()
}

func (n *Node) write(builder *strings.Builder, depth int, branch string) {
	indent := strings.Repeat("  ", depth)
	//
	fmt.Fprintf(builder, "%s%s%s\n", indent, branch, n.pqbf.String())
	//
	if !n.IsLeaf() {
		atom := n.pqbf.prefix[0].Atom.Name()
		n.left.write(builder, depth+1, atom+"=1: ")
		n.right.write(builder, depth+1, atom+"=0: ")
	}
}
