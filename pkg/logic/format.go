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

import "strings"

// FormatEntry determines how the operands of one connective are rendered:
// the prefix is prepended, the joiner is placed between operands, and the
// suffix is appended.
type FormatEntry struct {
	Prefix string
	Joiner string
	Suffix string
}

// Format is a per-connective template table for rendering propositions into a
// concrete syntax.  Three fixed tables exist: Pretty (Unicode operators),
// Limboole (the ASCII syntax understood by the external solver) and LaTeX.
type Format struct {
	entries [numConnectives]FormatEntry
	// prime is the table-specific replacement for the prime mark in
	// volatile names.
	prime string
	// top and bottom are the renderings of the truth constants.
	top    string
	bottom string
}

// Entry returns the format entry of the given connective.
func (f *Format) Entry(connective Connective) FormatEntry {
	return f.entries[connective]
}

// format renders the given operand strings under a connective.
func (f *Format) format(connective Connective, operands ...string) string {
	entry := f.entries[connective]
	return entry.Prefix + strings.Join(operands, entry.Joiner) + entry.Suffix
}

// Pretty renders propositions with Unicode logical operators.
var Pretty = &Format{
	entries: [numConnectives]FormatEntry{
		Empty: {"", "", ""},
		None:  {"", "", ""},
		Neg:   {"¬", "", ""},
		Exist: {"∃", ". ", ""},
		Univ:  {"∀", ". ", ""},
		RImpl: {"", " → ", ""},
		LImpl: {"", " ← ", ""},
		Iff:   {"", " ↔ ", ""},
		And:   {"", " ∧ ", ""},
		Or:    {"", " ∨ ", ""},
	},
	prime:  PrimeMark,
	top:    "⊤",
	bottom: "⊥",
}

// Limboole renders propositions in the syntax accepted by the limboole
// solver.  Limboole has no native truth constants, hence top and bottom are
// rendered as tautological and contradictory placeholder expressions.
var Limboole = &Format{
	entries: [numConnectives]FormatEntry{
		Empty: {"", "", ""},
		None:  {"", "", ""},
		Neg:   {"!", "", ""},
		Exist: {"?", " ", ""},
		Univ:  {"#", " ", ""},
		RImpl: {"", " -> ", ""},
		LImpl: {"", " <- ", ""},
		Iff:   {"", " <-> ", ""},
		And:   {"", " & ", ""},
		Or:    {"", " | ", ""},
	},
	prime:  "-prime",
	top:    "(top | !top)",
	bottom: "(bottom & !bottom)",
}

// LaTeX renders propositions as LaTeX math markup.
var LaTeX = &Format{
	entries: [numConnectives]FormatEntry{
		Empty: {"", "", ""},
		None:  {"", "", ""},
		Neg:   {`\neg{`, "", `}`},
		Exist: {`\exists `, `\colon `, ""},
		Univ:  {`\forall `, `\colon `, ""},
		RImpl: {"", ` \rightarrow `, ""},
		LImpl: {"", ` \leftarrow `, ""},
		Iff:   {"", ` \leftrightarrow `, ""},
		And:   {"", ` \land `, ""},
		Or:    {"", ` \lor `, ""},
	},
	prime:  `\prime`,
	top:    `\top`,
	bottom: `\bot`,
}

// Format renders this proposition under the given template table.  A child is
// wrapped in parentheses unless it is the root, is itself unary, or is the
// quantified body of a quantifier.
func (p *Proposition) Format(f *Format) string {
	return p.formatRec(f, nil)
}

func (p *Proposition) formatRec(f *Format, parent *Proposition) string {
	var out string
	//
	if p.atom != nil {
		out = f.format(p.connective, p.atomName(f))
	} else {
		operands := make([]string, len(p.children))
		for i, q := range p.children {
			operands[i] = q.formatRec(f, p)
		}
		//
		out = f.format(p.connective, operands...)
	}
	// decide parenthesization
	bare := parent == nil ||
		p.connective.Arity() == Unary ||
		(parent.connective.IsQuantifier() && p == parent.children[1])
	//
	if bare {
		return out
	}
	//
	return "(" + out + ")"
}

// atomName renders the display name of an atomic leaf under the given table,
// substituting the truth constants and escaping the prime mark.
func (p *Proposition) atomName(f *Format) string {
	switch p {
	case Top:
		return f.top
	case Bottom:
		return f.bottom
	}
	//
	return strings.ReplaceAll(p.atom.name, PrimeMark, f.prime)
}

// String renders this proposition with Unicode operators.
func (p *Proposition) String() string {
	return p.Format(Pretty)
}

// ToLimboole renders this proposition in limboole syntax.
func (p *Proposition) ToLimboole() string {
	return p.Format(Limboole)
}

// ToLaTeX renders this proposition as LaTeX math, wrapped in $ delimiters.
func (p *Proposition) ToLaTeX() string {
	return "$" + p.Format(LaTeX) + "$"
}
