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
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-prop/pkg/logic"
	"github.com/consensys/go-prop/pkg/util/source"
)

// PrefixEntry pairs a quantifier with the atom it binds.
type PrefixEntry struct {
	Quantifier logic.Connective
	Atom       *logic.Proposition
}

// PQBF is a quantified boolean formula in prenex form, that is a (possibly
// empty) quantifier prefix followed by a quantifier-free matrix.  Like
// propositions, a PQBF is immutable once constructed.
type PQBF struct {
	prefix []PrefixEntry
	matrix *logic.Proposition
}

// New constructs a prenex-form formula from an explicit prefix and matrix.
// Entries binding an atom already bound earlier in the prefix are dropped
// (the first occurrence wins).  Construction fails if an entry is not a
// proper quantification of a variable atom, or if the matrix itself contains
// quantifiers.
func New(prefix []PrefixEntry, matrix *logic.Proposition) (*PQBF, *source.SyntaxError) {
	var (
		dedup = make([]PrefixEntry, 0, len(prefix))
		bound = make(map[uint64]struct{}, len(prefix))
	)
	//
	for _, entry := range prefix {
		if !entry.Quantifier.IsQuantifier() {
			return nil, prefixError(entry.Atom, matrix, "prefix entry must be a quantifier")
		} else if !entry.Atom.IsAtomic() || entry.Atom == logic.Top || entry.Atom == logic.Bottom {
			return nil, prefixError(entry.Atom, matrix, "quantified proposition must be a variable atom")
		}
		// Keep first occurrence only
		if _, ok := bound[entry.Atom.Id()]; !ok {
			bound[entry.Atom.Id()] = struct{}{}
			dedup = append(dedup, entry)
		}
	}
	//
	if matrix.IsQuantified() {
		return nil, matrixError(matrix)
	}
	//
	return &PQBF{dedup, matrix}, nil
}

// FromFormula decomposes a quantified proposition into prenex form by walking
// its leading quantifier nodes.  The first node which is not a quantifier
// becomes the matrix, hence the formula must already be in prenex shape for
// the decomposition to succeed.
func FromFormula(formula *logic.Proposition) (*PQBF, *source.SyntaxError) {
	var prefix []PrefixEntry
	//
	for formula.Connective().IsQuantifier() {
		var (
			binder = formula.Children()[0]
			body   = formula.Children()[1]
		)
		//
		if len(binder.Atoms()) != 1 {
			return nil, prefixError(binder, formula, "quantifier must bind exactly one atom")
		}
		//
		prefix = append(prefix, PrefixEntry{formula.Connective(), binder})
		formula = body
	}
	//
	return New(prefix, formula)
}

// Prefix returns the quantifier prefix of this formula.
func (p *PQBF) Prefix() []PrefixEntry {
	return p.prefix
}

// Matrix returns the quantifier-free matrix of this formula.
func (p *PQBF) Matrix() *logic.Proposition {
	return p.matrix
}

// Formula reassembles this prenex form into a single quantified proposition.
func (p *PQBF) Formula() *logic.Proposition {
	formula := p.matrix
	// Wrap from the innermost quantifier outwards
	for i := len(p.prefix) - 1; i >= 0; i-- {
		// Entries are validated on construction, hence this cannot fail.
		formula, _ = logic.New(p.prefix[i].Quantifier, p.prefix[i].Atom, formula)
	}
	//
	return formula
}

// QuantifiedVars returns the atoms bound by the prefix, in prefix order.
func (p *PQBF) QuantifiedVars() []*logic.Proposition {
	vars := make([]*logic.Proposition, len(p.prefix))
	//
	for i, entry := range p.prefix {
		vars[i] = entry.Atom
	}
	//
	return vars
}

// FreeVars returns the atoms of the matrix which the prefix does not bind.
func (p *PQBF) FreeVars() []*logic.Proposition {
	var (
		free  []*logic.Proposition
		bound = make(map[uint64]struct{}, len(p.prefix))
	)
	//
	for _, entry := range p.prefix {
		bound[entry.Atom.Id()] = struct{}{}
	}
	//
	for _, atom := range p.matrix.Atoms() {
		if _, ok := bound[atom.Id()]; !ok {
			free = append(free, atom)
		}
	}
	//
	return free
}

// OutermostQuantifier returns the quantifier of the first prefix entry, or
// the empty connective when the prefix is exhausted.
func (p *PQBF) OutermostQuantifier() logic.Connective {
	if len(p.prefix) == 0 {
		return logic.Empty
	}
	//
	return p.prefix[0].Quantifier
}

// PartialEvalOutermost eliminates the outermost quantifier by substituting
// its atom with true and false respectively, simplifying each resulting
// matrix.  The returned pair holds the true branch first.
func (p *PQBF) PartialEvalOutermost() (*PQBF, *PQBF, error) {
	if len(p.prefix) == 0 {
		return nil, nil, &logic.Error{
			Msg:     "cannot eliminate quantifier of a quantifier-free formula",
			Formula: p.String(),
		}
	}
	//
	var (
		atom = p.prefix[0].Atom
		rest = p.prefix[1:]
	)
	//
	trueMatrix, err := p.matrix.PartialEval(logic.Assignment{atom: true}, true)
	if err != nil {
		return nil, nil, err
	}
	//
	falseMatrix, err := p.matrix.PartialEval(logic.Assignment{atom: false}, true)
	if err != nil {
		return nil, nil, err
	}
	//
	return &PQBF{rest, trueMatrix}, &PQBF{rest, falseMatrix}, nil
}

// String renders this formula with the pretty format table.
func (p *PQBF) String() string {
	return p.Formula().String()
}

// ToLimboole renders this formula in the syntax accepted by the limboole
// solver.
func (p *PQBF) ToLimboole() string {
	return p.Formula().ToLimboole()
}

// matrixError reports a quantifier inside the matrix, pointing at the first
// quantifier symbol of the rendered matrix.
func matrixError(matrix *logic.Proposition) *source.SyntaxError {
	var (
		text    = matrix.String()
		srcfile = source.NewSourceFile("matrix", text)
		offset  = runeIndexAny(text, "∃∀")
	)
	//
	return srcfile.SyntaxError(source.NewSpan(offset, offset+1), "matrix must be quantifier free")
}

// prefixError reports an invalid prefix entry, pointing at the rendering of
// the offending subterm within the overall formula.
func prefixError(sub *logic.Proposition, formula *logic.Proposition, msg string) *source.SyntaxError {
	var (
		text    = formula.String()
		srcfile = source.NewSourceFile("formula", text)
		needle  = sub.String()
		offset  = 0
		length  = utf8.RuneCountInString(needle)
	)
	//
	if i := strings.Index(text, needle); i >= 0 {
		offset = utf8.RuneCountInString(text[:i])
	} else {
		length = 0
	}
	//
	return srcfile.SyntaxError(source.NewSpan(offset, offset+length), msg)
}

// runeIndexAny locates the first rune of chars within text, as a rune index.
func runeIndexAny(text string, chars string) int {
	if i := strings.IndexAny(text, chars); i >= 0 {
		return utf8.RuneCountInString(text[:i])
	}
	//
	return 0
}
