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
	"slices"

	"github.com/consensys/go-prop/pkg/util/source"
	"github.com/consensys/go-prop/pkg/util/source/lex"
)

// Parse a given input string into a proposition.  The syntax follows that of
// the limboole solver, extended with the quantifier prefixes "?" and "#".
// The environment maps names to previously constructed atoms, such that the
// same name always parses to the same atom; unknown names are registered on
// first use.  Passing nil gives every call a fresh namespace.  The names
// "top" and "bottom" are reserved for the truth constants.
func Parse(input string, environment map[string]*Proposition) (*Proposition, []source.SyntaxError) {
	var (
		srcfile = source.NewSourceFile("formula", input)
		lexer   = lex.NewLexer[rune](srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")

		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	//
	if environment == nil {
		environment = make(map[string]*Proposition)
	}
	//
	parser := &Parser{environment, srcfile, tokens, 0}
	// Parse term
	p, errs := parser.parseTerm()
	// Check all parsed
	if len(errs) == 0 && !parser.Done() {
		return nil, parser.syntaxErrors(parser.lookahead(), "unknown token")
	}
	// All good!
	return p, errs
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// IDENTIFIER signals an atom name.
const IDENTIFIER uint = 4

// NOT represents logical negation
const NOT uint = 5

// AND represents logical conjunction
const AND uint = 6

// OR represents logical disjunction
const OR uint = 7

// RIGHT_IMPL represents a right implication X -> Y
const RIGHT_IMPL uint = 8

// LEFT_IMPL represents a left implication X <- Y
const LEFT_IMPL uint = 9

// IFF represents a biconditional X <-> Y
const IFF uint = 10

// EXISTS represents an existential quantifier prefix
const EXISTS uint = 11

// FORALL represents a universal quantifier prefix
const FORALL uint = 12

// IMPLICATIONS captures the implication connectives.
var IMPLICATIONS = []uint{RIGHT_IMPL, LEFT_IMPL}

// JUNCTIONS captures the n-ary connectives.
var JUNCTIONS = []uint{AND, OR}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r')))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Unit('′'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('!'), NOT),
	lex.Rule(lex.Unit('&'), AND),
	lex.Rule(lex.Unit('|'), OR),
	lex.Rule(lex.Unit('<', '-', '>'), IFF),
	lex.Rule(lex.Unit('<', '-'), LEFT_IMPL),
	lex.Rule(lex.Unit('-', '>'), RIGHT_IMPL),
	lex.Rule(lex.Unit('?'), EXISTS),
	lex.Rule(lex.Unit('#'), FORALL),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Parser provides a recursive descent parser for the limboole formula syntax.
type Parser struct {
	environment map[string]*Proposition
	srcfile     *source.File
	tokens      []lex.Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

// Biconditionals bind weakest and chain to the left.
func (p *Parser) parseTerm() (*Proposition, []source.SyntaxError) {
	term, errs := p.parseImplication()
	//
	for len(errs) == 0 && p.follows(IFF) {
		p.expect(IFF)
		//
		var rhs *Proposition
		//
		rhs, errs = p.parseImplication()
		//
		if len(errs) == 0 {
			term = term.Iff(rhs)
		}
	}
	//
	return term, errs
}

// Implications of one kind may be chained (right implications associate to
// the right, left implications to the left), but mixing both kinds in one
// chain is ambiguous and rejected.
func (p *Parser) parseImplication() (*Proposition, []source.SyntaxError) {
	var (
		term, errs = p.parseJunction()
		terms      []*Proposition
	)
	// initialise lookahead
	kind := p.lookahead().Kind
	//
	for len(errs) == 0 && p.follows(IMPLICATIONS...) {
		// Sanity check
		if !p.follows(kind) {
			return nil, p.syntaxErrors(p.lookahead(), "braces required")
		}
		// Consume connective
		p.expect(kind)
		//
		var tmp *Proposition
		//
		tmp, errs = p.parseJunction()
		// Accumulate arguments
		terms = append(terms, tmp)
	}
	//
	switch {
	case len(errs) != 0:
		return term, errs
	case len(terms) == 0:
		return term, nil
	case kind == RIGHT_IMPL:
		terms = append([]*Proposition{term}, terms...)
		// fold rightwards
		term = terms[len(terms)-1]
		for i := len(terms) - 2; i >= 0; i-- {
			term = terms[i].Implies(term)
		}
		//
		return term, nil
	case kind == LEFT_IMPL:
		// fold leftwards
		for _, tmp := range terms {
			term = term.ImpliedBy(tmp)
		}
		//
		return term, nil
	}
	//
	panic("unreachable")
}

// Conjunctions and disjunctions are n-ary, but mixing them in one chain is
// ambiguous and rejected.
func (p *Parser) parseJunction() (*Proposition, []source.SyntaxError) {
	var (
		term, errs = p.parseUnitTerm()
		terms      []*Proposition
	)
	// initialise lookahead
	kind := p.lookahead().Kind
	//
	for len(errs) == 0 && p.follows(JUNCTIONS...) {
		// Sanity check
		if !p.follows(kind) {
			return nil, p.syntaxErrors(p.lookahead(), "braces required")
		}
		// Consume connective
		p.expect(kind)
		//
		var tmp *Proposition
		//
		tmp, errs = p.parseUnitTerm()
		// Accumulate arguments
		terms = append(terms, tmp)
	}
	//
	switch {
	case len(errs) != 0:
		return term, errs
	case len(terms) == 0:
		return term, nil
	case kind == AND:
		return term.And(terms...), nil
	case kind == OR:
		return term.Or(terms...), nil
	}
	//
	panic("unreachable")
}

func (p *Parser) parseUnitTerm() (*Proposition, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketedTerm()
	case NOT:
		p.expect(NOT)
		//
		term, errs := p.parseUnitTerm()
		//
		if len(errs) == 0 {
			term = term.Not()
		}
		//
		return term, errs
	case EXISTS, FORALL:
		return p.parseQuantifier()
	case IDENTIFIER:
		return p.parseAtom(), nil
	}
	//
	return nil, p.syntaxErrors(token, "unknown expression")
}

func (p *Parser) parseBracketedTerm() (*Proposition, []source.SyntaxError) {
	p.expect(LBRACE)
	//
	term, errs := p.parseTerm()
	//
	if len(errs) == 0 && !p.match(RBRACE) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return term, errs
}

// A quantifier prefix binds a single atom over the unit term which follows
// it, hence a compound body requires braces (e.g. "?a (b | c)").
func (p *Parser) parseQuantifier() (*Proposition, []source.SyntaxError) {
	token := p.expect(p.lookahead().Kind)
	// Parse bound atom
	if !p.follows(IDENTIFIER) {
		return nil, p.syntaxErrors(p.lookahead(), "expected quantified atom")
	}
	//
	binder := p.parseAtom()
	// Parse quantified body
	body, errs := p.parseUnitTerm()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	var (
		term *Proposition
		err  error
	)
	//
	if token.Kind == EXISTS {
		term, err = Exists(binder, body)
	} else {
		term, err = ForAll(binder, body)
	}
	//
	if err != nil {
		return nil, p.syntaxErrors(token, err.Error())
	}
	//
	return term, nil
}

func (p *Parser) parseAtom() *Proposition {
	id := p.expect(IDENTIFIER)
	name := p.string(id)
	// Truth constants are keywords
	switch name {
	case "top":
		return Top
	case "bottom":
		return Bottom
	}
	// Check whether already registered
	if atom, ok := p.environment[name]; ok {
		return atom
	}
	//
	atom := NewNamedAtom(name)
	p.environment[name] = atom
	//
	return atom
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
