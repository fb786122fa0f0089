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
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/consensys/go-prop/pkg/logic"
	"github.com/consensys/go-prop/pkg/qbf"

	log "github.com/sirupsen/logrus"
)

// DefaultBinary is the solver executable looked up on the path when no
// explicit binary is configured.
const DefaultBinary = "limboole"

// DefaultTimeout bounds a single solver invocation when no explicit timeout
// is configured.
const DefaultTimeout = 60 * time.Second

// Markers written by the solver on success.  Their absence in an otherwise
// clean run means invalid (resp. unsatisfiable).
const (
	validMarker       = "% VALID formula"
	satisfiableMarker = "% SATISFIABLE formula"
)

// Solver bridges to the external limboole executable by piping a rendered
// formula into its standard input.  The zero value uses the defaults above.
type Solver struct {
	// Binary is the solver executable (path or name looked up on the path).
	Binary string
	// Timeout bounds a single invocation.
	Timeout time.Duration
}

// Valid determines whether a given quantifier-free proposition holds under
// every assignment.
func (p *Solver) Valid(prop *logic.Proposition) (bool, error) {
	if err := checkUnquantified(prop); err != nil {
		return false, err
	}
	//
	stdout, err := p.run(prop.ToLimboole())
	if err != nil {
		return false, err
	}
	//
	return strings.Contains(stdout, validMarker), nil
}

// Sat determines whether a given quantifier-free proposition holds under at
// least one assignment.
func (p *Solver) Sat(prop *logic.Proposition) (bool, error) {
	if err := checkUnquantified(prop); err != nil {
		return false, err
	}
	//
	stdout, err := p.run(prop.ToLimboole(), "-s")
	if err != nil {
		return false, err
	}
	//
	return strings.Contains(stdout, satisfiableMarker), nil
}

// Model determines whether a given quantifier-free proposition is
// satisfiable and, if so, returns a satisfying assignment over its atoms.
// The assignment is nil when the proposition is unsatisfiable.
func (p *Solver) Model(prop *logic.Proposition) (logic.Assignment, error) {
	if err := checkUnquantified(prop); err != nil {
		return nil, err
	}
	//
	stdout, err := p.run(prop.ToLimboole(), "-s")
	if err != nil {
		return nil, err
	}
	//
	if !strings.Contains(stdout, satisfiableMarker) {
		return nil, nil
	}
	//
	return parseModel(stdout, prop)
}

// ValidQBF determines whether a given prenex-form formula holds, delegating
// to the solver's QBF backend.
func (p *Solver) ValidQBF(formula *qbf.PQBF) (bool, error) {
	stdout, err := p.run(formula.ToLimboole(), "--depqbf")
	if err != nil {
		return false, err
	}
	//
	return strings.Contains(stdout, validMarker), nil
}

// SatQBF determines whether a given prenex-form formula is satisfiable,
// delegating to the solver's QBF backend.
func (p *Solver) SatQBF(formula *qbf.PQBF) (bool, error) {
	stdout, err := p.run(formula.ToLimboole(), "-s", "--depqbf")
	if err != nil {
		return false, err
	}
	//
	return strings.Contains(stdout, satisfiableMarker), nil
}

// run pipes the rendered formula into a fresh solver subprocess and captures
// its output.
func (p *Solver) run(input string, flags ...string) (string, error) {
	var (
		binary  = p.Binary
		timeout = p.Timeout
		//
		stdout bytes.Buffer
		stderr bytes.Buffer
	)
	//
	if binary == "" {
		binary = DefaultBinary
	}
	//
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	//
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	//
	cmd := exec.CommandContext(ctx, binary, flags...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	//
	log.Debugf("invoking %s %s", binary, strings.Join(flags, " "))
	log.Debugf("formula: %s", input)
	//
	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)
	//
	log.Debugf("solver completed in %s", elapsed)
	//
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "", &TimeoutError{elapsed}
	case err != nil:
		return "", &ExitError{strings.TrimSpace(stderr.String()), err}
	}
	//
	return stdout.String(), nil
}

// checkUnquantified rejects propositions which must go through the prenex
// layer instead.
func checkUnquantified(prop *logic.Proposition) error {
	if prop.IsQuantified() {
		return &logic.Error{
			Msg:     "quantified proposition requires prenex form",
			Formula: prop.String(),
		}
	}
	//
	return nil
}

// parseModel extracts a satisfying assignment from the solver's output.
// Each model line has the shape "name = 0" or "name = 1"; names are matched
// against the proposition's atoms by their solver rendering, and the
// placeholder names of the truth constants are skipped.
func parseModel(stdout string, prop *logic.Proposition) (logic.Assignment, error) {
	var (
		model = logic.Assignment{}
		atoms = make(map[string]*logic.Proposition)
	)
	//
	for _, atom := range prop.Atoms() {
		atoms[atom.ToLimboole()] = atom
	}
	//
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "%") || !strings.Contains(line, "=") {
			continue
		}
		//
		name, value, _ := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		// Placeholders for the truth constants
		if name == "top" || name == "bottom" {
			continue
		}
		//
		atom, ok := atoms[name]
		if !ok {
			continue
		}
		//
		switch value {
		case "0":
			model[atom] = false
		case "1":
			model[atom] = true
		default:
			return nil, &ModelError{strings.TrimSpace(line)}
		}
	}
	//
	return model, nil
}
