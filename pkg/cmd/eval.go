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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-prop/pkg/logic"
	"github.com/spf13/cobra"
)

// evalCmd evaluates a formula under an explicit assignment.
var evalCmd = &cobra.Command{
	Use:   "eval [flags] formula",
	Short: "Evaluate a formula under an assignment.",
	Long: "Evaluate a formula under the assignment given via --assign " +
		"(e.g. --assign \"a=1,b=0\").  Atoms left unassigned cause an error " +
		"unless --partial is given, in which case the residual formula is " +
		"printed instead of a truth value.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			environment = make(map[string]*logic.Proposition)
			input       = strings.Join(args, " ")
		)
		//
		formula, errs := logic.Parse(input, environment)
		//
		if len(errs) != 0 {
			for _, err := range errs {
				printSyntaxError(&err)
			}
			//
			os.Exit(2)
		}
		//
		assignment, err := parseAssignment(GetString(cmd, "assign"), environment)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "partial") {
			residual, err := formula.PartialEval(assignment, !GetFlag(cmd, "raw"))
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			fmt.Println(residual.Format(logic.Pretty))
			//
			return
		}
		//
		value, err := formula.Eval(assignment)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(value)
	},
}

// parseAssignment parses a comma-separated list of name=value pairs, where
// each value is 0 or 1.  Names must occur in the formula being evaluated.
func parseAssignment(text string, environment map[string]*logic.Proposition) (logic.Assignment, error) {
	assignment := logic.Assignment{}
	//
	if text == "" {
		return assignment, nil
	}
	//
	for _, pair := range strings.Split(text, ",") {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		//
		if !ok {
			return nil, fmt.Errorf("malformed assignment %q", pair)
		}
		//
		atom, found := environment[name]
		if !found {
			return nil, fmt.Errorf("unknown atom %q in assignment", name)
		}
		//
		switch value {
		case "0":
			assignment[atom] = false
		case "1":
			assignment[atom] = true
		default:
			return nil, fmt.Errorf("malformed truth value %q for atom %q", value, name)
		}
	}
	//
	return assignment, nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().String("assign", "", "comma-separated name=value pairs (value 0 or 1)")
	evalCmd.Flags().Bool("partial", false, "substitute the assignment and print the residual formula")
	evalCmd.Flags().Bool("raw", false, "with --partial, skip simplification of the residual")
}
