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

	"github.com/consensys/go-prop/pkg/limboole"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// checkCmd determines validity or satisfiability via the external solver.
var checkCmd = &cobra.Command{
	Use:   "check [flags] formula",
	Short: "Check validity or satisfiability of a formula.",
	Long: "Check validity (default) or satisfiability (--sat) of a formula " +
		"by handing it to the limboole solver.  With --model, a satisfying " +
		"assignment is printed when one exists.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			formula = parseFormula(args)
			//
			solver = &limboole.Solver{
				Binary:  GetString(cmd, "solver"),
				Timeout: GetDuration(cmd, "timeout"),
			}
			//
			holds bool
			err   error
		)
		//
		switch {
		case GetFlag(cmd, "model"):
			model, merr := solver.Model(formula)
			//
			if merr != nil {
				err = merr
			} else if model == nil {
				holds = false
			} else {
				holds = true
				//
				fmt.Println(model.String())
			}
		case GetFlag(cmd, "sat"):
			holds, err = solver.Sat(formula)
		default:
			holds, err = solver.Valid(formula)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		printVerdict(holds, GetFlag(cmd, "sat") || GetFlag(cmd, "model"))
	},
}

// printVerdict reports the solver outcome, colouring the verdict when the
// output is a terminal.
func printVerdict(holds bool, satMode bool) {
	switch {
	case holds && satMode:
		color.Green("SATISFIABLE")
	case holds:
		color.Green("VALID")
	case satMode:
		color.Red("UNSATISFIABLE")
	default:
		color.Red("INVALID")
	}
	// Mirror the solver's exit convention
	if !holds {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("sat", false, "check satisfiability instead of validity")
	checkCmd.Flags().Bool("model", false, "print a satisfying assignment (implies --sat)")
	checkCmd.Flags().String("solver", limboole.DefaultBinary, "solver executable to invoke")
	checkCmd.Flags().Duration("timeout", limboole.DefaultTimeout, "abort the solver after this duration")
}
