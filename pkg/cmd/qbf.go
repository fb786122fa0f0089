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

	"github.com/consensys/go-prop/pkg/limboole"
	"github.com/consensys/go-prop/pkg/qbf"
	"github.com/spf13/cobra"

	"golang.org/x/term"
)

// qbfCmd decomposes a quantified formula into prenex form and evaluates it.
var qbfCmd = &cobra.Command{
	Use:   "qbf [flags] formula",
	Short: "Evaluate a quantified formula in prenex form.",
	Long: "Decompose a quantified formula into its prenex form and determine " +
		"its truth value by quantifier elimination.  With --tree, the full " +
		"assignment tree is printed.  With --solver-check, the formula is " +
		"handed to the solver's QBF backend instead.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		formula := parseFormula(args)
		//
		prenex, serr := qbf.FromFormula(formula)
		if serr != nil {
			printSyntaxError(serr)
			os.Exit(2)
		}
		//
		if free := prenex.FreeVars(); len(free) != 0 {
			names := make([]string, len(free))
			for i, atom := range free {
				names[i] = atom.Name()
			}
			//
			fmt.Printf("formula has free variables: %s\n", strings.Join(names, ", "))
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "solver-check") {
			solver := &limboole.Solver{
				Binary:  GetString(cmd, "solver"),
				Timeout: GetDuration(cmd, "timeout"),
			}
			//
			holds, err := solver.ValidQBF(prenex)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			printVerdict(holds, false)
			//
			return
		}
		//
		tree, err := prenex.AssignmentTree()
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "tree") {
			printTree(tree)
		}
		//
		printVerdict(tree.Eval(), false)
	},
}

// printTree prints an assignment tree, truncating lines which would wrap on
// the current terminal.
func printTree(tree *qbf.Node) {
	width := 80
	//
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	//
	for _, line := range strings.Split(strings.TrimRight(tree.String(), "\n"), "\n") {
		runes := []rune(line)
		//
		if len(runes) > width {
			line = string(runes[:width-1]) + "…"
		}
		//
		fmt.Println(line)
	}
}

func init() {
	rootCmd.AddCommand(qbfCmd)
	qbfCmd.Flags().Bool("tree", false, "print the full assignment tree")
	qbfCmd.Flags().Bool("solver-check", false, "check validity via the solver's QBF backend")
	qbfCmd.Flags().String("solver", limboole.DefaultBinary, "solver executable to invoke")
	qbfCmd.Flags().Duration("timeout", limboole.DefaultTimeout, "abort the solver after this duration")
}
