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

	"github.com/consensys/go-prop/pkg/logic"
	"github.com/spf13/cobra"
)

// simplifyCmd rewrites a formula using the reduction (or expansion) engine.
var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] formula",
	Short: "Simplify a formula.",
	Long: "Simplify a formula by applying reduction rules (tautologies, " +
		"contradictions, absorption, distributivity).  Alternatively, expand " +
		"implications and biconditionals into their and/or/not form, or push " +
		"negations down onto the atoms.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		formula := parseFormula(args)
		//
		switch {
		case GetFlag(cmd, "expand"):
			formula = formula.Expand()
		case GetFlag(cmd, "negations"):
			formula = formula.SimplifyNegations()
		default:
			formula = formula.Expand().Reduce()
		}
		//
		switch {
		case GetFlag(cmd, "latex"):
			fmt.Println(formula.ToLaTeX())
		case GetFlag(cmd, "limboole"):
			fmt.Println(formula.ToLimboole())
		default:
			fmt.Println(formula.Format(logic.Pretty))
		}
	},
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	simplifyCmd.Flags().Bool("expand", false, "expand implications and biconditionals only")
	simplifyCmd.Flags().Bool("negations", false, "push negations down onto atoms only")
	simplifyCmd.Flags().Bool("latex", false, "print the result as LaTeX markup")
	simplifyCmd.Flags().Bool("limboole", false, "print the result in limboole syntax")
}
