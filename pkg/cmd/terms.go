// Copyright 2026 Carlos Martin.
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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/carlosgmartin/razor/pkg/synth"
	"github.com/carlosgmartin/razor/pkg/term"
)

var termsCmd = &cobra.Command{
	Use:   "terms <steps>",
	Short: "enumerate accepted terms of a given size, under the canonical context.",
	Long: `Enumerate every term surviving the redundancy filter at the given step, under
the canonical context (zero, succ, iter), printing its normal form and type.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		steps, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Printf("invalid step count %q: %s\n", args[0], err)
			os.Exit(1)
		}

		lisp := GetFlag(cmd, "lisp")

		ctx := synth.CanonicalContext()
		for _, b := range synth.Terms(ctx, uint(steps)) {
			nf, err := term.Normalize(b.Term)
			if err != nil {
				fmt.Printf("%s : %s  (failed to normalize: %s)\n", b.Term, b.Type, err)
				continue
			}

			if lisp {
				fmt.Printf("%s : %s\n", term.Lisp(nf).String(false), term.TypeLisp(b.Type).String(false))
				continue
			}

			fmt.Printf("%s : %s\n", nf, b.Type)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(termsCmd)
	termsCmd.Flags().Bool("lisp", false, "print terms in S-expression form instead of infix")
}
