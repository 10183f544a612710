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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carlosgmartin/razor/pkg/oracle"
	"github.com/carlosgmartin/razor/pkg/synth"
)

var searchTargets = map[string]oracle.Target{
	"add": {
		Name:  "add",
		Arity: 2,
		Func:  func(args []uint) uint { return args[0] + args[1] },
	},
	"mul": {
		Name:  "mul",
		Arity: 2,
		Func:  func(args []uint) uint { return args[0] * args[1] },
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search for a term matching a target function, under the canonical context.",
	Long: `Enumerate terms(context, s) for increasing s, stopping as soon as a candidate
agrees with the named target function on every input up to --max-input.`,
	Run: func(cmd *cobra.Command, _ []string) {
		name := GetString(cmd, "target")

		target, ok := searchTargets[name]
		if !ok {
			fmt.Printf("unknown target %q (known: add, mul)\n", name)
			os.Exit(1)
		}

		maxSteps := GetUint(cmd, "max-steps")
		maxInput := GetUint(cmd, "max-input")

		engine := synth.NewEngine()
		ctx := synth.CanonicalContext()

		log.WithFields(log.Fields{"target": name, "max_steps": maxSteps, "max_input": maxInput}).Info("starting search")

		found, ok := oracle.Search(engine, ctx, target, maxSteps, maxInput)
		if !ok {
			fmt.Printf("no candidate found for %q within %d steps\n", name, maxSteps)
			os.Exit(1)
		}

		fmt.Printf("%s : %s\n", found.Term, found.Type)
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("target", "add", "target function to search for (add, mul)")
	searchCmd.Flags().Uint("max-steps", 12, "maximum enumeration step to try")
	searchCmd.Flags().Uint("max-input", 4, "largest input value tested against the target")
}
