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

// Package cmd implements the razor command-line driver: a thin shell
// around pkg/term, pkg/synth and pkg/oracle that is itself outside the
// core's scope.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "razor",
	Short: "A bottom-up program synthesizer for a small typed lambda calculus.",
	Long: `razor enumerates well-typed lambda terms over naturals (zero, succ, and the
primitive recursor iter), normalizes and deduplicates them, and searches
for one matching a target function.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		if !GetFlag(cmd, "version") {
			cmd.Help() //nolint:errcheck
			return
		}

		fmt.Print("razor ")

		switch {
		case Version != "":
			// Built via "make"
			fmt.Printf("%s", Version)
		default:
			if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
		}

		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(); it only needs to happen
// once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:errcheck
func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
