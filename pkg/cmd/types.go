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
)

var typesCmd = &cobra.Command{
	Use:   "types <steps>",
	Short: "enumerate every type of a given type-size.",
	Long:  `Enumerate every type whose type-size (arrow count, under the default penalty) equals the given step count.`,
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		steps, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Printf("invalid step count %q: %s\n", args[0], err)
			os.Exit(1)
		}

		for _, t := range synth.Types(uint(steps)) {
			fmt.Println(t)
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
