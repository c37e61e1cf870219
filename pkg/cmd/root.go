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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// newRootCommand constructs the base command, along with all of its
// subcommands.  A fresh tree is built on each call so that flag state is not
// shared between executions.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modgroup",
		Short: "A toolbox for modular groups.",
		Long: `Explore the additive group Z/N and the multiplicative group (Z/N)*
	of units modulo N, along with the number theory underpinning them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			if !GetFlag(cmd, "version") {
				_ = cmd.Help()
				return
			}
			//
			out := cmd.OutOrStdout()
			//
			fmt.Fprint(out, "modgroup ")
			if Version != "" {
				// Built via "make"
				fmt.Fprintf(out, "%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Fprintf(out, "%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Fprintf(out, "(unknown version)")
			}
			fmt.Fprintln(out)
		},
	}
	//
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	//
	rootCmd.AddCommand(newTableCommand())
	rootCmd.AddCommand(newTotientCommand())
	rootCmd.AddCommand(newGcdCommand())
	rootCmd.AddCommand(newInverseCommand())
	rootCmd.AddCommand(newOrderCommand())
	//
	return rootCmd
}

// Execute runs the command tree against the process arguments.  This is called
// by main.main().
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
