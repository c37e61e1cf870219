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
	"strconv"

	"github.com/consensys/go-modgroup/pkg/group"
	"github.com/consensys/go-modgroup/pkg/util"
	"github.com/consensys/go-modgroup/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTableCommand() *cobra.Command {
	tableCmd := &cobra.Command{
		Use:   "table [flags] modulus",
		Short: "print every element of a modular group with its order and subgroup.",
		Long: `Print every element of the group of units (Z/N)* for a given modulus N,
	along with the order of each element and the cyclic subgroup it generates.
	Generators of the whole group are highlighted.  Use --additive to tabulate
	the additive group Z/N instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseModulus(args[0])
			if err != nil {
				return err
			}
			//
			additive := GetFlag(cmd, "additive")
			limit := uint64(GetUint(cmd, "limit"))
			//
			if n > limit {
				return fmt.Errorf("modulus %d exceeds table limit %d (see --limit)", n, limit)
			}
			//
			stats := util.NewPerfStats()
			//
			var tp *termio.TablePrinter
			if additive {
				tp = tabulate[group.AddElement](group.NewAdditive(n))
			} else {
				tp = tabulate[group.MulElement](group.NewMultiplicative(n))
			}
			//
			stats.Log(fmt.Sprintf("Tabulating %s", groupName(n, additive)))
			//
			out := cmd.OutOrStdout()
			colour := useColour(cmd, out)
			// Subgroups of large groups are truncated on a terminal
			if termio.IsTerminal(out) {
				tp.SetMaxWidth(2, max(termio.Width(out), 40)-30)
			}
			//
			tp.AnsiEscapes(colour)
			//
			fmt.Fprintf(out, "%s has order %d\n", groupName(n, additive), tp.Height()-1)
			//
			return printTable(out, tp)
		},
	}
	//
	tableCmd.Flags().Bool("additive", false, "tabulate Z/N under addition rather than its units")
	tableCmd.Flags().Bool("no-colour", false, "disable coloured output")
	tableCmd.Flags().Uint("limit", 4096, "largest modulus which can be tabulated")
	//
	return tableCmd
}

// Construct a table with one row per element of the group, giving its value,
// its order and the subgroup it generates.  Generators are marked.
func tabulate[E interface {
	comparable
	group.Element[E]
}](g group.Modular[E]) *termio.TablePrinter {
	var (
		order     = g.Order()
		tp        = termio.NewTablePrinter(3, uint(order)+1)
		highlight = termio.BoldAnsiEscape().FgColour(termio.TERM_GREEN)
		row       = uint(1)
		count     = 0
	)
	//
	tp.SetRow(0, "element", "order", "subgroup")
	//
	for e := range group.All[E](g) {
		k := e.Order()
		value := strconv.FormatUint(e.Value(), 10)
		//
		if k == order {
			value = "*" + value
			count++
			//
			tp.SetEscape(0, row, highlight)
		}
		//
		tp.SetRow(row, value, strconv.FormatUint(k, 10), formatElements(e.Subgroup()))
		row++
	}
	//
	log.Debugf("found %d generators in group of order %d", count, order)
	//
	return tp
}
