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
	"io"
	"strconv"

	"github.com/consensys/go-modgroup/pkg/numtheory"
	"github.com/consensys/go-modgroup/pkg/util"
	"github.com/consensys/go-modgroup/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Methods for computing the totient, as accepted by --method.
const (
	runtimeMethod = "runtime"
	constMethod   = "const"
	tableMethod   = "table"
)

// Beyond this bound, the brute-force totient is too slow to be useful.
const constTotientBound = 1 << 24

func newTotientCommand() *cobra.Command {
	totientCmd := &cobra.Command{
		Use:   "totient [flags] n",
		Short: "compute Euler's totient of a given number.",
		Long: `Compute Euler's totient φ(n), the number of integers in [1, n] coprime
	with n.  The runtime method factorises n by trial division, the const method
	counts coprime integers directly, and the table method uses the generated
	table of totients.  Use --compare to time each method over [1, n].`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint("number", args[0])
			if err != nil {
				return err
			}
			//
			if GetFlag(cmd, "compare") {
				return compareTotients(cmd, n)
			}
			//
			phi, err := totientBy(GetString(cmd, "method"), n)
			if err != nil {
				return err
			}
			//
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "φ(%d) = %d\n", n, phi)
			//
			if numtheory.IsPrime(n) {
				fmt.Fprintf(out, "%d is prime\n", n)
			}
			//
			return nil
		},
	}
	//
	totientCmd.Flags().String("method", runtimeMethod, "one of runtime, const or table")
	totientCmd.Flags().Bool("compare", false, "time every method over [1, n]")
	totientCmd.Flags().Bool("no-colour", false, "disable coloured output")
	//
	return totientCmd
}

// Compute the totient of n using a given method.
func totientBy(method string, n uint64) (uint64, error) {
	switch method {
	case runtimeMethod:
		return numtheory.EulerTotient(n), nil
	case constMethod:
		if n > constTotientBound {
			return 0, fmt.Errorf("%d too large for the const method (max %d)", n, constTotientBound)
		}
		//
		return numtheory.ConstTotient(n), nil
	case tableMethod:
		if phi, ok := numtheory.TabulatedTotient(n); ok {
			return phi, nil
		}
		//
		return 0, fmt.Errorf("%d outside totient table (max %d)", n, numtheory.TotientBound)
	default:
		return 0, fmt.Errorf("unknown method %q", method)
	}
}

// Time each method over [1, n], reporting a checksum of the totients so that
// agreement between methods can be confirmed.  Methods which cannot handle n
// are skipped.
func compareTotients(cmd *cobra.Command, n uint64) error {
	var (
		out      = cmd.OutOrStdout()
		methods  = []string{runtimeMethod, constMethod, tableMethod}
		tp       = termio.NewTablePrinter(4, uint(len(methods))+1)
		expected = util.None[uint64]()
		mismatch = termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	)
	//
	if n > constTotientBound {
		return fmt.Errorf("%d too large to compare (max %d)", n, constTotientBound)
	}
	//
	tp.SetRow(0, "method", "checksum", "time (ms)", "alloc (Kb)")
	//
	for i, method := range methods {
		row := uint(i + 1)
		// Check method is applicable
		if _, err := totientBy(method, n); err != nil {
			log.Debugf("skipping %s method: %v", method, err)
			tp.SetRow(row, method, "n/a", "n/a", "n/a")
			//
			continue
		}
		//
		stats := util.NewPerfStats()
		sum := uint64(0)
		//
		for k := uint64(1); k <= n; k++ {
			phi, _ := totientBy(method, k)
			sum += phi
		}
		//
		report := stats.Log(fmt.Sprintf("Totient (%s) over [1, %d]", method, n))
		//
		tp.SetRow(row, method, strconv.FormatUint(sum, 10),
			fmt.Sprintf("%.3f", float64(report.Elapsed.Microseconds())/1000),
			strconv.FormatUint(report.Allocated/1024, 10))
		//
		if expected.IsEmpty() {
			expected = util.Some(sum)
		} else if sum != expected.Unwrap() {
			tp.SetEscape(1, row, mismatch)
			log.Errorf("%s method disagrees (checksum %d vs %d)", method, sum, expected.Unwrap())
		}
	}
	//
	tp.AnsiEscapes(useColour(cmd, out))
	//
	return printTable(out, tp)
}

func printTable(out io.Writer, tp *termio.TablePrinter) error {
	if err := tp.Print(out); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	//
	return nil
}
