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

	"github.com/consensys/go-modgroup/pkg/group"
	"github.com/consensys/go-modgroup/pkg/numtheory"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newGcdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd a b",
		Short: "compute the greatest common divisor of two integers.",
		Long: `Compute g = gcd(a, b) using the extended Euclidean algorithm, along with
	Bézout coefficients x and y such that ax + by = g.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInt("integer", args[0])
			if err != nil {
				return err
			}
			//
			b, err := parseInt("integer", args[1])
			if err != nil {
				return err
			}
			//
			x, y, g := numtheory.ExtendedGcd(a, b)
			//
			fmt.Fprintf(cmd.OutOrStdout(), "gcd(%d, %d) = %d\n", a, b, g)
			fmt.Fprintf(cmd.OutOrStdout(), "(%d)*(%d) + (%d)*(%d) = %d\n", a, x, b, y, g)
			//
			return nil
		},
	}
}

func newInverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse a modulus",
		Short: "compute the inverse of an integer modulo another.",
		Long: `Compute the multiplicative inverse of a modulo N, which exists only when
	a and N are coprime.  Prints "none" when there is no inverse.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseUint("integer", args[0])
			if err != nil {
				return err
			}
			//
			n, err := parseModulus(args[1])
			if err != nil {
				return err
			}
			//
			if inv, ok := numtheory.ModInverse(a, n).Get(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%d⁻¹ = %d (mod %d)\n", a, inv, n)
			} else {
				log.Debugf("gcd(%d, %d) = %d", a, n, numtheory.Gcd(a, n))
				fmt.Fprintln(cmd.OutOrStdout(), "none")
			}
			//
			return nil
		},
	}
}

func newOrderCommand() *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order [flags] value modulus",
		Short: "compute the order of a single element of a modular group.",
		Long: `Compute the order of a given value within (Z/N)*, or within Z/N when
	--additive is given, along with the cyclic subgroup it generates.  The value
	must be coprime with N for the multiplicative group.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseUint("value", args[0])
			if err != nil {
				return err
			}
			//
			n, err := parseModulus(args[1])
			if err != nil {
				return err
			}
			//
			limit := uint64(GetUint(cmd, "limit"))
			out := cmd.OutOrStdout()
			//
			if GetFlag(cmd, "additive") {
				return printOrder[group.AddElement](out, group.NewAdditive(n), v, limit)
			}
			//
			return printOrder[group.MulElement](out, group.NewMultiplicative(n), v, limit)
		},
	}
	//
	orderCmd.Flags().Bool("additive", false, "use Z/N under addition rather than its units")
	orderCmd.Flags().Uint("limit", 1<<20, "largest group order for which element orders are computed")
	//
	return orderCmd
}

// Print the order and generated subgroup of a given value within a group.
func printOrder[E interface {
	comparable
	group.Element[E]
}](out io.Writer, g group.Modular[E], v uint64, limit uint64) error {
	e, ok := g.TryElement(v).Get()
	if !ok {
		return fmt.Errorf("%d is not a unit modulo %d", v, g.Modulus())
	} else if g.Order() > limit {
		return fmt.Errorf("group order %d exceeds limit %d (see --limit)", g.Order(), limit)
	}
	//
	k := e.Order()
	//
	fmt.Fprintf(out, "order of %d (mod %d) is %d\n", e.Value(), g.Modulus(), k)
	fmt.Fprintf(out, "subgroup: {%s}\n", formatElements(e.Subgroup()))
	//
	if k == g.Order() {
		fmt.Fprintf(out, "%d generates the group\n", e.Value())
	}
	//
	return nil
}
