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
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-modgroup/pkg/group"
	"github.com/consensys/go-modgroup/pkg/numtheory"
	"github.com/consensys/go-modgroup/pkg/util/termio"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a non-negative integer argument.
func parseUint(name string, arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}

	return v, nil
}

// Parse a signed integer argument.  The most negative int64 is rejected since
// it has no positive counterpart.
func parseInt(name string, arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	} else if v == math.MinInt64 {
		return 0, fmt.Errorf("invalid %s %q: out of range", name, arg)
	}

	return v, nil
}

// Parse a modulus argument, which must lie in [1, MaxModulus].
func parseModulus(arg string) (uint64, error) {
	n, err := parseUint("modulus", arg)
	if err != nil {
		return 0, err
	} else if n == 0 || n > numtheory.MaxModulus {
		return 0, fmt.Errorf("invalid modulus %d: must be between 1 and %d", n, numtheory.MaxModulus)
	}

	return n, nil
}

// Determine whether ANSI escapes should be used when writing to a given output.
func useColour(cmd *cobra.Command, out io.Writer) bool {
	return termio.IsTerminal(out) && !GetFlag(cmd, "no-colour")
}

// Render a list of elements as a comma separated list of their values.
func formatElements[E group.Element[E]](elems []E) string {
	var builder strings.Builder
	//
	for i, e := range elems {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(strconv.FormatUint(e.Value(), 10))
	}
	//
	return builder.String()
}

// Render the name of a group, such as "Z/26" or "(Z/26)*".
func groupName(n uint64, additive bool) string {
	if additive {
		return fmt.Sprintf("Z/%d", n)
	}

	return fmt.Sprintf("(Z/%d)*", n)
}
