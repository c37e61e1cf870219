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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
	"github.com/consensys/go-modgroup/pkg/numtheory"
)

const copyrightHolder = "Consensys Software Inc."

// Largest n whose totient is tabulated.
const totientBound = 256

// Number of table entries per source line.
const rowWidth = 16

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-modgroup")
	cfg := newTableConfig(totientBound)

	assertNoError(bgen.Generate(cfg, "numtheory", "templates",
		bavard.Entry{
			File:      "../../totient_table.go",
			Templates: []string{"totient_table.go.tmpl"},
		},
	), "for totient table")
	// run gofmt on the generated file
	runCmd("gofmt", "-w", "../../totient_table.go")
}

type tableConfig struct {
	Bound uint64
	Rows  [][]uint64
}

// Evaluate the brute-force totient for every n in [0, bound], split into rows
// for readability of the generated source.
func newTableConfig(bound uint64) *tableConfig {
	var (
		cfg = &tableConfig{Bound: bound}
		row []uint64
	)
	//
	for n := uint64(0); n <= bound; n++ {
		row = append(row, numtheory.ConstTotient(n))
		//
		if len(row) == rowWidth {
			cfg.Rows = append(cfg.Rows, row)
			row = nil
		}
	}
	//
	if len(row) > 0 {
		cfg.Rows = append(cfg.Rows, row)
	}
	//
	return cfg
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 && contextAndArgs[0] != "" {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
