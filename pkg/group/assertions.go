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
package group

// Compile-time checks that each group satisfies the common contract.
var (
	_ Modular[AddElement] = Additive{}
	_ Modular[MulElement] = Multiplicative{}
	_ Element[AddElement] = AddElement{}
	_ Element[MulElement] = MulElement{}
)

// Generic counterparts are checked against an arbitrary modulus.
type anyModulus struct{}

func (anyModulus) Modulus() uint64 { return 1 }

var (
	_ Modular[StaticAddElement[anyModulus]] = StaticAdditive[anyModulus]{}
	_ Modular[StaticMulElement[anyModulus]] = StaticMultiplicative[anyModulus]{}
	_ Element[StaticAddElement[anyModulus]] = StaticAddElement[anyModulus]{}
	_ Element[StaticMulElement[anyModulus]] = StaticMulElement[anyModulus]{}
)
