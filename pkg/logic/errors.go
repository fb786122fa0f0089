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
package logic

import "fmt"

// Error is a structured error raised by operations on propositions.  It
// retains the rendering of the proposition for which the error arose, so that
// diagnostics can point at the offending formula.
type Error struct {
	// Msg is the error message.
	Msg string
	// Formula is the rendering of the proposition related to this error.
	Formula string
}

// Error implements the error interface.
func (p *Error) Error() string {
	return fmt.Sprintf("%s (raised for %q)", p.Msg, p.Formula)
}

func errorf(prop *Proposition, format string, args ...any) *Error {
	return &Error{fmt.Sprintf(format, args...), prop.String()}
}
