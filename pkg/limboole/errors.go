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
package limboole

import (
	"fmt"
	"time"
)

// ExitError reports a solver subprocess which terminated abnormally, along
// with whatever it wrote to its standard error.
type ExitError struct {
	Stderr string
	Err    error
}

// Error implements the error interface.
func (p *ExitError) Error() string {
	if p.Stderr == "" {
		return fmt.Sprintf("solver failed (%v)", p.Err)
	}
	//
	return fmt.Sprintf("solver failed (%v): %s", p.Err, p.Stderr)
}

// Unwrap exposes the underlying subprocess error.
func (p *ExitError) Unwrap() error {
	return p.Err
}

// TimeoutError reports a solver invocation which was killed after exceeding
// its deadline.
type TimeoutError struct {
	Elapsed time.Duration
}

// Error implements the error interface.
func (p *TimeoutError) Error() string {
	return fmt.Sprintf("solver timed out after %s", p.Elapsed)
}

// ModelError reports a model line which could not be parsed.
type ModelError struct {
	Line string
}

// Error implements the error interface.
func (p *ModelError) Error() string {
	return fmt.Sprintf("cannot parse model line %q", p.Line)
}
