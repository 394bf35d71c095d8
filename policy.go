/*
 * Copyright 2019 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cachesim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Policy is the surface every cache policy exposes to a driver (EXTERNAL
// INTERFACES, section 6): a byte budget, zero or more named parameters,
// and a lookup/admit-on-miss protocol. A policy never reads a trace or
// prints anything itself.
type Policy interface {
	// SetSize configures the byte budget. Drivers call it exactly once,
	// before the first request.
	SetSize(capacity uint64)
	// SetPar configures a named, policy-specific parameter. An unknown
	// name is reported through the returned error but must never be
	// treated as fatal by a caller implementing the CLI contract.
	SetPar(name, value string) error
	// Lookup reports whether id is currently resident, updating whatever
	// recency/frequency bookkeeping a hit implies.
	Lookup(req Request) bool
	// Admit is only ever called after a Lookup miss. It may decide not
	// to store req at all.
	Admit(req Request)
}

// unknownParamError reports a parameter name a policy doesn't recognize.
// Per ERROR HANDLING DESIGN, this is diagnosed (the driver prints it to
// stderr) but never fatal.
type unknownParamError struct {
	policy, name string
}

func (e *unknownParamError) Error() string {
	return "cachesim: " + e.policy + ": unrecognized parameter: " + e.name
}

func errUnknownParam(policy, name string) error {
	return &unknownParamError{policy: policy, name: name}
}

// parseUintParam parses value as a base-10 uint64, wrapping any failure
// with the parameter name for a readable diagnostic.
func parseUintParam(name, value string) (uint64, error) {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "cachesim: parameter %q", name)
	}
	return v, nil
}

// parseFloatParam parses value as a float64, wrapping any failure with
// the parameter name.
func parseFloatParam(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "cachesim: parameter %q", name)
	}
	return v, nil
}
