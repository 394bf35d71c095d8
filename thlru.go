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

import "math"

// ThLRU admits only objects smaller than a size threshold of 2^t bytes
// (parameter "t"; default threshold 2^19). Hits behave like plain LRU.
type ThLRU struct {
	core      *LRUCore
	threshold float64
}

// NewThLRU returns a ThLRU policy with the default threshold 2^19 bytes.
func NewThLRU() *ThLRU {
	return &ThLRU{core: NewLRUCore(), threshold: math.Pow(2, 19)}
}

func (p *ThLRU) SetSize(capacity uint64) { p.core.SetSize(capacity) }

func (p *ThLRU) SetPar(name, value string) error {
	if name != "t" {
		return errUnknownParam("ThLRU", name)
	}
	t, err := parseFloatParam(name, value)
	if err != nil {
		return err
	}
	p.threshold = math.Pow(2, t)
	return nil
}

func (p *ThLRU) Lookup(req Request) bool { return p.core.Lookup(req.ID) }

func (p *ThLRU) Admit(req Request) {
	if float64(req.Size) < p.threshold {
		p.core.Admit(req)
	}
}
