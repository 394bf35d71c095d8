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

// ExpLRU admits a missed object with probability exp(-size/C) (parameter
// "c" sets C = 2^c; default C = 2^18), independently per request. Hits
// behave like plain LRU.
type ExpLRU struct {
	core *LRUCore
	rand *Rand
	c    float64
}

// NewExpLRU returns an ExpLRU policy with the default C = 2^18, drawing
// admission rolls from r.
func NewExpLRU(r *Rand) *ExpLRU {
	return &ExpLRU{core: NewLRUCore(), rand: r, c: math.Pow(2, 18)}
}

func (p *ExpLRU) SetSize(capacity uint64) { p.core.SetSize(capacity) }

func (p *ExpLRU) SetPar(name, value string) error {
	if name != "c" {
		return errUnknownParam("ExpLRU", name)
	}
	c, err := parseFloatParam(name, value)
	if err != nil {
		return err
	}
	p.c = math.Pow(2, c)
	return nil
}

func (p *ExpLRU) Lookup(req Request) bool { return p.core.Lookup(req.ID) }

func (p *ExpLRU) Admit(req Request) {
	prob := math.Exp(-float64(req.Size) / p.c)
	if p.rand.Bernoulli(prob) {
		p.core.Admit(req)
	}
}
