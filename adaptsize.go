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

// adaptSizeEWMADecay is the smoothing fraction applied to the long-term
// request-count estimate at every reconfiguration.
const adaptSizeEWMADecay = 0.3

// adaptSizeTol is the golden-section search's numerical tolerance.
const adaptSizeTol = 0.01

// goldenRatio and its complement, used to place golden-section search
// probe points.
var (
	goldenRatio     = (math.Sqrt(5) - 1) / 2
	goldenRatioComp = 1 - goldenRatio
)

type adaptSizeInfo struct {
	requestCount float64
	objSize      uint64
}

// AdaptSize is ExpLRU (size-aware Bernoulli admission) with its C
// parameter periodically re-tuned: every reconfiguration_interval
// requests (once the total size of the objects it has observed exceeds
// three times capacity), AdaptSize
// fits a hit-rate model to recent per-object request counts and sizes and
// picks the C that maximises modeled hit rate via golden-section search
// on log2(C).
type AdaptSize struct {
	core *LRUCore
	rand *Rand

	c float64 // current admission constant C (not log2)

	reconfigInterval uint64
	maxIterations    uint64
	nextReconfig     uint64

	longTerm map[uint64]*adaptSizeInfo
	interval map[uint64]*adaptSizeInfo
	statSize uint64

	alignedReqCount []float64
	alignedObjSize  []float64
	alignedAdmProb  []float64

	// onReconfigure, if set, is called once per completed reconfiguration
	// with diagnostic fields (object count, log2 of total tracked object
	// size, log2 of statSize). AdaptSize itself never logs; a driver
	// wires this in if it wants the line.
	onReconfigure func(objects int, log2TotalSize, log2StatSize float64)
}

// NewAdaptSize returns an AdaptSize policy with the default C = 2^15,
// reconfiguration_interval = 500000, maxIterations = 15, drawing
// admission rolls from r.
func NewAdaptSize(r *Rand) *AdaptSize {
	return &AdaptSize{
		core:             NewLRUCore(),
		rand:             r,
		c:                1 << 15,
		reconfigInterval: 500000,
		maxIterations:    15,
		nextReconfig:     500000,
		longTerm:         make(map[uint64]*adaptSizeInfo),
		interval:         make(map[uint64]*adaptSizeInfo),
	}
}

func (p *AdaptSize) SetSize(capacity uint64) { p.core.SetSize(capacity) }

// SetOnReconfigure installs the optional reconfiguration diagnostic hook.
func (p *AdaptSize) SetOnReconfigure(f func(objects int, log2TotalSize, log2StatSize float64)) {
	p.onReconfigure = f
}

func (p *AdaptSize) SetPar(name, value string) error {
	switch name {
	case "t":
		t, err := parseUintParam(name, value)
		if err != nil {
			return err
		}
		p.reconfigInterval = t
		p.nextReconfig = t
	case "i":
		i, err := parseUintParam(name, value)
		if err != nil {
			return err
		}
		p.maxIterations = i
	default:
		return errUnknownParam("AdaptSize", name)
	}
	return nil
}

func (p *AdaptSize) Lookup(req Request) bool {
	p.reconfigure()

	_, inInterval := p.interval[req.ID]
	_, inLongTerm := p.longTerm[req.ID]
	if !inInterval && !inLongTerm {
		p.statSize += req.Size
	}

	info := p.interval[req.ID]
	if info == nil {
		info = &adaptSizeInfo{}
		p.interval[req.ID] = info
	}
	info.requestCount++
	info.objSize = req.Size

	return p.core.Lookup(req.ID)
}

func (p *AdaptSize) Admit(req Request) {
	admitProb := math.Exp(-float64(req.Size) / p.c)
	if p.rand.Bernoulli(admitProb) {
		p.core.Admit(req)
	}
}

func (p *AdaptSize) reconfigure() {
	p.nextReconfig--
	if p.nextReconfig > 0 {
		return
	}
	if p.statSize <= p.core.GetSize()*3 {
		// Not enough data gathered yet; defer.
		p.nextReconfig += 10000
		return
	}
	p.nextReconfig = p.reconfigInterval

	for _, info := range p.longTerm {
		info.requestCount *= adaptSizeEWMADecay
	}

	for id, info := range p.interval {
		if lt, ok := p.longTerm[id]; ok {
			lt.requestCount += (1 - adaptSizeEWMADecay) * info.requestCount
			lt.objSize = info.objSize
		} else {
			cp := *info
			p.longTerm[id] = &cp
		}
	}
	p.interval = make(map[uint64]*adaptSizeInfo)

	p.alignedReqCount = p.alignedReqCount[:0]
	p.alignedObjSize = p.alignedObjSize[:0]
	var totalReqCount float64
	var totalObjSize uint64
	for id, info := range p.longTerm {
		if info.requestCount < 0.1 {
			p.statSize -= info.objSize
			delete(p.longTerm, id)
			continue
		}
		p.alignedReqCount = append(p.alignedReqCount, info.requestCount)
		totalReqCount += info.requestCount
		p.alignedObjSize = append(p.alignedObjSize, float64(info.objSize))
		totalObjSize += info.objSize
	}
	_ = totalReqCount

	if p.onReconfigure != nil {
		p.onReconfigure(len(p.longTerm), math.Log2(float64(totalObjSize)), math.Log2(float64(p.statSize)))
	}

	p.optimizeC()
}

// optimizeC runs the coarse scan plus golden-section search over log2(C)
// and adopts the winner. The bracket-shift order matters: each step's
// assignments read fields already updated earlier in the same step.
func (p *AdaptSize) optimizeC() {
	capacity := float64(p.core.GetSize())
	x0 := 0.0
	x1 := math.Log2(capacity)
	x2 := x1
	x3 := x1

	bestHitRate := 0.0
	for i := 2.0; i < x3; i += 4 {
		hr := p.modelHitRate(i)
		if hr > bestHitRate {
			bestHitRate = hr
			x1 = i
		}
	}

	h1 := bestHitRate
	var h2 float64
	if x3-x1 > x1-x0 {
		x2 = x1 + goldenRatioComp*(x3-x1)
		h2 = p.modelHitRate(x2)
	} else {
		x2 = x1
		h2 = h1
		x1 = x0 + goldenRatioComp*(x1-x0)
		h1 = p.modelHitRate(x1)
	}

	if x1 >= x2 {
		// Coarse scan seeded a degenerate bracket; leave C unchanged
		// rather than let the search run backwards.
		return
	}

	iterations := uint64(0)
	for iterations < p.maxIterations && math.Abs(x3-x0) > adaptSizeTol*(math.Abs(x1)+math.Abs(x2)) {
		iterations++
		if math.IsNaN(h1) || math.IsNaN(h2) {
			break
		}
		if h2 > h1 {
			x0 = x1
			x1 = x2
			x2 = goldenRatio*x1 + goldenRatioComp*x3
			h1 = h2
			h2 = p.modelHitRate(x2)
		} else {
			x3 = x2
			x2 = x1
			x1 = goldenRatio*x2 + goldenRatioComp*x0
			h2 = h1
			h1 = p.modelHitRate(x1)
		}
	}

	switch {
	case math.IsNaN(h1) || math.IsNaN(h2):
		// Numerical failure: keep the previous C.
	case h1 > h2:
		p.c = math.Pow(2, x1)
	default:
		p.c = math.Pow(2, x2)
	}
}

// modelHitRate estimates the object hit ratio AdaptSize would achieve
// with admission constant C = 2^log2c, given the current
// alignedReqCount/alignedObjSize snapshot.
func (p *AdaptSize) modelHitRate(log2c float64) float64 {
	capacity := float64(p.core.GetSize())

	sumVal := 0.0
	for i := range p.alignedReqCount {
		sumVal += p.alignedReqCount[i] * math.Exp(-p.alignedObjSize[i]/math.Pow(2, log2c)) * p.alignedObjSize[i]
	}
	if sumVal <= 0 {
		return 0
	}
	theT := capacity / sumVal

	p.alignedAdmProb = p.alignedAdmProb[:0]
	for i := range p.alignedReqCount {
		p.alignedAdmProb = append(p.alignedAdmProb, math.Exp(-p.alignedObjSize[i]/math.Pow(2, log2c)))
	}

	for j := 0; j < 10; j++ {
		if theT > 1e70 {
			break
		}
		theC := 0.0
		for i := range p.alignedReqCount {
			reqTProd := p.alignedReqCount[i] * theT
			if reqTProd > 150 {
				theC += p.alignedObjSize[i]
				continue
			}
			expTerm := math.Exp(reqTProd) - 1
			expAdmProd := p.alignedAdmProb[i] * expTerm
			theC += p.alignedObjSize[i] * (expAdmProd / (1 + expAdmProd))
		}
		oldT := theT
		theT = capacity * oldT / theC
	}

	sum := 0.0
	for i := range p.alignedReqCount {
		l := p.alignedReqCount[i]
		pr := p.alignedAdmProb[i]
		tmp01 := adaptSizeOP1(theT, l, pr)
		tmp02 := adaptSizeOP2(theT, l, pr)
		var tmp float64
		switch {
		case tmp01 != 0 && tmp02 == 0:
			tmp = 0
		default:
			tmp = tmp01 / tmp02
		}
		if tmp < 0 {
			tmp = 0
		} else if tmp > 1 {
			tmp = 1
		}
		sum += l * tmp
	}
	return sum
}

func adaptSizeOP1(t, l, pr float64) float64 {
	return l * pr * t * (840.0 + 60.0*l*t + 20.0*l*l*t*t + l*l*l*t*t*t)
}

func adaptSizeOP2(t, l, pr float64) float64 {
	return 840.0 + 120.0*l*(-3.0+7.0*pr)*t + 60.0*l*l*(1.0+pr)*t*t +
		4.0*l*l*l*(-1.0+5.0*pr)*t*t*t + l*l*l*l*pr*t*t*t*t
}
