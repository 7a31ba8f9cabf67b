// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// BinaryExchange computes the exact equilibrium of the binary Ca²⁺/Na⁺
// Gaines-Thomas system with active-zone blending. With a single divalent
// both the forward and the inverse problem are one quadratic each, so no
// iteration is needed; the multicomponent fixed-point solver must reproduce
// this solution in the Mg-free limit.
type BinaryExchange struct {

	// input
	KCaNa   float64 // selectivity coefficient Ca/Na
	FActive float64 // active-zone fraction
}

// Init initialises this structure
func (o *BinaryExchange) Init(prms dbf.Params) {

	// default values
	o.KCaNa = 5.16
	o.FActive = 0.10

	// parameters
	for _, p := range prms {
		switch p.N {
		case "kca":
			o.KCaNa = p.V
		case "factive":
			o.FActive = p.V
		}
	}
}

// ResinFractions returns the active-zone resin composition in equilibrium
// with the solution fractions (yCa, yNa)
//  K = yCa·xNa²/(yNa²·xCa) and xCa + xNa = 1 give c·xNa² + xNa − 1 = 0
//  with c = yCa/(K·yNa²)
func (o BinaryExchange) ResinFractions(yCa, yNa float64) (xCa, xNa float64) {
	c := yCa / (o.KCaNa * yNa * yNa)
	if c < 1e-12 {
		return 0, 1
	}
	xNa = (-1.0 + math.Sqrt(1.0+4.0*c)) / (2.0 * c)
	xCa = 1.0 - xNa
	return
}

// EffluentFractions returns the solution composition in equilibrium with the
// bed-average resin composition (xCa, xNa)
//  a·yNa² + yNa − 1 = 0 with a = K·xCa/xNa²
func (o BinaryExchange) EffluentFractions(xCa, xNa float64) (yCa, yNa float64) {
	a := o.KCaNa * xCa / (xNa * xNa)
	if a < 1e-12 {
		return 0, 1
	}
	yNa = (-1.0 + math.Sqrt(1.0+4.0*a)) / (2.0 * a)
	yCa = 1.0 - yNa
	return
}

// Solve returns the bed-average resin composition and the effluent fractions
// for feed solution fractions (yCa, yNa)
func (o BinaryExchange) Solve(yCa, yNa float64) (xCa, xNa, yCaOut, yNaOut float64) {
	xaCa, xaNa := o.ResinFractions(yCa, yNa)
	xCa = o.FActive * xaCa
	xNa = o.FActive*xaNa + (1.0 - o.FActive)
	yCaOut, yNaOut = o.EffluentFractions(xCa, xNa)
	return
}
