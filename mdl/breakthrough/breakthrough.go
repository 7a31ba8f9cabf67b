// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package breakthrough predicts bed-volumes-to-breakthrough for ion-exchange
// softening and dealkalization from feed chemistry and resin properties
package breakthrough

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/hydrosim/goix/mdl/capacity"
	"github.com/hydrosim/goix/mdl/exchange"
	"github.com/hydrosim/goix/mdl/ion"
)

// Feed holds one water analysis
type Feed struct {
	Ions       ion.Conc // cation concentrations, [mg/L]
	Alkalinity float64  // total alkalinity, [mg/L as CaCO₃]
}

// Result holds the outcome of one breakthrough calculation. All fields are
// plain numbers computed fresh per call.
type Result struct {
	TheoreticalBV     float64 // bed volumes to breakthrough without mass-transfer losses
	ActualBV          float64 // theoretical BV × utilization
	UnusedBedFrac     float64 // mass-transfer-zone (unused bed) fraction
	Utilization       float64 // 1 − UnusedBedFrac
	RunHours          float64 // service run length, [h]
	OperatingCapacity float64 // derated capacity, [eq/L resin]
	DeratingFactor    float64 // operating ÷ total capacity
	HardnessLeak      float64 // hardness leakage, [mg/L as CaCO₃]
	CaLeak            float64 // Ca²⁺ leakage, [mg/L]
	MgLeak            float64 // Mg²⁺ leakage, [mg/L]
	FActive           float64 // active-zone fraction used for the leakage solve
	AlkalinityRemoved float64 // [mg/L as CaCO₃] (wac-h)
	CO2Generated      float64 // [mg/L] (wac-h)
	RinseBV           float64 // slow-rinse requirement, [BV] (sac)
}

// Calculator combines a capacity derating model with the equilibrium leakage
// solver. Each Run is a pure function over its inputs: numerical edge cases
// degrade to warnings and zero results, never to errors.
type Calculator struct {

	// auxiliary models
	Cap capacity.Model   // operating-capacity derating model
	Exc *exchange.Solver // equilibrium leakage solver

	// parameters
	ServiceFlow float64 // service flow rate, [BV/h]
	RefLeakage  float64 // reference hardness leakage for calibration, [mg/L as CaCO₃]; ≤0 disables

	// constants
	Silent bool // do not show warning messages
}

// Init initialises the calculator
func (o *Calculator) Init(cmod capacity.Model, exc *exchange.Solver, prms dbf.Params) (err error) {
	if cmod == nil {
		return chk.Err("breakthrough: capacity model must be non-nil\n")
	}
	if cmod.Name() == "sac" && exc == nil {
		return chk.Err("breakthrough: exchange solver must be non-nil for sac resin\n")
	}
	o.Cap = cmod
	o.Exc = exc
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "serviceflow":
			o.ServiceFlow = p.V
		case "refleakage":
			o.RefLeakage = p.V
		default:
			return chk.Err("breakthrough: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.ServiceFlow < 0 {
		return chk.Err("breakthrough: service flow %g BV/h is invalid", o.ServiceFlow)
	}
	return
}

// Run computes breakthrough for one feed under the given conditions. The
// conditions' ionic fractions are filled in from the feed; cond itself is
// not modified.
func (o *Calculator) Run(feed *Feed, cond *capacity.Conditions) (res *Result, err error) {

	// speciate feed
	caEq, err := feed.Ions.Eq(ion.Ca)
	if err != nil {
		return
	}
	mgEq, err := feed.Ions.Eq(ion.Mg)
	if err != nil {
		return
	}
	hardnessEq := caEq + mgEq
	alkEq := ion.CaCO3ToEq(feed.Alkalinity)
	frac, err := feed.Ions.Fractions(ion.Ca, ion.Mg, ion.Na)
	if err != nil {
		return
	}
	cc := *cond
	cc.CaFrac = frac[ion.Ca]
	cc.MgFrac = frac[ion.Mg]
	cc.NaFrac = frac[ion.Na]
	if cc.Temp == 0 {
		cc.Temp = 25.0 // unset temperature means the 25°C reference
	}

	// derate capacity
	opcap, derating, err := o.Cap.Operating(&cc)
	if err != nil {
		return
	}

	// removable species per resin class
	var removableEq float64
	switch o.Cap.Name() {
	case "sac":
		removableEq = hardnessEq
	case "wac-h":
		removableEq = alkEq
	case "wac-na":
		removableEq = math.Min(hardnessEq, alkEq)
	default:
		return nil, chk.Err("breakthrough: resin class %q is not handled; available classes: [sac wac-h wac-na]", o.Cap.Name())
	}

	// theoretical bed volumes
	var theoBV float64
	if removableEq > 0 {
		theoBV = opcap / removableEq
	} else if !o.Silent {
		io.Pforan("breakthrough: feed has no removable species for %q resin; zero bed volumes\n", o.Cap.Name())
	}

	// unused-bed correction
	lub, err := UnusedBedFraction(o.Cap.Name(), o.ServiceFlow)
	if err != nil {
		return
	}
	utilization := 1.0 - lub
	actualBV := theoBV * utilization
	var runHours float64
	if o.ServiceFlow > 0 {
		runHours = actualBV / o.ServiceFlow
	}

	res = &Result{
		TheoreticalBV:     theoBV,
		ActualBV:          actualBV,
		UnusedBedFrac:     lub,
		Utilization:       utilization,
		RunHours:          runHours,
		OperatingCapacity: opcap,
		DeratingFactor:    derating,
	}

	// leakage (sac path) with optional calibration against a reference value
	if o.Cap.Name() == "sac" {
		sol := *o.Exc
		sol.Silent = o.Silent
		if o.RefLeakage > 0 {
			sol.FActive, err = sol.Calibrate(o.RefLeakage, feed.Ions[ion.Ca], feed.Ions[ion.Mg], feed.Ions[ion.Na])
			if err != nil {
				return
			}
		}
		var leak *exchange.Leakage
		leak, err = sol.SolveLeakage(feed.Ions[ion.Ca], feed.Ions[ion.Mg], feed.Ions[ion.Na])
		if err != nil {
			return
		}
		res.HardnessLeak = leak.Hardness
		res.CaLeak = leak.Ca
		res.MgLeak = leak.Mg
		res.FActive = sol.FActive
		res.RinseBV = capacity.RinseBV(cc.RegenDose)
	}

	// dealkalization byproducts (wac-h path)
	if o.Cap.Name() == "wac-h" {
		removed := feed.Alkalinity - cc.TargetAlk
		if removed < 0 {
			removed = 0
		}
		res.AlkalinityRemoved = removed
		res.CO2Generated = capacity.CO2FromAlkalinity(removed)
	}
	return
}
