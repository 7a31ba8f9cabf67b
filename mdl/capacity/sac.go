// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capacity

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// SAC implements the operating-capacity model for strong-acid cation resin
// regenerated with NaCl brine:
//   opcap = qtotal · η(dose) · x_NaForm
// where η is an empirical regeneration-efficiency curve in the regenerant
// dose and x_NaForm is a mass-action estimate of the fraction of sites
// actually returned to the Na form, which penalizes high divalent content.
type SAC struct {

	// parameters
	qtotal    float64 // theoretical total capacity, [eq/L]
	brineNorm float64 // regenerant brine normality, [eq/L]
	kCa       float64 // divalent selectivity Ca/Na for the regeneration equilibrium
	kMg       float64 // divalent selectivity Mg/Na for the regeneration equilibrium
}

// add model to factory
func init() {
	allocators["sac"] = func() Model { return new(SAC) }
}

// Init initialises model
func (o *SAC) Init(prms dbf.Params) (err error) {
	o.qtotal = 2.0
	o.brineNorm = 1.7 // 10% NaCl
	o.kCa = 5.16
	o.kMg = 3.29
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qtotal":
			o.qtotal = p.V
		case "brinenorm":
			o.brineNorm = p.V
		case "kca":
			o.kCa = p.V
		case "kmg":
			o.kMg = p.V
		default:
			return chk.Err("sac: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.qtotal <= 0 {
		return chk.Err("sac: total capacity qtotal = %g is invalid", o.qtotal)
	}
	if o.brineNorm <= 0 {
		return chk.Err("sac: brine normality brinenorm = %g is invalid", o.brineNorm)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SAC) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "qtotal", V: 2.0},
			&dbf.P{N: "brinenorm", V: 1.7},
			&dbf.P{N: "kca", V: 5.16},
			&dbf.P{N: "kmg", V: 3.29},
		}
	}
	return dbf.Params{
		&dbf.P{N: "qtotal", V: o.qtotal},
		&dbf.P{N: "brinenorm", V: o.brineNorm},
		&dbf.P{N: "kca", V: o.kCa},
		&dbf.P{N: "kmg", V: o.kMg},
	}
}

// Name returns the resin class name
func (o SAC) Name() string { return "sac" }

// TotalCapacity returns the theoretical total capacity
func (o SAC) TotalCapacity() float64 { return o.qtotal }

// RegenEfficiency returns the empirical regeneration-efficiency curve in
// the regenerant dose [g NaCl / L resin]. Breakpoints at 60, 100 and 150 g/L
// are calibrated constants from the literature fits.
func (o SAC) RegenEfficiency(doseGpL float64) float64 {
	switch {
	case doseGpL <= 60:
		return 0.50
	case doseGpL <= 100:
		return 0.50 + 0.20*(doseGpL-60.0)/40.0
	case doseGpL <= 150:
		return 0.70 + 0.15*(doseGpL-100.0)/50.0
	}
	// slow asymptotic approach to the 0.95 cap
	return 0.95 - 0.10*math.Exp(-(doseGpL-150.0)/100.0)
}

// NaFormFraction returns the fraction of sites converted back to the Na form
// during regeneration. The equilibrium term compares the divalent load held
// by the resin against the brine normality; the 0.5 floor reflects that
// column regeneration never reaches full equilibrium with the fresh brine.
func (o SAC) NaFormFraction(caFrac, mgFrac float64) float64 {
	divFrac := caFrac + mgFrac
	if divFrac < 1e-12 {
		return 1.0
	}
	kDiv := (o.kCa*caFrac + o.kMg*mgFrac) / divFrac
	eq := 1.0 / (1.0 + kDiv*divFrac*o.qtotal/o.brineNorm)
	return 0.5 + 0.5*eq
}

// Operating returns the derated operating capacity
func (o SAC) Operating(c *Conditions) (opcap, derating float64, err error) {
	eff := o.RegenEfficiency(c.RegenDose)
	naForm := o.NaFormFraction(c.CaFrac, c.MgFrac)
	derating = eff * naForm
	opcap = o.qtotal * derating
	return
}

// RinseBV returns the slow-rinse requirement in bed volumes for a given
// regenerant dose
func RinseBV(doseGpL float64) float64 {
	switch {
	case doseGpL <= 80:
		return 2.0
	case doseGpL <= 120:
		return 3.0
	}
	return 4.0
}

// RinseVolume returns the slow-rinse requirement in liters for a given
// regenerant dose and bed volume
func RinseVolume(doseGpL, bedVolumeL float64) float64 {
	return RinseBV(doseGpL) * bedVolumeL
}
