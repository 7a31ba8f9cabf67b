// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capacity

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/hydrosim/goix/mdl/ion"
)

// Ionization returns the Henderson-Hasselbalch ionized fraction of the
// carboxylic functional groups: α = 1/(1+10^(pKa−pH))
func Ionization(pH, pKa float64) float64 {
	return 1.0 / (1.0 + math.Pow(10.0, pKa-pH))
}

// PKaAtTemp corrects the carboxylic pKa for temperature by −0.01/°C from the
// 25°C reference value
func PKaAtTemp(pKa25, tempC float64) float64 {
	return pKa25 - 0.01*(tempC-25.0)
}

// PHFloor returns the pH at which carbonate equilibrium would produce a given
// residual alkalinity [mg/L as CaCO₃]: 4.0 for targets ≤5, 5.5 for targets
// ≥50, linear 4.0 + 0.04·target in between (clamped to [4.0, 5.5])
func PHFloor(targetAlk float64) float64 {
	if targetAlk <= 5.0 {
		return 4.0
	}
	if targetAlk >= 50.0 {
		return 5.5
	}
	ph := 4.0 + 0.04*targetAlk
	if ph > 5.5 {
		ph = 5.5
	}
	return ph
}

// CO2FromAlkalinity returns the CO₂ generated [mg/L] from the alkalinity
// removed [mg/L as CaCO₃], stoichiometrically
func CO2FromAlkalinity(alkRemoved float64) float64 {
	return alkRemoved * ion.MwCO2 / ion.MwCaCO3
}

// WacH implements the operating-capacity model for weak-acid cation resin in
// hydrogen form, used for dealkalization. The target residual alkalinity sets
// a pH floor; the resin ionization fraction at that floor is the capacity
// derating factor, so the target leakage determines the usable capacity.
type WacH struct {

	// parameters
	qtotal float64 // theoretical total capacity, [eq/L]
	pKa    float64 // carboxylic pKa at 25°C
}

// WacNa implements the operating-capacity model for weak-acid cation resin
// in sodium form: capacity follows directly from ionization at the
// operating pH.
type WacNa struct {

	// parameters
	qtotal float64 // theoretical total capacity, [eq/L]
	pKa    float64 // carboxylic pKa at 25°C
}

// add models to factory
func init() {
	allocators["wac-h"] = func() Model { return new(WacH) }
	allocators["wac-na"] = func() Model { return new(WacNa) }
}

// Init initialises model
func (o *WacH) Init(prms dbf.Params) (err error) {
	o.qtotal = 4.0
	o.pKa = 4.5
	return wacReadPrms(&o.qtotal, &o.pKa, "wac-h", prms)
}

// Init initialises model
func (o *WacNa) Init(prms dbf.Params) (err error) {
	o.qtotal = 4.0
	o.pKa = 4.5
	return wacReadPrms(&o.qtotal, &o.pKa, "wac-na", prms)
}

func wacReadPrms(qtotal, pKa *float64, name string, prms dbf.Params) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qtotal":
			*qtotal = p.V
		case "pka":
			*pKa = p.V
		default:
			return chk.Err("%s: parameter named %q is incorrect\n", name, p.N)
		}
	}
	if *qtotal <= 0 {
		return chk.Err("%s: total capacity qtotal = %g is invalid", name, *qtotal)
	}
	return nil
}

func wacPrms(qtotal, pKa float64) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "qtotal", V: qtotal},
		&dbf.P{N: "pka", V: pKa},
	}
}

// GetPrms gets (an example) of parameters
func (o WacH) GetPrms(example bool) dbf.Params {
	if example {
		return wacPrms(4.0, 4.5)
	}
	return wacPrms(o.qtotal, o.pKa)
}

// GetPrms gets (an example) of parameters
func (o WacNa) GetPrms(example bool) dbf.Params {
	if example {
		return wacPrms(4.0, 4.5)
	}
	return wacPrms(o.qtotal, o.pKa)
}

// Name returns the resin class name
func (o WacH) Name() string { return "wac-h" }

// Name returns the resin class name
func (o WacNa) Name() string { return "wac-na" }

// TotalCapacity returns the theoretical total capacity
func (o WacH) TotalCapacity() float64 { return o.qtotal }

// TotalCapacity returns the theoretical total capacity
func (o WacNa) TotalCapacity() float64 { return o.qtotal }

// Operating returns the derated operating capacity from the pH floor implied
// by the target residual alkalinity
func (o WacH) Operating(c *Conditions) (opcap, derating float64, err error) {
	pKa := PKaAtTemp(o.pKa, c.Temp)
	derating = Ionization(PHFloor(c.TargetAlk), pKa)
	opcap = o.qtotal * derating
	return
}

// Operating returns the derated operating capacity from ionization at the
// operating pH
func (o WacNa) Operating(c *Conditions) (opcap, derating float64, err error) {
	derating = Ionization(c.PH, o.pKa)
	opcap = o.qtotal * derating
	return
}
