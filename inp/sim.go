// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/hydrosim/goix/mdl/breakthrough"
	"github.com/hydrosim/goix/mdl/capacity"
	"github.com/hydrosim/goix/mdl/exchange"
	"github.com/hydrosim/goix/mdl/ion"
)

// WaterData holds one water analysis
type WaterData struct {
	Ions       map[string]float64 `json:"ions"`       // cation concentrations by symbol, [mg/L]
	PH         float64            `json:"ph"`         // pH
	Temp       float64            `json:"temp"`       // temperature, [°C]
	Alkalinity float64            `json:"alkalinity"` // total alkalinity, [mg/L as CaCO₃]
}

// Feed converts the analysis into a breakthrough feed. Unknown ion symbols
// are configuration errors and fail the read.
func (o WaterData) Feed() (*breakthrough.Feed, error) {
	conc := make(ion.Conc)
	for symbol, mgl := range o.Ions {
		i, err := ion.Parse(symbol)
		if err != nil {
			return nil, err
		}
		if mgl < 0 {
			return nil, chk.Err("water analysis: concentration of %q = %g mg/L is invalid", symbol, mgl)
		}
		conc[i] = mgl
	}
	return &breakthrough.Feed{Ions: conc, Alkalinity: o.Alkalinity}, nil
}

// Simulation holds one breakthrough run definition
type Simulation struct {
	Desc        string    `json:"desc"`        // description of simulation
	Matfile     string    `json:"matfile"`     // materials file path, relative to the .sim file
	Resin       string    `json:"resin"`       // name of resin material
	Water       WaterData `json:"water"`       // feed water analysis
	ServiceFlow float64   `json:"serviceflow"` // service flow rate, [BV/h]
	RegenDose   float64   `json:"regendose"`   // regenerant dose, [g/L resin]
	TargetAlk   float64   `json:"targetalk"`   // target residual alkalinity, [mg/L as CaCO₃]
	RefLeakage  float64   `json:"refleakage"`  // reference leakage for calibration; 0 disables
	FActive     float64   `json:"factive"`     // active-zone fraction; 0 means the 0.10 default

	// derived
	dir string // directory of the .sim file
}

// ReadSim reads a simulation file
func ReadSim(dir, fn string) (sim *Simulation, err error) {
	b := io.ReadFile(filepath.Join(dir, fn))
	sim = new(Simulation)
	err = json.Unmarshal(b, sim)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q: %v", fn, err)
	}
	sim.dir = dir
	if sim.Resin == "" {
		return nil, chk.Err("simulation file %q must name a resin material", fn)
	}
	return
}

// Calculator assembles the breakthrough calculator, feed and conditions
// defined by this simulation
func (o *Simulation) Calculator() (calc *breakthrough.Calculator, feed *breakthrough.Feed, cond *capacity.Conditions, err error) {

	// materials database
	mdb, err := ReadMat(o.dir, o.Matfile)
	if err != nil {
		return
	}
	mat, err := mdb.Get(o.Resin)
	if err != nil {
		return
	}

	// exchange solver from the material's selectivity family
	var sol *exchange.Solver
	if mat.Model == "sac" {
		kca, e := ion.Ksel(mat.Family, ion.Ca)
		if e != nil {
			return nil, nil, nil, e
		}
		kmg, e := ion.Ksel(mat.Family, ion.Mg)
		if e != nil {
			return nil, nil, nil, e
		}
		fActive := o.FActive
		if fActive == 0 {
			fActive = 0.10
		}
		sol = new(exchange.Solver)
		err = sol.Init(dbf.Params{
			&dbf.P{N: "kca", V: kca},
			&dbf.P{N: "kmg", V: kmg},
			&dbf.P{N: "factive", V: fActive},
		})
		if err != nil {
			return
		}
	}

	// calculator
	calc = new(breakthrough.Calculator)
	err = calc.Init(mat.Cap, sol, dbf.Params{
		&dbf.P{N: "serviceflow", V: o.ServiceFlow},
		&dbf.P{N: "refleakage", V: o.RefLeakage},
	})
	if err != nil {
		return
	}

	// feed and conditions
	feed, err = o.Water.Feed()
	if err != nil {
		return
	}
	cond = &capacity.Conditions{
		RegenDose: o.RegenDose,
		PH:        o.Water.PH,
		Temp:      o.Water.Temp,
		TargetAlk: o.TargetAlk,
	}
	return
}
