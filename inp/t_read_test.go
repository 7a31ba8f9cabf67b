// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/hydrosim/goix/mdl/capacity"
	"github.com/hydrosim/goix/mdl/ion"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ReadMat("data", "resins.mat")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%d materials read\n", len(mdb.Materials))

	mat, err := mdb.Get("softener-sac8")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	sac, ok := mat.Cap.(*capacity.SAC)
	if !ok {
		tst.Errorf("material %q must derive a *capacity.SAC model\n", mat.Name)
		return
	}
	chk.Float64(tst, "qtotal", 1e-15, sac.TotalCapacity(), 2.0)
	if mat.Family != "sac8" {
		tst.Errorf("family mismatch: %q\n", mat.Family)
		return
	}

	mat, err = mdb.Get("dealk-wac")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if _, ok := mat.Cap.(*capacity.WacH); !ok {
		tst.Errorf("material %q must derive a *capacity.WacH model\n", mat.Name)
		return
	}

	// unknown material names must fail listing the available ones
	_, err = mdb.Get("mixed-bed")
	if err == nil {
		tst.Errorf("lookup of unknown material must fail\n")
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. softening run file")

	sim, err := ReadSim("data", "softening.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	calc, feed, cond, err := sim.Calculator()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Ca", 1e-15, feed.Ions[ion.Ca], 180)
	chk.Float64(tst, "serviceflow", 1e-15, calc.ServiceFlow, 16)
	chk.Float64(tst, "regendose", 1e-15, cond.RegenDose, 120)
	chk.Float64(tst, "K Ca/Na", 1e-15, calc.Exc.KCaNa, 5.16)
	chk.Float64(tst, "f_active default", 1e-15, calc.Exc.FActive, 0.10)

	res, err := calc.Run(feed, cond)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pf("softening: actual BV = %g, run = %g h\n", res.ActualBV, res.RunHours)
	if !(res.TheoreticalBV > res.ActualBV && res.ActualBV > 0) {
		tst.Errorf("must have theoretical BV > actual BV > 0\n")
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. dealkalization run file")

	sim, err := ReadSim("data", "dealk.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	calc, feed, cond, err := sim.Calculator()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if calc.Exc != nil {
		tst.Errorf("wac-h run must not build an exchange solver\n")
		return
	}
	chk.Float64(tst, "targetalk", 1e-15, cond.TargetAlk, 20)
	chk.Float64(tst, "temp", 1e-15, cond.Temp, 20)

	res, err := calc.Run(feed, cond)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pf("dealk: actual BV = %g, CO2 = %g mg/L\n", res.ActualBV, res.CO2Generated)
	chk.Float64(tst, "alk removed", 1e-15, res.AlkalinityRemoved, 180)
	if res.ActualBV <= 0 {
		tst.Errorf("dealkalization must give positive bed volumes\n")
	}
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. bad water analysis")

	w := WaterData{Ions: map[string]float64{"Fe": 2}}
	_, err := w.Feed()
	if err == nil {
		tst.Errorf("unknown ion symbol must fail\n")
		return
	}
	w = WaterData{Ions: map[string]float64{"Ca": -1}}
	_, err = w.Feed()
	if err == nil {
		tst.Errorf("negative concentration must fail\n")
	}
}
