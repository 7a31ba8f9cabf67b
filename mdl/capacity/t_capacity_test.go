// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capacity

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

func Test_sac01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sac01. regeneration-efficiency curve")

	mdl, err := New("sac")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	sac := mdl.(*SAC)

	// breakpoints are calibrated constants
	chk.Float64(tst, "eff @ 40", 1e-15, sac.RegenEfficiency(40), 0.50)
	chk.Float64(tst, "eff @ 60", 1e-15, sac.RegenEfficiency(60), 0.50)
	chk.Float64(tst, "eff @ 80", 1e-15, sac.RegenEfficiency(80), 0.60)
	chk.Float64(tst, "eff @ 100", 1e-15, sac.RegenEfficiency(100), 0.70)
	chk.Float64(tst, "eff @ 125", 1e-15, sac.RegenEfficiency(125), 0.775)
	chk.Float64(tst, "eff @ 150", 1e-15, sac.RegenEfficiency(150), 0.85)

	// continuity at 150 and asymptotic cap
	chk.Float64(tst, "eff @ 150+", 1e-10, sac.RegenEfficiency(150+1e-8), 0.85)
	if e := sac.RegenEfficiency(1000); e >= 0.95 || e < 0.85 {
		tst.Errorf("efficiency at very high dose must approach 0.95 from below; got %g\n", e)
		return
	}

	// monotone non-decreasing over the whole range
	D := utl.LinSpace(0, 400, 81)
	for i := 1; i < len(D); i++ {
		if sac.RegenEfficiency(D[i]) < sac.RegenEfficiency(D[i-1]) {
			tst.Errorf("efficiency must be non-decreasing at dose %g\n", D[i])
			return
		}
	}
}

func Test_sac02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sac02. Na-form conversion and operating capacity")

	mdl, err := New("sac")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "qtotal", V: 2.0}})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	sac := mdl.(*SAC)

	// all-sodium feed converts fully
	chk.Float64(tst, "naForm no divalent", 1e-15, sac.NaFormFraction(0, 0), 1.0)

	// the empirical floor keeps the fraction above one half
	f := sac.NaFormFraction(0.7, 0.2)
	if f <= 0.5 || f >= 1.0 {
		tst.Errorf("na-form fraction %g out of (0.5,1)\n", f)
		return
	}

	// more divalent content penalizes harder
	if sac.NaFormFraction(0.6, 0.2) >= sac.NaFormFraction(0.3, 0.1) {
		tst.Errorf("na-form fraction must fall with divalent content\n")
		return
	}

	// operating capacity never exceeds total
	opcap, derating, err := sac.Operating(&Conditions{RegenDose: 120, CaFrac: 0.55, MgFrac: 0.25, NaFrac: 0.20})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("opcap = %g eq/L, derating = %g\n", opcap, derating)
	if opcap <= 0 || opcap > sac.TotalCapacity() {
		tst.Errorf("operating capacity %g out of (0, %g]\n", opcap, sac.TotalCapacity())
		return
	}
	chk.Float64(tst, "opcap = qtotal*derating", 1e-15, opcap, 2.0*derating)
}

func Test_sac03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sac03. rinse requirement lookup")

	chk.Float64(tst, "rinse @ 80", 1e-15, RinseBV(80), 2.0)
	chk.Float64(tst, "rinse @ 120", 1e-15, RinseBV(120), 3.0)
	chk.Float64(tst, "rinse @ 121", 1e-15, RinseBV(121), 4.0)
	chk.Float64(tst, "rinse volume", 1e-15, RinseVolume(100, 2000), 3.0*2000)
}

func Test_wac01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wac01. Henderson-Hasselbalch ionization")

	// α = 1/2 at pH = pKa
	chk.Float64(tst, "alpha @ pKa", 1e-15, Ionization(4.5, 4.5), 0.5)

	// one unit above pKa: 10/11
	chk.Float64(tst, "alpha @ pKa+1", 1e-14, Ionization(5.5, 4.5), 10.0/11.0)

	// slope check against central differences
	for _, ph := range []float64{3.5, 4.5, 6.0} {
		dana := math.Ln10 * Ionization(ph, 4.5) * (1.0 - Ionization(ph, 4.5))
		dnum := num.DerivCen5(ph, 1e-3, func(x float64) float64 {
			return Ionization(x, 4.5)
		})
		chk.Float64(tst, io.Sf("dα/dpH @ %g", ph), 1e-7, dana, dnum)
	}
}

func Test_wac02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wac02. pH floor from target residual alkalinity")

	chk.Float64(tst, "floor @ 2", 1e-15, PHFloor(2), 4.0)
	chk.Float64(tst, "floor @ 5", 1e-15, PHFloor(5), 4.0)
	chk.Float64(tst, "floor @ 20", 1e-15, PHFloor(20), 4.8)
	chk.Float64(tst, "floor @ 50", 1e-15, PHFloor(50), 5.5)
	chk.Float64(tst, "floor @ 80", 1e-15, PHFloor(80), 5.5)

	// temperature correction of pKa
	chk.Float64(tst, "pKa @ 25", 1e-15, PKaAtTemp(4.5, 25), 4.5)
	chk.Float64(tst, "pKa @ 35", 1e-15, PKaAtTemp(4.5, 35), 4.4)
}

func Test_wac03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wac03. wac-h and wac-na operating capacity")

	wh, err := New("wac-h")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = wh.Init(dbf.Params{&dbf.P{N: "qtotal", V: 4.0}, &dbf.P{N: "pka", V: 4.5}})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// tighter targets force a lower pH floor hence less usable capacity
	tight, _, err := wh.Operating(&Conditions{TargetAlk: 5, Temp: 25})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	loose, _, err := wh.Operating(&Conditions{TargetAlk: 50, Temp: 25})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("wac-h: opcap tight=%g, loose=%g eq/L\n", tight, loose)
	if tight >= loose {
		tst.Errorf("tighter alkalinity target must yield less capacity: %g >= %g\n", tight, loose)
		return
	}
	chk.Float64(tst, "opcap tight", 1e-12, tight, 4.0*Ionization(4.0, 4.5))

	wn, err := New("wac-na")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = wn.Init(wn.GetPrms(true))
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	opcap, derating, err := wn.Operating(&Conditions{PH: 4.5})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "wac-na derating @ pKa", 1e-15, derating, 0.5)
	chk.Float64(tst, "wac-na opcap @ pKa", 1e-15, opcap, 2.0)
}

func Test_wac04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wac04. CO2 stoichiometry")

	// 100 mg/L as CaCO3 removed produces 44.01/100.09 × 100 mg/L CO2
	chk.Float64(tst, "CO2", 1e-10, CO2FromAlkalinity(100), 43.970426616045556)
}

func Test_cap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cap01. model database lookups")

	_, err := New("sba")
	if err == nil {
		tst.Errorf("lookup of unknown model must fail\n")
		return
	}
	for _, name := range []string{"sac", "wac-h", "wac-na"} {
		m, err := New(name)
		if err != nil {
			tst.Errorf("New(%q) failed: %v\n", name, err)
			return
		}
		if m.Name() != name {
			tst.Errorf("model name mismatch: %q != %q\n", m.Name(), name)
			return
		}
	}
}
