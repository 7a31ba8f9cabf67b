// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/hydrosim/goix/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGoix -- Go Ion Exchange Breakthrough\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read simulation
	sim, err := inp.ReadSim(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	calc, feed, cond, err := sim.Calculator()
	if err != nil {
		chk.Panic("cannot assemble calculator:\n%v", err)
	}

	// run breakthrough calculation
	res, err := calc.Run(feed, cond)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	if verbose && sim.Desc != "" {
		io.Pf("%s\n\n", sim.Desc)
	}
	io.Pf("%v\n", io.ArgsTable("RESULTS",
		"theoretical bed volumes", "theoBV", io.Sf("%.1f", res.TheoreticalBV),
		"actual bed volumes", "actualBV", io.Sf("%.1f", res.ActualBV),
		"unused-bed fraction", "lub", io.Sf("%.3f", res.UnusedBedFrac),
		"utilization", "util", io.Sf("%.3f", res.Utilization),
		"run length [h]", "run", io.Sf("%.2f", res.RunHours),
		"operating capacity [eq/L]", "opcap", io.Sf("%.3f", res.OperatingCapacity),
		"derating factor", "derating", io.Sf("%.3f", res.DeratingFactor),
		"hardness leakage [mg/L CaCO3]", "leak", io.Sf("%.2f", res.HardnessLeak),
		"CO2 generated [mg/L]", "co2", io.Sf("%.2f", res.CO2Generated),
		"rinse requirement [BV]", "rinse", io.Sf("%.1f", res.RinseBV),
	))
}
