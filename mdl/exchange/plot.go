// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots hardness leakage versus active-zone fraction for a fixed feed
//  args -- plot arguments. may be nil
func Plot(sol *Solver, fmin, fmax float64, npts int, caMgL, mgMgL, naMgL float64, args *plt.A) (F, L []float64, err error) {
	F = utl.LinSpace(fmin, fmax, npts)
	L = make([]float64, npts)
	s := *sol
	s.Silent = true
	for i, f := range F {
		s.FActive = f
		res, e := s.SolveLeakage(caMgL, mgMgL, naMgL)
		if e != nil {
			return nil, nil, e
		}
		L[i] = res.Hardness
	}
	plt.Plot(F, L, args)
	return
}

// PlotEnd ends plot and shows figure, if show==true
func PlotEnd(show bool) {
	plt.Gll("$f_{active}$", "hardness leakage [mg/L as CaCO3]", nil)
	if show {
		plt.Show()
	}
}
