// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// calibration constants
const (
	calFlo     = 0.05 // initial lower bracket on f_active
	calFhi     = 0.20 // initial upper bracket on f_active
	calFmin    = 1e-4 // floor of downward bracket expansion
	calFmax    = 0.8  // ceiling of upward bracket expansion
	calNexpand = 20   // max bracket-expansion steps, each direction
	calNmaxIt  = 40   // max bisection iterations
	calLtol    = 0.1  // absolute tolerance on leakage, [mg/L as CaCO₃]
)

// Calibrate finds the active-zone fraction that reproduces an externally
// supplied reference hardness leakage (mg/L as CaCO₃) for the given feed, by
// bisection with bracket expansion. The achievable leakage range is bounded
// by the selectivity coefficients and the feed composition; a target outside
// that range returns the nearest bound with a warning. The solver's own
// FActive is not modified.
func (o *Solver) Calibrate(targetMgLCaCO3, caMgL, mgMgL, naMgL float64) (fActive float64, err error) {

	// leakage as a function of f_active (all other state fixed)
	var lerr error
	leakAt := func(f float64) float64 {
		s := *o
		s.FActive = f
		s.Silent = true
		res, e := s.SolveLeakage(caMgL, mgMgL, naMgL)
		if e != nil {
			lerr = e
			return 0
		}
		return res.Hardness
	}

	// bracket
	flo, fhi := calFlo, calFhi
	llo, lhi := leakAt(flo), leakAt(fhi)
	if lerr != nil {
		return 0, lerr
	}

	// expand downward: leakage grows with f_active, so a small target needs
	// a smaller lower bound
	for i := 0; i < calNexpand && targetMgLCaCO3 < llo && flo > calFmin; i++ {
		flo *= 0.5
		if flo < calFmin {
			flo = calFmin
		}
		llo = leakAt(flo)
	}

	// expand upward
	for i := 0; i < calNexpand && targetMgLCaCO3 > lhi && fhi < calFmax; i++ {
		fhi *= 1.5
		if fhi > calFmax {
			fhi = calFmax
		}
		lhi = leakAt(fhi)
	}
	if lerr != nil {
		return 0, lerr
	}

	// target below or above the achievable range
	if targetMgLCaCO3 < llo {
		if !o.Silent {
			io.Pforan("exchange: calibration target %g mg/L below achievable minimum %g mg/L; returning f_active=%g\n", targetMgLCaCO3, llo, flo)
		}
		return flo, nil
	}
	if targetMgLCaCO3 > lhi {
		if !o.Silent {
			io.Pforan("exchange: calibration target %g mg/L above achievable maximum %g mg/L; returning f_active=%g\n", targetMgLCaCO3, lhi, fhi)
		}
		return fhi, nil
	}

	// bisection
	var fm float64
	for it := 0; it < calNmaxIt; it++ {
		fm = 0.5 * (flo + fhi)
		lm := leakAt(fm)
		if lerr != nil {
			return 0, lerr
		}
		if math.Abs(lm-targetMgLCaCO3) < calLtol {
			return fm, nil
		}
		if lm < targetMgLCaCO3 {
			flo = fm
		} else {
			fhi = fm
		}
	}
	if !o.Silent {
		io.Pforan("exchange: calibration did not converge after %d bisections; returning f_active=%g\n", calNmaxIt, fm)
	}
	return fm, nil
}
