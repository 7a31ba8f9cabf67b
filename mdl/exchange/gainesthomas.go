// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package exchange implements multicomponent ion-exchange equilibrium for the
// ternary Ca²⁺/Mg²⁺/Na⁺ system using the Gaines-Thomas mass-action law
//  References:
//   [1] Gaines GL and Thomas HC (1953) Adsorption studies on clay minerals II.
//       A formulation of the thermodynamics of exchange adsorption.
//       J Chem Phys, 21(4) 714-718
//   [2] Helfferich F (1962) Ion Exchange. McGraw-Hill, New York
package exchange

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/hydrosim/goix/mdl/ion"
)

// Fractions holds the equivalent fractions of the three ions in one phase
// (solution or resin). Fractions of one phase sum to 1.
type Fractions struct {
	Ca float64 // Ca²⁺ equivalent fraction
	Mg float64 // Mg²⁺ equivalent fraction
	Na float64 // Na⁺ equivalent fraction
}

// Sum returns the sum of the three fractions
func (o Fractions) Sum() float64 {
	return o.Ca + o.Mg + o.Na
}

// Normalize returns a new Fractions scaled to sum to 1. A vanishing sum
// returns the pure Na form.
func (o Fractions) Normalize() Fractions {
	s := o.Sum()
	if s < 1e-14 {
		return Fractions{0, 0, 1}
	}
	return Fractions{o.Ca / s, o.Mg / s, o.Na / s}
}

// Leakage holds the solution of one equilibrium leakage computation
type Leakage struct {
	Ca         float64   // Ca²⁺ leakage, [mg/L]
	Mg         float64   // Mg²⁺ leakage, [mg/L]
	Hardness   float64   // hardness leakage, [mg/L as CaCO₃]
	Resin      Fractions // bed-average resin-phase composition
	Effluent   Fractions // solution-phase composition in equilibrium with Resin
	Iterations int       // fixed-point iterations performed
	Converged  bool      // fixed-point iteration converged within Itol
}

// Solver computes the equilibrium resin-phase and solution-phase (leakage)
// composition of a Ca/Mg/Na system. Only an active fraction FActive of the
// bed is taken to be in equilibrium with the feed; the rest stays in the
// regenerated Na form. The inverse problem is a single quadratic in y_Na and
// is therefore restricted to two divalent species competing with Na⁺.
type Solver struct {

	// parameters
	KCaNa   float64 // Gaines-Thomas selectivity coefficient Ca/Na
	KMgNa   float64 // Gaines-Thomas selectivity coefficient Mg/Na
	FActive float64 // active-zone fraction of the bed, in (0,1]

	// constants
	NmaxIt int     // max number of fixed-point iterations
	Itol   float64 // convergence tolerance on each fraction
	Silent bool    // do not show warning messages
}

// Init initialises the solver
func (o *Solver) Init(prms dbf.Params) (err error) {
	o.FActive = 0.10
	o.NmaxIt = 50
	o.Itol = 1e-6
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "kca":
			o.KCaNa = p.V
		case "kmg":
			o.KMgNa = p.V
		case "factive":
			o.FActive = p.V
		case "nmaxit":
			o.NmaxIt = int(p.V)
		case "itol":
			o.Itol = p.V
		default:
			return chk.Err("exchange: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.KCaNa <= 0 || o.KMgNa <= 0 {
		return chk.Err("exchange: selectivity coefficients must be positive. KCaNa=%g, KMgNa=%g is incorrect", o.KCaNa, o.KMgNa)
	}
	if o.FActive <= 0 || o.FActive > 1 {
		return chk.Err("exchange: active-zone fraction must be within (0,1]. FActive=%g is incorrect", o.FActive)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Solver) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kca", V: 5.16},
			&dbf.P{N: "kmg", V: 3.29},
			&dbf.P{N: "factive", V: 0.10},
		}
	}
	return dbf.Params{
		&dbf.P{N: "kca", V: o.KCaNa},
		&dbf.P{N: "kmg", V: o.KMgNa},
		&dbf.P{N: "factive", V: o.FActive},
	}
}

// step applies one Gaines-Thomas fixed-point update to the resin composition
// x given the solution composition y, returning a new normalized state
func (o Solver) step(y, x Fractions) Fractions {
	r := x.Na * x.Na / (y.Na * y.Na)
	return Fractions{
		Ca: y.Ca / o.KCaNa * r,
		Mg: y.Mg / o.KMgNa * r,
		Na: x.Na,
	}.Normalize()
}

// activeZone iterates the fixed point to find the resin composition of the
// active zone in equilibrium with the feed composition y
func (o Solver) activeZone(y Fractions) (x Fractions, it int, converged bool) {
	x = Fractions{0.1, 0.05, 0.85} // seed
	for it = 1; it <= o.NmaxIt; it++ {
		xnew := o.step(y, x)
		if math.Abs(xnew.Ca-x.Ca) < o.Itol && math.Abs(xnew.Mg-x.Mg) < o.Itol && math.Abs(xnew.Na-x.Na) < o.Itol {
			return xnew, it, true
		}
		x = xnew
	}
	return x, o.NmaxIt, false
}

// blend averages the active-zone composition with the regenerated Na form of
// the remaining bed fraction
func blend(active Fractions, fActive float64) Fractions {
	x := Fractions{
		Ca: fActive * active.Ca,
		Mg: fActive * active.Mg,
		Na: fActive*active.Na + (1.0 - fActive),
	}
	if math.Abs(x.Sum()-1.0) > 0.01 {
		x = x.Normalize()
	}
	return x
}

// invert solves the inverse Gaines-Thomas problem: the solution composition
// simultaneously at equilibrium with the resin composition x. With two
// divalents this reduces to the quadratic a·y_Na² + y_Na − 1 = 0 with
// a = (X_Ca·K_Ca + X_Mg·K_Mg)/X_Na²
func (o Solver) invert(x Fractions) Fractions {
	a := (x.Ca*o.KCaNa + x.Mg*o.KMgNa) / (x.Na * x.Na)
	var yna float64
	if a < 1e-12 {
		yna = 1.0 // no divalent loading
	} else {
		disc := 1.0 + 4.0*a
		if disc < 0 {
			disc = 0
		}
		yna = (-1.0 + math.Sqrt(disc)) / (2.0 * a)
	}
	if yna < 1e-6 {
		yna = 1e-6
	}
	if yna > 1.0 {
		yna = 1.0
	}
	q := yna * yna / (x.Na * x.Na)
	y := Fractions{
		Ca: o.KCaNa * x.Ca * q,
		Mg: o.KMgNa * x.Mg * q,
		Na: yna,
	}
	if math.Abs(y.Sum()-1.0) > 0.01 {
		y = y.Normalize()
	}
	return y
}

// SolveLeakage computes the equilibrium leakage for a feed given in mg/L.
// Numerical edge cases degrade to physically sensible defaults and are never
// fatal: a feed with no equivalents returns zero leakage, and a fixed point
// that fails to converge returns the last iterate with a warning.
func (o *Solver) SolveLeakage(caMgL, mgMgL, naMgL float64) (res *Leakage, err error) {

	// feed speciation
	caEq, err := ion.EqPerL(ion.Ca, caMgL)
	if err != nil {
		return
	}
	mgEq, err := ion.EqPerL(ion.Mg, mgMgL)
	if err != nil {
		return
	}
	naEq, err := ion.EqPerL(ion.Na, naMgL)
	if err != nil {
		return
	}
	totEq := caEq + mgEq + naEq
	if totEq < 1e-10 {
		if !o.Silent {
			io.Pforan("exchange: feed has no equivalents; returning zero leakage\n")
		}
		res = &Leakage{Resin: Fractions{0, 0, 1}, Effluent: Fractions{0, 0, 1}, Converged: true}
		return
	}
	y := Fractions{caEq / totEq, mgEq / totEq, naEq / totEq}
	if y.Na < 1e-9 {
		y.Na = 1e-9 // sodium-free feeds
	}

	// active-zone equilibrium
	xa, it, converged := o.activeZone(y)
	if !converged && !o.Silent {
		io.Pforan("exchange: fixed point did not converge after %d iterations; using last iterate\n", o.NmaxIt)
	}

	// bed-average composition and inverse problem
	x := blend(xa, o.FActive)
	ye := o.invert(x)

	// leakage concentrations
	caOut, err := ion.MgPerL(ion.Ca, ye.Ca*totEq)
	if err != nil {
		return
	}
	mgOut, err := ion.MgPerL(ion.Mg, ye.Mg*totEq)
	if err != nil {
		return
	}
	res = &Leakage{
		Ca:         caOut,
		Mg:         mgOut,
		Hardness:   ion.AsCaCO3((ye.Ca + ye.Mg) * totEq),
		Resin:      x,
		Effluent:   ye,
		Iterations: it,
		Converged:  converged,
	}
	return
}
