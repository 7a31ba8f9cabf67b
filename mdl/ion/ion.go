// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ion holds cation properties and selectivity data for ion exchange
package ion

import (
	"github.com/cpmech/gosl/chk"
)

// Ion identifies one cation from the closed set handled by this package
type Ion int

// available ions
const (
	Ca  Ion = iota // calcium Ca²⁺
	Mg             // magnesium Mg²⁺
	Na             // sodium Na⁺
	K              // potassium K⁺
	NH4            // ammonium NH₄⁺
	Sr             // strontium Sr²⁺
	Ba             // barium Ba²⁺
	H              // hydrogen H⁺
)

// CaCO3 constants for "as CaCO₃" expressions and stoichiometry
const (
	MwCaCO3  = 100.09 // molecular weight of CaCO₃, [g/mol]
	EqwCaCO3 = 50.045 // equivalent weight of CaCO₃, [g/eq]
	MwCO2    = 44.01  // molecular weight of CO₂, [g/mol]
)

// Props holds molecular weight and valence of one ion
type Props struct {
	Mw      float64 // molecular weight, [g/mol]
	Valence int     // ionic charge
}

// props holds all ion properties
var props = map[Ion]Props{
	Ca:  {40.078, 2},
	Mg:  {24.305, 2},
	Na:  {22.990, 1},
	K:   {39.098, 1},
	NH4: {18.039, 1},
	Sr:  {87.620, 2},
	Ba:  {137.327, 2},
	H:   {1.008, 1},
}

// names maps ions to symbols
var names = map[Ion]string{
	Ca: "Ca", Mg: "Mg", Na: "Na", K: "K", NH4: "NH4", Sr: "Sr", Ba: "Ba", H: "H",
}

// String returns the symbol of this ion
func (o Ion) String() string {
	if n, ok := names[o]; ok {
		return n
	}
	return "unknown"
}

// All returns all available ions, in a fixed order
func All() []Ion {
	return []Ion{Ca, Mg, Na, K, NH4, Sr, Ba, H}
}

// Parse returns the ion corresponding to a symbol
func Parse(symbol string) (Ion, error) {
	for i, n := range names {
		if n == symbol {
			return i, nil
		}
	}
	return Ion(-1), chk.Err("ion %q is not available in 'ion' database; available ions: %v", symbol, All())
}

// GetProps returns the properties of one ion
func GetProps(i Ion) (Props, error) {
	p, ok := props[i]
	if !ok {
		return Props{}, chk.Err("ion %q is not available in 'ion' database; available ions: %v", i, All())
	}
	return p, nil
}

// Eqw returns the equivalent weight MW/valence, [g/eq]
func Eqw(i Ion) (float64, error) {
	p, err := GetProps(i)
	if err != nil {
		return 0, err
	}
	return p.Mw / float64(p.Valence), nil
}

// EqPerL converts a concentration from mg/L to eq/L
func EqPerL(i Ion, mgl float64) (float64, error) {
	eqw, err := Eqw(i)
	if err != nil {
		return 0, err
	}
	return mgl / (eqw * 1000.0), nil
}

// MgPerL converts a concentration from eq/L to mg/L
func MgPerL(i Ion, eql float64) (float64, error) {
	eqw, err := Eqw(i)
	if err != nil {
		return 0, err
	}
	return eql * eqw * 1000.0, nil
}

// AsCaCO3 expresses a concentration in eq/L as mg/L of CaCO₃
func AsCaCO3(eql float64) float64 {
	return eql * EqwCaCO3 * 1000.0
}

// CaCO3ToEq converts a concentration in mg/L as CaCO₃ to eq/L
func CaCO3ToEq(mglCaCO3 float64) float64 {
	return mglCaCO3 / (EqwCaCO3 * 1000.0)
}

// Conc maps ions to concentrations in mg/L. Zero means absent; values are
// never negative.
type Conc map[Ion]float64

// Eq returns the concentration of one ion in eq/L (zero if absent)
func (o Conc) Eq(i Ion) (float64, error) {
	return EqPerL(i, o[i])
}

// TotalEq returns the total equivalents of the given ions in eq/L
func (o Conc) TotalEq(ions ...Ion) (tot float64, err error) {
	var e float64
	for _, i := range ions {
		e, err = o.Eq(i)
		if err != nil {
			return
		}
		tot += e
	}
	return
}

// Fractions returns the equivalent fractions of the given ions. If the total
// equivalents vanish, all fractions are zero.
func (o Conc) Fractions(ions ...Ion) (f map[Ion]float64, err error) {
	tot, err := o.TotalEq(ions...)
	if err != nil {
		return
	}
	f = make(map[Ion]float64)
	if tot < 1e-10 {
		for _, i := range ions {
			f[i] = 0
		}
		return
	}
	var e float64
	for _, i := range ions {
		e, err = o.Eq(i)
		if err != nil {
			return
		}
		f[i] = e / tot
	}
	return
}
