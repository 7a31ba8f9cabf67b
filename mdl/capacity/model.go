// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package capacity implements operating-capacity derating models for cation
// exchange resins
//  References:
//   [1] Helfferich F (1962) Ion Exchange. McGraw-Hill, New York
//   [2] Wachinski AM (2016) Environmental Ion Exchange: Principles and
//       Design. CRC Press, 2nd edition
package capacity

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Conditions holds the operating conditions a derating model may consult.
// Fields not used by a given resin class are ignored.
type Conditions struct {
	RegenDose float64 // regenerant dose, [g/L resin] (SAC)
	PH        float64 // operating pH (WAC-Na)
	Temp      float64 // water temperature, [°C]
	TargetAlk float64 // target residual alkalinity, [mg/L as CaCO₃] (WAC-H)
	CaFrac    float64 // feed Ca²⁺ equivalent fraction
	MgFrac    float64 // feed Mg²⁺ equivalent fraction
	NaFrac    float64 // feed Na⁺ equivalent fraction
}

// Model defines operating-capacity derating models. Operating returns the
// usable capacity in eq/L resin plus the overall derating factor; the
// operating capacity never exceeds the total capacity.
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Name() string                    // returns the resin class name
	TotalCapacity() float64          // returns the theoretical total capacity, [eq/L]
	Operating(c *Conditions) (opcap, derating float64, err error)
}

// New returns a new capacity derating model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'capacity' database; available models: %v", name, available())
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// available returns the names of registered models
func available() (names []string) {
	for _, n := range []string{"sac", "wac-h", "wac-na"} {
		if _, ok := allocators[n]; ok {
			names = append(names, n)
		}
	}
	return
}
