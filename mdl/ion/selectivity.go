// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ion

import (
	"github.com/cpmech/gosl/chk"
)

// Selectivity maps ions to selectivity coefficients relative to Na⁺.
// Values are dimensionless literature constants and are immutable for one
// resin family.
type Selectivity map[Ion]float64

// families holds the selectivity tables per resin family.
//  References:
//   [1] Helfferich F (1962) Ion Exchange. McGraw-Hill, New York
//   [2] Bonner OD and Smith LL (1957) A selectivity scale for some divalent
//       cations on Dowex 50. J Phys Chem, 61(3) 326-329
var families = map[string]Selectivity{

	// polystyrene strong-acid cation, 8% DVB crosslinking
	"sac8": {
		H:   1.27,
		Na:  1.00,
		NH4: 2.55,
		K:   2.90,
		Mg:  3.29,
		Ca:  5.16,
		Sr:  6.51,
		Ba:  11.5,
	},

	// polystyrene strong-acid cation, 10% DVB crosslinking
	"sac10": {
		H:   1.47,
		Na:  1.00,
		NH4: 3.34,
		K:   4.15,
		Mg:  3.51,
		Ca:  7.47,
		Sr:  10.1,
		Ba:  20.8,
	},
}

// Families returns the names of all available resin families, in a fixed order
func Families() []string {
	return []string{"sac8", "sac10"}
}

// Ions returns the ions present in this table, in a fixed order
func (o Selectivity) Ions() (res []Ion) {
	for _, i := range All() {
		if _, ok := o[i]; ok {
			res = append(res, i)
		}
	}
	return
}

// GetSelectivity returns the selectivity table of one resin family
func GetSelectivity(family string) (Selectivity, error) {
	s, ok := families[family]
	if !ok {
		return nil, chk.Err("resin family %q is not available in 'selectivity' database; available families: %v", family, Families())
	}
	return s, nil
}

// Ksel returns the selectivity coefficient of one ion relative to Na⁺ for one
// resin family
func Ksel(family string, i Ion) (float64, error) {
	s, err := GetSelectivity(family)
	if err != nil {
		return 0, err
	}
	k, ok := s[i]
	if !ok {
		return 0, chk.Err("ion %q is not available in selectivity table of family %q; available ions: %v", i, family, s.Ions())
	}
	return k, nil
}
