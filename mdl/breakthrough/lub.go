// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakthrough

import (
	"github.com/cpmech/gosl/chk"
)

// UnusedBedFraction returns the empirical mass-transfer-zone (length of
// unused bed) fraction for a resin class at a given service flow in
// bed-volumes/hour. Faster service leaves a wider unreacted zone. The
// breakpoints and caps are calibrated constants from the literature fits.
func UnusedBedFraction(resinClass string, flowBVh float64) (float64, error) {
	switch resinClass {
	case "sac":
		switch {
		case flowBVh <= 10:
			return 0.10, nil
		case flowBVh <= 20:
			return 0.10 + 0.10*(flowBVh-10.0)/10.0, nil
		case flowBVh <= 40:
			return 0.20 + 0.10*(flowBVh-20.0)/20.0, nil
		}
		return 0.30, nil
	case "wac-h":
		switch {
		case flowBVh <= 10:
			return 0.05, nil
		case flowBVh <= 20:
			return 0.05 + 0.10*(flowBVh-10.0)/10.0, nil
		}
		return 0.15, nil
	case "wac-na":
		switch {
		case flowBVh <= 10:
			return 0.06, nil
		case flowBVh <= 20:
			return 0.06 + 0.14*(flowBVh-10.0)/10.0, nil
		}
		return 0.20, nil
	}
	return 0, chk.Err("resin class %q is not available in 'unused-bed' correlation; available classes: [sac wac-h wac-na]", resinClass)
}
