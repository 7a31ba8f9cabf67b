// Copyright 2016 The Goix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from .mat and .sim JSON files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/hydrosim/goix/mdl/capacity"
	"github.com/hydrosim/goix/mdl/ion"
)

// Material holds resin data
type Material struct {

	// input
	Name   string     `json:"name"`   // name of material
	Model  string     `json:"model"`  // name of capacity model; e.g. "sac", "wac-h", "wac-na"
	Family string     `json:"family"` // selectivity family; e.g. "sac8"; empty means "sac8"
	Prms   dbf.Params `json:"prms"`   // model parameters

	// derived
	Cap capacity.Model // pointer to actual capacity model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of resin materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	resins map[string]*Material
}

// ReadMat reads a materials database from a JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q: %v", fn, err)
	}

	// derive capacity models
	mdb.resins = make(map[string]*Material)
	for _, mat := range mdb.Materials {
		if mat.Family == "" {
			mat.Family = "sac8"
		}
		if _, err = ion.GetSelectivity(mat.Family); err != nil {
			return nil, err
		}
		mat.Cap, err = capacity.New(mat.Model)
		if err != nil {
			return nil, err
		}
		err = mat.Cap.Init(mat.Prms)
		if err != nil {
			return nil, chk.Err("material %q: %v", mat.Name, err)
		}
		mdb.resins[mat.Name] = mat
	}
	return
}

// Get returns one material by name
func (o *MatDb) Get(name string) (*Material, error) {
	mat, ok := o.resins[name]
	if !ok {
		var available []string
		for _, m := range o.Materials {
			available = append(available, m.Name)
		}
		return nil, chk.Err("material %q is not available in materials database; available materials: %v", name, available)
	}
	return mat, nil
}
