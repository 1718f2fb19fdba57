/*
 * context.go, part of godiff.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package diffusion

import (
	"io"
	"log"

	"github.com/google/uuid"
)

//Context is an analysis, which may hold one diffusion tensor. All the
//operations on the tensor go through the Context that owns it.
//A Context is not safe for concurrent use.
type Context struct {
	ID     uuid.UUID
	Name   string
	Log    *log.Logger //informational messages. Discarded unless set.
	tensor *Tensor
}

//NewContext returns an empty analysis context with the given name and a new random ID.
func NewContext(name string) *Context {
	return &Context{ID: uuid.New(), Name: name, Log: log.New(io.Discard, "godiff: ", 0)}
}

func (C *Context) logf(format string, args ...interface{}) {
	if C.Log != nil {
		C.Log.Printf(format, args...)
	}
}

//Exists returns true if the context holds a diffusion tensor.
func (C *Context) Exists() bool {
	return C != nil && C.tensor != nil
}

//Tensor returns the diffusion tensor of the context.
func (C *Context) Tensor() (*Tensor, error) {
	if C == nil {
		return nil, errf(ErrNoContext, "Context.Tensor", "There is no analysis context")
	}
	if C.tensor == nil {
		return nil, errf(ErrNoTensor, "Context.Tensor", "No diffusion tensor data exists for the analysis %s (%s)", C.Name, C.ID)
	}
	return C.tensor, nil
}

//Delete removes the diffusion tensor from the context.
func (C *Context) Delete() error {
	if _, err := C.Tensor(); err != nil {
		return errDecorate(err, "Context.Delete")
	}
	C.tensor = nil
	C.logf("Deleted the diffusion tensor of the analysis %s", C.Name)
	return nil
}

//Set sets tensor parameters. See Tensor.Set.
func (C *Context) Set(values []float64, names []string) error {
	T, err := C.Tensor()
	if err == nil {
		err = T.Set(values, names)
	}
	return errDecorate(err, "Context.Set")
}

//Eigenvalues returns the eigenvalues Dx, Dy and Dz of the tensor.
func (C *Context) Eigenvalues() ([3]float64, error) {
	T, err := C.Tensor()
	if err != nil {
		return [3]float64{}, errDecorate(err, "Context.Eigenvalues")
	}
	return T.Eigenvalues(), nil
}

//EigenSystem returns the eigensystem of the full tensor.
func (C *Context) EigenSystem() (*EigenResult, error) {
	T, err := C.Tensor()
	if err != nil {
		return nil, errDecorate(err, "Context.EigenSystem")
	}
	r, err := T.EigenSystem()
	return r, errDecorate(err, "Context.EigenSystem")
}

//FoldAngles folds the primary angles of the tensor if sim is nil, or the
//angles of the replica *sim, otherwise.
func (C *Context) FoldAngles(sim *int) error {
	T, err := C.Tensor()
	if err != nil {
		return errDecorate(err, "Context.FoldAngles")
	}
	if sim == nil {
		T.FoldAngles()
		return nil
	}
	return errDecorate(T.FoldSim(*sim), "Context.FoldAngles")
}

//SetSimNum enables n Monte Carlo simulations for the tensor.
func (C *Context) SetSimNum(n int) error {
	T, err := C.Tensor()
	if err == nil {
		err = T.SetSimNum(n)
	}
	if err == nil {
		C.logf("Set up %d Monte Carlo simulations for the diffusion tensor", n)
	}
	return errDecorate(err, "Context.SetSimNum")
}

//DisableSimulations discards the Monte Carlo replicas of the tensor.
func (C *Context) DisableSimulations() error {
	T, err := C.Tensor()
	if err != nil {
		return errDecorate(err, "Context.DisableSimulations")
	}
	T.DisableSimulations()
	return nil
}

//SetSim sets parameters of the ith replica. See Tensor.SetSim.
func (C *Context) SetSim(i int, values []float64, names []string) error {
	T, err := C.Tensor()
	if err == nil {
		err = T.SetSim(i, values, names)
	}
	return errDecorate(err, "Context.SetSim")
}

//CopyTensor copies the diffusion tensor of from into to, which must not
//have one.
func CopyTensor(from, to *Context) error {
	T, err := from.Tensor()
	if err != nil {
		return errDecorate(err, "CopyTensor")
	}
	if to == nil {
		return errf(ErrNoContext, "CopyTensor", "There is no analysis context to copy the tensor to")
	}
	if to.tensor != nil {
		return errf(ErrTensorExists, "CopyTensor", "Diffusion tensor data already exists for the analysis %s (%s)", to.Name, to.ID)
	}
	to.tensor = T.Copy()
	return nil
}
