/*
 * eigen.go, part of godiff.
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
	"math"

	v3 "github.com/rmera/godiff/v3"
	"gonum.org/v1/gonum/floats"
)

const (
	handednessTol = 1e-7
	symmetryTol   = 1e-10
)

//EigenResult contains the eigensystem of a diffusion tensor.
type EigenResult struct {
	Values   [3]float64 //ascending
	Rotation *v3.Matrix //the eigenvectors, as columns, in the order of Values. Right handed.
	Alpha    float64    //zyz Euler angles of the eigenframe, in radians.
	Beta     float64
	Gamma    float64
}

//EigenSystem obtains the eigenvalues, eigenvectors and Euler angles of the
//symmetric 3x3 tensor given. The eigenvalues are sorted in ascending order,
//and the Euler angles collapsed into their canonical values.
//The tensor must be positive semi-definite, as diffusion tensors are, since
//the eigenvalues are obtained as singular values.
func EigenSystem(tensor *v3.Matrix) (*EigenResult, error) {
	if tensor == nil {
		return nil, errf(ErrInvalidArgument, "EigenSystem", "Nil tensor given")
	}
	if r, c := tensor.Dims(); r != 3 || c != 3 {
		return nil, errf(ErrInvalidArgument, "EigenSystem", "The tensor must be 3x3, not %dx%d", r, c)
	}
	if !tensor.IsSymmetric(symmetryTol) {
		return nil, errf(ErrInvalidArgument, "EigenSystem", "The tensor is not symmetric:\n%s", tensor)
	}
	R, vals, err := v3.SymSVD(tensor)
	if err != nil {
		return nil, errDecorate(err, "EigenSystem")
	}
	righthanded(R)
	ret := &EigenResult{Rotation: R}
	copy(ret.Values[:], vals)

	//The Euler angles of the reverse rotation.
	Rt := v3.Zeros(3)
	Rt.TCopy(R)
	alpha, beta, gamma := v3.RToEulerZYZ(Rt)

	//Collapse the pi rotation symmetries of the axes. One pass, in this order.
	if alpha >= math.Pi {
		alpha -= math.Pi
	}
	if gamma >= math.Pi {
		alpha = math.Pi - alpha
		beta = math.Pi - beta
		gamma -= math.Pi
	}
	if beta >= math.Pi {
		alpha = math.Pi - alpha
		beta -= math.Pi
	}
	ret.Alpha, ret.Beta, ret.Gamma = alpha, beta, gamma
	return ret, nil
}

//righthanded negates the third column of R if the first two, crossed,
//don't give it.
func righthanded(R *v3.Matrix) {
	c0, _ := v3.NewMatrix(R.Col(0))
	c1, _ := v3.NewMatrix(R.Col(1))
	c2 := R.Col(2)
	cross := v3.Zeros(1)
	cross.Cross(c0, c1)
	if floats.Distance(cross.RawRowView(0), c2, 2) > handednessTol {
		floats.Scale(-1, c2)
		R.SetCol(2, c2)
	}
}

//EigenSystem returns the eigensystem of the full tensor in the structural frame.
func (T *Tensor) EigenSystem() (*EigenResult, error) {
	r, err := EigenSystem(T.FullTensor())
	return r, errDecorate(err, "Tensor.EigenSystem")
}
