/*
 * derived.go, part of godiff.
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
	v3 "github.com/rmera/godiff/v3"
)

//Diso returns the isotropic component of the tensor, 1/(6 tm).
func (P *Params) Diso() float64 {
	return 1 / (6 * P.Tm)
}

//Dpar returns the eigenvalue of the unique axis of a spheroid, Diso + 2/3 Da.
func (P *Params) Dpar() float64 {
	return P.Diso() + 2.0/3.0*P.Da
}

//Dper returns the eigenvalue of the two perpendicular axes of a spheroid, Diso - 1/3 Da.
func (P *Params) Dper() float64 {
	return P.Diso() - P.Da/3
}

//Dratio returns Dpar/Dper.
func (P *Params) Dratio() float64 {
	return P.Dpar() / P.Dper()
}

//Dx returns the x eigenvalue of an ellipsoid, Diso - 1/3 Da (1 + 3 Dr).
func (P *Params) Dx() float64 {
	return P.Diso() - P.Da/3*(1+3*P.Dr)
}

//Dy returns the y eigenvalue of an ellipsoid, Diso - 1/3 Da (1 - 3 Dr).
func (P *Params) Dy() float64 {
	return P.Diso() - P.Da/3*(1-3*P.Dr)
}

//Dz returns the z eigenvalue of an ellipsoid, Diso + 2/3 Da.
func (P *Params) Dz() float64 {
	return P.Diso() + 2.0/3.0*P.Da
}

//DparUnit returns the unit vector of the unique axis of a spheroid.
func (P *Params) DparUnit() *v3.Matrix {
	return v3.SphericalToCartesian(1, P.Theta, P.Phi)
}

//DUnits returns the unit vectors of the x, y and z axes of an ellipsoid,
//as the rows of a 3x3 matrix.
func (P *Params) DUnits() *v3.Matrix {
	return v3.EulerZYZToR(P.Alpha, P.Beta, P.Gamma)
}

//diag returns the diagonalised tensor for the class c. For a spheroid, the
//unique axis is z for prolate tensors and x otherwise.
func (P *Params) diag(c Class, st SpheroidType) *v3.Matrix {
	switch c {
	case Spheroid:
		if st == Prolate {
			return v3.Diag(P.Dper(), P.Dper(), P.Dpar())
		}
		return v3.Diag(P.Dpar(), P.Dper(), P.Dper())
	case Ellipsoid:
		return v3.Diag(P.Dx(), P.Dy(), P.Dz())
	}
	d := P.Diso()
	return v3.Diag(d, d, d)
}

//rotation returns the matrix with the axes of the diffusion frame as columns.
func (P *Params) rotation(c Class, st SpheroidType) *v3.Matrix {
	switch c {
	case Spheroid:
		frame, _ := v3.NewMatrix([]float64{1, 0, 0})
		if st == Prolate {
			frame, _ = v3.NewMatrix([]float64{0, 0, 1})
		}
		return v3.TwoVectToR(frame, P.DparUnit())
	case Ellipsoid:
		R := v3.Zeros(3)
		R.TCopy(P.DUnits())
		return R
	}
	return v3.Eye()
}

//fullTensor returns the tensor in the structural frame, R diag R^T.
func (P *Params) fullTensor(c Class, st SpheroidType) *v3.Matrix {
	R := P.rotation(c, st)
	D := v3.Zeros(3)
	D.Mul(R, P.diag(c, st))
	D.Mul(D, R.T())
	//The product is symmetric only within rounding, which we remove.
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			m := (D.At(i, j) + D.At(j, i)) / 2
			D.Set(i, j, m)
			D.Set(j, i, m)
		}
	}
	return D
}

//TensorDiag returns the diagonalised tensor.
func (T *Tensor) TensorDiag() *v3.Matrix {
	return T.p.diag(T.class, T.SpheroidType())
}

//Rotation returns the rotation matrix from the diffusion frame to the structural
//frame. Its columns are the unit vectors of the diffusion axes. For the
//sphere it is the identity.
func (T *Tensor) Rotation() *v3.Matrix {
	return T.p.rotation(T.class, T.SpheroidType())
}

//FullTensor returns the diffusion tensor in the structural frame.
func (T *Tensor) FullTensor() *v3.Matrix {
	return T.p.fullTensor(T.class, T.SpheroidType())
}

//Eigenvalues returns the diffusion eigenvalues Dx, Dy and Dz. For the
//spheroid Dx = Dy = Dper and Dz = Dpar, for the sphere all three are Diso.
func (T *Tensor) Eigenvalues() [3]float64 {
	P := T.p
	if T.class != Ellipsoid {
		P.Dr = 0
	}
	if T.class == Sphere {
		P.Da = 0
	}
	return [3]float64{P.Dx(), P.Dy(), P.Dz()}
}
