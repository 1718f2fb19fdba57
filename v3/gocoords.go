/*
 * gocoords.go, part of godiff.
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
 */

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//Eye returns a 3x3 identity Matrix.
func Eye() *Matrix {
	A := Zeros(3)
	for i := 0; i < 3; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

//Diag returns a 3x3 Matrix with a, b and c in the diagonal.
func Diag(a, b, c float64) *Matrix {
	A := Zeros(3)
	A.Set(0, 0, a)
	A.Set(1, 1, b)
	A.Set(2, 2, c)
	return A
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Cross puts the cross product of the first vecs of a and b in the first vec of F. Panics if error.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	x := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	y := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	z := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, x)
	F.Set(0, 1, y)
	F.Set(0, 2, z)
}

//Dot returns the dot product between the first vecs of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	var ret float64
	for j := 0; j < 3; j++ {
		ret += F.At(0, j) * B.At(0, j)
	}
	return ret
}

//VecNorm returns the euclidean norm of the first vec of F.
func (F *Matrix) VecNorm() float64 {
	return math.Sqrt(F.Dot(F))
}

//Unit puts in the receiver the first vec of A, normalized.
//A zero vector is copied unchanged.
func (F *Matrix) Unit(A *Matrix) {
	if A.Dense != F.Dense {
		F.Dense.Copy(A.Dense)
	}
	norm := F.VecNorm()
	if norm <= appzero {
		return
	}
	//gonum would take the wrapper and the Dense as two overlapping matrices.
	F.Dense.Scale(1.0/norm, F.Dense)
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%10.6g %10.6g %10.6g\n", row[0], row[1], row[2])
			continue
		}
		v[i+1] = fmt.Sprintf(" %10.6g %10.6g %10.6g\n", row[0], row[1], row[2])
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}
