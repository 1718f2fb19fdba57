/*
 * gonum.go, part of godiff.
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

//gonum.go contains most of what is needed for handling the gonum/mat types and facilities.

package v3

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, based on a gonum Dense.
//Within the package it is understood that a "vector" is a row vector.
//A 3x3 Matrix is used for tensors and rotation matrices.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//VecView returns a view of the given vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Col returns a copy of the ith column of F.
func (F *Matrix) Col(i int) []float64 {
	return mat.Col(nil, i, F.Dense)
}

//SetCol puts the 3 elements of v in the ith column of F.
func (F *Matrix) SetCol(i int, v []float64) {
	if len(v) != F.NVecs() {
		panic(ErrShape)
	}
	F.Dense.SetCol(i, v)
}

//SwapCols exchanges the columns i and j of F.
func (F *Matrix) SwapCols(i, j int) {
	if i > 2 || j > 2 {
		panic(ErrIndexOutOfRange)
	}
	coli := F.Col(i)
	colj := F.Col(j)
	F.Dense.SetCol(i, colj)
	F.Dense.SetCol(j, coli)
}

//TCopy puts the transpose of A in the receiver.
func (F *Matrix) TCopy(A mat.Matrix) {
	if A, ok := A.(*Matrix); ok {
		F.Dense.Copy(A.Dense.T())
		return
	}
	F.Dense.Copy(A.T())
}

//Mul wraps mat.Dense.Mul to take care of the case when one of the
//arguments is also the receiver, or a Matrix.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if C, ok := A.(*Matrix); ok {
		A = C.Dense
	}
	if C, ok := B.(*Matrix); ok {
		B = C.Dense
	}
	if A == F.Dense || B == F.Dense {
		r, _ := A.Dims()
		_, c := B.Dims()
		tmp := mat.NewDense(r, c, nil)
		tmp.Mul(A, B)
		F.Dense.Copy(tmp)
		return
	}
	F.Dense.Mul(A, B)
}

//IsSymmetric returns true if F is square and F[i,j] and F[j,i] differ by less than
//tol times the largest absolute element of F.
func (F *Matrix) IsSymmetric(tol float64) bool {
	r, c := F.Dims()
	if r != c {
		return false
	}
	scale := mat.Norm(F.Dense, math.Inf(1)) //max row sum, good enough as a scale
	if scale == 0 {
		return true
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			d := F.At(i, j) - F.At(j, i)
			if d < 0 {
				d = -d
			}
			if d > tol*scale {
				return false
			}
		}
	}
	return true
}

//Det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func Det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//This is a facility to sort singular vectors/singular values pairs.
//It satisfies the sort.Interface interface. The vectors are the columns
//of evecs.
type eigenpair struct {
	evecs *Matrix
	evals sort.Float64Slice
}

func (E eigenpair) Less(i, j int) bool {
	return E.evals[i] < E.evals[j]
}
func (E eigenpair) Swap(i, j int) {
	E.evals.Swap(i, j)
	E.evecs.SwapCols(i, j)
}
func (E eigenpair) Len() int {
	return len(E.evals)
}

//SymSVD obtains the singular value decomposition of the symmetric 3x3 matrix in.
//For a symmetric matrix the singular values are the absolute values of the eigenvalues
//and the left singular vectors are the eigenvectors, up to their sign.
//It returns the singular vectors, as the columns of a matrix, and the singular values,
//both sorted in ascending order of the values. The handedness of the returned
//matrix is not fixed here.
func SymSVD(in *Matrix) (*Matrix, []float64, error) {
	r, c := in.Dims()
	if r != 3 || c != 3 {
		return nil, nil, Error{string(ErrShape), []string{"SymSVD"}, true}
	}
	var svd mat.SVD
	var ok bool
	f := func() { ok = svd.Factorize(in.Dense, mat.SVDFull) }
	if err := gnMaybe(gnPanicker(f)); err != nil {
		return nil, nil, errDecorate(err, "SymSVD")
	}
	if !ok {
		return nil, nil, Error{string(ErrEigen), []string{"SymSVD"}, true}
	}
	evals := svd.Values(nil)
	u := mat.NewDense(3, 3, nil)
	svd.UTo(u)
	eig := eigenpair{&Matrix{u}, evals}
	sort.Sort(eig)
	return eig.evecs, eig.evals, nil
}

// A gnPanicker is a function that may panic.
type gnPanicker func()

//gnMaybe will recover a panic with a type mat.Error or v3.Error from fn, and return this error.
//Any other error is re-panicked.
func gnMaybe(fn gnPanicker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case Error:
				err = e
			case PanicMsg:
				err = Error{string(e), []string{"gnMaybe"}, true}
			case mat.Error:
				err = Error{fmt.Sprintf("godiff/v3: Error in gonum function: %s", e.Error()), []string{"gnMaybe"}, true}
			default:
				panic(r)
			}
		}
	}()
	fn()
	return
}

//Errors

//the same as diff.Error but avoid circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//Error is the error type of the v3 package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//errDecorate is a helper function that asserts that the error is
//implements errorInt and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return Error{err.Error(), []string{caller}, true}
	}
	err2.deco = err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("godiff/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct  = PanicMsg("godiff/v3: Invalid matrix for cross product")
	ErrEigen           = PanicMsg("godiff/v3: Can't obtain the singular value decomposition of given matrix")
	ErrDeterminant     = PanicMsg("godiff/v3: Determinants are only available for 3x3 matrices")
	ErrShape           = PanicMsg("godiff/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("godiff/v3: index out of range")
)

var _ errorInt = Error{}
