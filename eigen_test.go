/*
 * eigen_test.go
 *
 * Copyright 2013 Raul Mera <rmera@zinc>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 *
 */

package diffusion

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	v3 "github.com/rmera/godiff/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestEigenDiagonal(Te *testing.T) {
	for _, k := range []float64{1, 1e7, 3.5e-2} {
		E, err := EigenSystem(v3.Diag(k, 2*k, 3*k))
		require.NoError(Te, err)
		assert.True(Te, floats.EqualApprox(E.Values[:], []float64{k, 2 * k, 3 * k}, 1e-12*k), "%v", E.Values)
		assert.InDelta(Te, 1.0, v3.Det(E.Rotation), 1e-7)
		//Each eigenvector is an axis, up to its sign.
		for i := 0; i < 3; i++ {
			assert.InDelta(Te, 1.0, math.Abs(E.Rotation.At(i, i)), 1e-12)
		}
		assert.True(Te, sameMatrix(v3.Diag(k, 2*k, 3*k), reconstruct(E), 1e-9))
	}
}

//randomTensor returns a symmetric positive definite matrix with the given eigenvalues
//and a random eigenframe.
func randomTensor(r *rand.Rand, vals [3]float64) *v3.Matrix {
	R := v3.EulerZYZToR(r.Float64()*2*math.Pi, r.Float64()*math.Pi, r.Float64()*2*math.Pi)
	T := v3.Zeros(3)
	T.Mul(R, v3.Diag(vals[0], vals[1], vals[2]))
	ret := v3.Zeros(3)
	ret.Mul(T, R.T())
	//exact symmetry
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			m := 0.5 * (ret.At(i, j) + ret.At(j, i))
			ret.Set(i, j, m)
			ret.Set(j, i, m)
		}
	}
	return ret
}

func TestEigenRandom(Te *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		vals := [3]float64{1e7 * (1 + r.Float64()), 1e7 * (2.5 + r.Float64()), 1e7 * (4 + r.Float64())}
		in := randomTensor(r, vals)
		E, err := EigenSystem(in)
		require.NoError(Te, err)
		assert.True(Te, floats.EqualApprox(E.Values[:], vals[:], 1e-6), "%v %v", E.Values, vals)
		assert.InDelta(Te, 1.0, v3.Det(E.Rotation), 1e-7)
		for _, a := range []float64{E.Alpha, E.Beta, E.Gamma} {
			assert.True(Te, a >= 0 && a <= math.Pi, "angle %v", a)
		}
		//The eigenvectors diagonalize the tensor.
		D := v3.Zeros(3)
		D.Mul(E.Rotation.T(), in)
		D.Mul(D, E.Rotation)
		assert.True(Te, sameMatrix(v3.Diag(vals[0], vals[1], vals[2]), D, 1e-9))
		//The angles and values give back the tensor.
		assert.True(Te, sameMatrix(in, reconstruct(E), 1e-9), "case %d", i)
	}
}

func TestEigenFromTensor(Te *testing.T) {
	C := NewContext("eigen")
	require.NoError(Te, C.Init(radOpts(1e-8, 1e7, 0.3, 0.4, 1.0, 2.0)))
	E, err := C.EigenSystem()
	require.NoError(Te, err)
	T, _ := C.Tensor()
	vals := T.Eigenvalues()
	assert.True(Te, floats.EqualApprox(E.Values[:], vals[:], 1e-6))
	assert.True(Te, sameMatrix(T.FullTensor(), reconstruct(E), 1e-9))
	//Only the signs of the eigenvectors may differ from the frame of the tensor.
	R := T.Rotation()
	for i := 0; i < 3; i++ {
		d := v3.Zeros(1)
		c0, _ := v3.NewMatrix(R.Col(i))
		d.Unit(c0)
		e, _ := v3.NewMatrix(E.Rotation.Col(i))
		assert.InDelta(Te, 1.0, math.Abs(d.Dot(e)), 1e-9)
	}
}

func reconstruct(E *EigenResult) *v3.Matrix {
	var P Params
	EllipsoidDxDyDz{E.Values[0], E.Values[1], E.Values[2]}.apply(&P)
	P.Alpha, P.Beta, P.Gamma = E.Alpha, E.Beta, E.Gamma
	return P.fullTensor(Ellipsoid, NoSpheroidType)
}

func TestEigenErrors(Te *testing.T) {
	_, err := EigenSystem(nil)
	assert.True(Te, errors.Is(err, ErrInvalidArgument))
	A, _ := v3.NewMatrix([]float64{1, 2, 3, 0, 4, 5, 3, 5, 6})
	_, err = EigenSystem(A)
	assert.True(Te, errors.Is(err, ErrInvalidArgument))
	_, err = EigenSystem(v3.Zeros(2))
	assert.True(Te, errors.Is(err, ErrInvalidArgument))
}
