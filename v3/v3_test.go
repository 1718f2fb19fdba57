/*
 * v3_test.go
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

package v3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0))
}

func TestCrossDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	assert.True(Te, floats.EqualApprox(z.RawRowView(0), []float64{0, 0, 1}, 1e-15))
	assert.Equal(Te, 0.0, x.Dot(y))
	v, _ := NewMatrix([]float64{2, 2, 1})
	v.Unit(v)
	assert.InDelta(Te, 1.0, v.VecNorm(), 1e-15)
}

func TestUnit(Te *testing.T) {
	v, _ := NewMatrix([]float64{3, 0, 4})
	u := Zeros(1)
	u.Unit(v)
	assert.True(Te, floats.EqualApprox(u.RawRowView(0), []float64{0.6, 0, 0.8}, 1e-15))
	assert.Equal(Te, []float64{3, 0, 4}, v.RawRowView(0))
	v.Unit(v)
	assert.True(Te, floats.EqualApprox(v.RawRowView(0), []float64{0.6, 0, 0.8}, 1e-15))
	z := Zeros(1)
	z.Unit(z)
	assert.Equal(Te, []float64{0, 0, 0}, z.RawRowView(0))
	//Non-parallel vectors go through the axis normalisation.
	a, _ := NewMatrix([]float64{1, 0, 0})
	b, _ := NewMatrix([]float64{0, 2, 2})
	R := TwoVectToR(a, b)
	assert.InDelta(Te, 1.0, Det(R), 1e-12)
}

func TestSwapColsDet(Te *testing.T) {
	A := Diag(1, 2, 3)
	assert.InDelta(Te, 6.0, Det(A), 1e-15)
	A.SwapCols(0, 2)
	assert.InDelta(Te, -6.0, Det(A), 1e-15)
	assert.Equal(Te, []float64{0, 0, 3}, A.Col(0))
}

func TestIsSymmetric(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 2, 4, 5, 3, 5, 6})
	assert.True(Te, A.IsSymmetric(1e-10))
	A.Set(0, 1, 2.1)
	assert.False(Te, A.IsSymmetric(1e-10))
}

func TestSymSVD(Te *testing.T) {
	A := Diag(3, 1, 2)
	evecs, evals, err := SymSVD(A)
	require.NoError(Te, err)
	assert.True(Te, floats.EqualApprox(evals, []float64{1, 2, 3}, 1e-12), "evals: %v", evals)
	//Each sorted singular vector must be parallel to the axis of its value.
	axes := []int{1, 2, 0}
	for i, ax := range axes {
		assert.InDelta(Te, 1.0, math.Abs(evecs.At(ax, i)), 1e-12)
	}
	_, _, err = SymSVD(Zeros(2))
	assert.Error(Te, err)
}

func TestEulerRoundTrip(Te *testing.T) {
	angles := [][3]float64{
		{0.3, 1.1, 2.5},
		{4.0, 0.2, 5.9},
		{1.0, 2.9, 0.1},
		{6.0, 1.5707963267948966, 3.2},
	}
	for _, v := range angles {
		R := EulerZYZToR(v[0], v[1], v[2])
		assert.InDelta(Te, 1.0, Det(R), 1e-12)
		var RRt mat.Dense
		RRt.Mul(R.Dense, R.Dense.T())
		assert.True(Te, mat.EqualApprox(&RRt, Eye().Dense, 1e-12))
		a, b, g := RToEulerZYZ(R)
		assert.InDelta(Te, v[0], a, 1e-10)
		assert.InDelta(Te, v[1], b, 1e-10)
		assert.InDelta(Te, v[2], g, 1e-10)
	}
}

func TestEulerGimbalLock(Te *testing.T) {
	for _, beta := range []float64{0, math.Pi} {
		R := EulerZYZToR(0.7, beta, 0.4)
		a, b, g := RToEulerZYZ(R)
		assert.Equal(Te, 0.0, g)
		assert.InDelta(Te, beta, b, 1e-10)
		assert.True(Te, mat.EqualApprox(EulerZYZToR(a, b, g).Dense, R.Dense, 1e-10))
	}
}

func TestTwoVectToR(Te *testing.T) {
	vecs := [][]float64{{1, 2, 3}, {0, 0, 1}, {0, 0, -1}, {-1, 0.5, 0}}
	for _, o := range vecs {
		for _, f := range vecs {
			orig, _ := NewMatrix(append([]float64(nil), o...))
			fin, _ := NewMatrix(append([]float64(nil), f...))
			R := TwoVectToR(orig, fin)
			assert.InDelta(Te, 1.0, Det(R), 1e-12)
			rotated := mat.NewVecDense(3, nil)
			u := Zeros(1)
			u.Unit(orig)
			rotated.MulVec(R.Dense, mat.NewVecDense(3, u.RawRowView(0)))
			fu := Zeros(1)
			fu.Unit(fin)
			assert.True(Te, floats.EqualApprox(rotated.RawVector().Data, fu.RawRowView(0), 1e-12), "%v -> %v", o, f)
		}
	}
}

func TestSphericalToCartesian(Te *testing.T) {
	v := SphericalToCartesian(1, math.Pi/2, math.Pi/2)
	assert.True(Te, floats.EqualApprox(v.RawRowView(0), []float64{0, 1, 0}, 1e-15))
}
