/*
 * fold_test.go
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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(Te *testing.T) {
	cases := []struct{ in, lo, hi, out float64 }{
		{7, 0, 2 * math.Pi, 7 - 2*math.Pi},
		{-1, 0, 2 * math.Pi, 2*math.Pi - 1},
		{2 * math.Pi, 0, 2 * math.Pi, 0},
		{0, 0, 2 * math.Pi, 0},
		{3, -1, 1, -1},
		{0.5, -1, 1, 0.5},
	}
	for _, c := range cases {
		assert.InDelta(Te, c.out, Wrap(c.in, c.lo, c.hi), 1e-12, "%v", c)
	}
	assert.Panics(Te, func() { Wrap(1, 1, 1) })
}

func TestSpheroidFoldPhi(Te *testing.T) {
	P := Params{Theta: 0.3, Phi: 1.2 * math.Pi}
	FoldPrimary(Spheroid, &P)
	assert.InDelta(Te, math.Pi-0.3, P.Theta, 1e-12)
	assert.InDelta(Te, 0.2*math.Pi, P.Phi, 1e-12)
	assert.True(Te, P.Phi >= 0 && P.Phi < math.Pi)
}

func TestFoldPrimaryIdempotent(Te *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		P := Params{Tm: 1e-8, Da: 1e7, Dr: 0.4,
			Theta: r.Float64()*20 - 10, Phi: r.Float64()*20 - 10,
			Alpha: r.Float64()*20 - 10, Beta: r.Float64()*20 - 10, Gamma: r.Float64()*20 - 10}
		for _, c := range []Class{Spheroid, Ellipsoid} {
			once := P
			FoldPrimary(c, &once)
			twice := once
			FoldPrimary(c, &twice)
			assert.Equal(Te, once, twice, "%s %v", c, P)
			switch c {
			case Spheroid:
				assert.True(Te, once.Theta >= 0 && once.Theta <= math.Pi, "theta %v", once.Theta)
				assert.True(Te, once.Phi >= 0 && once.Phi < math.Pi, "phi %v", once.Phi)
			case Ellipsoid:
				for _, a := range []float64{once.Alpha, once.Beta, once.Gamma} {
					assert.True(Te, a >= 0 && a <= math.Pi, "angle %v", a)
				}
			}
			//Folding never changes the physical tensor.
			assert.True(Te, sameMatrix(P.fullTensor(c, Prolate), once.fullTensor(c, Prolate), 1e-10), "%s %v", c, P)
		}
	}
}

func TestFoldSimulation(Te *testing.T) {
	C := NewContext("sims")
	require.NoError(Te, C.Init(radOpts(1e-8, 1e6, 0.5, 1, 1, 1)))
	zero := 0
	assert.True(Te, errors.Is(C.FoldAngles(&zero), ErrNoSimulations))
	assert.True(Te, errors.Is(C.SetSim(0, []float64{1}, []string{"alpha"}), ErrNoSimulations))
	require.NoError(Te, C.SetSimNum(3))
	assert.Error(Te, C.SetSimNum(3))
	T, _ := C.Tensor()
	assert.Equal(Te, 3, T.SimNum())
	s, err := T.SimParams(2)
	require.NoError(Te, err)
	assert.Equal(Te, T.Params(), s)

	//only wrapping.
	require.NoError(Te, C.SetSim(0, []float64{1.1 + 2*math.Pi}, []string{"alpha"}))
	require.NoError(Te, C.FoldAngles(&zero))
	s, _ = T.SimParams(0)
	assert.InDelta(Te, 1.1, s.Alpha, 1e-12)

	//alpha beyond primary+pi/2
	one := 1
	require.NoError(Te, C.SetSim(one, []float64{3.0}, []string{"alpha"}))
	require.NoError(Te, C.FoldAngles(&one))
	s, _ = T.SimParams(one)
	assert.InDelta(Te, 3.0-math.Pi, s.Alpha, 1e-12)
	again := s
	require.NoError(Te, C.FoldAngles(&one))
	s, _ = T.SimParams(one)
	assert.InDelta(Te, again.Alpha, s.Alpha, 1e-12)
	assert.InDelta(Te, again.Beta, s.Beta, 1e-12)
	assert.InDelta(Te, again.Gamma, s.Gamma, 1e-12)

	//The primary values are not touched.
	assert.Equal(Te, 1.0, T.Params().Alpha)
	bad := 7
	assert.True(Te, errors.Is(C.FoldAngles(&bad), ErrInvalidArgument))
	require.NoError(Te, C.DisableSimulations())
	assert.Equal(Te, 0, T.SimNum())
}

func TestFoldSimulationSpheroid(Te *testing.T) {
	P := Params{Theta: 0.5, Phi: 1}
	S := Params{Theta: 0.7, Phi: 2.8}
	FoldSimulation(Spheroid, P, &S)
	assert.InDelta(Te, math.Pi-0.7, S.Theta, 1e-12)
	assert.InDelta(Te, 2.8-math.Pi, S.Phi, 1e-12)
	S = Params{Theta: 0.7, Phi: 1 - 2*math.Pi + 0.2}
	FoldSimulation(Spheroid, P, &S)
	assert.InDelta(Te, 0.7, S.Theta, 1e-12)
	assert.InDelta(Te, 1.2, S.Phi, 1e-12)
}

func TestFoldSimulationSpheroidTwice(Te *testing.T) {
	//theta is reflected out of its window by the phi fold, and must be put back.
	P := Params{Theta: 2.5, Phi: 2}
	S := Params{Theta: -1.8194, Phi: -0.3111}
	FoldSimulation(Spheroid, P, &S)
	assert.InDelta(Te, math.Pi+1.8194, S.Theta, 1e-12)
	assert.InDelta(Te, math.Pi-0.3111, S.Phi, 1e-12)
	once := S
	FoldSimulation(Spheroid, P, &S)
	assert.InDelta(Te, once.Theta, S.Theta, 1e-12)
	assert.InDelta(Te, once.Phi, S.Phi, 1e-12)

	r := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		P := Params{Tm: 1e-8, Da: 1e7, Theta: r.Float64() * math.Pi, Phi: r.Float64() * math.Pi}
		S := P
		S.Theta, S.Phi = r.Float64()*20-10, r.Float64()*20-10
		FoldSimulation(Spheroid, P, &S)
		assert.True(Te, S.Theta >= P.Theta-math.Pi && S.Theta < P.Theta+math.Pi, "theta %v around %v", S.Theta, P.Theta)
		once := S
		FoldSimulation(Spheroid, P, &S)
		assert.InDelta(Te, once.Theta, S.Theta, 1e-9, "case %d", i)
		assert.InDelta(Te, once.Phi, S.Phi, 1e-9, "case %d", i)
	}
}

func TestFoldSimulationPreservesTensor(Te *testing.T) {
	r := rand.New(rand.NewSource(7))
	P := Params{Tm: 1e-8, Da: 1e7, Dr: 0.4, Alpha: 1, Beta: 1.2, Gamma: 0.8, Theta: 1, Phi: 2}
	for i := 0; i < 100; i++ {
		S := P
		S.Alpha, S.Beta, S.Gamma = r.Float64()*10-5, r.Float64()*10-5, r.Float64()*10-5
		S.Theta, S.Phi = r.Float64()*10-5, r.Float64()*10-5
		folded := S
		FoldSimulation(Ellipsoid, P, &folded)
		FoldSimulation(Spheroid, P, &folded)
		for _, c := range []Class{Spheroid, Ellipsoid} {
			assert.True(Te, sameMatrix(S.fullTensor(c, Oblate), folded.fullTensor(c, Oblate), 1e-10))
		}
	}
}
