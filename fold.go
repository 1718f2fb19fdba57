/*
 * fold.go, part of godiff.
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

import "math"

//Wrap returns the angle reduced to the interval [lower, upper), modulo the
//width of the interval. It panics if upper <= lower.
func Wrap(angle, lower, upper float64) float64 {
	w := upper - lower
	if w <= 0 {
		panic(ErrBadWindow)
	}
	a := math.Mod(angle-lower, w)
	if a < 0 {
		a += w
	}
	if a >= w { //adding w to a tiny negative number can give exactly w.
		a -= w
	}
	return a + lower
}

//FoldPrimary puts the angles of P in their canonical intervals, removing
//the symmetries of the class c. Spheroid angles end with theta in [0, pi] and
//phi in [0, pi). Ellipsoid angles end in [0, pi].
//The folds are a single pass in a fixed order.
func FoldPrimary(c Class, P *Params) {
	const twoPi = 2 * math.Pi
	switch c {
	case Spheroid:
		P.Theta = Wrap(P.Theta, 0, twoPi)
		P.Phi = Wrap(P.Phi, 0, twoPi)
		//(2pi-theta, phi+pi) is the same direction as (theta, phi).
		if P.Theta > math.Pi {
			P.Theta = twoPi - P.Theta
			P.Phi = Wrap(P.Phi+math.Pi, 0, twoPi)
		}
		//The axis is not oriented, so the opposite direction is the same tensor.
		if P.Phi >= math.Pi {
			P.Theta = math.Pi - P.Theta
			P.Phi = P.Phi - math.Pi
		}
	case Ellipsoid:
		P.Alpha = Wrap(P.Alpha, 0, twoPi)
		P.Beta = Wrap(P.Beta, 0, twoPi)
		P.Gamma = Wrap(P.Gamma, 0, twoPi)
		if P.Alpha >= math.Pi {
			P.Alpha -= math.Pi
		}
		if P.Beta >= math.Pi {
			P.Alpha = math.Pi - P.Alpha
			P.Beta -= math.Pi
		}
		if P.Gamma >= math.Pi {
			P.Alpha = math.Pi - P.Alpha
			P.Beta = math.Pi - P.Beta
			P.Gamma -= math.Pi
		}
	}
}

//FoldSimulation folds the angles of the Monte Carlo replica S around the
//angles of the primary parameters P, rather than around fixed intervals.
//Each angle is first wrapped to within pi of its primary value, then the
//symmetries are removed by comparing with the primary value plus or minus pi/2.
//Folding a spheroid replica twice gives the same angles as folding it once.
//The ellipsoid cascade is a single pass: when the beta or gamma fold moves
//another angle out of its window, a second call folds again.
func FoldSimulation(c Class, P Params, S *Params) {
	const halfPi = math.Pi / 2
	around := func(x, x0 float64) float64 {
		return Wrap(x, x0-math.Pi, x0+math.Pi)
	}
	switch c {
	case Spheroid:
		S.Theta = around(S.Theta, P.Theta)
		S.Phi = around(S.Phi, P.Phi)
		//The reflected theta is brought back to its window, so a second
		//fold leaves the replica alone.
		if S.Phi >= P.Phi+halfPi {
			S.Theta = around(math.Pi-S.Theta, P.Theta)
			S.Phi -= math.Pi
		} else if S.Phi <= P.Phi-halfPi {
			S.Theta = around(math.Pi-S.Theta, P.Theta)
			S.Phi += math.Pi
		}
	case Ellipsoid:
		S.Alpha = around(S.Alpha, P.Alpha)
		S.Beta = around(S.Beta, P.Beta)
		S.Gamma = around(S.Gamma, P.Gamma)
		if S.Alpha >= P.Alpha+halfPi {
			S.Alpha -= math.Pi
		} else if S.Alpha <= P.Alpha-halfPi {
			S.Alpha += math.Pi
		}
		if S.Beta >= P.Beta+halfPi {
			S.Alpha = math.Pi - S.Alpha
			S.Beta -= math.Pi
		} else if S.Beta <= P.Beta-halfPi {
			S.Alpha = math.Pi - S.Alpha
			S.Beta += math.Pi
		}
		if S.Gamma >= P.Gamma+halfPi {
			S.Alpha = math.Pi - S.Alpha
			S.Beta = math.Pi - S.Beta
			S.Gamma -= math.Pi
		} else if S.Gamma <= P.Gamma-halfPi {
			S.Alpha = math.Pi - S.Alpha
			S.Beta = math.Pi - S.Beta
			S.Gamma += math.Pi
		}
	}
}
