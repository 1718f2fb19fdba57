/*
 * rotation.go, part of godiff.
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

import "math"

//Below this value of sin(beta) the zyz decomposition is considered to be in gimbal lock.
const eulerEpsilon = 1e-14

//EulerZYZToR returns the rotation matrix R = Rz(alpha) Ry(beta) Rz(gamma) for the
//Euler angles alpha, beta and gamma, in radians, using the z-y-z convention.
//The rows of R are the x, y and z axes of the rotated frame.
func EulerZYZToR(alpha, beta, gamma float64) *Matrix {
	sa, ca := math.Sincos(alpha)
	sb, cb := math.Sincos(beta)
	sg, cg := math.Sincos(gamma)
	operator := []float64{ca*cb*cg - sa*sg, -ca*cb*sg - sa*cg, ca * sb,
		sa*cb*cg + ca*sg, -sa*cb*sg + ca*cg, sa * sb,
		-sb * cg, sb * sg, cb}
	R, _ := NewMatrix(operator) //hardcoded, the dimensions are right.
	return R
}

//RToEulerZYZ returns the z-y-z Euler angles (alpha, beta, gamma) of the rotation
//matrix R, so that EulerZYZToR(alpha, beta, gamma) reproduces R. alpha and gamma are
//given in [0, 2pi), beta in [0, pi]. In gimbal lock (beta 0 or pi) gamma is set to zero.
//Panics if R is not 3x3.
func RToEulerZYZ(R *Matrix) (alpha, beta, gamma float64) {
	r, c := R.Dims()
	if r != 3 || c != 3 {
		panic(ErrShape)
	}
	sb := math.Hypot(R.At(0, 2), R.At(1, 2))
	beta = math.Atan2(sb, R.At(2, 2))
	if sb > eulerEpsilon {
		alpha = math.Atan2(R.At(1, 2), R.At(0, 2))
		gamma = math.Atan2(R.At(2, 1), -R.At(2, 0))
	} else if R.At(2, 2) > 0 {
		alpha = math.Atan2(R.At(1, 0), R.At(0, 0))
	} else {
		alpha = math.Atan2(-R.At(1, 0), -R.At(0, 0))
	}
	return wrap2Pi(alpha), beta, wrap2Pi(gamma)
}

func wrap2Pi(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

//SphericalToCartesian returns the cartesian vector of length r with polar angle
//theta and azimuthal angle phi, as a 1x3 Matrix.
func SphericalToCartesian(r, theta, phi float64) *Matrix {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	ret, _ := NewMatrix([]float64{r * st * cp, r * st * sp, r * ct})
	return ret
}

//TwoVectToR returns the rotation matrix that, when applied from the left to the
//(column) vector orig, aligns it with the vector fin. Both are 1x3 matrices and
//don't need to be normalized.
func TwoVectToR(orig, fin *Matrix) *Matrix {
	a := Zeros(1)
	a.Unit(orig)
	b := Zeros(1)
	b.Unit(fin)
	axis := Zeros(1)
	axis.Cross(a, b)
	s := axis.VecNorm()
	c := a.Dot(b)
	if s <= appzero {
		if c > 0 {
			return Eye()
		}
		//antiparallel, any axis perpendicular to a will do.
		perp, _ := NewMatrix([]float64{1, 0, 0})
		if math.Abs(a.At(0, 0)) > 0.9 {
			perp.Set(0, 0, 0)
			perp.Set(0, 1, 1)
		}
		axis.Cross(a, perp)
		axis.Unit(axis)
		return axisAngleToR(axis, -1, 0)
	}
	axis.Dense.Scale(1/s, axis.Dense)
	return axisAngleToR(axis, c, s)
}

//axisAngleToR implements the Rodrigues formula for the unit axis and an angle
//given by its cosine and sine.
func axisAngleToR(axis *Matrix, c, s float64) *Matrix {
	x, y, z := axis.At(0, 0), axis.At(0, 1), axis.At(0, 2)
	t := 1 - c
	operator := []float64{t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c}
	R, _ := NewMatrix(operator)
	return R
}
