/*
 * interfaces.go, part of godiff.
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

// Geometry is a set of geometric parameters that can be given for a diffusion
// tensor class. Each implementation (SphereTm, SpheroidDparDper, EllipsoidDxDyDz...)
// is one of the admissible combinations, and knows how to turn itself into the
// canonical {tm, Da, Dr} parameters.
type Geometry interface {
	//Class returns the tensor class for which the combination is valid.
	Class() Class

	//Params returns the names of the parameters in the combination.
	Params() []ParamName

	//apply puts the canonical values in p. It may use the values already in p.
	apply(p *Params)
}

// Orientation is a set of orientational parameters for the spheroid (theta, phi)
// or the ellipsoid (alpha, beta, gamma). Unset angles are left untouched.
type Orientation interface {
	Class() Class
	Params() []ParamName
	apply(p *Params)
}

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string
}

var _ Error = &CError{}
