/*
 * conversion.go, part of godiff.
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

//This provides useful conversion factors and other constants

//Conversions
const (
	Deg2Rad = 2 * math.Pi / 360
	Rad2Deg = 360 / (2 * math.Pi)
	Ns2S    = 1e-9
	MHz2Hz  = 1e6 //for the diffusion rates, given in units of 1e6 1/s
)

//Defaults
const (
	DefaultTm   = 10 * 1e-9
	DefaultD    = 1.666e7
	DefaultTol  = 1e-4 //relative tolerance for the admissibility checks.
	MaxTm       = 1e-6
	bigSentinel = 1e99
)

//DefaultValue returns the default value for the parameter p, in the
//internal units (s, 1/s, radians).
func DefaultValue(p ParamName) (float64, error) {
	switch p {
	case Tm:
		return DefaultTm, nil
	case Diso, Dx, Dy, Dz, Dpar, Dper:
		return DefaultD, nil
	case Da, Dr:
		return 0, nil
	case Dratio:
		return 1, nil
	case Alpha, Beta, Gamma, Theta, Phi:
		return 0, nil
	}
	return 0, errf(ErrUnknownParam, "DefaultValue", "The diffusion tensor parameter '%s' is unknown", p)
}

//Units returns a string with the units in which the parameter p is usually
//given to, or shown to, the user.
func Units(p ParamName) string {
	switch p {
	case Tm:
		return "ns"
	case Diso, Da, Dx, Dy, Dz, Dpar, Dper:
		return "1e6 1/s"
	case Alpha, Beta, Gamma, Theta, Phi:
		return "deg"
	}
	return ""
}

//ConversionFactor returns the factor that takes the parameter p from the
//units given by Units, to the internal units.
func ConversionFactor(p ParamName) float64 {
	switch p {
	case Tm:
		return Ns2S
	case Diso, Da, Dx, Dy, Dz, Dpar, Dper:
		return MHz2Hz
	case Alpha, Beta, Gamma, Theta, Phi:
		return Deg2Rad
	}
	return 1
}
