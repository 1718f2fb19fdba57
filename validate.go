/*
 * validate.go, part of godiff.
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

//Validate checks that the geometric parameters of the tensor are physically
//admissible: 0 < tm <= 1 microsecond, -3/2 Diso <= Da <= 3 Diso for the spheroid,
//and 0 <= Da <= 3 Diso, 0 <= Dr <= 1 for the ellipsoid. The limits on Da and Dr
//are relaxed by DefaultTol (times Diso, for Da).
func (T *Tensor) Validate() error {
	return validate(T.class, T.p)
}

func validate(c Class, P Params) error {
	const tol = DefaultTol
	if P.Tm <= 0 || P.Tm > MaxTm || math.IsNaN(P.Tm) {
		return outOfRange("validate", Tm, P.Tm, "between zero and one microsecond")
	}
	Diso := P.Diso()
	switch c {
	case Spheroid:
		if P.Da < -1.5*Diso-tol*Diso || P.Da > 3*Diso+tol*Diso || math.IsNaN(P.Da) {
			return outOfRange("validate", Da, P.Da, "between -3/2 * Diso and 3Diso")
		}
	case Ellipsoid:
		if P.Da < -tol*Diso || P.Da > 3*Diso+tol*Diso || math.IsNaN(P.Da) {
			return outOfRange("validate", Da, P.Da, "between zero and 3Diso")
		}
		if P.Dr < -tol || P.Dr > 1+tol || math.IsNaN(P.Dr) {
			return outOfRange("validate", Dr, P.Dr, "between zero and one")
		}
	}
	return nil
}

func outOfRange(caller string, p ParamName, val float64, rng string) CError {
	return errf(ErrOutOfRange, caller, "The %s value of %g should be %s", p, val, rng)
}

//Bounds returns the lower and upper bounds of the parameter p to be used
//for grid searches and optimisations, in internal units.
func Bounds(p ParamName) (lower, upper float64, err error) {
	switch p {
	case Tm:
		return 0, 10 * 1e-9, nil
	case Diso, Dx, Dy, Dz, Dpar, Dper:
		return 1e6, 1e7, nil
	case Da:
		return -1.5e7, 3e7, nil
	case Dr:
		return 0, 1, nil
	case Dratio:
		return 1.0 / 3.0, 3, nil
	case Theta, Beta:
		return 0, math.Pi, nil
	case Phi, Alpha, Gamma:
		return 0, 2 * math.Pi, nil
	}
	return 0, 0, errf(ErrUnknownParam, "Bounds", "The diffusion tensor parameter '%s' is unknown", p)
}
