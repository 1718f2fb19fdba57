/*
 * tensor.go, part of godiff.
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

//Tensor is the rotational diffusion tensor of a molecule. It stores only the
//canonical parameters of its class (see Params), everything else is derived
//from them on demand.
//A Tensor also keeps one set of canonical parameters per Monte Carlo
//simulation, once the number of simulations has been set.
type Tensor struct {
	class        Class
	spheroidType SpheroidType
	typeFixed    bool //the spheroid type was given by the user.
	Fixed        bool //The tensor is not to be optimised.
	p            Params
	sims         []Params
}

//newTensor returns a Tensor of class c with the default parameters.
func newTensor(c Class) *Tensor {
	return &Tensor{class: c, Fixed: true, p: Params{Tm: DefaultTm}}
}

//Class returns the class of the tensor.
func (T *Tensor) Class() Class {
	return T.class
}

//Params returns a copy of the canonical parameters of the tensor.
func (T *Tensor) Params() Params {
	return T.p
}

//Copy returns an independent copy of the tensor, simulations included.
func (T *Tensor) Copy() *Tensor {
	r := *T
	if T.sims != nil {
		r.sims = make([]Params, len(T.sims))
		copy(r.sims, T.sims)
	}
	return &r
}

//SpheroidType returns the type of the spheroid: the one given by the user, if any,
//otherwise Prolate if Da > 0 and Oblate if not. It returns NoSpheroidType for
//the other tensor classes.
func (T *Tensor) SpheroidType() SpheroidType {
	if T.class != Spheroid {
		return NoSpheroidType
	}
	if T.typeFixed {
		return T.spheroidType
	}
	if T.p.Da > 0 {
		return Prolate
	}
	return Oblate
}

//setSpheroidType fixes the spheroid type. NoSpheroidType lets the type follow Da.
func (T *Tensor) setSpheroidType(s SpheroidType) {
	T.spheroidType = s
	T.typeFixed = s != NoSpheroidType
}

//Get returns the value of the parameter named p, which can be either
//canonical or derived, in internal units.
func (T *Tensor) Get(p ParamName) (float64, error) {
	P := &T.p
	if !T.knows(p) {
		return 0, errf(ErrUnknownParam, "Tensor.Get", "The parameter '%s' is not defined for %s diffusion", p, T.class)
	}
	switch p {
	case Diso:
		return P.Diso(), nil
	case Dx:
		return P.Dx(), nil
	case Dy:
		return P.Dy(), nil
	case Dz:
		return P.Dz(), nil
	case Dpar:
		return P.Dpar(), nil
	case Dper:
		return P.Dper(), nil
	case Dratio:
		return P.Dratio(), nil
	}
	return P.Get(p)
}

//knows returns true if the parameter p is defined for the class of the tensor.
func (T *Tensor) knows(p ParamName) bool {
	switch T.class {
	case Sphere:
		return p == Tm || p == Diso
	case Spheroid:
		switch p {
		case Tm, Diso, Da, Dpar, Dper, Dratio, Theta, Phi:
			return true
		}
	case Ellipsoid:
		switch p {
		case Tm, Diso, Da, Dr, Dx, Dy, Dz, Alpha, Beta, Gamma:
			return true
		}
	}
	return false
}

//SimNum returns the number of Monte Carlo simulations, 0 if simulations are not set.
func (T *Tensor) SimNum() int {
	return len(T.sims)
}

//SimParams returns a copy of the canonical parameters of the ith simulation.
func (T *Tensor) SimParams(i int) (Params, error) {
	if err := T.checkSim(i, "Tensor.SimParams"); err != nil {
		return Params{}, err
	}
	return T.sims[i], nil
}

func (T *Tensor) checkSim(i int, caller string) error {
	if T.sims == nil {
		return errf(ErrNoSimulations, caller, "The number of Monte Carlo simulations has not been set")
	}
	if i < 0 || i >= len(T.sims) {
		return errf(ErrInvalidArgument, caller, "The simulation index %d is outside [0, %d)", i, len(T.sims))
	}
	return nil
}
