/*
 * set.go, part of godiff.
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

import (
	"math"
	"sort"
	"strings"
)

type geoBuilder func(v map[ParamName]float64) Geometry

//geometries maps, for each class, the admissible sets of geometric parameters
//(see comboKey) to the constructor of the corresponding Geometry.
var geometries = map[Class]map[string]geoBuilder{
	Sphere: {
		"tm":   func(v map[ParamName]float64) Geometry { return SphereTm{v[Tm]} },
		"Diso": func(v map[ParamName]float64) Geometry { return SphereDiso{v[Diso]} },
	},
	Spheroid: {
		"tm":          func(v map[ParamName]float64) Geometry { return SpheroidTm{v[Tm]} },
		"Diso":        func(v map[ParamName]float64) Geometry { return SpheroidDiso{v[Diso]} },
		"Da":          func(v map[ParamName]float64) Geometry { return SpheroidDa{v[Da]} },
		"Dratio":      func(v map[ParamName]float64) Geometry { return SpheroidDratio{v[Dratio]} },
		"tm,Da":       func(v map[ParamName]float64) Geometry { return SpheroidTmDa{v[Tm], v[Da]} },
		"Diso,Da":     func(v map[ParamName]float64) Geometry { return SpheroidDisoDa{v[Diso], v[Da]} },
		"tm,Dratio":   func(v map[ParamName]float64) Geometry { return SpheroidTmDratio{v[Tm], v[Dratio]} },
		"Dpar,Dper":   func(v map[ParamName]float64) Geometry { return SpheroidDparDper{v[Dpar], v[Dper]} },
		"Diso,Dratio": func(v map[ParamName]float64) Geometry { return SpheroidDisoDratio{v[Diso], v[Dratio]} },
	},
	Ellipsoid: {
		"tm":         func(v map[ParamName]float64) Geometry { return EllipsoidTm{v[Tm]} },
		"Diso":       func(v map[ParamName]float64) Geometry { return EllipsoidDiso{v[Diso]} },
		"Da":         func(v map[ParamName]float64) Geometry { return EllipsoidDa{v[Da]} },
		"Dr":         func(v map[ParamName]float64) Geometry { return EllipsoidDr{v[Dr]} },
		"tm,Da":      func(v map[ParamName]float64) Geometry { return EllipsoidTmDa{v[Tm], v[Da]} },
		"tm,Dr":      func(v map[ParamName]float64) Geometry { return EllipsoidTmDr{v[Tm], v[Dr]} },
		"Diso,Da":    func(v map[ParamName]float64) Geometry { return EllipsoidDisoDa{v[Diso], v[Da]} },
		"Diso,Dr":    func(v map[ParamName]float64) Geometry { return EllipsoidDisoDr{v[Diso], v[Dr]} },
		"Da,Dr":      func(v map[ParamName]float64) Geometry { return EllipsoidDaDr{v[Da], v[Dr]} },
		"tm,Da,Dr":   func(v map[ParamName]float64) Geometry { return EllipsoidTmDaDr{v[Tm], v[Da], v[Dr]} },
		"Diso,Da,Dr": func(v map[ParamName]float64) Geometry { return EllipsoidDisoDaDr{v[Diso], v[Da], v[Dr]} },
		"Dx,Dy,Dz":   func(v map[ParamName]float64) Geometry { return EllipsoidDxDyDz{v[Dx], v[Dy], v[Dz]} },
	},
}

//comboKey returns the names joined by commas, in the order of AllParams.
func comboKey(names []ParamName) string {
	order := make(map[ParamName]int, len(AllParams))
	for i, v := range AllParams {
		order[v] = i
	}
	s := make([]ParamName, len(names))
	copy(s, names)
	sort.Slice(s, func(i, j int) bool { return order[s[i]] < order[s[j]] })
	k := make([]string, len(s))
	for i, v := range s {
		k[i] = string(v)
	}
	return strings.Join(k, ",")
}

//ResolveGeometry returns the Geometry of class c given by the parameter names
//and values, which must be in internal units. An unknown set of names
//gives an error.
func ResolveGeometry(c Class, names []ParamName, values []float64) (Geometry, error) {
	if len(names) != len(values) {
		return nil, errf(ErrInvalidArgument, "ResolveGeometry", "%d values given for %d parameters", len(values), len(names))
	}
	if len(names) == 0 {
		return nil, nil
	}
	v := make(map[ParamName]float64, len(names))
	for i, n := range names {
		if _, ok := v[n]; ok {
			return nil, errf(ErrUnknownParamComb, "ResolveGeometry", "The geometric parameter set %s is repeated or unknown for %s diffusion", paramSet(names), c)
		}
		v[n] = values[i]
	}
	build, ok := geometries[c][comboKey(names)]
	if !ok {
		if len(names) == 1 {
			return nil, errf(ErrUnknownParamComb, "ResolveGeometry", "The geometric diffusion parameter '%s' cannot be set alone for %s diffusion", names[0], c)
		}
		return nil, errf(ErrUnknownParamComb, "ResolveGeometry", "The geometric parameter set %s is unknown for %s diffusion", paramSet(names), c)
	}
	return build(v), nil
}

//ResolveOrientation returns the Orientation of class c given by the angle
//names and values (in radians).
func ResolveOrientation(c Class, names []ParamName, values []float64) (Orientation, error) {
	if len(names) != len(values) {
		return nil, errf(ErrInvalidArgument, "ResolveOrientation", "%d values given for %d parameters", len(values), len(names))
	}
	if len(names) == 0 {
		return nil, nil
	}
	var allowed []ParamName
	switch c {
	case Spheroid:
		allowed = []ParamName{Theta, Phi}
	case Ellipsoid:
		allowed = []ParamName{Alpha, Beta, Gamma}
	default:
		return nil, errf(ErrUnknownParamComb, "ResolveOrientation", "For %s diffusion, the orientation parameters %s should not exist", c, paramSet(names))
	}
	v := make(map[ParamName]*float64, len(names))
	for i, n := range names {
		_, repeated := v[n]
		if repeated || !contains(allowed, n) {
			return nil, errf(ErrUnknownParamComb, "ResolveOrientation", "The orientational parameter set %s is unknown for %s diffusion", paramSet(names), c)
		}
		v[n] = Float(values[i])
	}
	if c == Spheroid {
		return SpheroidOrientation{Theta: v[Theta], Phi: v[Phi]}, nil
	}
	return EllipsoidOrientation{Alpha: v[Alpha], Beta: v[Beta], Gamma: v[Gamma]}, nil
}

func contains(s []ParamName, p ParamName) bool {
	for _, v := range s {
		if v == p {
			return true
		}
	}
	return false
}

//resolve parses the names, replaces NaN values by the parameter defaults, and
//returns the geometry and orientation they give for the class c. Either can be nil.
func resolve(c Class, values []float64, names []string) (Geometry, Orientation, error) {
	if len(values) != len(names) {
		return nil, nil, errf(ErrInvalidArgument, "resolve", "%d values given for %d parameters", len(values), len(names))
	}
	var gnames, onames []ParamName
	var gvals, ovals []float64
	for i, n := range names {
		p, err := ParseParam(n)
		if err != nil {
			return nil, nil, errDecorate(err, "resolve")
		}
		val := values[i]
		if math.IsNaN(val) {
			val, _ = DefaultValue(p)
		}
		if p.IsOrientational() {
			onames = append(onames, p)
			ovals = append(ovals, val)
		} else {
			gnames = append(gnames, p)
			gvals = append(gvals, val)
		}
	}
	g, err := ResolveGeometry(c, gnames, gvals)
	if err != nil {
		return nil, nil, errDecorate(err, "resolve")
	}
	o, err := ResolveOrientation(c, onames, ovals)
	if err != nil {
		return nil, nil, errDecorate(err, "resolve")
	}
	return g, o, nil
}

//update applies g and o, either of which can be nil, to a copy of P, and returns it.
func update(P Params, g Geometry, o Orientation) Params {
	if g != nil {
		g.apply(&P)
	}
	if o != nil {
		o.apply(&P)
	}
	return P
}

//Set sets the parameters with the given names to the given values, in internal
//units (s, 1/s, radians). A NaN value stands for the default value of the parameter.
//The names must form one of the admissible combinations for the class of the
//tensor. Either all the values are set, or, if there is an error, none is.
//If any angle is set, the angles are folded afterwards.
func (T *Tensor) Set(values []float64, names []string) error {
	g, o, err := resolve(T.class, values, names)
	if err != nil {
		return errDecorate(err, "Tensor.Set")
	}
	T.p = update(T.p, g, o)
	if o != nil {
		FoldPrimary(T.class, &T.p)
	}
	return nil
}

//SetGeometry sets the geometric parameters of the tensor from g.
func (T *Tensor) SetGeometry(g Geometry) error {
	if g.Class() != T.class {
		return errf(ErrUnknownParamComb, "Tensor.SetGeometry", "The parameter set %s is for %s diffusion, but the tensor is a %s", paramSet(g.Params()), g.Class(), T.class)
	}
	g.apply(&T.p)
	return nil
}

//SetOrientation sets the angles of the tensor from o, and folds them.
func (T *Tensor) SetOrientation(o Orientation) error {
	if o.Class() != T.class {
		return errf(ErrUnknownParamComb, "Tensor.SetOrientation", "The parameter set %s is for %s diffusion, but the tensor is a %s", paramSet(o.Params()), o.Class(), T.class)
	}
	if len(o.Params()) == 0 {
		return nil
	}
	o.apply(&T.p)
	FoldPrimary(T.class, &T.p)
	return nil
}
