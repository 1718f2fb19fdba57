/*
 * init.go, part of godiff.
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
	v3 "github.com/rmera/godiff/v3"
)

//InitOptions contains the data needed to set up a diffusion tensor.
//
//ParamTypes selects the meaning of Params. For the sphere, 0: tm, 1: Diso.
//For the spheroid, 0: {tm, Da, theta, phi}, 1: {Diso, Da, theta, phi},
//2: {tm, Dratio, theta, phi}, 3: {Dpar, Dper, theta, phi}, 4: {Diso, Dratio, theta, phi}.
//For the ellipsoid, 0: {tm, Da, Dr, alpha, beta, gamma}, 1: {Diso, Da, Dr, alpha, beta, gamma},
//2: {Dx, Dy, Dz, alpha, beta, gamma}, 3: the full tensor {Dxx, Dyy, Dzz, Dxy, Dxz, Dyz}.
type InitOptions struct {
	Class        Class //if not given, it is taken from the number of Params: 1, 4 or 6.
	Params       []float64
	TimeScale    float64 //multiplies tm. 0 means 1.
	DScale       float64 //multiplies Diso, Da, Dx, Dy, Dz, Dpar, Dper and the full tensor. 0 means 1.
	AngleUnits   string  //"deg" or "rad". Empty means "deg".
	ParamTypes   int
	SpheroidType SpheroidType
	Fixed        bool
}

//DefaultInitOptions returns options with unit scales, angles in degrees and the
//tensor fixed.
func DefaultInitOptions() InitOptions {
	return InitOptions{TimeScale: 1, DScale: 1, AngleUnits: "deg", Fixed: true}
}

//paramLayouts gives, for each class and ParamTypes value, the names of the
//geometric parameters in Params.
var paramLayouts = map[Class][][]ParamName{
	Sphere: {{Tm}, {Diso}},
	Spheroid: {
		{Tm, Da},
		{Diso, Da},
		{Tm, Dratio},
		{Dpar, Dper},
		{Diso, Dratio},
	},
	Ellipsoid: {
		{Tm, Da, Dr},
		{Diso, Da, Dr},
		{Dx, Dy, Dz},
	},
}

//Init sets up the diffusion tensor of the context. It fails if the context already
//has a tensor, or if the resulting parameters are not admissible, in which case
//the context is left without a tensor.
func (C *Context) Init(o InitOptions) error {
	if C == nil {
		return errf(ErrNoContext, "Context.Init", "There is no analysis context")
	}
	if C.tensor != nil {
		return errf(ErrTensorExists, "Context.Init", "Diffusion tensor data already exists for the analysis %s (%s)", C.Name, C.ID)
	}
	T, err := C.buildTensor(o)
	if err != nil {
		return errDecorate(err, "Context.Init")
	}
	if err = T.Validate(); err != nil {
		return errDecorate(err, "Context.Init")
	}
	C.tensor = T
	return nil
}

func (C *Context) buildTensor(o InitOptions) (*Tensor, error) {
	if o.TimeScale == 0 {
		o.TimeScale = 1
	}
	if o.DScale == 0 {
		o.DScale = 1
	}
	if o.AngleUnits == "" {
		o.AngleUnits = "deg"
	}
	if o.AngleUnits != "deg" && o.AngleUnits != "rad" {
		return nil, errf(ErrInvalidArgument, "buildTensor", "The diffusion tensor angle units '%s' should be either 'deg' or 'rad'", o.AngleUnits)
	}
	class := o.Class
	np := len(o.Params)
	if class == NoClass {
		switch np {
		case 1:
			class = Sphere
		case 4:
			class = Spheroid
		case 6:
			class = Ellipsoid
		}
	}
	want := map[Class]int{Sphere: 1, Spheroid: 4, Ellipsoid: 6}[class]
	if want == 0 || np != want {
		return nil, errf(ErrInvalidArgument, "buildTensor", "The diffusion tensor parameters %v are of an unknown type", o.Params)
	}
	if class != Spheroid && o.SpheroidType != NoSpheroidType {
		return nil, errf(ErrInvalidArgument, "buildTensor", "A spheroid type was given for %s diffusion", class)
	}
	T := newTensor(class)
	T.Fixed = o.Fixed
	T.setSpheroidType(o.SpheroidType)
	p := o.Params
	angles := p[len(p)-class.nAngles():]
	//The full tensor is a special case, everything is obtained from it.
	if class == Ellipsoid && o.ParamTypes == 3 {
		full, _ := v3.NewMatrix([]float64{p[0], p[3], p[4], p[3], p[1], p[5], p[4], p[5], p[2]})
		full.Dense.Scale(o.DScale, full.Dense)
		eig, err := EigenSystem(full)
		if err != nil {
			return nil, errDecorate(err, "buildTensor")
		}
		if err = T.SetGeometry(EllipsoidDxDyDz{eig.Values[0], eig.Values[1], eig.Values[2]}); err != nil {
			return nil, errDecorate(err, "buildTensor")
		}
		angles = []float64{eig.Alpha, eig.Beta, eig.Gamma}
		o.AngleUnits = "rad"
	} else {
		layouts := paramLayouts[class]
		if o.ParamTypes < 0 || o.ParamTypes >= len(layouts) {
			return nil, errf(ErrUnknownParamComb, "buildTensor", "The param_types value %d is unknown for %s diffusion", o.ParamTypes, class)
		}
		names := layouts[o.ParamTypes]
		vals := make([]float64, len(names))
		for i, n := range names {
			vals[i] = p[i] * scaleFor(n, o.TimeScale, o.DScale)
		}
		g, err := ResolveGeometry(class, names, vals)
		if err != nil {
			return nil, errDecorate(err, "buildTensor")
		}
		if err = T.SetGeometry(g); err != nil {
			return nil, errDecorate(err, "buildTensor")
		}
	}
	if len(angles) == 0 {
		return T, nil
	}
	a := append([]float64(nil), angles...)
	if o.AngleUnits == "deg" {
		C.logf("Converting the angles from degrees to radian units.")
		for i := range a {
			a[i] *= Deg2Rad
		}
	}
	var orient Orientation
	if class == Spheroid {
		orient = SpheroidOrientation{Float(a[0]), Float(a[1])}
	} else {
		orient = EllipsoidOrientation{Float(a[0]), Float(a[1]), Float(a[2])}
	}
	if err := T.SetOrientation(orient); err != nil {
		return nil, errDecorate(err, "buildTensor")
	}
	return T, nil
}

//nAngles returns the number of orientational parameters of the class.
func (c Class) nAngles() int {
	switch c {
	case Spheroid:
		return 2
	case Ellipsoid:
		return 3
	}
	return 0
}

func scaleFor(p ParamName, timeScale, dScale float64) float64 {
	switch p {
	case Tm:
		return timeScale
	case Diso, Da, Dx, Dy, Dz, Dpar, Dper:
		return dScale
	}
	return 1
}
