/*
 * display.go, part of godiff.
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
	"fmt"
	"io"
	"strings"
)

//parameter sets shown, for each class. The first one is the canonical set.
var displaySets = map[Class][][]ParamName{
	Sphere: {{Tm}, {Diso}},
	Spheroid: {
		{Tm, Da, Theta, Phi},
		{Diso, Da, Theta, Phi},
		{Dpar, Dper, Theta, Phi},
		{Tm, Dratio, Theta, Phi},
	},
	Ellipsoid: {
		{Tm, Da, Dr, Alpha, Beta, Gamma},
		{Diso, Da, Dr, Alpha, Beta, Gamma},
		{Dx, Dy, Dz, Alpha, Beta, Gamma},
	},
}

var displayUnits = map[ParamName]string{
	Tm: "s", Diso: "1/s", Da: "1/s", Dx: "1/s", Dy: "1/s", Dz: "1/s", Dpar: "1/s", Dper: "1/s",
	Alpha: "rad", Beta: "rad", Gamma: "rad", Theta: "rad", Phi: "rad",
}

//String returns a human-readable description of the tensor.
func (T *Tensor) String() string {
	var b strings.Builder
	classname := map[Class]string{Sphere: "Spherical", Spheroid: "Spheroidal", Ellipsoid: "Ellipsoidal"}[T.class]
	fmt.Fprintf(&b, "Type:  %s diffusion\n", classname)
	if T.class == Spheroid {
		fmt.Fprintf(&b, "Spheroid type:  %s\n", T.SpheroidType())
	}
	for i, set := range displaySets[T.class] {
		if i == 0 {
			fmt.Fprintf(&b, "\nParameters %s.\n", paramSet(set))
		} else {
			fmt.Fprintf(&b, "\nAlternate parameters %s.\n", paramSet(set))
		}
		for _, p := range set {
			v, _ := T.Get(p)
			if u, ok := displayUnits[p]; ok {
				fmt.Fprintf(&b, "%s (%s):  %g\n", p, u, v)
			} else {
				fmt.Fprintf(&b, "%s:  %g\n", p, v)
			}
		}
	}
	fmt.Fprintf(&b, "\nFixed:  %t\n", T.Fixed)
	if n := T.SimNum(); n > 0 {
		fmt.Fprintf(&b, "Monte Carlo simulations:  %d\n", n)
	}
	return b.String()
}

//Display writes a description of the diffusion tensor of the context to w.
func (C *Context) Display(w io.Writer) error {
	T, err := C.Tensor()
	if err != nil {
		return errDecorate(err, "Context.Display")
	}
	_, err = io.WriteString(w, T.String())
	return err
}
