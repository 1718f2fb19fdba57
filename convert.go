/*
 * convert.go, part of godiff.
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

//Each type in this file is one of the admissible combinations of geometric
//parameters for a tensor class. Values are in internal units (s, 1/s).

func tmFromDiso(Diso float64) float64 {
	return 1 / (6 * Diso)
}

//Sphere

type SphereTm struct{ Tm float64 }

func (g SphereTm) Class() Class { return Sphere }
func (g SphereTm) Params() []ParamName { return []ParamName{Tm} }
func (g SphereTm) apply(p *Params) { p.Tm = g.Tm }

type SphereDiso struct{ Diso float64 }

func (g SphereDiso) Class() Class { return Sphere }
func (g SphereDiso) Params() []ParamName { return []ParamName{Diso} }
func (g SphereDiso) apply(p *Params) { p.Tm = tmFromDiso(g.Diso) }

//Spheroid

type SpheroidTm struct{ Tm float64 }

func (g SpheroidTm) Class() Class { return Spheroid }
func (g SpheroidTm) Params() []ParamName { return []ParamName{Tm} }
func (g SpheroidTm) apply(p *Params) { p.Tm = g.Tm }

type SpheroidDiso struct{ Diso float64 }

func (g SpheroidDiso) Class() Class { return Spheroid }
func (g SpheroidDiso) Params() []ParamName { return []ParamName{Diso} }
func (g SpheroidDiso) apply(p *Params) { p.Tm = tmFromDiso(g.Diso) }

type SpheroidDa struct{ Da float64 }

func (g SpheroidDa) Class() Class { return Spheroid }
func (g SpheroidDa) Params() []ParamName { return []ParamName{Da} }
func (g SpheroidDa) apply(p *Params) { p.Da = g.Da }

//SpheroidDratio sets Da from Dratio, keeping the current tm.
type SpheroidDratio struct{ Dratio float64 }

func (g SpheroidDratio) Class() Class { return Spheroid }
func (g SpheroidDratio) Params() []ParamName { return []ParamName{Dratio} }
func (g SpheroidDratio) apply(p *Params) {
	p.Da = (g.Dratio - 1) / (2 * p.Tm * (g.Dratio + 2))
}

type SpheroidTmDa struct{ Tm, Da float64 }

func (g SpheroidTmDa) Class() Class { return Spheroid }
func (g SpheroidTmDa) Params() []ParamName { return []ParamName{Tm, Da} }
func (g SpheroidTmDa) apply(p *Params) { p.Tm, p.Da = g.Tm, g.Da }

type SpheroidDisoDa struct{ Diso, Da float64 }

func (g SpheroidDisoDa) Class() Class { return Spheroid }
func (g SpheroidDisoDa) Params() []ParamName { return []ParamName{Diso, Da} }
func (g SpheroidDisoDa) apply(p *Params) { p.Tm, p.Da = tmFromDiso(g.Diso), g.Da }

type SpheroidTmDratio struct{ Tm, Dratio float64 }

func (g SpheroidTmDratio) Class() Class { return Spheroid }
func (g SpheroidTmDratio) Params() []ParamName { return []ParamName{Tm, Dratio} }
func (g SpheroidTmDratio) apply(p *Params) {
	p.Tm = g.Tm
	p.Da = (g.Dratio - 1) / (2 * g.Tm * (g.Dratio + 2))
}

type SpheroidDparDper struct{ Dpar, Dper float64 }

func (g SpheroidDparDper) Class() Class { return Spheroid }
func (g SpheroidDparDper) Params() []ParamName { return []ParamName{Dpar, Dper} }
func (g SpheroidDparDper) apply(p *Params) {
	p.Tm = 1 / (2 * (g.Dpar + 2*g.Dper))
	p.Da = g.Dpar - g.Dper
}

type SpheroidDisoDratio struct{ Diso, Dratio float64 }

func (g SpheroidDisoDratio) Class() Class { return Spheroid }
func (g SpheroidDisoDratio) Params() []ParamName { return []ParamName{Diso, Dratio} }
func (g SpheroidDisoDratio) apply(p *Params) {
	p.Tm = tmFromDiso(g.Diso)
	p.Da = 3 * g.Diso * (g.Dratio - 1) / (g.Dratio + 2)
}

//Ellipsoid

type EllipsoidTm struct{ Tm float64 }

func (g EllipsoidTm) Class() Class { return Ellipsoid }
func (g EllipsoidTm) Params() []ParamName { return []ParamName{Tm} }
func (g EllipsoidTm) apply(p *Params) { p.Tm = g.Tm }

type EllipsoidDiso struct{ Diso float64 }

func (g EllipsoidDiso) Class() Class { return Ellipsoid }
func (g EllipsoidDiso) Params() []ParamName { return []ParamName{Diso} }
func (g EllipsoidDiso) apply(p *Params) { p.Tm = tmFromDiso(g.Diso) }

type EllipsoidDa struct{ Da float64 }

func (g EllipsoidDa) Class() Class { return Ellipsoid }
func (g EllipsoidDa) Params() []ParamName { return []ParamName{Da} }
func (g EllipsoidDa) apply(p *Params) { p.Da = g.Da }

type EllipsoidDr struct{ Dr float64 }

func (g EllipsoidDr) Class() Class { return Ellipsoid }
func (g EllipsoidDr) Params() []ParamName { return []ParamName{Dr} }
func (g EllipsoidDr) apply(p *Params) { p.Dr = g.Dr }

type EllipsoidTmDa struct{ Tm, Da float64 }

func (g EllipsoidTmDa) Class() Class { return Ellipsoid }
func (g EllipsoidTmDa) Params() []ParamName { return []ParamName{Tm, Da} }
func (g EllipsoidTmDa) apply(p *Params) { p.Tm, p.Da = g.Tm, g.Da }

type EllipsoidTmDr struct{ Tm, Dr float64 }

func (g EllipsoidTmDr) Class() Class { return Ellipsoid }
func (g EllipsoidTmDr) Params() []ParamName { return []ParamName{Tm, Dr} }
func (g EllipsoidTmDr) apply(p *Params) { p.Tm, p.Dr = g.Tm, g.Dr }

type EllipsoidDisoDa struct{ Diso, Da float64 }

func (g EllipsoidDisoDa) Class() Class { return Ellipsoid }
func (g EllipsoidDisoDa) Params() []ParamName { return []ParamName{Diso, Da} }
func (g EllipsoidDisoDa) apply(p *Params) { p.Tm, p.Da = tmFromDiso(g.Diso), g.Da }

type EllipsoidDisoDr struct{ Diso, Dr float64 }

func (g EllipsoidDisoDr) Class() Class { return Ellipsoid }
func (g EllipsoidDisoDr) Params() []ParamName { return []ParamName{Diso, Dr} }
func (g EllipsoidDisoDr) apply(p *Params) { p.Tm, p.Dr = tmFromDiso(g.Diso), g.Dr }

type EllipsoidDaDr struct{ Da, Dr float64 }

func (g EllipsoidDaDr) Class() Class { return Ellipsoid }
func (g EllipsoidDaDr) Params() []ParamName { return []ParamName{Da, Dr} }
func (g EllipsoidDaDr) apply(p *Params) { p.Da, p.Dr = g.Da, g.Dr }

type EllipsoidTmDaDr struct{ Tm, Da, Dr float64 }

func (g EllipsoidTmDaDr) Class() Class { return Ellipsoid }
func (g EllipsoidTmDaDr) Params() []ParamName { return []ParamName{Tm, Da, Dr} }
func (g EllipsoidTmDaDr) apply(p *Params) { p.Tm, p.Da, p.Dr = g.Tm, g.Da, g.Dr }

type EllipsoidDisoDaDr struct{ Diso, Da, Dr float64 }

func (g EllipsoidDisoDaDr) Class() Class { return Ellipsoid }
func (g EllipsoidDisoDaDr) Params() []ParamName { return []ParamName{Diso, Da, Dr} }
func (g EllipsoidDisoDaDr) apply(p *Params) {
	p.Tm, p.Da, p.Dr = tmFromDiso(g.Diso), g.Da, g.Dr
}

//EllipsoidDxDyDz gives the ellipsoid by its three eigenvalues. A zero sum
//gives a huge tm, and a zero Da a huge Dr, so the result is rejected by Validate.
type EllipsoidDxDyDz struct{ Dx, Dy, Dz float64 }

func (g EllipsoidDxDyDz) Class() Class { return Ellipsoid }
func (g EllipsoidDxDyDz) Params() []ParamName { return []ParamName{Dx, Dy, Dz} }
func (g EllipsoidDxDyDz) apply(p *Params) {
	sum := g.Dx + g.Dy + g.Dz
	if sum == 0 {
		p.Tm = bigSentinel
	} else {
		p.Tm = 0.5 / sum
	}
	p.Da = g.Dz - 0.5*(g.Dx+g.Dy)
	if p.Da == 0 {
		p.Dr = (g.Dy - g.Dx) * bigSentinel
	} else {
		p.Dr = (g.Dy - g.Dx) / (2 * p.Da)
	}
}

//Orientations

//SpheroidOrientation sets the spherical angles of the unique axis of a spheroid,
//in radians. Nil fields are left untouched.
type SpheroidOrientation struct {
	Theta *float64
	Phi   *float64
}

func (o SpheroidOrientation) Class() Class { return Spheroid }
func (o SpheroidOrientation) Params() []ParamName {
	return presentNames([]*float64{o.Theta, o.Phi}, []ParamName{Theta, Phi})
}
func (o SpheroidOrientation) apply(p *Params) {
	setIfPresent(&p.Theta, o.Theta)
	setIfPresent(&p.Phi, o.Phi)
}

//EllipsoidOrientation sets the zyz Euler angles of an ellipsoid, in radians.
//Nil fields are left untouched.
type EllipsoidOrientation struct {
	Alpha *float64
	Beta  *float64
	Gamma *float64
}

func (o EllipsoidOrientation) Class() Class { return Ellipsoid }
func (o EllipsoidOrientation) Params() []ParamName {
	return presentNames([]*float64{o.Alpha, o.Beta, o.Gamma}, []ParamName{Alpha, Beta, Gamma})
}
func (o EllipsoidOrientation) apply(p *Params) {
	setIfPresent(&p.Alpha, o.Alpha)
	setIfPresent(&p.Beta, o.Beta)
	setIfPresent(&p.Gamma, o.Gamma)
}

func presentNames(vals []*float64, names []ParamName) []ParamName {
	ret := make([]ParamName, 0, len(names))
	for i, v := range vals {
		if v != nil {
			ret = append(ret, names[i])
		}
	}
	return ret
}

func setIfPresent(dest, v *float64) {
	if v != nil {
		*dest = *v
	}
}

//Float returns a pointer to a copy of f. Useful to build orientations.
func Float(f float64) *float64 {
	return &f
}
