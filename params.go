/*
 * params.go, part of godiff.
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
	"regexp"
	"strings"
)

//Class is the shape of the diffusion tensor.
type Class int

const (
	NoClass Class = iota
	Sphere
	Spheroid
	Ellipsoid
)

func (c Class) String() string {
	switch c {
	case Sphere:
		return "sphere"
	case Spheroid:
		return "spheroid"
	case Ellipsoid:
		return "ellipsoid"
	}
	return "none"
}

//ParseClass returns the Class named s.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(s) {
	case "sphere":
		return Sphere, nil
	case "spheroid":
		return Spheroid, nil
	case "ellipsoid":
		return Ellipsoid, nil
	}
	return NoClass, errf(ErrInvalidArgument, "ParseClass", "The diffusion tensor type '%s' must be one of sphere, spheroid or ellipsoid", s)
}

//SpheroidType restricts a spheroid to be oblate or prolate.
type SpheroidType int

const (
	NoSpheroidType SpheroidType = iota
	Oblate
	Prolate
)

func (s SpheroidType) String() string {
	switch s {
	case Oblate:
		return "oblate"
	case Prolate:
		return "prolate"
	}
	return "none"
}

//ParseSpheroidType returns the SpheroidType named s. The empty string
//and "none" give NoSpheroidType.
func ParseSpheroidType(s string) (SpheroidType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return NoSpheroidType, nil
	case "oblate":
		return Oblate, nil
	case "prolate":
		return Prolate, nil
	}
	return NoSpheroidType, errf(ErrInvalidArgument, "ParseSpheroidType", "The spheroid type '%s' should be 'oblate', 'prolate', or none", s)
}

//ParamName is the canonical name of a diffusion tensor parameter.
type ParamName string

const (
	Tm     ParamName = "tm"
	Diso   ParamName = "Diso"
	Da     ParamName = "Da"
	Dr     ParamName = "Dr"
	Dx     ParamName = "Dx"
	Dy     ParamName = "Dy"
	Dz     ParamName = "Dz"
	Dpar   ParamName = "Dpar"
	Dper   ParamName = "Dper"
	Dratio ParamName = "Dratio"
	Alpha  ParamName = "alpha"
	Beta   ParamName = "beta"
	Gamma  ParamName = "gamma"
	Theta  ParamName = "theta"
	Phi    ParamName = "phi"
)

//AllParams lists every parameter name known to the package.
var AllParams = []ParamName{Tm, Diso, Da, Dr, Dx, Dy, Dz, Dpar, Dper, Dratio, Alpha, Beta, Gamma, Theta, Phi}

//IsGeometric returns true for the parameters defining the shape of the tensor.
func (p ParamName) IsGeometric() bool {
	switch p {
	case Tm, Diso, Da, Dr, Dx, Dy, Dz, Dpar, Dper, Dratio:
		return true
	}
	return false
}

//IsOrientational returns true for the angles.
func (p ParamName) IsOrientational() bool {
	switch p {
	case Alpha, Beta, Gamma, Theta, Phi:
		return true
	}
	return false
}

//The patterns are tried in this order, so, for instance, "Diso" is never
//taken as "Da".
var paramPatterns = []struct {
	re   *regexp.Regexp
	name ParamName
}{
	{regexp.MustCompile(`^tm$`), Tm},
	{regexp.MustCompile(`[Dd]iso`), Diso},
	{regexp.MustCompile(`[Dd]a`), Da},
	{regexp.MustCompile(`[Dd]r$`), Dr},
	{regexp.MustCompile(`[Dd]x`), Dx},
	{regexp.MustCompile(`[Dd]y`), Dy},
	{regexp.MustCompile(`[Dd]z`), Dz},
	{regexp.MustCompile(`[Dd]par`), Dpar},
	{regexp.MustCompile(`[Dd]per`), Dper},
	{regexp.MustCompile(`[Dd]ratio`), Dratio},
	{regexp.MustCompile(`^a$|alpha`), Alpha},
	{regexp.MustCompile(`^b$|beta`), Beta},
	{regexp.MustCompile(`^g$|gamma`), Gamma},
	{regexp.MustCompile(`theta`), Theta},
	{regexp.MustCompile(`phi`), Phi},
}

//ParseParam returns the canonical name for the parameter name given.
//Several spellings are accepted, e.g. "diso" or "Diso_1" for Diso, "a" for alpha.
func ParseParam(name string) (ParamName, error) {
	for _, v := range paramPatterns {
		if v.re.MatchString(name) {
			return v.name, nil
		}
	}
	return "", errf(ErrUnknownParam, "ParseParam", "The diffusion tensor parameter '%s' is unknown", name)
}

//Params contains the canonical parameters of a diffusion tensor.
//Only the fields relevant for the tensor class are meaningful:
//Tm for the sphere, Tm, Da, Theta and Phi for the spheroid, and
//Tm, Da, Dr, Alpha, Beta and Gamma for the ellipsoid.
//Times are in seconds, rates in 1/s and angles in radians.
type Params struct {
	Tm    float64
	Da    float64
	Dr    float64
	Theta float64
	Phi   float64
	Alpha float64
	Beta  float64
	Gamma float64
}

//Get returns the value of the canonical parameter p.
func (P *Params) Get(p ParamName) (float64, error) {
	switch p {
	case Tm:
		return P.Tm, nil
	case Da:
		return P.Da, nil
	case Dr:
		return P.Dr, nil
	case Theta:
		return P.Theta, nil
	case Phi:
		return P.Phi, nil
	case Alpha:
		return P.Alpha, nil
	case Beta:
		return P.Beta, nil
	case Gamma:
		return P.Gamma, nil
	}
	return 0, errf(ErrUnknownParam, "Params.Get", "'%s' is not a canonical diffusion tensor parameter", p)
}

//CanonicalParams returns the names of the parameters stored for the class c.
func CanonicalParams(c Class) []ParamName {
	switch c {
	case Sphere:
		return []ParamName{Tm}
	case Spheroid:
		return []ParamName{Tm, Da, Theta, Phi}
	case Ellipsoid:
		return []ParamName{Tm, Da, Dr, Alpha, Beta, Gamma}
	}
	return nil
}

//paramSet is a small helper to describe parameter combinations in messages.
func paramSet(names []ParamName) string {
	s := make([]string, 0, len(names))
	for _, v := range names {
		s = append(s, string(v))
	}
	return fmt.Sprintf("{%s}", strings.Join(s, ", "))
}
