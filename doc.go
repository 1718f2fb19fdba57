/*
 * doc.go, part of godiff.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package diffusion handles the rotational diffusion tensor of a molecule, as
used in the analysis of NMR relaxation data.

	**Capabilities**

    Three classes of tensor: spherical (isotropic), spheroidal (axially
	symmetric) and ellipsoidal (fully anisotropic).

    Each class can be given through several equivalent parameter sets
	(e.g. {tm, Da}, {Diso, Da} or {Dpar, Dper} for the spheroid). Internally,
	only the canonical sets are stored: {tm} for the sphere, {tm, Da, theta, phi}
	for the spheroid and {tm, Da, Dr, alpha, beta, gamma} for the ellipsoid.
	Everything else (Diso, Dpar, Dx, the full tensor, the rotation matrix...)
	is derived on demand.

    Eigensystem of any symmetric 3x3 tensor: ascending eigenvalues, a right
	handed rotation matrix and the zyz Euler angles of the eigenframe.

    Angle folding, which removes the symmetries of the orientation of each tensor
	class, both for the actual values and for Monte Carlo replicas, which are
	folded around the actual values.

    Admissibility checks and the bounds of each parameter for optimisations.

The tensor lives in a Context, which represents one analysis. A Context holds
at most one tensor, created by Init and removed by Delete.

Values are kept in seconds, 1/s and radians. The Units and ConversionFactor
functions give the usual user-facing units.

The v3 subpackage provides the 3x3 matrix support, built on gonum.
*/
package diffusion
