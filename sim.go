/*
 * sim.go, part of godiff.
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

//SetSimNum enables the Monte Carlo simulations, creating n replicas of the
//canonical parameters, each a copy of the current values.
func (T *Tensor) SetSimNum(n int) error {
	if n <= 0 {
		return errf(ErrInvalidArgument, "Tensor.SetSimNum", "The number of simulations must be positive, not %d", n)
	}
	if T.sims != nil {
		return errf(ErrInvalidArgument, "Tensor.SetSimNum", "The number of simulations has already been set to %d", len(T.sims))
	}
	T.sims = make([]Params, n)
	for i := range T.sims {
		T.sims[i] = T.p
	}
	return nil
}

//DisableSimulations discards all the replicas.
func (T *Tensor) DisableSimulations() {
	T.sims = nil
}

//SetSim sets parameters of the ith replica, the same way Set does for the
//primary values. The angles are not folded; use FoldSim for that.
func (T *Tensor) SetSim(i int, values []float64, names []string) error {
	if err := T.checkSim(i, "Tensor.SetSim"); err != nil {
		return err
	}
	g, o, err := resolve(T.class, values, names)
	if err != nil {
		return errDecorate(err, "Tensor.SetSim")
	}
	T.sims[i] = update(T.sims[i], g, o)
	return nil
}

//FoldAngles folds the primary angles into their canonical intervals.
func (T *Tensor) FoldAngles() {
	FoldPrimary(T.class, &T.p)
}

//FoldSim folds the angles of the ith replica around the primary angles.
//See FoldSimulation for when a second fold changes the replica.
func (T *Tensor) FoldSim(i int) error {
	if err := T.checkSim(i, "Tensor.FoldSim"); err != nil {
		return err
	}
	FoldSimulation(T.class, T.p, &T.sims[i])
	return nil
}
