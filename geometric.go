/*
 * geometric.go, part of goxyz.
 *
 * Copyright 2021 Rodrigo Vallejos <rvallejos{at}dqb.uchile.cl>
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

package goxyz

import (
	"fmt"
	"math"

	v3 "github.com/rvallejos/goxyz/v3"
	"gonum.org/v1/gonum/mat"
)

//Centroid returns the geometric center of the atoms represented by the
//coordinates in geometry, as a 1x3 row vector, and an error. It is the
//plain arithmetic mean position, with every atom weighting the same
//regardless of its element, so it is not a center of mass.
func Centroid(geometry *v3.Matrix) (*v3.Matrix, error) {
	if geometry == nil {
		return nil, fmt.Errorf("nil matrix to get the centroid")
	}
	gr := geometry.NVecs()
	ones := make([]float64, gr)
	for i := range ones {
		ones[i] = 1
	}
	onesvector := mat.NewDense(1, gr, ones)
	ref := v3.Zeros(1)
	ref.Mul(onesvector, geometry)
	ref.Scale(1.0/float64(gr), ref)
	return ref, nil
}

//Center centers in on the centroid of oref. It returns the centered
//coordinates and the displacement vector that was subtracted from every
//atom. in and oref may be the same matrix. Centering an already
//centered set again is a no-op up to floating point noise.
func Center(in, oref *v3.Matrix) (*v3.Matrix, *v3.Matrix, error) {
	if in == nil || oref == nil {
		return nil, nil, fmt.Errorf("nil matrix to center")
	}
	ref, err := Centroid(oref)
	if err != nil {
		return nil, nil, err
	}
	returned := v3.Zeros(in.NVecs())
	returned.Copy(in)
	returned.SubVec(returned, ref)
	return returned, ref, nil
}

//RMSD returns the root of the mean square deviation between the sets of
//cartesian coordinates in test and template. No alignment is performed,
//the coordinates are compared as given.
func RMSD(test, template *v3.Matrix) (float64, error) {
	tmr, tmc := template.Dims()
	tsr, tsc := test.Dims()
	if tmr != tsr || tmc != 3 || tsc != 3 {
		return 0, fmt.Errorf("ill formed matrices for RMSD calculation")
	}
	dev := v3.Zeros(tmr)
	dev.Sub(template, test)
	var rmsd float64
	for i := 0; i < tmr; i++ {
		temp := dev.VecView(i)
		norm := mat.Norm(temp, 2)
		rmsd += norm * norm
	}
	rmsd = rmsd / float64(tmr)
	return math.Sqrt(rmsd), nil
}
