/*
 * interfaces.go, part of goxyz.
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

import v3 "github.com/rvallejos/goxyz/v3"

// Traj is an interface for any trajectory object. A Traj hands out one
// frame per call to Next, in file order.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//reads the next frame and puts it in output if output is not nil,
	//or discards it if it is. It can also fill the (optional) box with
	//the box vectors, if present in the frame.
	Next(output *v3.Matrix, box ...[]float64) error

	//Returns the number of atoms per frame
	Len() int
}

// ConcTraj is an interface for a trajectory that can be read concurrently.
type ConcTraj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	/*NextConc takes a slice of matrices and reads as many frames as
	elements the slice has from the trajectory. A frame is discarded if
	the corresponding element of the slice is nil. The function returns
	a slice of channels through each of which a *v3.Matrix will be
	transmitted*/
	NextConc(frames []*v3.Matrix) ([]chan *v3.Matrix, error)

	//Returns the number of atoms per frame
	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from
// the error, without changing its type or wrapping it around something
// else. If passed an empty string, Decorate just returns the current
// decoration slice without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError is a TrajError produced upon reading past the last
// frame of a trajectory. It is harmless: it only signals that the
// trajectory is over, so it can be filtered in a type switch that
// looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
