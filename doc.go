/*
 * doc.go, part of goxyz.
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

/*
Package goxyz prepares plain-text XYZ molecular trajectories for analysis.

	**goxyz capabilities**

    Reads multi-frame XYZ trajectory files, plain or compressed
	(gzip, zstd or flate, chosen by the file name suffix).

    Removes the geometric centroid from every frame, so downstream
	analyses (RMSD, alignment) start from centered coordinates.

    Builds unique per-atom, per-axis column labels (C0_x, C0_y, ... H1_z)
	from the element symbols of the first frame.

    Writes the recentered trajectory back as an XYZ file.

    Calculates centroids and RMSD between sets of coordinates.

    Plots the per-frame RMSD of a trajectory against its first frame.

The root package holds the trajectory and error interfaces and the
geometric operations. The actual file handling lives in the xyz
subpackage; coordinates are represented by the v3 subpackage, which
wraps a gonum dense matrix with 3 columns.

goxyz uses a row-major representation for coordinates: every row of a
v3.Matrix is the cartesian position of one atom, and a frame of N atoms
is an Nx3 matrix.
*/
package goxyz
