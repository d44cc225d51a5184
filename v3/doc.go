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

//Package v3 implements matrices of 3D vectors (Nx3 matrices) on top of
//gonum dense matrices. Within the package it is understood that a
//"vector" is a row vector, i.e. the cartesian coordinates of one point
//in 3D space, so a Matrix is a set of N such points.
package v3
