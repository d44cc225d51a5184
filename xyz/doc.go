/*Package xyz reads and writes multi-frame trajectories in the
plain-text XYZ format.

An XYZ trajectory is a contiguous sequence of fixed-size blocks, one
per frame. Each block is an atom-count line, a title line whose content
is ignored, and one line per atom holding the element symbol and the
three cartesian coordinates, whitespace-delimited. There are no
separators between blocks, and the file length must be an exact
multiple of the block size.

New loads a whole file at once and recenters every frame about its
geometric centroid, so the returned Trajectory is ready for analyses
that assume centered coordinates. Per-atom column labels (C0_x, C0_y,
..., H1_z) are derived from the element symbols of the first frame;
later frames are only checked for atom count, not for element identity.

Files whose name ends in .gz, .zst or .flate are transparently
(de)compressed; the .xyz extension requirement then applies to the name
with the compression suffix removed.*/
package xyz
