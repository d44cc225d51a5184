package xyz

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	goxyz "github.com/rvallejos/goxyz"
	v3 "github.com/rvallejos/goxyz/v3"
)

//Every frame block starts with the atom count line and a title line.
const headerLines = 2

//PositiveInt parses token as a positive, non-zero integer. A token that
//parses as a floating point number with a nonzero fractional part fails
//with NotIntegral, which distinguishes "3.5" from plain garbage
//(NotAnInteger). Zero and negative values fail with their own kinds.
func PositiveInt(token string) (int, error) {
	t := strings.TrimSpace(token)
	n, err := strconv.Atoi(t)
	if err != nil {
		f, ferr := strconv.ParseFloat(t, 64)
		if ferr != nil {
			return 0, Error{kind: NotAnInteger, message: fmt.Sprintf("cannot turn %q into an integer", t), line: -1, critical: true}
		}
		if f != math.Trunc(f) {
			return 0, Error{kind: NotIntegral, message: fmt.Sprintf("%q has a fractional part", t), line: -1, critical: true}
		}
		n = int(f)
	}
	if n == 0 {
		return 0, Error{kind: ZeroValue, message: t, line: -1, critical: true}
	}
	if n < 0 {
		return 0, Error{kind: NegativeValue, message: t, line: -1, critical: true}
	}
	return n, nil
}

//Trajectory is a fully parsed XYZ trajectory: the atom count, the
//frame count, one label per atom per axis, and every frame already
//centered on its geometric centroid. It is built in one pass by New and
//immutable afterwards; the accessors hand out copies. It implements
//goxyz.Traj and goxyz.ConcTraj over the in-memory frames.
type Trajectory struct {
	filename string
	natoms   int
	nframes  int
	labels   []string //3N per-axis labels, e.g. C0_x
	tags     []string //N per-atom tags, e.g. C0
	frames   []*v3.Matrix
	current  int
	readable bool
}

//New opens the XYZ trajectory file name, reads it whole, and returns
//the parsed, recentered Trajectory. The file name must end in .xyz,
//possibly followed by one compression suffix (.gz, .zst, .flate).
//Any violattion of the XYZ block layout aborts the parse with an Error
//carrying the offending line; no partial trajectory is ever returned.
func New(name string) (*Trajectory, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := wrapReader(bufio.NewReader(f), name)
	if err != nil {
		return nil, fmt.Errorf("xyz: opening compressed stream %s: %w", name, err)
	}
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("xyz: reading %s: %w", name, err)
	}
	r.Close()
	T := &Trajectory{filename: name}
	if err := T.parse(splitLines(string(all))); err != nil {
		return nil, err
	}
	T.readable = true
	return T, nil
}

//splitLines cuts the file in lines. A single final newline is the
//normal file terminator and produces no line; anything blank beyond
//that stays, and will break the frame-size arithmetic as it should.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func (T *Trajectory) parse(lines []string) error {
	if len(lines) == 0 {
		return Error{kind: EmptyTrajectory, message: "file has no lines", filename: T.filename, line: -1, critical: true}
	}
	natoms, err := PositiveInt(lines[0])
	if err != nil {
		return decorate(err, T.filename, 0, "New")
	}
	T.natoms = natoms
	block := natoms + headerLines
	if len(lines)%block != 0 {
		return Error{kind: InvalidFrameCount, message: fmt.Sprintf("%d lines do not hold a whole number of %d-line frames", len(lines), block), filename: T.filename, line: -1, critical: true}
	}
	T.nframes = len(lines) / block
	T.labels, T.tags, err = atomLabels(lines[headerLines:headerLines+natoms], natoms)
	if err != nil {
		return decorate(err, T.filename, -1, "New")
	}
	T.frames = make([]*v3.Matrix, T.nframes)
	for i := 0; i < T.nframes; i++ {
		start := i*block + headerLines
		end := (i + 1) * block
		//every frame declares its own atom count; it must agree
		//with the trajectory-wide one.
		got, err := PositiveInt(lines[start-headerLines])
		if err != nil {
			return decorate(err, T.filename, start-headerLines, "New")
		}
		if got != natoms {
			return Error{kind: FrameAtomCountMismatch, message: fmt.Sprintf("got %d, expected %d", got, natoms), filename: T.filename, line: start - headerLines, critical: true}
		}
		stop := end
		if stop > len(lines) {
			stop = len(lines)
		}
		body := lines[start:stop]
		if len(body) != natoms {
			return Error{kind: TruncatedFrame, message: fmt.Sprintf("frame %d has %d coordinate lines, expected %d", i, len(body), natoms), filename: T.filename, line: len(lines) - 1, critical: true}
		}
		coords, err := frameCoords(body, start)
		if err != nil {
			return decorate(err, T.filename, -1, "New")
		}
		centered, _, err := goxyz.Center(coords, coords)
		if err != nil {
			return err
		}
		T.frames[i] = centered
	}
	return nil
}

//atomLabels builds, from the atom lines of one frame, the N per-atom
//tags and the 3N per-axis labels. Atoms of the same element are told
//apart by a zero-based occurrence counter local to this call, so two
//carbons become C0 and C1, with labels C0_x, C0_y, C0_z, C1_x, ...
func atomLabels(lines []string, natoms int) ([]string, []string, error) {
	seen := make(map[string]int)
	labels := make([]string, 0, 3*natoms)
	tags := make([]string, 0, natoms)
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue //counted as missing below
		}
		atom := fields[0]
		tag := fmt.Sprintf("%s%d", atom, seen[atom])
		seen[atom]++
		tags = append(tags, tag)
		labels = append(labels, tag+"_x", tag+"_y", tag+"_z")
	}
	if len(labels) != 3*natoms {
		return nil, nil, Error{kind: LabelCountMismatch, message: fmt.Sprintf("found %d labels, expected %d", len(labels), 3*natoms), line: -1, critical: true}
	}
	return labels, tags, nil
}

//frameCoords parses the coordinate lines of one frame into an Nx3
//matrix, in line order. start is the absolute index of the first line,
//used only to report errors. NaN and Inf tokens parse fine and
//propagate; they are the input's problem, not ours.
func frameCoords(lines []string, start int) (*v3.Matrix, error) {
	data := make([]float64, 0, 3*len(lines))
	for k, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, Error{kind: NumericParseError, message: fmt.Sprintf("expected a symbol and 3 coordinates, got %q", line), line: start + k, critical: true}
		}
		for _, tok := range fields[1:4] {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, Error{kind: NumericParseError, message: fmt.Sprintf("cannot parse coordinate %q", tok), line: start + k, critical: true}
			}
			data = append(data, v)
		}
	}
	return v3.NewMatrix(data)
}

//Len returns the number of atoms in each frame of the trajectory.
func (T *Trajectory) Len() int {
	return T.natoms
}

//Frames returns the number of frames in the trajectory.
func (T *Trajectory) Frames() int {
	return T.nframes
}

//FileName returns the name of the file the trajectory was read from.
func (T *Trajectory) FileName() string {
	return T.filename
}

//Labels returns the 3N per-axis column labels, in first-frame atom
//order: C0_x, C0_y, C0_z, H0_x, ...
func (T *Trajectory) Labels() []string {
	return append([]string(nil), T.labels...)
}

//Tags returns the N per-atom tags (C0, H0, H1, ...) used to label the
//lines of a written trajectory.
func (T *Trajectory) Tags() []string {
	return append([]string(nil), T.tags...)
}

//Frame returns a copy of the recentered coordinates of frame i. Panics
//if i is out of range.
func (T *Trajectory) Frame(i int) *v3.Matrix {
	if i < 0 || i >= T.nframes {
		panic("goxyz/xyz: frame index out of range")
	}
	c := v3.Zeros(T.natoms)
	c.Copy(T.frames[i])
	return c
}

//Flat returns a copy of frame i as a flat vector of length 3N, in
//row-major (atom-major) order: x0, y0, z0, x1, ... Panics if i is out
//of range.
func (T *Trajectory) Flat(i int) []float64 {
	if i < 0 || i >= T.nframes {
		panic("goxyz/xyz: frame index out of range")
	}
	raw := T.frames[i].RawMatrix()
	return append([]float64(nil), raw.Data...)
}

func (T *Trajectory) String() string {
	return fmt.Sprintf("%s, with %d atoms in %d frames", T.filename, T.natoms, T.nframes)
}

//Readable returns true if it is possible to call Next on the trajectory.
func (T *Trajectory) Readable() bool {
	return T.readable
}

//Next puts in c the coordinates for the next frame of the trajectory,
//or discards the frame if c is nil. The optional box is accepted for
//interface compatibility but never filled: XYZ files carry no box
//vectors. After the last frame, Next returns a goxyz.LastFrameError and
//closes the handle; the frames themselves remain accessible through
//Frame.
func (T *Trajectory) Next(c *v3.Matrix, box ...[]float64) error {
	if !T.readable {
		return Error{kind: TrajUnIniRead, message: "handle is closed", filename: T.filename, line: -1, critical: true}
	}
	if T.current >= T.nframes {
		T.Close()
		return newlastFrameError(T.filename, "Next")
	}
	if c != nil {
		if c.NVecs() != T.natoms {
			return Error{kind: NotEnoughSpace, message: fmt.Sprintf("%d vectors given, %d needed", c.NVecs(), T.natoms), filename: T.filename, line: -1, critical: true}
		}
		c.Copy(T.frames[T.current])
	}
	T.current++
	return nil
}

//NextConc takes a slice of matrices and reads as many frames as
//elements the slice has. A frame is discarded if the corresponding
//element is nil. It returns a slice of channels through each of which
//a *v3.Matrix will be transmitted.
func (T *Trajectory) NextConc(frames []*v3.Matrix) ([]chan *v3.Matrix, error) {
	if !T.Readable() {
		return nil, Error{kind: TrajUnIniRead, message: "handle is closed", filename: T.filename, line: -1, critical: true}
	}
	framechans := make([]chan *v3.Matrix, len(frames))
	for key, v := range frames {
		if err := T.Next(v); err != nil {
			return nil, errDecorate(err, "NextConc")
		}
		framechans[key] = make(chan *v3.Matrix)
		go func(keep *v3.Matrix, pipe chan *v3.Matrix) {
			pipe <- keep
		}(v, framechans[key])
	}
	return framechans, nil
}

//Close marks the handle as unreadable for Next. The parsed data is kept.
func (T *Trajectory) Close() {
	T.readable = false
}

//errDecorate asserts that the error implements goxyz.Error and adds the
//caller's name to its decoration trail before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(goxyz.Error)
	err2.Decorate(caller)
	return err2
}
