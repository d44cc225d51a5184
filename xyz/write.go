package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"

	v3 "github.com/rvallejos/goxyz/v3"
)

//Title is the fixed comment line written on every frame of a
//recentered trajectory.
const Title = "Shifted XYZ"

//XYZW writes an XYZ trajectory frame by frame. Compression is chosen
//from the file name suffix like on the reading side.
type XYZW struct {
	f         *os.File
	b         *bufio.Writer
	h         io.WriteCloser
	natoms    int
	tags      []string
	filename  string
	writeable bool
}

//NewWriter creates the file name and returns a writer for frames of
//natoms atoms, each line tagged with the corresponding element of tags
//(one per atom, e.g. C0, H0, H1).
func NewWriter(name string, natoms int, tags []string) (*XYZW, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if natoms <= 0 {
		return nil, Error{kind: ZeroValue, message: "a frame needs at least one atom", filename: name, line: -1, critical: true}
	}
	if len(tags) != natoms {
		return nil, Error{kind: LabelCountMismatch, message: fmt.Sprintf("%d atom tags given, %d needed", len(tags), natoms), filename: name, line: -1, critical: true}
	}
	W := new(XYZW)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	W.b = bufio.NewWriter(W.f)
	W.h, err = wrapWriter(W.b, name)
	if err != nil {
		W.f.Close()
		return nil, fmt.Errorf("xyz: opening compressed stream %s: %w", name, err)
	}
	W.natoms = natoms
	W.tags = append([]string(nil), tags...)
	W.filename = name
	W.writeable = true
	return W, nil
}

//Len returns the number of atoms per frame the writer expects.
func (W *XYZW) Len() int {
	return W.natoms
}

//WNext writes coord as the next frame: the atom count line, the fixed
//title marker, and one tagged line per atom with the three coordinates.
func (W *XYZW) WNext(coord *v3.Matrix) error {
	if !W.writeable {
		return Error{kind: TrajUnIniWrite, message: "handle is closed", filename: W.filename, line: -1, critical: true}
	}
	if coord == nil {
		return Error{kind: NilCoordinates, message: "nothing to write", filename: W.filename, line: -1, critical: true}
	}
	v := coord.NVecs()
	if v != W.natoms {
		return Error{kind: FrameAtomCountMismatch, message: fmt.Sprintf("%d coordinates given, but %d expected", v, W.natoms), filename: W.filename, line: -1, critical: true}
	}
	fmt.Fprintf(W.h, "%d\n", W.natoms)
	fmt.Fprintf(W.h, "%s\n", Title)
	for i := 0; i < v; i++ {
		_, err := fmt.Fprintf(W.h, "%-6s %15.10f %15.10f %15.10f\n", W.tags[i], coord.At(i, 0), coord.At(i, 1), coord.At(i, 2))
		if err != nil {
			return fmt.Errorf("xyz: writing %s: %w", W.filename, err)
		}
	}
	return nil
}

//Close flushes and closes the underlying file. The writer can not be
//used after this call.
func (W *XYZW) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	if err := W.h.Close(); err != nil {
		W.f.Close()
		return err
	}
	if err := W.b.Flush(); err != nil {
		W.f.Close()
		return err
	}
	return W.f.Close()
}

//WriteFile serializes the whole recentered trajectory to name, one
//block per frame, in frame order.
func (T *Trajectory) WriteFile(name string) error {
	W, err := NewWriter(name, T.natoms, T.tags)
	if err != nil {
		return err
	}
	for _, frame := range T.frames {
		if err := W.WNext(frame); err != nil {
			W.Close()
			return err
		}
	}
	return W.Close()
}
