package xyz

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	goxyz "github.com/rvallejos/goxyz"
	v3 "github.com/rvallejos/goxyz/v3"
)

const tol = 1e-9

//writeTemp drops content in a throwaway file and returns its path.
func writeTemp(Te *testing.T, name, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestXYZRead(Te *testing.T) {
	traj, err := New("testdata/chh.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("read:", traj)
	if traj.Len() != 3 {
		Te.Errorf("got %d atoms, expected 3", traj.Len())
	}
	if traj.Frames() != 2 {
		Te.Errorf("got %d frames, expected 2", traj.Frames())
	}
	wantlabels := []string{"C0_x", "C0_y", "C0_z", "H0_x", "H0_y", "H0_z", "H1_x", "H1_y", "H1_z"}
	if !reflect.DeepEqual(traj.Labels(), wantlabels) {
		Te.Errorf("labels %v, expected %v", traj.Labels(), wantlabels)
	}
	if !reflect.DeepEqual(traj.Tags(), []string{"C0", "H0", "H1"}) {
		Te.Errorf("wrong atom tags: %v", traj.Tags())
	}
	//frame 0: centroid (1/3, 1/3, 0) removed
	want0 := []float64{
		-1.0 / 3, -1.0 / 3, 0,
		2.0 / 3, -1.0 / 3, 0,
		-1.0 / 3, 2.0 / 3, 0,
	}
	//frame 1: same shape scaled by 2
	want1 := []float64{
		-2.0 / 3, -2.0 / 3, 0,
		4.0 / 3, -2.0 / 3, 0,
		-2.0 / 3, 4.0 / 3, 0,
	}
	for f, want := range [][]float64{want0, want1} {
		got := traj.Flat(f)
		if len(got) != 9 {
			Te.Fatalf("frame %d has %d values, expected 9", f, len(got))
		}
		for i := range want {
			if math.Abs(got[i]-want[i]) > tol {
				Te.Errorf("frame %d value %d: got %g, expected %g", f, i, got[i], want[i])
			}
		}
	}
}

func TestCentroidAtOrigin(Te *testing.T) {
	traj, err := New("testdata/malonaldehyde.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < traj.Frames(); i++ {
		c, err := goxyz.Centroid(traj.Frame(i))
		if err != nil {
			Te.Fatal(err)
		}
		for j := 0; j < 3; j++ {
			if math.Abs(c.At(0, j)) > tol {
				Te.Errorf("frame %d centroid component %d is %g, expected 0", i, j, c.At(0, j))
			}
		}
	}
}

func TestLabelUniqueness(Te *testing.T) {
	traj, err := New("testdata/malonaldehyde.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	//malonaldehyde: 3 C, 2 O, 4 H, one tag per occurrence
	want := []string{"C0", "C1", "C2", "O0", "O1", "H0", "H1", "H2", "H3"}
	if !reflect.DeepEqual(traj.Tags(), want) {
		Te.Errorf("tags %v, expected %v", traj.Tags(), want)
	}
	seen := make(map[string]bool)
	for _, tag := range traj.Tags() {
		if seen[tag] {
			Te.Errorf("tag %s used for more than one atom", tag)
		}
		seen[tag] = true
	}
	if len(traj.Labels()) != 3*traj.Len() {
		Te.Errorf("got %d labels, expected %d", len(traj.Labels()), 3*traj.Len())
	}
}

func TestPositiveInt(Te *testing.T) {
	for _, c := range []struct {
		token string
		kind  Kind
	}{
		{"garbage", NotAnInteger},
		{"3.5", NotIntegral},
		{"0", ZeroValue},
		{"-2", NegativeValue},
	} {
		_, err := PositiveInt(c.token)
		if err == nil {
			Te.Errorf("PositiveInt(%q) did not fail", c.token)
			continue
		}
		if KindOf(err) != c.kind {
			Te.Errorf("PositiveInt(%q) failed with %q, expected %q", c.token, KindOf(err), c.kind)
		}
	}
	for _, token := range []string{"3", " 42 ", "3.0"} {
		if _, err := PositiveInt(token); err != nil {
			Te.Errorf("PositiveInt(%q) failed: %v", token, err)
		}
	}
}

func TestMalformedHeader(Te *testing.T) {
	path := writeTemp(Te, "bad.xyz", "3.5\ntitle\nC 0 0 0\nH 1 0 0\nH 0 1 0\n")
	_, err := New(path)
	if KindOf(err) != NotIntegral {
		Te.Errorf("got %v, expected a NotIntegral error", err)
	}
}

func TestInvalidFrameCount(Te *testing.T) {
	//a stray extra line breaks the lines/(N+2) arithmetic
	path := writeTemp(Te, "extra.xyz", "3\ntitle\nC 0 0 0\nH 1 0 0\nH 0 1 0\nstray\n")
	_, err := New(path)
	if KindOf(err) != InvalidFrameCount {
		Te.Errorf("got %v, expected an InvalidFrameCount error", err)
	}
}

func TestEmptyTrajectory(Te *testing.T) {
	path := writeTemp(Te, "empty.xyz", "")
	_, err := New(path)
	if KindOf(err) != EmptyTrajectory {
		Te.Errorf("got %v, expected an EmptyTrajectory error", err)
	}
}

func TestFrameAtomCountMismatch(Te *testing.T) {
	content := "3\nfirst\nC 0 0 0\nH 1 0 0\nH 0 1 0\n" +
		"4\nsecond\nC 0 0 0\nH 1 0 0\nH 0 1 0\n"
	path := writeTemp(Te, "mismatch.xyz", content)
	_, err := New(path)
	if KindOf(err) != FrameAtomCountMismatch {
		Te.Fatalf("got %v, expected a FrameAtomCountMismatch error", err)
	}
	//the second frame's count header sits on line 5 (zero-based)
	if e := err.(Error); e.Line() != 5 {
		Te.Errorf("error cites line %d, expected 5", e.Line())
	}
}

func TestNumericParseError(Te *testing.T) {
	path := writeTemp(Te, "nan.xyz", "3\ntitle\nC 0 0 0\nH one 0 0\nH 0 1 0\n")
	_, err := New(path)
	if KindOf(err) != NumericParseError {
		Te.Fatalf("got %v, expected a NumericParseError error", err)
	}
	if e := err.(Error); e.Line() != 3 {
		Te.Errorf("error cites line %d, expected 3", e.Line())
	}
}

func TestWrongFormat(Te *testing.T) {
	for _, name := range []string{"traj.txt", "traj.xyz.bz2", "xyz"} {
		_, err := New(name)
		if KindOf(err) != WrongFormat {
			Te.Errorf("New(%q): got %v, expected a WrongFormat error", name, err)
		}
	}
}

func TestNext(Te *testing.T) {
	traj, err := New("testdata/malonaldehyde.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if !traj.Readable() {
		Te.Fatal("fresh trajectory not readable")
	}
	frames := 0
	for {
		err := traj.Next(nil)
		if err != nil {
			if _, ok := err.(goxyz.LastFrameError); ok {
				break
			}
			Te.Fatal(err)
		}
		frames++
	}
	fmt.Println("frames read sequentially:", frames)
	if frames != traj.Frames() {
		Te.Errorf("Next yielded %d frames, expected %d", frames, traj.Frames())
	}
	if traj.Readable() {
		Te.Error("trajectory still readable after the last frame")
	}
	//the parsed table survives the handle
	_ = traj.Frame(0)
}

func TestRoundTrip(Te *testing.T) {
	traj, err := New("testdata/chh.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	out := filepath.Join(Te.TempDir(), "shifted.xyz")
	if err := traj.WriteFile(out); err != nil {
		Te.Fatal(err)
	}
	again, err := New(out)
	if err != nil {
		Te.Fatal(err)
	}
	if again.Len() != traj.Len() || again.Frames() != traj.Frames() {
		Te.Fatalf("round trip changed the shape: %v vs %v", again, traj)
	}
	//recentering already centered frames must change nothing
	for i := 0; i < traj.Frames(); i++ {
		a, b := traj.Flat(i), again.Flat(i)
		for j := range a {
			if math.Abs(a[j]-b[j]) > tol {
				Te.Errorf("frame %d value %d drifted: %g vs %g", i, j, a[j], b[j])
			}
		}
	}
}

func TestCompressedRoundTrip(Te *testing.T) {
	traj, err := New("testdata/malonaldehyde.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{"shifted.xyz.gz", "shifted.xyz.zst", "shifted.xyz.flate"} {
		out := filepath.Join(Te.TempDir(), name)
		if err := traj.WriteFile(out); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		again, err := New(out)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if again.Frames() != traj.Frames() || again.Len() != traj.Len() {
			Te.Errorf("%s: round trip changed the shape", name)
		}
		a, b := traj.Flat(traj.Frames()-1), again.Flat(again.Frames()-1)
		for j := range a {
			if math.Abs(a[j]-b[j]) > tol {
				Te.Errorf("%s: value %d drifted: %g vs %g", name, j, a[j], b[j])
			}
		}
	}
}

func TestNextConc(Te *testing.T) {
	traj, err := New("testdata/malonaldehyde.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	bufs := []*v3.Matrix{v3.Zeros(traj.Len()), v3.Zeros(traj.Len())}
	chans, err := traj.NextConc(bufs)
	if err != nil {
		Te.Fatal(err)
	}
	for i, pipe := range chans {
		frame := <-pipe
		want := traj.Frame(i)
		for j := 0; j < traj.Len(); j++ {
			for k := 0; k < 3; k++ {
				if math.Abs(frame.At(j, k)-want.At(j, k)) > tol {
					Te.Errorf("concurrent frame %d differs at %d,%d", i, j, k)
				}
			}
		}
	}
}
