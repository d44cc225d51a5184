package v3

import (
	"math"
	"testing"
)

const tol = 1e-12

func TestNewMatrix(Te *testing.T) {
	m, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if m.NVecs() != 2 {
		Te.Errorf("got %d vecs, expected 2", m.NVecs())
	}
	if m.At(1, 2) != 6 {
		Te.Errorf("wrong element: %g", m.At(1, 2))
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("NewMatrix accepted a slice not divisible by 3")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("NewMatrix accepted an empty slice")
	}
}

func TestAddSubVec(Te *testing.T) {
	m, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	vec, _ := NewMatrix([]float64{1, 2, 3})
	out := Zeros(2)
	out.AddVec(m, vec)
	want := []float64{2, 3, 4, 3, 4, 5}
	raw := out.RawMatrix().Data
	for i := range want {
		if math.Abs(raw[i]-want[i]) > tol {
			Te.Errorf("AddVec value %d: got %g, expected %g", i, raw[i], want[i])
		}
	}
	out.SubVec(out, vec)
	raw = out.RawMatrix().Data
	orig := []float64{1, 1, 1, 2, 2, 2}
	for i := range orig {
		if math.Abs(raw[i]-orig[i]) > tol {
			Te.Errorf("SubVec did not undo AddVec at %d", i)
		}
	}
	//vec must be intact after the sign dance inside SubVec
	if vec.At(0, 1) != 2 {
		Te.Errorf("SubVec corrupted its vector argument: %v", vec)
	}
}

func TestVecView(Te *testing.T) {
	m, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	v := m.VecView(1)
	if v.At(0, 0) != 4 {
		Te.Errorf("view sees %g, expected 4", v.At(0, 0))
	}
	v.Set(0, 0, 40)
	if m.At(1, 0) != 40 {
		Te.Error("change through the view not reflected in the matrix")
	}
}

func TestSetMatrix(Te *testing.T) {
	m := Zeros(3)
	sub, _ := NewMatrix([]float64{7, 8, 9})
	m.SetMatrix(2, 0, sub)
	if m.At(2, 0) != 7 || m.At(2, 2) != 9 {
		Te.Errorf("SetMatrix misplaced the data: %v", m)
	}
	defer func() {
		if recover() == nil {
			Te.Error("SetMatrix out of bounds did not panic")
		}
	}()
	m.SetMatrix(3, 0, sub)
}

func TestSwapVecs(Te *testing.T) {
	m, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	m.SwapVecs(0, 1)
	if m.At(0, 0) != 4 || m.At(1, 2) != 3 {
		Te.Errorf("SwapVecs scrambled the matrix: %v", m)
	}
}
