// SPDX-License-Identifier: MIT

package mat_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/mat"
)

func TestDenseVector_DotNorm(t *testing.T) {
	v := mustVec(t, []float64{1, 2, 3})
	w := mustVec(t, []float64{4, -5, 6})

	d, err := v.Dot(w)
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	if !closeTo(d, 12) {
		t.Fatalf("Dot: got %g, want 12", d)
	}

	// Fallback path through a hidden vector agrees
	d2, err := v.Dot(hideVec{w})
	if err != nil {
		t.Fatalf("Dot fallback: %v", err)
	}
	if !closeTo(d, d2) {
		t.Fatalf("Dot paths disagree: %g vs %g", d, d2)
	}

	if !closeTo(v.Norm(), math.Sqrt(14)) {
		t.Fatalf("Norm: got %g, want sqrt(14)", v.Norm())
	}
}

func TestDenseVector_CombineToSelf(t *testing.T) {
	v := mustVec(t, []float64{1, 2})
	w := mustVec(t, []float64{10, 20})

	// v = 2·v + 3·w
	if err := v.CombineToSelf(2, 3, w); err != nil {
		t.Fatalf("CombineToSelf: %v", err)
	}
	got := v.DataVec()
	want := []float64{32, 64}
	for i := range want {
		if !closeTo(got[i], want[i]) {
			t.Fatalf("v[%d]: got %g, want %g", i, got[i], want[i])
		}
	}

	// Dimension guard
	short := mustVec(t, []float64{1})
	if err := v.CombineToSelf(1, 1, short); !errors.Is(err, mat.ErrDimensionMismatch) {
		t.Fatalf("mismatch: got %v, want ErrDimensionMismatch", err)
	}
	if err := v.CombineToSelf(1, 1, nil); !errors.Is(err, mat.ErrNilMatrix) {
		t.Fatalf("nil other: got %v, want ErrNilMatrix", err)
	}
}

func TestDenseVector_CloneAndData(t *testing.T) {
	v := mustVec(t, []float64{1, 2})
	cp := v.CloneVec()
	if err := cp.SetVec(0, 9); err != nil {
		t.Fatalf("SetVec: %v", err)
	}
	x, _ := v.AtVec(0)
	if x != 1 {
		t.Fatalf("clone aliases original: got %g, want 1", x)
	}

	data := v.DataVec()
	data[1] = 99
	x, _ = v.AtVec(1)
	if x != 2 {
		t.Fatalf("DataVec aliases original: got %g, want 2", x)
	}
}

func TestSparseVector_MatchesDense(t *testing.T) {
	// Same logical vector, both representations
	dense := mustVec(t, []float64{0, 3, 0, -2, 0})
	sparse, err := mat.NewSparseVector(5)
	if err != nil {
		t.Fatalf("NewSparseVector: %v", err)
	}
	if err = sparse.SetVec(1, 3); err != nil {
		t.Fatalf("SetVec: %v", err)
	}
	if err = sparse.SetVec(3, -2); err != nil {
		t.Fatalf("SetVec: %v", err)
	}

	if !closeTo(sparse.Norm(), dense.Norm()) {
		t.Fatalf("Norm: sparse %g, dense %g", sparse.Norm(), dense.Norm())
	}

	other := mustVec(t, []float64{1, 2, 3, 4, 5})
	ds, err := sparse.Dot(other)
	if err != nil {
		t.Fatalf("sparse Dot: %v", err)
	}
	dd, err := dense.Dot(other)
	if err != nil {
		t.Fatalf("dense Dot: %v", err)
	}
	if !closeTo(ds, dd) {
		t.Fatalf("Dot: sparse %g, dense %g", ds, dd)
	}

	// Dense·Sparse delegates to the sparse side and must agree too
	dsFlip, err := other.Dot(sparse)
	if err != nil {
		t.Fatalf("dense·sparse Dot: %v", err)
	}
	if !closeTo(ds, dsFlip) {
		t.Fatalf("Dot not symmetric: %g vs %g", ds, dsFlip)
	}
}

func TestSparseVector_ZeroWritesDropKeys(t *testing.T) {
	v, err := mat.NewSparseVector(3)
	if err != nil {
		t.Fatalf("NewSparseVector: %v", err)
	}
	if err = v.SetVec(1, 5); err != nil {
		t.Fatalf("SetVec: %v", err)
	}
	if err = v.SetVec(1, 0); err != nil {
		t.Fatalf("SetVec zero: %v", err)
	}
	x, err := v.AtVec(1)
	if err != nil || x != 0 {
		t.Fatalf("AtVec after zero write: got %g, %v", x, err)
	}
	if v.Norm() != 0 {
		t.Fatalf("Norm after zero write: got %g, want 0", v.Norm())
	}
}

func TestSparseVector_CombineToSelf(t *testing.T) {
	v, err := mat.NewSparseVector(4)
	if err != nil {
		t.Fatalf("NewSparseVector: %v", err)
	}
	_ = v.SetVec(0, 1)
	_ = v.SetVec(2, 2)

	w, err := mat.NewSparseVector(4)
	if err != nil {
		t.Fatalf("NewSparseVector: %v", err)
	}
	_ = w.SetVec(2, -1)
	_ = w.SetVec(3, 4)

	// v = 1·v + 2·w = [1, 0, 0, 8]; index 2 cancels exactly
	if err = v.CombineToSelf(1, 2, w); err != nil {
		t.Fatalf("CombineToSelf: %v", err)
	}
	want := []float64{1, 0, 0, 8}
	got := v.DataVec()
	for i := range want {
		if !closeTo(got[i], want[i]) {
			t.Fatalf("v[%d]: got %g, want %g", i, got[i], want[i])
		}
	}

	// Dense other exercises the full-dimension path
	d := mustVec(t, []float64{1, 1, 1, 1})
	if err = v.CombineToSelf(0, 1, d); err != nil {
		t.Fatalf("CombineToSelf dense: %v", err)
	}
	got = v.DataVec()
	for i := 0; i < 4; i++ {
		if !closeTo(got[i], 1) {
			t.Fatalf("v[%d]: got %g, want 1", i, got[i])
		}
	}
}

func TestVector_Bounds(t *testing.T) {
	v := mustVec(t, []float64{1})
	if _, err := v.AtVec(1); !errors.Is(err, mat.ErrOutOfRange) {
		t.Fatalf("AtVec(1): got %v, want ErrOutOfRange", err)
	}
	if err := v.SetVec(-1, 0); !errors.Is(err, mat.ErrOutOfRange) {
		t.Fatalf("SetVec(-1): got %v, want ErrOutOfRange", err)
	}

	s, err := mat.NewSparseVector(1)
	if err != nil {
		t.Fatalf("NewSparseVector: %v", err)
	}
	if _, err = s.AtVec(1); !errors.Is(err, mat.ErrOutOfRange) {
		t.Fatalf("sparse AtVec(1): got %v, want ErrOutOfRange", err)
	}

	if _, err = mat.NewDenseVector(0); !errors.Is(err, mat.ErrBadShape) {
		t.Fatalf("NewDenseVector(0): got %v, want ErrBadShape", err)
	}
	if _, err = mat.NewSparseVector(0); !errors.Is(err, mat.ErrBadShape) {
		t.Fatalf("NewSparseVector(0): got %v, want ErrBadShape", err)
	}
}
