package matrix_test

import (
	"errors"
	"testing"

	"github.com/lovelyyoshino/bron-kerbosch/matrix"
)

func TestNewDense_ZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if v != 0 {
				t.Fatalf("At(%d,%d) = %v, want 0", i, j, v)
			}
		}
	}
}

func TestNewDense_RejectsNonPositiveDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 3}, {3, 0}, {-1, 3}} {
		if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Fatalf("NewDense(%d,%d) = %v, want ErrInvalidDimensions", tc.rows, tc.cols, err)
		}
	}
}

func TestDense_SetAndAt(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	if err := m.Set(1, 0, 4.5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := m.At(1, 0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if v != 4.5 {
		t.Fatalf("At(1,0) = %v, want 4.5", v)
	}
}

func TestDense_AtSetOutOfBounds(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	if _, err := m.At(2, 0); !errors.Is(err, matrix.ErrIndexOutOfBounds) {
		t.Fatalf("At(2,0) = %v, want ErrIndexOutOfBounds", err)
	}
	if err := m.Set(0, -1, 1); !errors.Is(err, matrix.ErrIndexOutOfBounds) {
		t.Fatalf("Set(0,-1) = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, 1)
	clone := m.Clone()
	_ = m.Set(0, 0, 2)

	v, _ := clone.At(0, 0)
	if v != 1 {
		t.Fatalf("clone.At(0,0) = %v, want 1 (unaffected by mutation of original)", v)
	}
}
