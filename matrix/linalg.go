// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Transpose returns a new matrix with rows and columns swapped.
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	res, err := NewDense(m.cols, m.rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			res.data[j*m.rows+i] = m.data[base+j]
		}
	}
	return res, nil
}

// Mul computes the matrix product a*b. a's column count must equal b's row
// count.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("matrix.Mul: a is %dx%d, b is %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	res, err := NewDense(a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		rowA := i * a.cols
		rowR := i * b.cols
		for k := 0; k < a.cols; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.cols
			for j := 0; j < b.cols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}
	return res, nil
}

// MatVec computes y = m*x for a column vector x. len(x) must equal m.Cols().
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(x) != m.cols {
		return nil, fmt.Errorf("matrix.MatVec: m has %d cols, x has len %d: %w", m.cols, len(x), ErrDimensionMismatch)
	}
	y := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		acc := 0.0
		for j := 0; j < m.cols; j++ {
			if x[j] != 0 {
				acc += m.data[base+j] * x[j]
			}
		}
		y[i] = acc
	}
	return y, nil
}

// validateSymmetric reports whether m is square and symmetric within tol.
func validateSymmetric(m *Dense, tol float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.rows != m.cols {
		return ErrNotSquare
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			if math.Abs(m.data[i*m.cols+j]-m.data[j*m.cols+i]) > tol {
				return ErrNotSymmetric
			}
		}
	}
	return nil
}

// Eigen computes the eigenvalues and eigenvectors of a symmetric matrix by
// the classical Jacobi method: repeatedly zero the largest off-diagonal
// entry with a plane rotation until every off-diagonal entry is below tol,
// or maxIter rotations are exhausted. The eigenvectors are returned as the columns
// of Q, accumulated from the identity across the same rotations.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := validateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("matrix.Eigen: %w", err)
	}

	n := m.rows
	a := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	maxOff := func() (float64, int, int) {
		max, p, qi := 0.0, 0, 1
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				off := math.Abs(a.data[base+j])
				if off > max {
					max, p, qi = off, i, j
				}
			}
		}
		return max, p, qi
	}

	for iter := 0; iter < maxIter; iter++ {
		off, p, qi := maxOff()
		if off < tol {
			break
		}

		app := a.data[p*n+p]
		aqq := a.data[qi*n+qi]
		apq := a.data[p*n+qi]

		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == qi {
				continue
			}
			aip := a.data[i*n+p]
			aiq := a.data[i*n+qi]
			newIP := c*aip - s*aiq
			newIQ := s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+qi], a.data[qi*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[qi*n+qi] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+qi], a.data[qi*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip := q.data[i*n+p]
			qiq := q.data[i*n+qi]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+qi] = s*qip + c*qiq
		}
	}

	if off, _, _ := maxOff(); off >= tol {
		return nil, nil, fmt.Errorf("matrix.Eigen: %w", ErrEigenFailed)
	}

	eigenvalues := make([]float64, n)
	for i := 0; i < n; i++ {
		eigenvalues[i] = a.data[i*n+i]
	}
	return eigenvalues, q, nil
}
