// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when a constructor is asked for a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: rows and cols must be positive")

	// ErrIndexOutOfBounds is returned by At/Set for an (i,j) outside the
	// matrix's shape.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix is returned when an operation receives a nil *Dense.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch is returned when two operands' shapes are
	// incompatible for the requested operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare is returned when a square matrix was required.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNotSymmetric is returned when Eigen's input fails symmetry
	// validation within its tolerance.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrEigenFailed is returned when Jacobi sweeps do not converge within
	// maxIter iterations.
	ErrEigenFailed = errors.New("matrix: eigendecomposition did not converge")
)
