package transform

import (
	"math"

	"github.com/lovelyyoshino/bron-kerbosch/core"
	"github.com/lovelyyoshino/bron-kerbosch/matrix"
)

const (
	// MaxCorrespondences is the external solver's stability bound (§4.3):
	// callers must cap the number of correspondences passed to
	// EstimateRigid at this value.
	MaxCorrespondences = 8

	// singularValueEpsilon: below this, a singular value of the
	// cross-covariance matrix is treated as numerically zero. The
	// corresponding singular direction is under-determined by the input
	// points and is reconstructed from the other two via the right-hand
	// rule instead of by dividing by a near-zero number.
	singularValueEpsilon = 1e-9

	// eigenTolerance and eigenMaxIterations configure the Jacobi
	// eigendecomposition of the 3x3 Gram matrix Hᵀ·H.
	eigenTolerance     = 1e-14
	eigenMaxIterations = 100
)

// EstimateRigid estimates the rigid transform (rotation + translation, no
// scale) mapping src onto dst in the least-squares sense, by the Umeyama
// method. src and dst must have equal, matching length, interpreted as
// corresponding points: src[i] corresponds to dst[i].
//
// Per convention (§9, "Umeyama solver input ordering"), src is the model
// frame and dst is the scene frame; the returned transform maps model
// coordinates into the scene frame.
//
// Callers must cap len(src) at MaxCorrespondences; EstimateRigid returns
// ErrTooManyPoints rather than silently truncating.
func EstimateRigid(src, dst []core.Point) (Matrix4x4, error) {
	if len(src) != len(dst) {
		return Matrix4x4{}, ErrMismatchedLengths
	}
	if len(src) == 0 {
		return Matrix4x4{}, ErrTooFewPoints
	}
	if len(src) > MaxCorrespondences {
		return Matrix4x4{}, ErrTooManyPoints
	}

	srcCentroid := centroid(src)
	dstCentroid := centroid(dst)

	// H = sum_i (src_i - srcCentroid) * (dst_i - dstCentroid)^T, the 3x3
	// cross-covariance matrix between the two centered point sets.
	h, err := crossCovariance(src, srcCentroid, dst, dstCentroid)
	if err != nil {
		return Matrix4x4{}, err
	}

	u, v, err := svd3(h)
	if err != nil {
		return Matrix4x4{}, err
	}

	// Reflection-sign correction: without it, R = V * U^T can be an
	// improper rotation (det = -1) when the best-fit alignment includes a
	// flip, which a rigid transform must never have.
	d := 1.0
	if det3(u)*det3(v) < 0 {
		d = -1.0
	}

	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sign := 1.0
				if k == 2 {
					sign = d
				}
				sum += v[i][k] * sign * u[j][k]
			}
			r[i][j] = sum
		}
	}

	rsc, err := matrix.MatVec(dense3(r), []float64{srcCentroid.X, srcCentroid.Y, srcCentroid.Z})
	if err != nil {
		return Matrix4x4{}, err
	}
	t := [3]float64{
		dstCentroid.X - rsc[0],
		dstCentroid.Y - rsc[1],
		dstCentroid.Z - rsc[2],
	}

	return rigidFrom(r, t), nil
}

func centroid(pts []core.Point) core.Point {
	var sum core.Point
	for _, p := range pts {
		sum.X += p.X
		sum.Y += p.Y
		sum.Z += p.Z
	}
	n := float64(len(pts))
	return core.Point{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
}

// crossCovariance builds H = sum_i x_i y_i^T, x_i = src_i - srcCentroid,
// y_i = dst_i - dstCentroid, as a *matrix.Dense.
func crossCovariance(src []core.Point, srcCentroid core.Point, dst []core.Point, dstCentroid core.Point) (*matrix.Dense, error) {
	h, err := matrix.NewDense(3, 3)
	if err != nil {
		return nil, err
	}
	for i := range src {
		x := [3]float64{src[i].X - srcCentroid.X, src[i].Y - srcCentroid.Y, src[i].Z - srcCentroid.Z}
		y := [3]float64{dst[i].X - dstCentroid.X, dst[i].Y - dstCentroid.Y, dst[i].Z - dstCentroid.Z}
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				prev, err := h.At(a, b)
				if err != nil {
					return nil, err
				}
				if err := h.Set(a, b, prev+x[a]*y[b]); err != nil {
					return nil, err
				}
			}
		}
	}
	return h, nil
}

// svd3 computes the singular value decomposition H = U * diag(s) * V^T of a
// 3x3 matrix by eigendecomposing the symmetric Gram matrix HᵀH via
// matrix.Eigen: HᵀH = V * diag(s^2) * V^T, so its eigenvectors are the
// right-singular vectors and the square roots of its eigenvalues are the
// singular values. The left-singular vectors follow as U[:,k] = H*V[:,k]/s_k
// for non-degenerate singular values; degenerate ones are filled in with
// unit vectors orthogonal to the columns already set (the last one via the
// right-hand rule) to keep U orthonormal.
func svd3(h *matrix.Dense) (u, v [3][3]float64, err error) {
	ht, err := matrix.Transpose(h)
	if err != nil {
		return u, v, err
	}
	hth, err := matrix.Mul(ht, h)
	if err != nil {
		return u, v, err
	}

	eigenvalues, q, err := matrix.Eigen(hth, eigenTolerance, eigenMaxIterations)
	if err != nil {
		return u, v, err
	}

	order := []int{0, 1, 2}
	// Sort descending by eigenvalue; Eigen does not guarantee an order.
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && eigenvalues[order[j]] > eigenvalues[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	var sVals [3]float64
	for col, k := range order {
		ev := eigenvalues[k]
		if ev < 0 {
			ev = 0 // numerical noise on a PSD matrix
		}
		sVals[col] = math.Sqrt(ev)
		for row := 0; row < 3; row++ {
			val, atErr := q.At(row, k)
			if atErr != nil {
				return u, v, atErr
			}
			v[row][col] = val
		}
	}

	if sVals[0] <= singularValueEpsilon {
		// H itself is (numerically) the zero matrix: no correspondence
		// carries any orientation information (e.g. a single point, or
		// every point coinciding after centering). U = V leaves R = V*U^T
		// as the identity, the only defensible choice with zero evidence.
		return v, v, nil
	}

	for col := 0; col < 3; col++ {
		vk := []float64{v[0][col], v[1][col], v[2][col]}
		hv, mvErr := matrix.MatVec(h, vk)
		if mvErr != nil {
			return u, v, mvErr
		}
		if sVals[col] > singularValueEpsilon {
			for row := 0; row < 3; row++ {
				u[row][col] = hv[row] / sVals[col]
			}
		}
	}
	// Any column of U left at zero (degenerate singular value) is
	// reconstructed so U stays orthonormal. Columns are sorted by
	// descending singular value and the rank-0 case returned above, so
	// column 0 is always set; with rank 1 (two correspondences, or
	// collinear points) column 1 is first completed with a unit vector
	// orthogonal to column 0.
	if isZero3(u[0][1], u[1][1], u[2][1]) {
		a := col(u, 0)
		axis := [3]float64{1, 0, 0}
		if math.Abs(a[1]) < math.Abs(a[0]) && math.Abs(a[1]) <= math.Abs(a[2]) {
			axis = [3]float64{0, 1, 0}
		} else if math.Abs(a[2]) < math.Abs(a[0]) {
			axis = [3]float64{0, 0, 1}
		}
		p := crossProduct(a, axis)
		norm := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		u[0][1], u[1][1], u[2][1] = p[0]/norm, p[1]/norm, p[2]/norm
	}
	if isZero3(u[0][2], u[1][2], u[2][2]) {
		cross := crossProduct(col(u, 0), col(u, 1))
		u[0][2], u[1][2], u[2][2] = cross[0], cross[1], cross[2]
	}
	if isZero3(u[0][1], u[1][1], u[2][1]) {
		cross := crossProduct(col(u, 2), col(u, 0))
		u[0][1], u[1][1], u[2][1] = cross[0], cross[1], cross[2]
	}
	if isZero3(u[0][0], u[1][0], u[2][0]) {
		cross := crossProduct(col(u, 1), col(u, 2))
		u[0][0], u[1][0], u[2][0] = cross[0], cross[1], cross[2]
	}

	return u, v, nil
}

func col(m [3][3]float64, c int) [3]float64 {
	return [3]float64{m[0][c], m[1][c], m[2][c]}
}

func isZero3(a, b, c float64) bool {
	return math.Abs(a) < singularValueEpsilon && math.Abs(b) < singularValueEpsilon && math.Abs(c) < singularValueEpsilon
}

func crossProduct(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// dense3 wraps a 3x3 array as a *matrix.Dense for use with matrix.MatVec.
func dense3(m [3][3]float64) *matrix.Dense {
	d, _ := matrix.NewDense(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = d.Set(i, j, m[i][j])
		}
	}
	return d
}
