// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra backbone behind the rigid
// transform estimator: a row-major Dense matrix type plus the handful of
// operations Umeyama alignment needs (transpose, product, matrix-vector
// multiply, symmetric eigendecomposition by Jacobi sweeps).
//
// It is trimmed to that surface deliberately — no sparse types, no
// elementwise-op suite, no statistics helpers, no functional-options
// config — since nothing in this module has a use for them. Reach for a
// general-purpose linear-algebra package for anything wider.
package matrix
