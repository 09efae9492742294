// Package transform estimates the rigid transform (rotation and translation,
// no scale) aligning one set of 3D points onto another, by the Umeyama
// method.
//
// The cross-covariance matrix between the two point sets is decomposed via
// symmetric eigendecomposition of its Gram matrix rather than a general SVD
// routine, since a 3x3 SVD is fully recoverable from the eigenvectors of
// HᵀH: the eigenvectors are the right-singular vectors, the square roots of
// the eigenvalues are the singular values, and the left-singular vectors
// follow from Hv/σ. A reflection-sign correction on the resulting rotation
// guarantees det(R) = +1.
package transform
