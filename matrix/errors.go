// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for easy grepping. Methods wrap
// these with their name and coordinates; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that the requested order is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square table was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeWeight rejects edge weights below zero.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrNilMatrix indicates that a nil *Cost was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
