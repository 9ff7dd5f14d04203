// Package linalg provides small dense vectors and matrices for the
// chart's 2D/3D transform path. Dimensions are checked at runtime and
// incompatible operations fail fast; nothing is silently truncated.
package linalg

import (
	"errors"
	"math"
)

// Errors returned by vector and matrix operations.
var (
	ErrDivideByZero = errors.New("linalg: division by zero")
	ErrInvalidSize  = errors.New("linalg: incompatible dimensions")
	ErrNotSquare    = errors.New("linalg: matrix is not square")
	ErrNoInverse    = errors.New("linalg: matrix is singular")
)

// normalizeEps is the length below which Normalize returns the zero
// vector instead of dividing, so degenerate directions never become NaN.
const normalizeEps = 1e-5

// Vector is a dense column vector of arbitrary dimension.
type Vector []float64

// NewVector returns a zero vector of dimension n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Add returns v + u.
func (v Vector) Add(u Vector) (Vector, error) {
	if len(v) != len(u) {
		return nil, ErrInvalidSize
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + u[i]
	}
	return out, nil
}

// Sub returns v - u.
func (v Vector) Sub(u Vector) (Vector, error) {
	if len(v) != len(u) {
		return nil, ErrInvalidSize
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - u[i]
	}
	return out, nil
}

// Mult returns v scaled by s.
func (v Vector) Mult(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Div returns v scaled by 1/s. Division by exactly zero is an error.
func (v Vector) Div(s float64) (Vector, error) {
	if s == 0 {
		return nil, ErrDivideByZero
	}
	return v.Mult(1 / s), nil
}

// Dot returns the dot product of v and u.
func (v Vector) Dot(u Vector) (float64, error) {
	if len(v) != len(u) {
		return 0, ErrInvalidSize
	}
	sum := 0.0
	for i := range v {
		sum += v[i] * u[i]
	}
	return sum, nil
}

// Cross returns the cross product of two 3-vectors.
func (v Vector) Cross(u Vector) (Vector, error) {
	if len(v) != 3 || len(u) != 3 {
		return nil, ErrInvalidSize
	}
	return Vector{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}, nil
}

// Len returns the Euclidean length of v.
func (v Vector) Len() float64 {
	sum := 0.0
	for i := range v {
		sum += v[i] * v[i]
	}
	return math.Sqrt(sum)
}

// Normalize returns a unit vector in the direction of v, or the zero
// vector when the length is within normalizeEps of zero.
func (v Vector) Normalize() Vector {
	n := v.Len()
	if n < normalizeEps {
		return NewVector(len(v))
	}
	return v.Mult(1 / n)
}

// Eq reports component-wise equality within an absolute tolerance of 1e-4.
func (v Vector) Eq(u Vector) bool {
	if len(v) != len(u) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-u[i]) > eqTolerance {
			return false
		}
	}
	return true
}
