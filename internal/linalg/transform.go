package linalg

import "math"

// Affine transform constructors. 2D transforms are 3×3 homogeneous
// matrices, 3D transforms are 4×4. All build from closed-form formulas.

// Translate2D returns a 3×3 translation by (tx, ty).
func Translate2D(tx, ty float64) Matrix {
	m := Identity(3)
	m.Set(0, 2, tx)
	m.Set(1, 2, ty)
	return m
}

// Rotate2D returns a 3×3 counter-clockwise rotation by theta radians.
func Rotate2D(theta float64) Matrix {
	s, c := math.Sincos(theta)
	m := Identity(3)
	m.Set(0, 0, c)
	m.Set(0, 1, -s)
	m.Set(1, 0, s)
	m.Set(1, 1, c)
	return m
}

// Scale2D returns a 3×3 scaling by (sx, sy).
func Scale2D(sx, sy float64) Matrix {
	m := Identity(3)
	m.Set(0, 0, sx)
	m.Set(1, 1, sy)
	return m
}

// Project2D returns a 3×3 orthogonal projection onto the direction at
// theta radians from the x axis.
func Project2D(theta float64) Matrix {
	s, c := math.Sincos(theta)
	m := Identity(3)
	m.Set(0, 0, c*c)
	m.Set(0, 1, c*s)
	m.Set(1, 0, c*s)
	m.Set(1, 1, s*s)
	return m
}

// Translate3D returns a 4×4 translation by (tx, ty, tz).
func Translate3D(tx, ty, tz float64) Matrix {
	m := Identity(4)
	m.Set(0, 3, tx)
	m.Set(1, 3, ty)
	m.Set(2, 3, tz)
	return m
}

// RotateX returns a 4×4 rotation about the x axis by theta radians.
func RotateX(theta float64) Matrix {
	s, c := math.Sincos(theta)
	m := Identity(4)
	m.Set(1, 1, c)
	m.Set(1, 2, -s)
	m.Set(2, 1, s)
	m.Set(2, 2, c)
	return m
}

// RotateY returns a 4×4 rotation about the y axis by theta radians.
func RotateY(theta float64) Matrix {
	s, c := math.Sincos(theta)
	m := Identity(4)
	m.Set(0, 0, c)
	m.Set(0, 2, s)
	m.Set(2, 0, -s)
	m.Set(2, 2, c)
	return m
}

// RotateZ returns a 4×4 rotation about the z axis by theta radians.
func RotateZ(theta float64) Matrix {
	s, c := math.Sincos(theta)
	m := Identity(4)
	m.Set(0, 0, c)
	m.Set(0, 1, -s)
	m.Set(1, 0, s)
	m.Set(1, 1, c)
	return m
}

// Scale3D returns a 4×4 scaling by (sx, sy, sz).
func Scale3D(sx, sy, sz float64) Matrix {
	m := Identity(4)
	m.Set(0, 0, sx)
	m.Set(1, 1, sy)
	m.Set(2, 2, sz)
	return m
}

// Orthographic returns a 4×4 orthographic projection mapping the box
// [left,right]×[bottom,top]×[near,far] to the canonical [-1,1] cube.
func Orthographic(left, right, bottom, top, near, far float64) (Matrix, error) {
	if right == left || top == bottom || far == near {
		return Matrix{}, ErrInvalidSize
	}
	m := Identity(4)
	m.Set(0, 0, 2/(right-left))
	m.Set(1, 1, 2/(top-bottom))
	m.Set(2, 2, -2/(far-near))
	m.Set(0, 3, -(right+left)/(right-left))
	m.Set(1, 3, -(top+bottom)/(top-bottom))
	m.Set(2, 3, -(far+near)/(far-near))
	return m, nil
}

// Perspective returns a 4×4 perspective projection with a vertical
// field of view of fov radians, mapping depth [near, far] to [-1, 1].
func Perspective(fov, aspect, near, far float64) (Matrix, error) {
	if fov <= 0 || fov >= math.Pi || aspect == 0 || far == near {
		return Matrix{}, ErrInvalidSize
	}
	f := 1 / math.Tan(fov/2)
	m := NewMatrix(4, 4)
	m.Set(0, 0, f/aspect)
	m.Set(1, 1, f)
	m.Set(2, 2, (far+near)/(near-far))
	m.Set(2, 3, 2*far*near/(near-far))
	m.Set(3, 2, -1)
	return m, nil
}

// LookAt returns a 4×4 view matrix for a camera at eye looking toward
// target with the given up vector. The basis comes from two cross
// products plus normalization; a degenerate configuration (eye at
// target, or up parallel to the view direction) returns ErrNoInverse
// since no orthonormal basis exists.
func LookAt(eye, target, up Vector) (Matrix, error) {
	if len(eye) != 3 || len(target) != 3 || len(up) != 3 {
		return Matrix{}, ErrInvalidSize
	}

	fwd, err := target.Sub(eye)
	if err != nil {
		return Matrix{}, err
	}
	f := fwd.Normalize()
	if f.Len() == 0 {
		return Matrix{}, ErrNoInverse
	}

	sv, err := f.Cross(up.Normalize())
	if err != nil {
		return Matrix{}, err
	}
	s := sv.Normalize()
	if s.Len() == 0 {
		return Matrix{}, ErrNoInverse
	}

	uv, err := s.Cross(f)
	if err != nil {
		return Matrix{}, err
	}

	m := Identity(4)
	for c := 0; c < 3; c++ {
		m.Set(0, c, s[c])
		m.Set(1, c, uv[c])
		m.Set(2, c, -f[c])
	}
	se, _ := s.Dot(eye)
	ue, _ := uv.Dot(eye)
	fe, _ := f.Dot(eye)
	m.Set(0, 3, -se)
	m.Set(1, 3, -ue)
	m.Set(2, 3, fe)
	return m, nil
}
