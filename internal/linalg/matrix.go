package linalg

import "math"

// eqTolerance is the absolute per-entry tolerance for Eq. Exact float
// comparison is never used for matrices.
const eqTolerance = 1e-4

// Matrix is a dense row-major matrix with runtime-checked dimensions.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix returns a zero matrix with the given dimensions.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a matrix from row slices. All rows must share a length.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, ErrInvalidSize
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return Matrix{}, ErrInvalidSize
		}
		copy(m.data[r*cols:(r+1)*cols], row)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the entry at row r, column c.
func (m Matrix) At(r, c int) float64 { return m.data[r*m.cols+c] }

// Set assigns the entry at row r, column c.
func (m Matrix) Set(r, c int, v float64) { m.data[r*m.cols+c] = v }

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	t := NewMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			t.data[c*t.cols+r] = m.data[r*m.cols+c]
		}
	}
	return t
}

// Add returns m + o.
func (m Matrix) Add(o Matrix) (Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Matrix{}, ErrInvalidSize
	}
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] + o.data[i]
	}
	return out, nil
}

// ScalarMult returns m scaled by s.
func (m Matrix) ScalarMult(s float64) Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] * s
	}
	return out
}

// Row returns row r as a vector.
func (m Matrix) Row(r int) Vector {
	out := make(Vector, m.cols)
	copy(out, m.data[r*m.cols:(r+1)*m.cols])
	return out
}

// Col returns column c as a vector.
func (m Matrix) Col(c int) Vector {
	out := make(Vector, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[r*m.cols+c]
	}
	return out
}

// AugmentRight returns [m | o], the horizontal concatenation used by
// Inverse. Row counts must match.
func (m Matrix) AugmentRight(o Matrix) (Matrix, error) {
	if m.rows != o.rows {
		return Matrix{}, ErrInvalidSize
	}
	out := NewMatrix(m.rows, m.cols+o.cols)
	for r := 0; r < m.rows; r++ {
		copy(out.data[r*out.cols:], m.data[r*m.cols:(r+1)*m.cols])
		copy(out.data[r*out.cols+m.cols:], o.data[r*o.cols:(r+1)*o.cols])
	}
	return out, nil
}

// Submatrix returns the rows×cols window starting at (rowOff, colOff).
func (m Matrix) Submatrix(rowOff, colOff, rows, cols int) (Matrix, error) {
	if rowOff < 0 || colOff < 0 || rows <= 0 || cols <= 0 ||
		rowOff+rows > m.rows || colOff+cols > m.cols {
		return Matrix{}, ErrInvalidSize
	}
	out := NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		src := (rowOff+r)*m.cols + colOff
		copy(out.data[r*cols:(r+1)*cols], m.data[src:src+cols])
	}
	return out, nil
}

// Mult returns the matrix product m × o.
func (m Matrix) Mult(o Matrix) (Matrix, error) {
	if m.cols != o.rows {
		return Matrix{}, ErrInvalidSize
	}
	out := NewMatrix(m.rows, o.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < o.cols; c++ {
			sum := 0.0
			for k := 0; k < m.cols; k++ {
				sum += m.data[r*m.cols+k] * o.data[k*o.cols+c]
			}
			out.data[r*out.cols+c] = sum
		}
	}
	return out, nil
}

// MultVec returns m × v for a column vector v.
func (m Matrix) MultVec(v Vector) (Vector, error) {
	if m.cols != len(v) {
		return nil, ErrInvalidSize
	}
	out := make(Vector, m.rows)
	for r := 0; r < m.rows; r++ {
		sum := 0.0
		for c := 0; c < m.cols; c++ {
			sum += m.data[r*m.cols+c] * v[c]
		}
		out[r] = sum
	}
	return out, nil
}

// Determinant computes the determinant by cofactor expansion along the
// first row, with 1×1 and 2×2 base cases.
func (m Matrix) Determinant() (float64, error) {
	if m.rows != m.cols {
		return 0, ErrNotSquare
	}
	return m.det(), nil
}

func (m Matrix) det() float64 {
	n := m.rows
	switch n {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	sum := 0.0
	sign := 1.0
	for c := 0; c < n; c++ {
		sum += sign * m.data[c] * m.minor(0, c).det()
		sign = -sign
	}
	return sum
}

// minor returns m with row r and column c removed.
func (m Matrix) minor(r, c int) Matrix {
	out := NewMatrix(m.rows-1, m.cols-1)
	i := 0
	for row := 0; row < m.rows; row++ {
		if row == r {
			continue
		}
		for col := 0; col < m.cols; col++ {
			if col == c {
				continue
			}
			out.data[i] = m.data[row*m.cols+col]
			i++
		}
	}
	return out
}

// Inverse computes the inverse via Gauss-Jordan elimination on the
// matrix augmented with the identity. Singular matrices (determinant
// exactly zero) return ErrNoInverse.
func (m Matrix) Inverse() (Matrix, error) {
	if m.rows != m.cols {
		return Matrix{}, ErrNotSquare
	}
	if m.det() == 0 {
		return Matrix{}, ErrNoInverse
	}

	n := m.rows
	aug, err := m.AugmentRight(Identity(n))
	if err != nil {
		return Matrix{}, err
	}

	for p := 0; p < n; p++ {
		// Normalize the pivot row to a unit pivot.
		pivot := aug.At(p, p)
		if pivot != 0 {
			for c := 0; c < aug.cols; c++ {
				aug.Set(p, c, aug.At(p, c)/pivot)
			}
		}
		// Zero this column in every other row.
		for r := 0; r < n; r++ {
			if r == p {
				continue
			}
			factor := aug.At(r, p)
			if factor == 0 {
				continue
			}
			for c := 0; c < aug.cols; c++ {
				aug.Set(r, c, aug.At(r, c)-factor*aug.At(p, c))
			}
		}
	}

	return aug.Submatrix(0, n, n, n)
}

// Eq reports per-entry equality within an absolute tolerance of 1e-4.
func (m Matrix) Eq(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if math.Abs(m.data[i]-o.data[i]) > eqTolerance {
			return false
		}
	}
	return true
}
