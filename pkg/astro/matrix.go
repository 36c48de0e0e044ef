package astro

// Vector is a rectangular coordinate triple.
type Vector struct {
	X, Y, Z float64
}

// Matrix is a 3x3 rotation matrix stored in row-major order.
type Matrix struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Transpose returns the transpose of m. For a rotation matrix the transpose
// is its inverse, so transposing a precession matrix reverses the transform.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	}
}

// Multiply returns the matrix product m * n. Applying the result to a vector
// is equivalent to applying n first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		m.M00*n.M00 + m.M01*n.M10 + m.M02*n.M20,
		m.M00*n.M01 + m.M01*n.M11 + m.M02*n.M21,
		m.M00*n.M02 + m.M01*n.M12 + m.M02*n.M22,

		m.M10*n.M00 + m.M11*n.M10 + m.M12*n.M20,
		m.M10*n.M01 + m.M11*n.M11 + m.M12*n.M21,
		m.M10*n.M02 + m.M11*n.M12 + m.M12*n.M22,

		m.M20*n.M00 + m.M21*n.M10 + m.M22*n.M20,
		m.M20*n.M01 + m.M21*n.M11 + m.M22*n.M21,
		m.M20*n.M02 + m.M21*n.M12 + m.M22*n.M22,
	}
}

// Transform returns the vector m * v.
func (m Matrix) Transform(v Vector) Vector {
	return Vector{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}
