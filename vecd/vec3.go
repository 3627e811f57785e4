package vecd

import "math"

// Vec3 is a 3-vector (x, y, z).
type Vec3[S Real] struct {
	X, Y, Z S
}

// Add returns v+u.
func (v Vec3[S]) Add(u Vec3[S]) Vec3[S] { return Vec3[S]{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Sub returns v-u.
func (v Vec3[S]) Sub(u Vec3[S]) Vec3[S] { return Vec3[S]{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

// Scale returns v scaled by the scalar f.
func (v Vec3[S]) Scale(f S) Vec3[S] { return Vec3[S]{v.X * f, v.Y * f, v.Z * f} }

// Mul returns the elementwise (Hadamard) product of v and u.
func (v Vec3[S]) Mul(u Vec3[S]) Vec3[S] { return Vec3[S]{v.X * u.X, v.Y * u.Y, v.Z * u.Z} }

// Dot returns the inner product of v and u.
func (v Vec3[S]) Dot(u Vec3[S]) S { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// SquaredNorm returns |v|².
func (v Vec3[S]) SquaredNorm() S { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Norm returns |v|.
func (v Vec3[S]) Norm() S { return S(math.Sqrt(float64(v.SquaredNorm()))) }

// Min returns the componentwise minimum of v and u.
func (v Vec3[S]) Min(u Vec3[S]) Vec3[S] {
	return Vec3[S]{minS(v.X, u.X), minS(v.Y, u.Y), minS(v.Z, u.Z)}
}

// Max returns the componentwise maximum of v and u.
func (v Vec3[S]) Max(u Vec3[S]) Vec3[S] {
	return Vec3[S]{maxS(v.X, u.X), maxS(v.Y, u.Y), maxS(v.Z, u.Z)}
}

// YZX returns (v.Y, v.Z, v.X), a cyclic permutation of the components.
func (v Vec3[S]) YZX() Vec3[S] { return Vec3[S]{v.Y, v.Z, v.X} }

// ZXY returns (v.Z, v.X, v.Y), the other cyclic permutation of the
// components.
func (v Vec3[S]) ZXY() Vec3[S] { return Vec3[S]{v.Z, v.X, v.Y} }

// Zero3 is the zero vector in 3D.
func Zero3[S Real]() Vec3[S] { return Vec3[S]{} }
