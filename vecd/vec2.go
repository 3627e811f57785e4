package vecd

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is the scalar precision a Vec2/Vec3 is built over: float32 ("single")
// or float64 ("double", the module's default).
type Real = constraints.Float

// Vec2 is a 2-vector (x, y).
type Vec2[S Real] struct {
	X, Y S
}

// Add returns v+u.
func (v Vec2[S]) Add(u Vec2[S]) Vec2[S] { return Vec2[S]{v.X + u.X, v.Y + u.Y} }

// Sub returns v-u.
func (v Vec2[S]) Sub(u Vec2[S]) Vec2[S] { return Vec2[S]{v.X - u.X, v.Y - u.Y} }

// Scale returns v scaled by the scalar f.
func (v Vec2[S]) Scale(f S) Vec2[S] { return Vec2[S]{v.X * f, v.Y * f} }

// Mul returns the elementwise (Hadamard) product of v and u.
func (v Vec2[S]) Mul(u Vec2[S]) Vec2[S] { return Vec2[S]{v.X * u.X, v.Y * u.Y} }

// Dot returns the inner product of v and u.
func (v Vec2[S]) Dot(u Vec2[S]) S { return v.X*u.X + v.Y*u.Y }

// SquaredNorm returns |v|².
func (v Vec2[S]) SquaredNorm() S { return v.X*v.X + v.Y*v.Y }

// Norm returns |v|.
func (v Vec2[S]) Norm() S { return S(math.Sqrt(float64(v.SquaredNorm()))) }

// Min returns the componentwise minimum of v and u.
func (v Vec2[S]) Min(u Vec2[S]) Vec2[S] {
	return Vec2[S]{minS(v.X, u.X), minS(v.Y, u.Y)}
}

// Max returns the componentwise maximum of v and u.
func (v Vec2[S]) Max(u Vec2[S]) Vec2[S] {
	return Vec2[S]{maxS(v.X, u.X), maxS(v.Y, u.Y)}
}

// YX returns (v.Y, v.X) — the axis-swap permutation used throughout the
// 2D multipole field and shift polynomials (see the GLOSSARY in spec.md).
func (v Vec2[S]) YX() Vec2[S] { return Vec2[S]{v.Y, v.X} }

// Zero is the zero vector in 2D.
func Zero2[S Real]() Vec2[S] { return Vec2[S]{} }

func minS[S Real](a, b S) S {
	if a < b {
		return a
	}
	return b
}

func maxS[S Real](a, b S) S {
	if a > b {
		return a
	}
	return b
}
