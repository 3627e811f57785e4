package mac

import "github.com/FreddieWitherden/teatree/vecd"

// Box3 is the 3D counterpart of Box2.
type Box3[S vecd.Real] struct {
	R        vecd.Vec3[S]
	Min, Max vecd.Vec3[S]
	Size2    S
}

// Predicate3 is the 3D counterpart of Predicate2.
type Predicate3[S vecd.Real] interface {
	Accept(b Box3[S]) bool
}

// OpeningAngle3 is the 3D counterpart of OpeningAngle2.
type OpeningAngle3[S vecd.Real] struct {
	R      vecd.Vec3[S]
	Theta2 S
}

// NewOpeningAngle3 builds an OpeningAngle3 predicate for target r and
// opening angle theta.
func NewOpeningAngle3[S vecd.Real](r vecd.Vec3[S], theta S) OpeningAngle3[S] {
	return OpeningAngle3[S]{R: r, Theta2: theta * theta}
}

// Abbr is the tag character spec.md §6 reserves for this predicate.
func (OpeningAngle3[S]) Abbr() string { return "O" }

// Accept implements Predicate3.
func (m OpeningAngle3[S]) Accept(b Box3[S]) bool {
	d2 := m.R.Sub(b.R).SquaredNorm()
	return b.Size2 < d2*m.Theta2
}

// MinDistance3 is the 3D counterpart of MinDistance2.
type MinDistance3[S vecd.Real] struct {
	R      vecd.Vec3[S]
	Theta2 S
}

// NewMinDistance3 builds a MinDistance3 predicate for target r and opening
// angle theta.
func NewMinDistance3[S vecd.Real](r vecd.Vec3[S], theta S) MinDistance3[S] {
	return MinDistance3[S]{R: r, Theta2: theta * theta}
}

// Abbr is the tag character spec.md §6 reserves for this predicate.
func (MinDistance3[S]) Abbr() string { return "M" }

// Accept implements Predicate3.
func (m MinDistance3[S]) Accept(b Box3[S]) bool {
	u := b.Min.Min(m.R)
	v := b.Max.Max(m.R)
	d2 := b.Min.Sub(u).SquaredNorm() + v.Sub(b.Max).SquaredNorm()
	return b.Size2 < d2*m.Theta2
}
