package mac

import "github.com/FreddieWitherden/teatree/vecd"

// Box2 is the aggregated geometry of a 2D tree branch that a Predicate2
// needs in order to decide acceptance: its |charge|-weighted center, its
// bounding box, and size² (spec.md §4.G).
type Box2[S vecd.Real] struct {
	R        vecd.Vec2[S]
	Min, Max vecd.Vec2[S]
	Size2    S
}

// Predicate2 decides whether a 2D branch may be approximated by its
// multipole expansion when evaluating the field at a fixed target r.
type Predicate2[S vecd.Real] interface {
	Accept(b Box2[S]) bool
}

// OpeningAngle2 is the Barnes-Hut opening-angle MAC (spec.md §4.H): a
// branch is accepted iff size² < d²·θ², where d is the distance from the
// target to the branch's center.
type OpeningAngle2[S vecd.Real] struct {
	R      vecd.Vec2[S]
	Theta2 S
}

// NewOpeningAngle2 builds an OpeningAngle2 predicate for target r and
// opening angle theta.
func NewOpeningAngle2[S vecd.Real](r vecd.Vec2[S], theta S) OpeningAngle2[S] {
	return OpeningAngle2[S]{R: r, Theta2: theta * theta}
}

// Abbr is the tag character spec.md §6 reserves for this predicate.
func (OpeningAngle2[S]) Abbr() string { return "O" }

// Accept implements Predicate2.
func (m OpeningAngle2[S]) Accept(b Box2[S]) bool {
	d2 := m.R.Sub(b.R).SquaredNorm()
	return b.Size2 < d2*m.Theta2
}

// MinDistance2 is the Salmon-Warren minimum-distance MAC (spec.md §4.H): a
// branch is accepted iff size² < d²·θ², where d is the closest distance
// from the target to the branch's bounding box (zero if the target lies
// inside the box).
type MinDistance2[S vecd.Real] struct {
	R      vecd.Vec2[S]
	Theta2 S
}

// NewMinDistance2 builds a MinDistance2 predicate for target r and opening
// angle theta.
func NewMinDistance2[S vecd.Real](r vecd.Vec2[S], theta S) MinDistance2[S] {
	return MinDistance2[S]{R: r, Theta2: theta * theta}
}

// Abbr is the tag character spec.md §6 reserves for this predicate.
func (MinDistance2[S]) Abbr() string { return "M" }

// Accept implements Predicate2.
func (m MinDistance2[S]) Accept(b Box2[S]) bool {
	u := b.Min.Min(m.R)
	v := b.Max.Max(m.R)
	d2 := b.Min.Sub(u).SquaredNorm() + v.Sub(b.Max).SquaredNorm()
	return b.Size2 < d2*m.Theta2
}
