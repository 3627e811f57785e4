package simtype

import (
	"fmt"
	"strings"

	"github.com/FreddieWitherden/teatree/moment"
)

// Boundary is the tag's <B> field.
type Boundary string

const (
	Open       Boundary = "O"
	Reflective Boundary = "R"
)

// Tag is the parsed form of spec.md §6's simulation-type identifier:
// <B><D><P><MAC><EF><PSH>.
type Tag struct {
	Boundary Boundary
	Dim      int // 2 or 3
	Order    moment.Order
	MAC      string // "O" (opening-angle) or "M" (min-distance)
	EField   string // "P" (Plummer); the only value spec.md defines
	Pusher   string // "C21", "C43", "C67", or "V"
}

// SimulationTypeUnknownError is raised when a tag string does not match any
// field the build recognizes (spec.md §7's SimulationTypeUnknown).
type SimulationTypeUnknownError struct {
	Tag string
}

func (e *SimulationTypeUnknownError) Error() string {
	return fmt.Sprintf("simtype: simulation type unknown: %q", e.Tag)
}

var orderChars = map[byte]moment.Order{
	'M': moment.Monopole,
	'D': moment.Dipole,
	'Q': moment.Quadrupole,
	'O': moment.Octupole,
}

var orderChar = map[moment.Order]byte{
	moment.Monopole:   'M',
	moment.Dipole:     'D',
	moment.Quadrupole: 'Q',
	moment.Octupole:   'O',
}

var pushers = map[string]bool{"C21": true, "C43": true, "C67": true, "V": true}

// Parse decodes a tag string such as "O2QOPC21" per spec.md §6. Any
// unrecognized field yields a *SimulationTypeUnknownError.
func Parse(s string) (Tag, error) {
	fail := func() (Tag, error) { return Tag{}, &SimulationTypeUnknownError{Tag: s} }

	if len(s) < 5 {
		return fail()
	}

	b := Boundary(s[0:1])
	if b != Open && b != Reflective {
		return fail()
	}

	dim := 0
	switch s[1] {
	case '2':
		dim = 2
	case '3':
		dim = 3
	default:
		return fail()
	}

	order, ok := orderChars[s[2]]
	if !ok {
		return fail()
	}

	mac := s[3:4]
	if mac != "O" && mac != "M" {
		return fail()
	}

	ef := s[4:5]
	if ef != "P" {
		return fail()
	}

	psh := strings.ToUpper(s[5:])
	if !pushers[psh] {
		return fail()
	}

	return Tag{Boundary: b, Dim: dim, Order: order, MAC: mac, EField: ef, Pusher: psh}, nil
}

// String re-encodes the tag in spec.md §6's canonical form.
func (t Tag) String() string {
	return fmt.Sprintf("%s%d%c%s%s%s", t.Boundary, t.Dim, orderChar[t.Order], t.MAC, t.EField, t.Pusher)
}

// CompositionOrder maps the tag's <PSH> field to the integrator order it
// requests: "V" and "C21" both request the order-2 composition (a
// single-substep symmetric composition is exactly the position-Verlet base
// map).
func (t Tag) CompositionOrder() (int, error) {
	switch t.Pusher {
	case "V", "C21":
		return 2, nil
	case "C43":
		return 4, nil
	case "C67":
		return 6, nil
	default:
		return 0, &SimulationTypeUnknownError{Tag: t.Pusher}
	}
}
