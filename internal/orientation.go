package internal

// The turn made by an ordered triple of points.
//
// The sign convention is fixed here and nowhere else: with the cross product
// below, a positive value is Clockwise and a negative value is
// Counterclockwise, reading the plane with y pointing up. Anything that needs
// "the other side" must use Invert rather than flipping the sign itself.
type Orientation int

const (
	Colinear Orientation = iota
	Clockwise
	Counterclockwise
)

func OrientationOf(p, q, r Coord) Orientation {
	cross := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case cross > 0:
		return Clockwise
	case cross < 0:
		return Counterclockwise
	default:
		return Colinear
	}
}

func (o Orientation) IsColinear() bool {
	return o == Colinear
}

// Swap Clockwise and Counterclockwise. Colinear is its own inverse.
func (o Orientation) Invert() Orientation {
	switch o {
	case Clockwise:
		return Counterclockwise
	case Counterclockwise:
		return Clockwise
	default:
		return Colinear
	}
}

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case Counterclockwise:
		return "Counterclockwise"
	case Colinear:
		return "Colinear"
	}
	return "Orientation(?)"
}
