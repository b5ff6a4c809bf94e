package internal

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// A point on the integer grid. Coordinates are never floating point: every
// predicate in this package is computed exactly, and coords are used directly
// as map keys.
type Coord struct {
	X int64
	Y int64
}

// The largest magnitude allowed for either coordinate. Differences of two
// coords then fit in 30 bits, so the cross products used by the predicates
// cannot overflow an int64.
const MaxCoordinate = 1 << 29

func InRange(c Coord) bool {
	return c.X >= -MaxCoordinate && c.X <= MaxCoordinate &&
		c.Y >= -MaxCoordinate && c.Y <= MaxCoordinate
}

// Fails on the first coord that is out of range, naming it by index.
func CheckRange(coords ...Coord) error {
	for i, c := range coords {
		if !InRange(c) {
			return errors.Errorf("point %d %v is out of range", i, c)
		}
	}
	return nil
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Lexicographic order, x first, then y.
func (c Coord) Less(other Coord) bool {
	if c.X == other.X {
		return c.Y < other.Y
	}
	return c.X < other.X
}

type CoordSet map[Coord]struct{}

func NewCoordSet(coords ...Coord) CoordSet {
	set := make(CoordSet, len(coords))
	set.AddAll(coords...)
	return set
}

// Add the coord, reporting whether the set grew.
func (s CoordSet) Add(c Coord) bool {
	if _, ok := s[c]; ok {
		return false
	}
	s[c] = struct{}{}
	return true
}

func (s CoordSet) AddAll(coords ...Coord) bool {
	changed := false
	for _, c := range coords {
		if s.Add(c) {
			changed = true
		}
	}
	return changed
}

// Union the other set into this one, reporting whether the set grew.
func (s CoordSet) Merge(other CoordSet) bool {
	changed := false
	for c := range other {
		if s.Add(c) {
			changed = true
		}
	}
	return changed
}

func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s CoordSet) Len() int {
	return len(s)
}

func (s CoordSet) IsSubsetOf(other CoordSet) bool {
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// The members in lexicographic order. Map iteration order is random, so
// anything that has to be reproducible goes through here.
func (s CoordSet) Sorted() []Coord {
	coords := make([]Coord, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Less(coords[j])
	})
	return coords
}
