package internal

import (
	"fmt"
	"sort"
)

// A line segment between two coords. Segments are undirected: the
// lexicographically smaller endpoint is always stored in A, so a segment and
// its reverse are the same value and deduplicate in a SegmentSet.
//
// Always construct with NewSegment.
type Segment struct {
	A, B Coord
}

func NewSegment(a, b Coord) Segment {
	if b.Less(a) {
		a, b = b, a
	}
	return Segment{a, b}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.A, s.B)
}

func (s Segment) HasEndpoint(c Coord) bool {
	return s.A == c || s.B == c
}

// Check if a coord lies on the segment. Returns false for any coord that is
// not colinear with the segment.
func (s Segment) ContainsColinearCoord(c Coord) bool {
	if !OrientationOf(s.A, s.B, c).IsColinear() {
		return false
	}
	return c.X <= max(s.A.X, s.B.X) && c.X >= min(s.A.X, s.B.X) &&
		c.Y <= max(s.A.Y, s.B.Y) && c.Y >= min(s.A.Y, s.B.Y)
}

// Check if two segments cross or touch.
//
// Segments that share an endpoint never intersect. Adjacent polygon edges
// always share a vertex, and a hull edge running along a polygon corner must
// not count as hitting that polygon.
func (s Segment) Intersects(other Segment) bool {
	if s.HasEndpoint(other.A) || s.HasEndpoint(other.B) {
		return false
	}

	o1 := OrientationOf(s.A, s.B, other.A)
	o2 := OrientationOf(s.A, s.B, other.B)
	o3 := OrientationOf(other.A, other.B, s.A)
	o4 := OrientationOf(other.A, other.B, s.B)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Colinear touching cases
	if o1.IsColinear() && s.ContainsColinearCoord(other.A) {
		return true
	}
	if o2.IsColinear() && s.ContainsColinearCoord(other.B) {
		return true
	}
	if o3.IsColinear() && other.ContainsColinearCoord(s.A) {
		return true
	}
	if o4.IsColinear() && other.ContainsColinearCoord(s.B) {
		return true
	}
	return false
}

// A value proportional to the distance from c to the line through the
// segment: twice the area of the triangle A, B, c. It is only meaningful for
// comparing coords against the same segment.
func (s Segment) CoordDistance(c Coord) int64 {
	d := (c.Y-s.A.Y)*(s.B.X-s.A.X) - (s.B.Y-s.A.Y)*(c.X-s.A.X)
	if d < 0 {
		return -d
	}
	return d
}

// Indexes of the polygons whose boundary the segment intersects.
func (s Segment) IntersectingPolygons(polygons []Polygon) []int {
	var result []int
	for i, polygon := range polygons {
		if polygon.IntersectedBy(s) {
			result = append(result, i)
		}
	}
	return result
}

// Every vertex of every polygon whose boundary the segment intersects.
func (s Segment) IntersectingPolygonCoords(polygons []Polygon) CoordSet {
	coords := make(CoordSet)
	for _, polygon := range polygons {
		if polygon.IntersectedBy(s) {
			coords.AddAll(polygon.Points...)
		}
	}
	return coords
}

type SegmentSet map[Segment]struct{}

func NewSegmentSet(segments ...Segment) SegmentSet {
	set := make(SegmentSet, len(segments))
	for _, segment := range segments {
		set.Add(segment)
	}
	return set
}

// Add the segment, reporting whether the set grew.
func (s SegmentSet) Add(segment Segment) bool {
	if _, ok := s[segment]; ok {
		return false
	}
	s[segment] = struct{}{}
	return true
}

func (s SegmentSet) Merge(other SegmentSet) {
	for segment := range other {
		s[segment] = struct{}{}
	}
}

func (s SegmentSet) Has(segment Segment) bool {
	_, ok := s[segment]
	return ok
}

func (s SegmentSet) Equals(other SegmentSet) bool {
	if len(s) != len(other) {
		return false
	}
	for segment := range s {
		if !other.Has(segment) {
			return false
		}
	}
	return true
}

// The segments ordered by A, then B.
func (s SegmentSet) Sorted() []Segment {
	segments := make([]Segment, 0, len(s))
	for segment := range s {
		segments = append(segments, segment)
	}
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].A == segments[j].A {
			return segments[i].B.Less(segments[j].B)
		}
		return segments[i].A.Less(segments[j].A)
	})
	return segments
}
