package internal

import "github.com/pkg/errors"

// An obstacle boundary. Points form a closed cycle; no winding order is
// required.
type Polygon struct {
	Points []Coord
}

func (poly Polygon) Validate() error {
	if len(poly.Points) < 3 {
		return errors.Errorf("polygon needs at least 3 points, got %d", len(poly.Points))
	}
	return CheckRange(poly.Points...)
}

// The edges of the polygon, from each vertex to the next, wrapping around.
func (poly Polygon) Segments() []Segment {
	n := len(poly.Points)
	segments := make([]Segment, 0, n)
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, n)]
		segments = append(segments, NewSegment(vertex, nextVertex))
	}
	return segments
}

// Check if any edge of the polygon intersects the segment. Stops at the first
// hit.
func (poly Polygon) IntersectedBy(segment Segment) bool {
	for _, edge := range poly.Segments() {
		if edge.Intersects(segment) {
			return true
		}
	}
	return false
}

// Even-odd point in polygon. Points on the boundary count as inside.
func (poly Polygon) ContainsCoord(c Coord) bool {
	for _, edge := range poly.Segments() {
		if edge.ContainsColinearCoord(c) {
			return true
		}
	}
	return poly.CrossingCount(c)%2 == 1
}

// Number of edges crossed by a ray cast from c toward +x. An edge counts when
// its endpoints straddle the ray's horizontal, with the lower endpoint
// inclusive, so a ray through a vertex is only counted once.
func (poly Polygon) CrossingCount(c Coord) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, n)]
		if (vertex.Y > c.Y) == (nextVertex.Y > c.Y) {
			continue
		}
		// x of the crossing, compared without dividing: the crossing lies right
		// of c when (c.x - vx)*(ny - vy) < (nx - vx)*(c.y - vy), with the
		// inequality flipped when the edge points down.
		lhs := (c.X - vertex.X) * (nextVertex.Y - vertex.Y)
		rhs := (nextVertex.X - vertex.X) * (c.Y - vertex.Y)
		if nextVertex.Y > vertex.Y {
			if lhs < rhs {
				crossingCount++
			}
		} else if lhs > rhs {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Often we want to treat a slice as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func TotalVertexCount(polygons []Polygon) int {
	count := 0
	for _, polygon := range polygons {
		count += len(polygon.Points)
	}
	return count
}
