package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is a valid convex hull of points. The rules are:
// 1. Every hull vertex is one of the points.
// 2. For every edge, no two points lie strictly on opposite sides of it.
// 3. Unless the points are all colinear, every hull vertex has exactly two
//    edges, and walking them visits every vertex once.
// 4. Every point is on or inside the polygon the walk traces out.
func AssertValidHull(t *testing.T, points CoordSet, hull SegmentSet) {
	t.Helper()
	require.NotEmpty(t, hull, "hull has no edges")

	degree := make(map[Coord][]Coord)
	for edge := range hull {
		require.True(t, points.Has(edge.A), "hull vertex %v is not an input point", edge.A)
		require.True(t, points.Has(edge.B), "hull vertex %v is not an input point", edge.B)
		degree[edge.A] = append(degree[edge.A], edge.B)
		degree[edge.B] = append(degree[edge.B], edge.A)

		var sides [3]int
		for p := range points {
			sides[OrientationOf(edge.A, edge.B, p)]++
		}
		require.False(t, sides[Clockwise] > 0 && sides[Counterclockwise] > 0, "points on both sides of hull edge %v", edge)
	}

	if len(hull) == 1 {
		// Only possible when every point is colinear
		for edge := range hull {
			for p := range points {
				require.True(t, edge.ContainsColinearCoord(p), "point %v is off the only hull edge %v", p, edge)
			}
		}
		return
	}

	for vertex, neighbors := range degree {
		require.Len(t, neighbors, 2, "hull vertex %v does not have exactly two edges", vertex)
	}

	// Walk the cycle
	start := hull.Sorted()[0].A
	cycle := []Coord{start}
	previous, current := start, degree[start][0]
	for current != start {
		cycle = append(cycle, current)
		require.LessOrEqual(t, len(cycle), len(degree), "hull edges do not form a single cycle")
		next := degree[current][0]
		if next == previous {
			next = degree[current][1]
		}
		previous, current = current, next
	}
	require.Len(t, cycle, len(degree), "hull edges do not form a single cycle")

	polygon := Polygon{Points: cycle}
	for p := range points {
		require.True(t, polygon.ContainsCoord(p), "point %v is outside the hull", p)
	}
}
