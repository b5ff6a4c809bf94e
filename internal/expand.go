package internal

import (
	"sort"

	"github.com/pkg/errors"
)

// What one pass of a leg's fixed point saw. Passed to a LegTracer.
type LegPass struct {
	Leg  int
	Pass int
	// Polygons whose boundary the direct segment or an edge of the rebuilt
	// hull intersects, as indexes into the obstacle list.
	Polygons []int
	// Polygon vertices found this pass, against the hull from the pass before.
	Discovered CoordSet
	// Size of the candidate set after this pass.
	Candidates int
	// False on the final pass, when nothing new was found.
	Grew bool
	// Number of hull edges after this pass.
	HullSize int
}

type LegTracer func(LegPass)

// Grows the hull of a leg until it stops running into new obstacles.
//
// Each pass collects the vertices of every polygon hit by the direct segment
// or by an edge of the current hull, adds them (and the leg's endpoints) to
// the candidate set, and rebuilds the hull over the candidates. Routing around
// one obstacle can bring the hull into contact with another, so this repeats
// until a pass adds nothing. Candidates only grow and are bounded by the
// number of polygon vertices plus the two endpoints, so the loop terminates.
type LegExpander struct {
	Polygons []Polygon
	// Optional. Called after every pass.
	Tracer LegTracer
	// The most passes allowed before failing with ErrIterationLimitExceeded.
	// Zero means the natural bound, total polygon vertices + 2, which a
	// consistent set of predicates never reaches.
	MaxPasses int
}

// Compute the hull of a single leg with no tracing.
func ExpandLeg(origin, destination Coord, polygons []Polygon) (Hull, error) {
	expander := LegExpander{Polygons: polygons}
	return expander.Expand(0, origin, destination)
}

func (e *LegExpander) passLimit() int {
	if e.MaxPasses > 0 {
		return e.MaxPasses
	}
	return TotalVertexCount(e.Polygons) + 2
}

// Compute the hull for the leg from origin to destination. The leg index is
// only used for tracing and error context.
func (e *LegExpander) Expand(leg int, origin, destination Coord) (Hull, error) {
	direct := NewSegment(origin, destination)
	if err := CheckRange(origin, destination); err != nil {
		return Hull{}, errors.Wrapf(err, "leg %v", direct)
	}
	for i, polygon := range e.Polygons {
		if err := CheckRange(polygon.Points...); err != nil {
			return Hull{}, errors.Wrapf(err, "polygon %d", i)
		}
	}
	candidates := make(CoordSet)
	hull := make(SegmentSet)
	limit := e.passLimit()

	for pass := 1; ; pass++ {
		if pass > limit {
			return Hull{}, errors.Wrapf(ErrIterationLimitExceeded, "leg %v did not settle within %d passes", direct, limit)
		}

		discovered := direct.IntersectingPolygonCoords(e.Polygons)
		for segment := range hull {
			discovered.Merge(segment.IntersectingPolygonCoords(e.Polygons))
		}

		grew := candidates.Merge(discovered)
		if candidates.AddAll(origin, destination) {
			grew = true
		}

		if grew {
			next, err := QuickHull(candidates)
			if err != nil {
				if errors.Is(err, ErrGeometryDegenerate) {
					return Hull{}, errors.Wrapf(err, "leg %v", direct)
				}
				return Hull{}, withKind(ErrGeometryDegenerate, errors.Wrapf(err, "leg %v", direct))
			}
			hull.Merge(next)
		}

		if e.Tracer != nil {
			e.Tracer(LegPass{
				Leg:        leg,
				Pass:       pass,
				Polygons:   e.hitPolygons(direct, hull),
				Discovered: discovered,
				Candidates: candidates.Len(),
				Grew:       grew,
				HullSize:   len(hull),
			})
		}

		if !grew {
			break
		}
	}

	return Hull{segments: hull}, nil
}

func (e *LegExpander) hitPolygons(direct Segment, hull SegmentSet) []int {
	hit := make(map[int]struct{})
	for _, i := range direct.IntersectingPolygons(e.Polygons) {
		hit[i] = struct{}{}
	}
	for segment := range hull {
		for _, i := range segment.IntersectingPolygons(e.Polygons) {
			hit[i] = struct{}{}
		}
	}
	result := make([]int, 0, len(hit))
	for i := range hit {
		result = append(result, i)
	}
	sort.Ints(result)
	return result
}
