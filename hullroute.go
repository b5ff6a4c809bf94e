// Obstacle-aware convex hulls along a route.
//
// Given a start, an end, an ordered list of waypoints between them, and a set
// of polygonal obstacles, this package computes one convex boundary per leg
// of the route that clears every obstacle the leg runs into. Coordinates are
// integers, and every predicate is exact.
package hullroute

import "github.com/osuushi/hullroute/internal"

type Coord = internal.Coord
type Segment = internal.Segment
type Polygon = internal.Polygon
type Hull = internal.Hull
type Input = internal.Input
type Output = internal.Output
type LegError = internal.LegError
type LegPass = internal.LegPass
type LegTracer = internal.LegTracer

const MaxCoordinate = internal.MaxCoordinate

var (
	ErrInsufficientPoints     = internal.ErrInsufficientPoints
	ErrGeometryDegenerate     = internal.ErrGeometryDegenerate
	ErrIterationLimitExceeded = internal.ErrIterationLimitExceeded
)

func NewSegment(a, b Coord) Segment {
	return internal.NewSegment(a, b)
}

// Options for Plan.
type Options struct {
	// Legs computed at once. Zero or less means one.
	Workers int
	// Optional. Called after every pass of every leg, possibly concurrently.
	Tracer LegTracer
}

// Compute the hull of every leg of the input's route.
//
// On failure no hulls are returned. A failing leg is reported as a *LegError
// carrying the leg's index; match the cause with errors.Is against the Err
// values above.
func Plan(input Input, options Options) (result *Output, err error) {
	defer func() {
		recoveredErr := internal.HandlePlanPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	planner := internal.Planner{Workers: options.Workers, Tracer: options.Tracer}
	return planner.Plan(input)
}

// Compute the convex hull of a set of points as an unordered edge list. Every
// coordinate must be within MaxCoordinate.
func ConvexHull(points ...Coord) (result []Segment, err error) {
	defer func() {
		recoveredErr := internal.HandlePlanPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := internal.CheckRange(points...); err != nil {
		return nil, err
	}
	hull, err := internal.QuickHull(internal.NewCoordSet(points...))
	if err != nil {
		return nil, err
	}
	return hull.Sorted(), nil
}
