package internal

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// A route to plan: from Start through every Route waypoint in order to End,
// avoiding Polygons.
type Input struct {
	Start    Coord
	End      Coord
	Route    []Coord
	Polygons []Polygon
}

// The waypoints in travel order: start, route, end.
func (in Input) Waypoints() []Coord {
	waypoints := make([]Coord, 0, len(in.Route)+2)
	waypoints = append(waypoints, in.Start)
	waypoints = append(waypoints, in.Route...)
	waypoints = append(waypoints, in.End)
	return waypoints
}

func (in Input) Validate() error {
	for i, waypoint := range in.Waypoints() {
		if !InRange(waypoint) {
			return errors.Errorf("waypoint %d %v is out of range", i, waypoint)
		}
	}
	for i, polygon := range in.Polygons {
		if err := polygon.Validate(); err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
	}
	return nil
}

// Waypoints that lie inside or on an obstacle, mapped to the index of the
// first such obstacle. A hull is still computed for these, but it cannot
// clear the obstacle the waypoint sits in.
func (in Input) BlockedWaypoints() map[int]int {
	blocked := make(map[int]int)
	for i, waypoint := range in.Waypoints() {
		for j, polygon := range in.Polygons {
			if polygon.ContainsCoord(waypoint) {
				blocked[i] = j
				break
			}
		}
	}
	return blocked
}

// A planned route: the input it came from, and one hull per leg in leg order.
type Output struct {
	Input Input
	Hulls []Hull
}

// Plans every leg of a route.
//
// Legs are independent, so they run on a pool of Workers goroutines. The
// obstacle list is shared read-only between them. Hulls come back in leg
// order whatever order the legs finish in.
type Planner struct {
	// Maximum legs computed at once. Zero or less means one.
	Workers int
	// Optional. Called after every pass of every leg, possibly from several
	// goroutines at once.
	Tracer LegTracer
	// Passed on to each LegExpander.
	MaxPasses int
}

// Compute the hull of every leg. If any leg fails, no hulls are returned and
// the error is a *LegError for the lowest-numbered failing leg.
func (p *Planner) Plan(input Input) (*Output, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	waypoints := input.Waypoints()
	legCount := len(waypoints) - 1
	hulls := make([]Hull, legCount)
	legErrs := make([]error, legCount)

	expander := &LegExpander{
		Polygons:  input.Polygons,
		Tracer:    p.Tracer,
		MaxPasses: p.MaxPasses,
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	var group errgroup.Group
	group.SetLimit(workers)
	for leg := 0; leg < legCount; leg++ {
		leg := leg
		group.Go(func() (err error) {
			defer func() {
				if recoveredErr := HandlePlanPanicRecover(recover()); recoveredErr != nil {
					err = recoveredErr
				}
				if err != nil {
					legErrs[leg] = err
				}
			}()
			hulls[leg], err = expander.Expand(leg, waypoints[leg], waypoints[leg+1])
			return err
		})
	}
	// Every leg's error is kept in legErrs, so the group's own result (the
	// first error by time) is not needed.
	_ = group.Wait()

	for leg, err := range legErrs {
		if err != nil {
			return nil, &LegError{Leg: leg, Err: err}
		}
	}
	return &Output{Input: input, Hulls: hulls}, nil
}

// Plan with a single worker and no tracing.
func PlanPath(input Input) (*Output, error) {
	planner := Planner{Workers: 1}
	return planner.Plan(input)
}
