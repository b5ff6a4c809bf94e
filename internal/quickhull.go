package internal

import "github.com/pkg/errors"

// One pending partition step: find the hull vertices strictly on one side of
// the baseline from P1 to P2. Points are indexes into the hull's arena, and
// Members holds only the points on that side.
type hullTask struct {
	P1, P2  int
	Members []int
}

type hullTaskStack []hullTask

func (s *hullTaskStack) Push(task hullTask) {
	*s = append(*s, task)
}

func (s *hullTaskStack) Pop() hullTask {
	task := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return task
}

func (s *hullTaskStack) Empty() bool {
	return len(*s) == 0
}

// Compute the convex hull of a point set as an unordered set of edges.
//
// The points are copied once into a sorted arena, and all partitioning works
// on index lists into it. The recursion of the textbook algorithm is replaced
// with an explicit stack, so dense near-colinear input cannot overflow the
// goroutine stack.
//
// The result is deterministic: the farthest point from a baseline is chosen
// by CoordDistance, with ties going to the lexicographically smallest point.
// Two distinct points yield the single edge between them. Points colinear
// with a hull edge are not hull vertices.
func QuickHull(points CoordSet) (SegmentSet, error) {
	if points.Len() < 2 {
		return nil, errors.Wrapf(ErrInsufficientPoints, "quickhull of %d points", points.Len())
	}

	// Sorted by x then y, so the first point is the leftmost (lowest on ties)
	// and the last point is the rightmost (highest on ties).
	arena := points.Sorted()
	left, right := 0, len(arena)-1
	if arena[left] == arena[right] {
		return nil, errors.Wrapf(ErrGeometryDegenerate, "extreme points coincide at %v", arena[left])
	}

	var clockwise, counterclockwise []int
	for i, c := range arena {
		switch OrientationOf(arena[left], arena[right], c) {
		case Clockwise:
			clockwise = append(clockwise, i)
		case Counterclockwise:
			counterclockwise = append(counterclockwise, i)
		}
	}

	hull := make(SegmentSet)
	stack := hullTaskStack{
		{P1: left, P2: right, Members: clockwise},
		{P1: left, P2: right, Members: counterclockwise},
	}
	for !stack.Empty() {
		task := stack.Pop()
		p1, p2 := arena[task.P1], arena[task.P2]
		baseline := NewSegment(p1, p2)

		// Members are in ascending arena order, so a strict comparison leaves
		// ties with the smallest point.
		divider := -1
		var maxDistance int64
		for _, i := range task.Members {
			distance := baseline.CoordDistance(arena[i])
			if distance > maxDistance {
				divider = i
				maxDistance = distance
			}
		}

		if divider < 0 {
			hull.Add(baseline)
			continue
		}

		d := arena[divider]
		turn := OrientationOf(d, p1, p2)
		if turn.IsColinear() {
			fatalf("quickhull divider %v is colinear with baseline %v", d, baseline)
		}
		// Beyond the line d-p1 means the opposite side from p2, and likewise for
		// d-p2. Points inside the triangle p1, p2, d are dropped.
		outsideP1 := turn.Invert()
		outsideP2 := OrientationOf(d, p2, p1).Invert()

		var beyondP1, beyondP2 []int
		for _, i := range task.Members {
			if i == divider {
				continue
			}
			c := arena[i]
			if OrientationOf(d, p1, c) == outsideP1 {
				beyondP1 = append(beyondP1, i)
			} else if OrientationOf(d, p2, c) == outsideP2 {
				beyondP2 = append(beyondP2, i)
			}
		}

		stack.Push(hullTask{P1: divider, P2: task.P1, Members: beyondP1})
		stack.Push(hullTask{P1: divider, P2: task.P2, Members: beyondP2})
	}

	return hull, nil
}
