package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/hullroute/internal/dbg"
)

// The boundary computed for one leg of a path. It is built once by ExpandLeg
// and only read through its methods afterwards.
type Hull struct {
	segments SegmentSet
}

func (h Hull) Has(segment Segment) bool {
	return h.segments.Has(segment)
}

func (h Hull) Len() int {
	return len(h.segments)
}

// The edges in a stable order.
func (h Hull) Edges() []Segment {
	return h.segments.Sorted()
}

// Every endpoint of every edge, in lexicographic order.
func (h Hull) Vertices() []Coord {
	vertices := make(CoordSet)
	for segment := range h.segments {
		vertices.AddAll(segment.A, segment.B)
	}
	return vertices.Sorted()
}

func (h Hull) String() string {
	var parts []string
	for _, segment := range h.Edges() {
		parts = append(parts, segment.String())
	}
	return fmt.Sprintf("Hull %s {%s}", h.DbgName(), strings.Join(parts, ", "))
}

// A readable name for the hull, coloured by shape: a bare direct segment is
// green, a detour is cyan, and an empty hull (which ExpandLeg never returns)
// is red.
func (h Hull) DbgName() string {
	name := dbg.Name(fmt.Sprint(h.Edges()))
	switch {
	case h.Len() == 0:
		return aurora.Red(name).String()
	case h.Len() == 1:
		return aurora.Green(name).String()
	default:
		return aurora.Cyan(name).String()
	}
}
