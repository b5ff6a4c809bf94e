package internal

import (
	"embed"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs obstacle lists. This is not a
// full (or even correct) svg parser. Every <polygon> element becomes an
// obstacle, in document order. Coordinates must be integers. If anything goes
// wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var polygons []Polygon
	for _, polygonEl := range polygonEls {
		var points []Coord
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseInt(pointStrings[0], 10, 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
			}
			y, err := strconv.ParseInt(pointStrings[1], 10, 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
			}
			points = append(points, Coord{x, y})
		}
		polygons = append(polygons, Polygon{Points: points})
	}
	return polygons
}

// Some ad hoc fixtures

// The obstacle from the box fixture, written out.
func Box() Polygon {
	return Polygon{[]Coord{{4, -2}, {6, -2}, {6, 2}, {4, 2}}}
}

// n distinct random coords in [-size, size]², from a fixed seed.
func RandomCoords(seed int64, n int, size int64) CoordSet {
	rng := rand.New(rand.NewSource(seed))
	coords := make(CoordSet)
	for coords.Len() < n {
		coords.Add(Coord{rng.Int63n(2*size+1) - size, rng.Int63n(2*size+1) - size})
	}
	return coords
}
