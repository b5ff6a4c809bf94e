package serial

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/hullroute/internal"
	"github.com/pkg/errors"
)

// Read a route from an SVG drawing. This is not a full SVG reader: transforms
// and styles are ignored, and only two kinds of element matter.
//
// Every <polygon> is an obstacle. The first <polyline> is the route: its first
// point is the start, its last point is the end, and anything between is a
// waypoint.
func decodeSVG(r io.Reader) (internal.Input, error) {
	var input internal.Input
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return input, errors.Wrap(err, "decoding svg")
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		return input, errors.New("svg has no polyline for the route")
	}
	route, err := parseSVGPoints(polylines[0].Attributes["points"])
	if err != nil {
		return input, errors.Wrap(err, "route polyline")
	}
	if len(route) < 2 {
		return input, errors.Errorf("route polyline needs at least 2 points, got %d", len(route))
	}
	input.Start = route[0]
	input.End = route[len(route)-1]
	input.Route = route[1 : len(route)-1]

	for i, polygonEl := range rootEl.FindAll("polygon") {
		points, err := parseSVGPoints(polygonEl.Attributes["points"])
		if err != nil {
			return input, errors.Wrapf(err, "polygon %d", i)
		}
		input.Polygons = append(input.Polygons, internal.Polygon{Points: points})
	}
	return input, input.Validate()
}

// Parse an SVG points attribute. Coordinates may be separated by commas,
// whitespace, or both: "1,2 3,4", "1 2 3 4" and "1, 2, 3, 4" are equivalent.
func parseSVGPoints(attribute string) ([]internal.Coord, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attribute)
	}

	var coords []internal.Coord
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		c, err := quantize(inputPoint{X: x, Y: y})
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}
