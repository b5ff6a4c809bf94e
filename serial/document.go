// Reading routes and writing planned hulls.
//
// Inputs are read from TOML, YAML, JSON or SVG. Outputs are written as TOML,
// YAML or JSON. The TOML layout is the canonical one:
//
//	start = { x = 0, y = 0 }
//	end = { x = 10, y = 0 }
//	route = [{ x = 5, y = 5 }]
//
//	[[polygon]]
//	point = [{ x = 4, y = -2 }, { x = 6, y = -2 }, { x = 6, y = 2 }, { x = 4, y = 2 }]
//
// and the other text formats use the same keys. Coordinates may be given as
// reals; they are rounded to the nearest integer on the way in.
package serial

import (
	"math"

	"github.com/osuushi/hullroute/internal"
	"github.com/pkg/errors"
)

// A coordinate as read from a document, before quantization.
type inputPoint struct {
	X float64 `toml:"x" json:"x" yaml:"x"`
	Y float64 `toml:"y" json:"y" yaml:"y"`
}

type inputPolygon struct {
	Points []inputPoint `toml:"point" json:"point" yaml:"point"`
}

type inputDocument struct {
	Start    *inputPoint    `toml:"start" json:"start" yaml:"start"`
	End      *inputPoint    `toml:"end" json:"end" yaml:"end"`
	Route    []inputPoint   `toml:"route" json:"route" yaml:"route"`
	Polygons []inputPolygon `toml:"polygon" json:"polygon" yaml:"polygon"`
}

// Round a real coordinate to the grid.
func quantize(p inputPoint) (internal.Coord, error) {
	for _, v := range []float64{p.X, p.Y} {
		if math.IsNaN(v) || math.Abs(v) > internal.MaxCoordinate {
			return internal.Coord{}, errors.Errorf("coordinate (%v, %v) is out of range", p.X, p.Y)
		}
	}
	return internal.Coord{X: int64(math.Round(p.X)), Y: int64(math.Round(p.Y))}, nil
}

func quantizeAll(points []inputPoint) ([]internal.Coord, error) {
	coords := make([]internal.Coord, 0, len(points))
	for _, p := range points {
		c, err := quantize(p)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

func (doc *inputDocument) toInput() (internal.Input, error) {
	var input internal.Input
	if doc.Start == nil {
		return input, errors.New("missing start")
	}
	if doc.End == nil {
		return input, errors.New("missing end")
	}

	var err error
	if input.Start, err = quantize(*doc.Start); err != nil {
		return input, errors.Wrap(err, "start")
	}
	if input.End, err = quantize(*doc.End); err != nil {
		return input, errors.Wrap(err, "end")
	}
	if input.Route, err = quantizeAll(doc.Route); err != nil {
		return input, errors.Wrap(err, "route")
	}
	for i, polygon := range doc.Polygons {
		points, err := quantizeAll(polygon.Points)
		if err != nil {
			return input, errors.Wrapf(err, "polygon %d", i)
		}
		input.Polygons = append(input.Polygons, internal.Polygon{Points: points})
	}
	return input, input.Validate()
}

// Output documents carry grid coordinates as integers.
type Point struct {
	X int64 `toml:"x" json:"x" yaml:"x"`
	Y int64 `toml:"y" json:"y" yaml:"y"`
}

type Polygon struct {
	Points []Point `toml:"point" json:"point" yaml:"point"`
}

type InputDocument struct {
	Start    Point     `toml:"start" json:"start" yaml:"start"`
	End      Point     `toml:"end" json:"end" yaml:"end"`
	Route    []Point   `toml:"route" json:"route" yaml:"route"`
	Polygons []Polygon `toml:"polygon" json:"polygon" yaml:"polygon"`
}

type Segment struct {
	A Point `toml:"a" json:"a" yaml:"a"`
	B Point `toml:"b" json:"b" yaml:"b"`
}

type Hull struct {
	Segments []Segment `toml:"segment_set" json:"segment_set" yaml:"segment_set"`
}

// A planned route: the input echoed back, and one hull per leg in leg order.
type OutputDocument struct {
	Input InputDocument `toml:"input" json:"input" yaml:"input"`
	Hulls []Hull        `toml:"hulls" json:"hulls" yaml:"hulls"`
}

func point(c internal.Coord) Point {
	return Point{X: c.X, Y: c.Y}
}

func points(coords []internal.Coord) []Point {
	result := make([]Point, 0, len(coords))
	for _, c := range coords {
		result = append(result, point(c))
	}
	return result
}

func NewInputDocument(input internal.Input) InputDocument {
	doc := InputDocument{
		Start: point(input.Start),
		End:   point(input.End),
		Route: points(input.Route),
	}
	for _, polygon := range input.Polygons {
		doc.Polygons = append(doc.Polygons, Polygon{Points: points(polygon.Points)})
	}
	return doc
}

// Hull edges are written in a stable order, so equal plans encode to equal
// bytes.
func NewOutputDocument(output *internal.Output) OutputDocument {
	doc := OutputDocument{Input: NewInputDocument(output.Input)}
	for _, hull := range output.Hulls {
		var segments []Segment
		for _, edge := range hull.Edges() {
			segments = append(segments, Segment{A: point(edge.A), B: point(edge.B)})
		}
		doc.Hulls = append(doc.Hulls, Hull{Segments: segments})
	}
	return doc
}
