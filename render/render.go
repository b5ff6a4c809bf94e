// Drawing planned routes as images.
//
// Obstacles are drawn in black, hulls in magenta, obstacle vertices in blue,
// route waypoints in dark red, the start in green and the end in red. The
// image covers the bounding box of everything in the plan plus a margin, with
// y growing downward as usual for images. It is drawn at one pixel per grid
// unit and then scaled up without smoothing, so the grid stays visible.
package render

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/hullroute/internal"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

var (
	Background    = color.RGBA{255, 255, 255, 255}
	ObstacleColor = color.RGBA{0, 0, 0, 255}
	HullColor     = color.RGBA{255, 0, 255, 255}
	VertexColor   = color.RGBA{0, 0, 255, 255}
	RouteColor    = color.RGBA{128, 0, 0, 255}
	StartColor    = color.RGBA{0, 255, 0, 255}
	EndColor      = color.RGBA{255, 0, 0, 255}
)

// Empty space around the plan, in grid units.
const Padding = 10

// The largest image side, in pixels, that Render will produce.
const MaxSide = 1 << 14

type Options struct {
	// Pixels per grid unit. Zero or less means 1.
	Scale int
}

func (o Options) scale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}

// Maps grid coords to pixels.
type frame struct {
	origin        internal.Coord
	width, height int
}

func newFrame(output *internal.Output) frame {
	coords := output.Input.Waypoints()
	for _, polygon := range output.Input.Polygons {
		coords = append(coords, polygon.Points...)
	}
	for _, hull := range output.Hulls {
		coords = append(coords, hull.Vertices()...)
	}

	minC, maxC := coords[0], coords[0]
	for _, c := range coords[1:] {
		minC.X = min(minC.X, c.X)
		minC.Y = min(minC.Y, c.Y)
		maxC.X = max(maxC.X, c.X)
		maxC.Y = max(maxC.Y, c.Y)
	}
	return frame{
		origin: internal.Coord{X: minC.X - Padding, Y: minC.Y - Padding},
		width:  int(maxC.X-minC.X) + 2*Padding + 1,
		height: int(maxC.Y-minC.Y) + 2*Padding + 1,
	}
}

func (f frame) pixel(c internal.Coord) (int, int) {
	return int(c.X - f.origin.X), int(c.Y - f.origin.Y)
}

// Pixel centers, for drawing lines that land on the same pixels as points.
func (f frame) center(c internal.Coord) (float64, float64) {
	x, y := f.pixel(c)
	return float64(x) + 0.5, float64(y) + 0.5
}

// Draw a planned route.
func Render(output *internal.Output, options Options) (image.Image, error) {
	f := newFrame(output)
	scale := options.scale()
	// Divide rather than multiply, so a huge scale cannot overflow.
	if scale > MaxSide/f.width || scale > MaxSide/f.height {
		return nil, errors.Errorf("image of %dx%d units at scale %d would be larger than %d on a side", f.width, f.height, scale, MaxSide)
	}

	c := gg.NewContext(f.width, f.height)
	c.SetColor(Background)
	c.Clear()
	c.SetLineWidth(1)

	strokeSegment := func(segment internal.Segment) {
		x0, y0 := f.center(segment.A)
		x1, y1 := f.center(segment.B)
		c.DrawLine(x0, y0, x1, y1)
		c.Stroke()
	}
	setPixel := func(coord internal.Coord) {
		x, y := f.pixel(coord)
		c.SetPixel(x, y)
	}

	c.SetColor(ObstacleColor)
	for _, polygon := range output.Input.Polygons {
		for _, segment := range polygon.Segments() {
			strokeSegment(segment)
		}
	}

	c.SetColor(HullColor)
	for _, hull := range output.Hulls {
		for _, segment := range hull.Edges() {
			strokeSegment(segment)
		}
	}

	c.SetColor(VertexColor)
	for _, polygon := range output.Input.Polygons {
		for _, point := range polygon.Points {
			setPixel(point)
		}
	}

	c.SetColor(RouteColor)
	for _, point := range output.Input.Route {
		setPixel(point)
	}

	c.SetColor(StartColor)
	setPixel(output.Input.Start)
	c.SetColor(EndColor)
	setPixel(output.Input.End)

	if scale == 1 {
		return c.Image(), nil
	}
	src := c.Image()
	dst := image.NewRGBA(image.Rect(0, 0, f.width*scale, f.height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

func EncodePNG(w io.Writer, output *internal.Output, options Options) error {
	img, err := Render(output, options)
	if err != nil {
		return err
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}

// Print the rendered plan to a terminal that supports inline images (iTerm).
func Preview(w io.Writer, output *internal.Output, options Options) error {
	file, err := os.CreateTemp("", "hullroute-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer os.Remove(file.Name())

	err = EncodePNG(file, output, options)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, "writing preview file")
	}
	imgcat.CatFile(file.Name(), w)
	return nil
}
