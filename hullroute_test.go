package hullroute

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.
func TestPlan(t *testing.T) {
	t.Run("around a box", func(t *testing.T) {
		input := Input{
			Start:    Coord{X: 0, Y: 0},
			End:      Coord{X: 10, Y: 0},
			Polygons: []Polygon{{Points: []Coord{{X: 4, Y: -2}, {X: 6, Y: -2}, {X: 6, Y: 2}, {X: 4, Y: 2}}}},
		}
		output, err := Plan(input, Options{Workers: 2})
		require.NoError(t, err)
		require.Len(t, output.Hulls, 1)
		assert.Equal(t, 6, output.Hulls[0].Len())
		assert.False(t, output.Hulls[0].Has(NewSegment(input.Start, input.End)))
	})

	t.Run("no obstacles", func(t *testing.T) {
		input := Input{Start: Coord{X: 0, Y: 0}, End: Coord{X: 10, Y: 0}}
		output, err := Plan(input, Options{})
		require.NoError(t, err)
		require.Len(t, output.Hulls, 1)
		assert.Equal(t, []Segment{NewSegment(input.Start, input.End)}, output.Hulls[0].Edges())
	})

	t.Run("degenerate leg", func(t *testing.T) {
		input := Input{Start: Coord{X: 3, Y: 3}, End: Coord{X: 3, Y: 3}}
		output, err := Plan(input, Options{})
		assert.Nil(t, output)
		var legErr *LegError
		require.True(t, errors.As(err, &legErr))
		assert.Equal(t, 0, legErr.Leg)
		assert.True(t, errors.Is(err, ErrGeometryDegenerate))
	})
}

func TestConvexHull(t *testing.T) {
	edges, err := ConvexHull(Coord{X: 0, Y: 0}, Coord{X: 2, Y: 0}, Coord{X: 1, Y: 1}, Coord{X: 1, Y: 3})
	require.NoError(t, err)
	assert.Len(t, edges, 3)

	_, err = ConvexHull(Coord{X: 1, Y: 1})
	assert.True(t, errors.Is(err, ErrInsufficientPoints))

	t.Run("out of range", func(t *testing.T) {
		// Cross products over these would overflow int64 and give a wrong hull
		const big = 1 << 33
		edges, err := ConvexHull(
			Coord{X: 0, Y: 0}, Coord{X: big, Y: 0}, Coord{X: big, Y: big}, Coord{X: 0, Y: big},
			Coord{X: big / 2, Y: big/2 + 1},
		)
		assert.Nil(t, edges)
		assert.EqualError(t, err, "point 1 (8589934592, 0) is out of range")
	})

	t.Run("at the range limit", func(t *testing.T) {
		edges, err := ConvexHull(
			Coord{X: -MaxCoordinate, Y: -MaxCoordinate}, Coord{X: MaxCoordinate, Y: -MaxCoordinate},
			Coord{X: MaxCoordinate, Y: MaxCoordinate}, Coord{X: -MaxCoordinate, Y: MaxCoordinate},
			Coord{X: 0, Y: 1},
		)
		require.NoError(t, err)
		assert.Equal(t, []Segment{
			NewSegment(Coord{X: -MaxCoordinate, Y: -MaxCoordinate}, Coord{X: -MaxCoordinate, Y: MaxCoordinate}),
			NewSegment(Coord{X: -MaxCoordinate, Y: -MaxCoordinate}, Coord{X: MaxCoordinate, Y: -MaxCoordinate}),
			NewSegment(Coord{X: -MaxCoordinate, Y: MaxCoordinate}, Coord{X: MaxCoordinate, Y: MaxCoordinate}),
			NewSegment(Coord{X: MaxCoordinate, Y: -MaxCoordinate}, Coord{X: MaxCoordinate, Y: MaxCoordinate}),
		}, edges)
	})
}
