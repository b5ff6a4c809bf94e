package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonSegments(t *testing.T) {
	poly := Polygon{[]Coord{{0, 0}, {4, 0}, {2, 3}}}
	assert.Equal(t, []Segment{
		NewSegment(Coord{0, 0}, Coord{4, 0}),
		NewSegment(Coord{4, 0}, Coord{2, 3}),
		NewSegment(Coord{2, 3}, Coord{0, 0}),
	}, poly.Segments())

	// Winding doesn't matter
	assert.ElementsMatch(t, poly.Segments(), poly.Reverse().Segments())
}

func TestPolygonValidate(t *testing.T) {
	assert.NoError(t, Box().Validate())
	assert.EqualError(t, Polygon{[]Coord{{0, 0}, {1, 1}}}.Validate(), "polygon needs at least 3 points, got 2")
	assert.Error(t, Polygon{}.Validate())
}

func TestPolygonContainsCoord(t *testing.T) {
	// A concave "C" shape, opening to the right
	c := Polygon{[]Coord{{0, 0}, {6, 0}, {6, 2}, {2, 2}, {2, 4}, {6, 4}, {6, 6}, {0, 6}}}

	for _, poly := range []Polygon{c, c.Reverse()} {
		assert.True(t, poly.ContainsCoord(Coord{1, 1}))
		assert.True(t, poly.ContainsCoord(Coord{1, 3}))
		assert.True(t, poly.ContainsCoord(Coord{5, 5}))
		// In the mouth of the C
		assert.False(t, poly.ContainsCoord(Coord{4, 3}))
		assert.False(t, poly.ContainsCoord(Coord{7, 1}))
		assert.False(t, poly.ContainsCoord(Coord{-1, 3}))
		// Boundary counts as inside
		assert.True(t, poly.ContainsCoord(Coord{0, 0}))
		assert.True(t, poly.ContainsCoord(Coord{3, 2}))
		assert.True(t, poly.ContainsCoord(Coord{2, 3}))
	}

	t.Run("ray through a vertex", func(t *testing.T) {
		diamond := Polygon{[]Coord{{2, 0}, {4, 2}, {2, 4}, {0, 2}}}
		assert.True(t, diamond.ContainsCoord(Coord{1, 2}))
		assert.False(t, diamond.ContainsCoord(Coord{-1, 2}))
		assert.False(t, diamond.ContainsCoord(Coord{5, 2}))
	})
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestTotalVertexCount(t *testing.T) {
	assert.Equal(t, 0, TotalVertexCount(nil))
	assert.Equal(t, 7, TotalVertexCount([]Polygon{Box(), {[]Coord{{0, 0}, {1, 0}, {0, 1}}}}))
}
