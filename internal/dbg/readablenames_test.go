package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	t.Run("stable for the same key", func(t *testing.T) {
		assert.Equal(t, Name("polygon 1"), Name("polygon 1"))
	})

	t.Run("value keys", func(t *testing.T) {
		type key struct{ x, y int }
		assert.Equal(t, Name(key{1, 2}), Name(key{1, 2}))
		assert.NotEmpty(t, Name(key{3, 4}))
	})

	t.Run("nil", func(t *testing.T) {
		var p *int
		assert.Equal(t, "Ø", Name(p))
		assert.Equal(t, "Ø", Name(nil))
	})
}
