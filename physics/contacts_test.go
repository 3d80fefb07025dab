package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactTableLifecycle(t *testing.T) {
	ct := NewContactTable()

	ct.Begin(1000, 1001)
	assert.Equal(t, 0, ct.State(1000, 1001), "state only changes on Advance")

	ct.Advance()
	assert.Equal(t, 1, ct.State(1000, 1001))
	assert.Equal(t, 1, ct.State(1001, 1000), "pair order must not matter")

	ct.Advance()
	ct.Advance()
	assert.Equal(t, 3, ct.State(1000, 1001))

	ct.End(1001, 1000)
	ct.Advance()
	assert.Equal(t, -1, ct.State(1000, 1001))

	ct.Advance()
	assert.Equal(t, 0, ct.State(1000, 1001))
	assert.Equal(t, 0, ct.Len())
}

func TestContactTableShortContactIsReported(t *testing.T) {
	ct := NewContactTable()

	ct.Begin(1, 2)
	ct.End(1, 2)
	ct.Advance()
	assert.Equal(t, 1, ct.State(1, 2))

	ct.Advance()
	assert.Equal(t, -1, ct.State(1, 2))
}

func TestContactTableExpireRebuild(t *testing.T) {
	ct := NewContactTable()

	ct.Begin(1, 2)
	ct.Begin(1, 3)
	ct.Advance()

	// next frame only 1-2 still overlap
	ct.Expire()
	ct.Begin(1, 2)
	ct.Advance()

	assert.Equal(t, 2, ct.State(1, 2))
	assert.Equal(t, -1, ct.State(1, 3))
}

func TestContactTableForget(t *testing.T) {
	ct := NewContactTable()
	ct.Begin(1, 2)
	ct.Begin(2, 3)
	ct.Begin(4, 5)
	ct.Advance()

	ct.Forget(2)

	assert.Equal(t, 0, ct.State(1, 2))
	assert.Equal(t, 0, ct.State(2, 3))
	assert.Equal(t, 1, ct.State(4, 5))

	var seen [][2]int
	ct.Each(func(a, b, frames int) {
		seen = append(seen, [2]int{a, b})
	})
	assert.Equal(t, [][2]int{{4, 5}}, seen)
}

func TestContactTableCountsShapePairs(t *testing.T) {
	ct := NewContactTable()

	// two shapes of sprite 1 touch sprite 2
	ct.Begin(1, 2)
	ct.Begin(1, 2)
	ct.Advance()
	ct.End(1, 2)
	ct.Advance()
	assert.Equal(t, 2, ct.State(1, 2), "one shape pair still touching")

	ct.End(1, 2)
	ct.Advance()
	assert.Equal(t, -1, ct.State(1, 2))
}
