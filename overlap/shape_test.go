package overlap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"boxes overlapping", NewBox(0, 0, 10, 10), NewBox(8, 0, 10, 10), true},
		{"boxes touching edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"boxes apart", NewBox(0, 0, 10, 10), NewBox(0, 30, 10, 10), false},
		{"circle inside box", NewBox(0, 0, 100, 10), NewCircle(40, 0, 4), true},
		{"circle near box corner", NewBox(0, 0, 10, 10), NewCircle(9, 9, 4), false},
		{"circles overlapping", NewCircle(0, 0, 10), NewCircle(9, 0, 10), true},
		{"circles apart", NewCircle(0, 0, 10), NewCircle(11, 0, 10), false},
		{"line through box", NewBox(0, 0, 10, 10), NewLine(0, 0, 100, 45), true},
		{"line beside box", NewBox(0, 0, 10, 10), NewLine(0, 20, 100, 0), false},
		{"line through circle", NewLine(0, 0, 20, 90), NewCircle(0, 5, 4), true},
		{"line missing circle", NewLine(0, 0, 20, 90), NewCircle(10, 5, 4), false},
		{"lines crossing", NewLine(0, 0, 20, 0), NewLine(0, 0, 20, 90), true},
		{"parallel lines", NewLine(0, 0, 20, 0), NewLine(0, 5, 20, 0), false},
		{"upright box over small box", NewRotatedBox(300, 250, 300, 50, 90), NewBox(300, 150, 20, 20), true},
		{"upright box misses box at its old end", NewRotatedBox(300, 250, 300, 50, 90), NewBox(420, 250, 20, 20), false},
		{"diamonds apart", NewRotatedBox(0, 0, 10, 10, 45), NewRotatedBox(14.5, 0, 10, 10, 45), false},
		{"diamonds overlapping", NewRotatedBox(0, 0, 10, 10, 45), NewRotatedBox(13, 0, 10, 10, 45), true},
		{"diamond misses box corner", NewRotatedBox(0, 0, 10, 10, 45), NewBox(11, 11, 10, 10), false},
		{"circle inside upright box", NewRotatedBox(0, 0, 100, 10, 90), NewCircle(0, 40, 4), true},
		{"circle beside upright box", NewRotatedBox(0, 0, 100, 10, 90), NewCircle(40, 0, 4), false},
		{"line through upright box", NewRotatedBox(0, 0, 100, 10, 90), NewLine(0, 40, 20, 0), true},
		{"line beside upright box", NewRotatedBox(0, 0, 100, 10, 90), NewLine(0, 60, 20, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(tt.a, tt.b))
			assert.Equal(t, tt.want, Intersects(tt.b, tt.a))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, NewBox(10, 10, 20, 20).Contains(0, 0))
	assert.False(t, NewBox(10, 10, 20, 20).Contains(21, 10))
	assert.True(t, NewRotatedBox(300, 250, 300, 50, 90).Contains(300, 150))
	assert.False(t, NewRotatedBox(300, 250, 300, 50, 90).Contains(420, 250))
	assert.True(t, NewCircle(0, 0, 10).Contains(3, 3))
	assert.False(t, NewCircle(0, 0, 10).Contains(4, 4))
	assert.True(t, NewLine(0, 0, 10, 0).Contains(4, 0.2))
	assert.False(t, NewLine(0, 0, 10, 0).Contains(6, 0))
}
