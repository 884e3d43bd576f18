package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 2, Width: 5, Height: 3}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 10, 2, true},
		{"bottom-right corner", 14, 4, true},
		{"right edge is exclusive", 15, 2, false},
		{"bottom edge is exclusive", 10, 5, false},
		{"left of rect", 9, 3, false},
		{"above rect", 12, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRefMountLifecycle(t *testing.T) {
	var ref Ref
	assert.False(t, ref.Mounted())
	assert.False(t, ref.Contains(0, 0))

	ref.Set(Rect{Width: 4, Height: 4})
	assert.True(t, ref.Mounted())
	assert.True(t, ref.Contains(1, 1))

	ref.Clear()
	assert.False(t, ref.Mounted())
	assert.False(t, ref.Contains(1, 1))
}

func TestUnion(t *testing.T) {
	var a, b Ref
	u := Union(&a, &b)
	assert.False(t, u.Mounted())

	a.Set(Rect{X: 0, Y: 0, Width: 2, Height: 1})
	assert.True(t, u.Mounted())
	assert.True(t, u.Contains(1, 0))
	assert.False(t, u.Contains(5, 5))

	b.Set(Rect{X: 5, Y: 5, Width: 1, Height: 1})
	assert.True(t, u.Contains(5, 5))
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, Rect{}.Empty())
	assert.True(t, Rect{Width: 3}.Empty())
	assert.False(t, Rect{Width: 1, Height: 1}.Empty())
}
