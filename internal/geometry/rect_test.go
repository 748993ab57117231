package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects_Overlapping(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	b := Rect{Left: 50, Top: 50, Right: 150, Bottom: 150}

	assert.True(t, Intersects(a, b))
	assert.True(t, Intersects(b, a))
}

func TestIntersects_SharedEdge(t *testing.T) {
	// Touching edges count as intersecting (closed-interval comparison).
	a := Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	b := Rect{Left: 100, Top: 0, Right: 200, Bottom: 100}

	assert.True(t, Intersects(a, b))
}

func TestIntersects_SharedCorner(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	b := Rect{Left: 100, Top: 100, Right: 200, Bottom: 200}

	assert.True(t, Intersects(a, b))
}

func TestIntersects_Disjoint(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	b := Rect{Left: 101, Top: 0, Right: 200, Bottom: 100}

	assert.False(t, Intersects(a, b))
	assert.False(t, Intersects(b, a))
}

func TestIntersects_Contained(t *testing.T) {
	outer := Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	inner := Rect{Left: 25, Top: 25, Right: 75, Bottom: 75}

	assert.True(t, Intersects(outer, inner))
	assert.True(t, Intersects(inner, outer))
}

func TestNormalized(t *testing.T) {
	inverted := Rect{Left: 100, Top: 80, Right: 20, Bottom: 10}

	normal := inverted.Normalized()

	assert.Equal(t, Rect{Left: 20, Top: 10, Right: 100, Bottom: 80}, normal)
	assert.Equal(t, 80.0, normal.Width())
	assert.Equal(t, 70.0, normal.Height())
}

func TestFromPoints(t *testing.T) {
	r := FromPoints(Point{X: 50, Y: 60}, Point{X: 10, Y: 20})

	assert.Equal(t, Rect{Left: 10, Top: 20, Right: 50, Bottom: 60}, r)
}

func TestContentToViewport(t *testing.T) {
	content := Rect{Left: 100, Top: 100, Right: 200, Bottom: 200}
	scroll := Point{X: 30, Y: 40}
	origin := Point{X: 10, Y: 20}

	viewport := ContentToViewport(content, scroll, origin)

	assert.Equal(t, Rect{Left: 80, Top: 80, Right: 180, Bottom: 180}, viewport)
}

func TestViewportToContent_RoundTrip(t *testing.T) {
	scroll := Point{X: 15, Y: 25}
	origin := Point{X: 5, Y: 5}

	p := Point{X: 120, Y: 130}
	content := ViewportToContent(p, scroll, origin)

	assert.Equal(t, Point{X: 130, Y: 150}, content)

	back := ContentToViewport(Rect{Left: content.X, Top: content.Y, Right: content.X, Bottom: content.Y}, scroll, origin)
	assert.Equal(t, p.X, back.Left)
	assert.Equal(t, p.Y, back.Top)
}
