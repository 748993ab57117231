// Package geometry provides the axis-aligned rectangle math used for
// marquee hit-testing and the workspace-content/viewport coordinate
// conversions the canvas controller depends on.
package geometry

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in whatever coordinate space the
// caller tracks. Left <= Right and Top <= Bottom for normalized rects.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns the rect width.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the rect height.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Normalized returns the rect with Left/Right and Top/Bottom swapped where
// needed so both axes run low to high. Marquee rects are built from a drag
// start and a current point and may be inverted on either axis.
func (r Rect) Normalized() Rect {
	out := r
	if out.Left > out.Right {
		out.Left, out.Right = out.Right, out.Left
	}
	if out.Top > out.Bottom {
		out.Top, out.Bottom = out.Bottom, out.Top
	}
	return out
}

// Translate returns the rect shifted by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersects reports whether two normalized rects overlap. The comparison
// is closed-interval: rects that merely touch along an edge or at a corner
// count as intersecting.
func Intersects(a, b Rect) bool {
	return a.Left <= b.Right &&
		a.Right >= b.Left &&
		a.Top <= b.Bottom &&
		a.Bottom >= b.Top
}

// FromPoints builds a normalized rect spanning two corner points.
func FromPoints(a, b Point) Rect {
	return Rect{Left: a.X, Top: a.Y, Right: b.X, Bottom: b.Y}.Normalized()
}

// ContentToViewport converts a rect tracked in workspace-content space
// (origin at the scrolled content's top-left) into viewport space:
// viewport = content - scrollOffset + workspaceOrigin.
func ContentToViewport(r Rect, scrollOffset, workspaceOrigin Point) Rect {
	return r.Translate(workspaceOrigin.X-scrollOffset.X, workspaceOrigin.Y-scrollOffset.Y)
}

// ViewportToContent is the inverse of ContentToViewport for a single point.
func ViewportToContent(p Point, scrollOffset, workspaceOrigin Point) Point {
	return Point{
		X: p.X + scrollOffset.X - workspaceOrigin.X,
		Y: p.Y + scrollOffset.Y - workspaceOrigin.Y,
	}
}
