package layout

// Edges holds per-side spacing for a box, used for layout margins and for
// growing or shrinking rects.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll returns Edges with n on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric returns Edges with v on top/bottom and h on left/right.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL returns Edges in CSS order: top, right, bottom, left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal is the combined left and right spacing.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical is the combined top and bottom spacing.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// IsZero returns true if no side has any spacing.
func (e Edges) IsZero() bool {
	return e == Edges{}
}
