package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(3, 7, 40, 12),
			right:  43,
			bottom: 19,
		},
		"zero size": {
			rect:   NewRect(8, 8, 0, 0),
			right:  8,
			bottom: 8,
		},
		"negative origin": {
			rect:   NewRect(-10, -4, 15, 6),
			right:  5,
			bottom: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:     NewRect(0, 0, 100, 50),
			edges:    EdgeAll(5),
			expected: NewRect(5, 5, 90, 40),
		},
		"asymmetric": {
			rect:     NewRect(10, 10, 100, 50),
			edges:    EdgeTRBL(1, 2, 3, 4),
			expected: NewRect(14, 11, 94, 46),
		},
		"zero edges": {
			rect:     NewRect(10, 10, 100, 50),
			edges:    Edges{},
			expected: NewRect(10, 10, 100, 50),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.edges, got, tt.expected)
			}
		})
	}
}

func TestRect_Area(t *testing.T) {
	type tc struct {
		rect Rect
		area int
	}

	tests := map[string]tc{
		"standard rect":   {rect: NewRect(2, 3, 8, 5), area: 40},
		"zero width":      {rect: NewRect(0, 0, 0, 9), area: 0},
		"negative height": {rect: NewRect(0, 0, 9, -2), area: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Area(); got != tt.area {
				t.Errorf("Area() = %d, want %d", got, tt.area)
			}
		})
	}
}

func TestRect_Outset(t *testing.T) {
	type tc struct {
		rect     Rect
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:     NewRect(10, 10, 20, 20),
			edges:    EdgeAll(3),
			expected: NewRect(7, 7, 26, 26),
		},
		"asymmetric": {
			rect:     NewRect(10, 10, 20, 20),
			edges:    EdgeTRBL(1, 2, 3, 4),
			expected: NewRect(6, 9, 26, 24),
		},
		"inverse of inset": {
			rect:     NewRect(5, 5, 40, 30).Inset(EdgeAll(2)),
			edges:    EdgeAll(2),
			expected: NewRect(5, 5, 40, 30),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Outset(tt.edges); got != tt.expected {
				t.Errorf("Outset(%+v) = %+v, want %+v", tt.edges, got, tt.expected)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"disjoint": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 10, 10),
			expected: NewRect(0, 0, 30, 30),
		},
		"empty left operand": {
			a:        Rect{},
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(5, 5, 10, 10),
		},
		"contained": {
			a:        NewRect(0, 0, 50, 50),
			b:        NewRect(10, 10, 5, 5),
			expected: NewRect(0, 0, 50, 50),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.expected {
				t.Errorf("Union() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	// Left/top edges are inside, right/bottom edges are outside.
	if !r.Contains(10, 10) {
		t.Errorf("Contains(10, 10) = false, want true")
	}
	if r.Contains(30, 10) {
		t.Errorf("Contains(30, 10) = true, want false")
	}
	if !(Point{X: 15, Y: 15}).In(r) {
		t.Errorf("Point.In = false, want true")
	}
}

func TestEdges_Sums(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)

	if got := e.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %d, want 6", got)
	}
	if got := e.Vertical(); got != 4 {
		t.Errorf("Vertical() = %d, want 4", got)
	}
	if e.IsZero() {
		t.Errorf("IsZero() = true, want false")
	}
	if !(Edges{}).IsZero() {
		t.Errorf("zero Edges IsZero() = false, want true")
	}
}

func TestSize_ExpandedTo(t *testing.T) {
	a := Size{Width: 10, Height: 30}
	b := Size{Width: 20, Height: 5}

	if got, want := a.ExpandedTo(b), (Size{Width: 20, Height: 30}); got != want {
		t.Errorf("ExpandedTo() = %+v, want %+v", got, want)
	}
}
