// blocks.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package blocks

import "github.com/sharpencrag/go-blocks/internal/layout"

// GeometryRequest captures a widget's size constraints (min/hint sizes and
// stretch policy) as reported by the host toolkit.
type GeometryRequest = layout.GeometryRequest

// Item is the interface host widgets implement to participate in layout.
type Item = layout.Item

// Align specifies how content is packed along an axis.
type Align = layout.Align

const (
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// FlowLayout arranges items left-to-right, wrapping onto new rows based on
// available width.
type FlowLayout = layout.FlowLayout

// ColumnLayout is a single-row layout whose column widths are dictated by a
// shared ColumnManager.
type ColumnLayout = layout.ColumnLayout

// ColumnManager unifies column widths across multiple ColumnLayouts.
type ColumnManager = layout.ColumnManager

// ErrNilManager is returned by NewColumnLayout when given a nil manager.
var ErrNilManager = layout.ErrNilManager

// DefaultSpacing is the default gap between items, rows, and columns.
const DefaultSpacing = layout.DefaultSpacing

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// NewFlowLayout creates an empty flow layout with default spacing.
func NewFlowLayout() *FlowLayout {
	return layout.NewFlowLayout()
}

// NewColumnManager creates a column manager with default spacing.
func NewColumnManager() *ColumnManager {
	return layout.NewColumnManager()
}

// NewColumnManagerSpacing creates a column manager with the given
// inter-column spacing.
func NewColumnManagerSpacing(spacing int) *ColumnManager {
	return layout.NewColumnManagerSpacing(spacing)
}

// NewColumnLayout creates a column layout registered with manager.
func NewColumnLayout(manager *ColumnManager) (*ColumnLayout, error) {
	return layout.NewColumnLayout(manager)
}
