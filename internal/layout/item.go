package layout

// Item is the interface host widgets implement to participate in layout.
// The engines work entirely with this interface, enabling any toolkit
// (or plain structs in tests) to be laid out.
type Item interface {
	// Geometry returns the item's current size constraints.
	Geometry() GeometryRequest

	// ApplyGeometry is called by a layout engine with the item's final
	// position and dimensions. Implementations push the rect to the host
	// toolkit's placement primitive.
	ApplyGeometry(Rect)
}

// Align specifies how content is packed along an axis.
//
// For a FlowLayout's row alignment it selects horizontal packing; for a
// per-item alignment it selects the item's vertical position within its row.
type Align uint8

const (
	AlignStart  Align = iota // Pack at start (left / top)
	AlignCenter              // Center, splitting leftover space evenly
	AlignEnd                 // Pack at end (right / bottom)
)
