package layout

import "github.com/sharpencrag/go-blocks/internal/debug"

// DefaultSpacing is the gap between items and rows (and between columns for
// ColumnManager) when no explicit spacing is configured.
const DefaultSpacing = 5

// flowEntry pairs an item with its vertical alignment within its row.
type flowEntry struct {
	item  Item
	align Align
}

// FlowLayout arranges items left-to-right, wrapping to a new row whenever the
// next item would exceed the available width. Insertion order is preserved
// across rows.
//
// The row partition is a pure function of the items, the spacing, and the
// content width; it is cached keyed on the last laid-out width and recomputed
// whenever the width or any input changes.
type FlowLayout struct {
	entries   []flowEntry
	spacing   int
	margin    Edges
	alignment Align

	// Width-keyed row cache.
	lastWidth int
	rows      [][]int
	dirty     bool
}

// NewFlowLayout creates an empty flow layout with DefaultSpacing, no margins,
// and rows packed at the start.
func NewFlowLayout() *FlowLayout {
	return &FlowLayout{spacing: DefaultSpacing, dirty: true}
}

// AddItem appends an item, top-aligned within its row.
func (f *FlowLayout) AddItem(item Item) {
	f.AddItemAligned(item, AlignStart)
}

// AddItemAligned appends an item with the given vertical alignment within
// its row.
func (f *FlowLayout) AddItemAligned(item Item, align Align) {
	f.entries = append(f.entries, flowEntry{item: item, align: align})
	f.Invalidate()
}

// InsertItem inserts an item at index i, top-aligned. Indexes out of range
// are clamped to the ends of the sequence.
func (f *FlowLayout) InsertItem(i int, item Item) {
	if i < 0 {
		i = 0
	}
	if i > len(f.entries) {
		i = len(f.entries)
	}
	f.entries = append(f.entries, flowEntry{})
	copy(f.entries[i+1:], f.entries[i:])
	f.entries[i] = flowEntry{item: item, align: AlignStart}
	f.Invalidate()
}

// RemoveItem removes the first occurrence of item. Returns true if found.
func (f *FlowLayout) RemoveItem(item Item) bool {
	for i, e := range f.entries {
		if e.item == item {
			f.TakeAt(i)
			return true
		}
	}
	return false
}

// TakeAt removes and returns the item at index i, or nil if out of range.
func (f *FlowLayout) TakeAt(i int) Item {
	if i < 0 || i >= len(f.entries) {
		return nil
	}
	item := f.entries[i].item
	f.entries = append(f.entries[:i], f.entries[i+1:]...)
	f.Invalidate()
	return item
}

// Count returns the number of items.
func (f *FlowLayout) Count() int {
	return len(f.entries)
}

// ItemAt returns the item at index i, or nil if out of range.
func (f *FlowLayout) ItemAt(i int) Item {
	if i < 0 || i >= len(f.entries) {
		return nil
	}
	return f.entries[i].item
}

// Spacing returns the gap between items and between rows.
func (f *FlowLayout) Spacing() int {
	return f.spacing
}

// SetSpacing sets the gap between items and between rows.
func (f *FlowLayout) SetSpacing(n int) {
	f.spacing = n
	f.Invalidate()
}

// Margin returns the outer margins.
func (f *FlowLayout) Margin() Edges {
	return f.margin
}

// SetMargin sets the outer margins.
func (f *FlowLayout) SetMargin(margin Edges) {
	f.margin = margin
	f.Invalidate()
}

// Alignment returns the horizontal packing applied to each row.
func (f *FlowLayout) Alignment() Align {
	return f.alignment
}

// SetAlignment sets the horizontal packing applied to each row.
func (f *FlowLayout) SetAlignment(align Align) {
	f.alignment = align
	f.Invalidate()
}

// Invalidate discards the cached row partition. The host calls this when any
// item's size hints change.
func (f *FlowLayout) Invalidate() {
	f.dirty = true
	f.rows = nil
}

// SetGeometry partitions the items into rows for rect's width and pushes a
// final rect to every item. The host calls this on each resize.
func (f *FlowLayout) SetGeometry(rect Rect) {
	content := rect.Inset(f.margin)
	rows := f.rowsFor(content.Width)
	debug.Logf("flow: %d items in %d rows at width %d", len(f.entries), len(rows), content.Width)

	y := content.Y
	for _, row := range rows {
		rowHeight := f.rowHeight(row)
		f.placeRow(row, content, y, rowHeight)
		y += rowHeight + f.spacing
	}
}

// HeightForWidth returns the total height required to lay the items out in
// the given overall width, without applying any geometry.
func (f *FlowLayout) HeightForWidth(width int) int {
	if len(f.entries) == 0 {
		return 0
	}
	rows := partitionRows(f.entries, width-f.margin.Horizontal(), f.spacing)
	height := f.margin.Vertical()
	for i, row := range rows {
		if i > 0 {
			height += f.spacing
		}
		height += f.rowHeight(row)
	}
	return height
}

// SizeHint reports the preferred size upward so parent containers can size
// this layout. Matches MinimumSize: a flow layout has no preferred width of
// its own, it adapts to whatever it is given.
func (f *FlowLayout) SizeHint() Size {
	return f.MinimumSize()
}

// MinimumSize returns the smallest size that fits the largest item plus
// margins. A zero-item layout has zero minimum size.
func (f *FlowLayout) MinimumSize() Size {
	if len(f.entries) == 0 {
		return Size{}
	}
	var size Size
	for _, e := range f.entries {
		size = size.ExpandedTo(e.item.Geometry().MinSize())
	}
	size.Width += f.margin.Horizontal()
	size.Height += f.margin.Vertical()
	return size
}

// rowsFor returns the row partition for the given content width, reusing the
// cache when neither the width nor the inputs have changed.
func (f *FlowLayout) rowsFor(width int) [][]int {
	if !f.dirty && width == f.lastWidth && f.rows != nil {
		return f.rows
	}
	f.rows = partitionRows(f.entries, width, f.spacing)
	f.lastWidth = width
	f.dirty = false
	return f.rows
}

// rowHeight returns the max effective height among the row's items.
func (f *FlowLayout) rowHeight(row []int) int {
	height := 0
	for _, idx := range row {
		if h := f.entries[idx].item.Geometry().EffectiveHeight(); h > height {
			height = h
		}
	}
	return height
}

// placeRow assigns x/y positions to one row of items.
//
// Leftover row width goes first to items that can stretch horizontally,
// split evenly with remainder units assigned left to right. When no item
// stretches, the row alignment decides where the leftover sits.
func (f *FlowLayout) placeRow(row []int, content Rect, y, rowHeight int) {
	widths := make([]int, len(row))
	rowWidth := 0
	var stretchable []int
	for i, idx := range row {
		g := f.entries[idx].item.Geometry()
		widths[i] = g.EffectiveWidth()
		rowWidth += widths[i]
		if g.CanStretchH {
			stretchable = append(stretchable, i)
		}
	}
	if len(row) > 1 {
		rowWidth += f.spacing * (len(row) - 1)
	}

	leftover := content.Width - rowWidth
	x := content.X
	if leftover > 0 && len(stretchable) > 0 {
		share := leftover / len(stretchable)
		rem := leftover % len(stretchable)
		for n, i := range stretchable {
			widths[i] += share
			if n < rem {
				widths[i]++
			}
		}
	} else if leftover > 0 {
		switch f.alignment {
		case AlignCenter:
			x += leftover / 2
		case AlignEnd:
			x += leftover
		}
	}

	for i, idx := range row {
		e := f.entries[idx]
		g := e.item.Geometry()
		h := g.EffectiveHeight()
		if g.CanStretchV {
			h = rowHeight
		}
		itemY := y
		switch e.align {
		case AlignCenter:
			itemY += (rowHeight - h) / 2
		case AlignEnd:
			itemY += rowHeight - h
		}
		e.item.ApplyGeometry(NewRect(x, itemY, widths[i], h))
		x += widths[i] + f.spacing
	}
}

// partitionRows splits entries into ordered rows of entry indexes such that
// each row fits within width. A row is closed only when it already holds at
// least one item, so an item wider than the whole content width sits alone
// on its own row rather than looping or being dropped.
//
// A non-positive width degrades to one item per row.
func partitionRows(entries []flowEntry, width, spacing int) [][]int {
	if len(entries) == 0 {
		return nil
	}

	rows := make([][]int, 0, 1)
	if width <= 0 {
		for i := range entries {
			rows = append(rows, []int{i})
		}
		return rows
	}

	var current []int
	currentWidth := 0
	for i, e := range entries {
		w := e.item.Geometry().EffectiveWidth()
		if len(current) > 0 && currentWidth+spacing+w > width {
			rows = append(rows, current)
			current = nil
			currentWidth = 0
		}
		if len(current) > 0 {
			currentWidth += spacing
		}
		current = append(current, i)
		currentWidth += w
	}
	return append(rows, current)
}
