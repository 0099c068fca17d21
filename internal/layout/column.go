package layout

import (
	"errors"
	"slices"
)

// ErrNilManager is returned when a ColumnLayout is constructed without a
// manager. This is the one programmer error in the package, surfaced at
// construction time rather than deferred to a layout pass.
var ErrNilManager = errors.New("layout: column layout requires a manager")

// ColumnLayout is a single-row layout whose per-column widths are dictated
// by a shared ColumnManager. It performs no width computation of its own;
// it is a pure consumer of the manager's decision.
type ColumnLayout struct {
	manager *ColumnManager
	items   []Item

	// Last rect the host gave us, so manager-initiated propagation can
	// re-place the items without a fresh SetGeometry from the host.
	rect    Rect
	hasRect bool

	// Last applied state, to short-circuit redundant passes. Any item
	// mutation or invalidation clears hasApplied so the next pass places
	// every item even when the shared widths come out unchanged.
	hasApplied    bool
	appliedRect   Rect
	appliedWidths []int

	registered bool
}

// NewColumnLayout creates a column layout registered with manager.
// The layout holds a non-owning reference; call Destroy when the owning
// container goes away so the manager stops consulting it.
func NewColumnLayout(manager *ColumnManager) (*ColumnLayout, error) {
	if manager == nil {
		return nil, ErrNilManager
	}
	l := &ColumnLayout{manager: manager, registered: true}
	manager.register(l)
	return l, nil
}

// Destroy deregisters the layout from its manager. Safe to call more than
// once. After Destroy the layout's hints no longer influence column widths.
func (l *ColumnLayout) Destroy() {
	if !l.registered {
		return
	}
	l.registered = false
	l.manager.deregister(l)
}

// Manager returns the shared manager this layout consults.
func (l *ColumnLayout) Manager() *ColumnManager {
	return l.manager
}

// AddItem appends an item, occupying the next logical column.
func (l *ColumnLayout) AddItem(item Item) {
	l.items = append(l.items, item)
	l.hasApplied = false
	l.manager.Invalidate()
}

// InsertItem inserts an item at column i, shifting later columns right.
// Indexes out of range are clamped.
func (l *ColumnLayout) InsertItem(i int, item Item) {
	if i < 0 {
		i = 0
	}
	if i > len(l.items) {
		i = len(l.items)
	}
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	l.hasApplied = false
	l.manager.Invalidate()
}

// TakeAt removes and returns the item at column i, or nil if out of range.
func (l *ColumnLayout) TakeAt(i int) Item {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	item := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.hasApplied = false
	l.manager.Invalidate()
	return item
}

// RemoveItem removes the first occurrence of item. Returns true if found.
func (l *ColumnLayout) RemoveItem(item Item) bool {
	for i, it := range l.items {
		if it == item {
			l.TakeAt(i)
			return true
		}
	}
	return false
}

// Count returns the number of columns in this row.
func (l *ColumnLayout) Count() int {
	return len(l.items)
}

// ItemAt returns the item at column i, or nil if out of range.
func (l *ColumnLayout) ItemAt(i int) Item {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Invalidate marks the shared widths stale and forces this row's next pass
// to re-place its items. The host calls this when an item's size hints
// change.
func (l *ColumnLayout) Invalidate() {
	l.hasApplied = false
	l.manager.Invalidate()
}

// SetGeometry records the row's rect and resolves widths through the
// manager. The manager may recompute for every registered layout, not just
// this one; this layout then places its items contiguously using the width
// at each of its own column indexes.
func (l *ColumnLayout) SetGeometry(rect Rect) {
	l.rect = rect
	l.hasRect = true
	widths := l.manager.ResolveWidths(rect.Width)
	l.applyWidths(widths)
}

// SizeHint reports the manager's summed nominal width and the tallest
// item's preferred height.
func (l *ColumnLayout) SizeHint() Size {
	height := 0
	for _, item := range l.items {
		if h := item.Geometry().EffectiveHeight(); h > height {
			height = h
		}
	}
	return Size{Width: l.manager.SummedNominalWidth(), Height: height}
}

// MinimumSize reports the manager's summed nominal width and the tallest
// item's minimum height. Width comes from the manager because this row must
// stay at least as wide as the widest registered sibling.
func (l *ColumnLayout) MinimumSize() Size {
	height := 0
	for _, item := range l.items {
		if h := item.Geometry().MinHeight; h > height {
			height = h
		}
	}
	return Size{Width: l.manager.SummedNominalWidth(), Height: height}
}

// applyWidths places the items left-to-right at the manager's widths within
// the last known rect. Called both from SetGeometry and from the manager's
// cross-layout propagation.
func (l *ColumnLayout) applyWidths(widths []int) {
	if !l.hasRect {
		return
	}
	if l.hasApplied && l.rect == l.appliedRect && slices.Equal(widths, l.appliedWidths) {
		return
	}
	x := l.rect.X
	for i, item := range l.items {
		width := 0
		if i < len(widths) {
			width = widths[i]
		}
		item.ApplyGeometry(NewRect(x, l.rect.Y, width, l.rect.Height))
		x += width + l.manager.spacing
	}
	l.hasApplied = true
	l.appliedRect = l.rect
	l.appliedWidths = slices.Clone(widths)
}
