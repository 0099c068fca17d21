package layout

import (
	"slices"

	"github.com/sharpencrag/go-blocks/internal/debug"
)

// ColumnManager unifies column widths across multiple ColumnLayouts.
//
// Each registered layout contributes its items' width hints; a column's
// natural width is the maximum hint at that column index over every layout
// that actually has an item there. Layouts with fewer columns simply do not
// participate in the higher indexes, which is what lets non-contiguous rows
// stay aligned.
//
// The manager holds non-owning references: layouts register on construction
// and deregister on Destroy, and a layout deregistered mid-recompute is
// skipped rather than dereferenced.
//
// Widths are recomputed lazily on the next ResolveWidths after an
// invalidation, never eagerly. Two consecutive ResolveWidths calls with no
// intervening mutation return identical results.
type ColumnManager struct {
	spacing      int
	columnWidths map[int]int
	stretch      map[int]struct{}

	// Registration order, live layouts only.
	layouts []*ColumnLayout

	dirty       bool
	cachedAvail int
	cached      []int
}

// NewColumnManager creates a manager with DefaultSpacing between columns.
func NewColumnManager() *ColumnManager {
	return NewColumnManagerSpacing(DefaultSpacing)
}

// NewColumnManagerSpacing creates a manager with the given inter-column
// spacing.
func NewColumnManagerSpacing(spacing int) *ColumnManager {
	return &ColumnManager{
		spacing:      spacing,
		columnWidths: make(map[int]int),
		stretch:      make(map[int]struct{}),
		dirty:        true,
	}
}

// Spacing returns the gap between columns. Column layouts share the
// manager's spacing; they have none of their own.
func (m *ColumnManager) Spacing() int {
	return m.spacing
}

// SetSpacing sets the gap between columns.
func (m *ColumnManager) SetSpacing(n int) {
	m.spacing = n
	m.Invalidate()
}

// SetColumnWidth fixes an explicit width for a column, overriding natural
// sizing even when the override is smaller than the largest item's hint
// (clipping is then the user's explicit choice). An index beyond the current
// column count is accepted silently and takes effect once a layout grows
// that many columns. Negative indexes or widths are ignored.
func (m *ColumnManager) SetColumnWidth(column, width int) {
	if column < 0 || width < 0 {
		return
	}
	m.columnWidths[column] = width
	m.Invalidate()
}

// ClearColumnWidth removes a fixed width, returning the column to natural
// sizing.
func (m *ColumnManager) ClearColumnWidth(column int) {
	delete(m.columnWidths, column)
	m.Invalidate()
}

// SetStretchColumns replaces the set of columns that absorb leftover space.
// Negative indexes are ignored.
func (m *ColumnManager) SetStretchColumns(columns ...int) {
	m.stretch = make(map[int]struct{}, len(columns))
	for _, c := range columns {
		if c >= 0 {
			m.stretch[c] = struct{}{}
		}
	}
	m.Invalidate()
}

// Invalidate discards the cached widths. Any mutation to the registry, the
// overrides, the stretch set, or a registered layout's items routes through
// here.
func (m *ColumnManager) Invalidate() {
	m.dirty = true
}

// LayoutCount returns the number of registered layouts.
func (m *ColumnManager) LayoutCount() int {
	return len(m.layouts)
}

// ResolveWidths returns one width per column index, recomputing only when
// the manager is dirty or the available width has changed. With no
// registered layouts it returns an empty sequence.
//
// After a recompute that changed the widths, every registered layout is told
// to re-apply its geometry, including layouts that did not initiate the
// call. That propagation is what keeps non-adjacent rows visually aligned.
func (m *ColumnManager) ResolveWidths(availableWidth int) []int {
	if !m.dirty && availableWidth == m.cachedAvail && m.cached != nil {
		return slices.Clone(m.cached)
	}

	widths := m.computeWidths(availableWidth)
	changed := !slices.Equal(widths, m.cached)
	m.cached = widths
	m.cachedAvail = availableWidth
	m.dirty = false

	if changed {
		debug.Logf("columns: recomputed %d widths for available %d", len(widths), availableWidth)
		m.propagate(widths)
	}
	return slices.Clone(widths)
}

// SummedNominalWidth returns the total width of all columns plus spacing,
// without any stretch applied. Column layouts report this as their minimum
// width.
func (m *ColumnManager) SummedNominalWidth() int {
	widths := m.nominalWidths()
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += m.spacing * (len(widths) - 1)
	}
	return total
}

// register adds a layout to the registry in registration order.
func (m *ColumnManager) register(l *ColumnLayout) {
	m.layouts = append(m.layouts, l)
	m.Invalidate()
}

// deregister removes a layout. Its hints no longer contribute to any
// column's width.
func (m *ColumnManager) deregister(l *ColumnLayout) {
	for i, registered := range m.layouts {
		if registered == l {
			m.layouts = append(m.layouts[:i], m.layouts[i+1:]...)
			m.Invalidate()
			return
		}
	}
}

// computeWidths is the pure width computation: natural widths from the max
// hint per column, overrides applied on top, then stretch distribution.
func (m *ColumnManager) computeWidths(availableWidth int) []int {
	widths := m.nominalWidths()
	if len(widths) == 0 {
		return widths
	}

	stretchable := make([]int, 0, len(m.stretch))
	for c := range m.stretch {
		if c < len(widths) {
			stretchable = append(stretchable, c)
		}
	}
	if len(stretchable) == 0 {
		return widths
	}
	slices.Sort(stretchable)

	used := m.spacing * (len(widths) - 1)
	for _, w := range widths {
		used += w
	}
	leftover := availableWidth - used
	if leftover <= 0 {
		return widths
	}

	// Even split; leftover units that don't divide evenly go one each to
	// the lowest-indexed stretch columns.
	share := leftover / len(stretchable)
	rem := leftover % len(stretchable)
	for i, c := range stretchable {
		widths[c] += share
		if i < rem {
			widths[c]++
		}
	}
	return widths
}

// nominalWidths returns override-or-natural widths with no stretch.
func (m *ColumnManager) nominalWidths() []int {
	maxColumns := 0
	for _, l := range m.layouts {
		if n := l.Count(); n > maxColumns {
			maxColumns = n
		}
	}

	widths := make([]int, maxColumns)
	for c := 0; c < maxColumns; c++ {
		if w, ok := m.columnWidths[c]; ok {
			widths[c] = w
			continue
		}
		natural := 0
		for _, l := range m.layouts {
			if c >= l.Count() {
				continue
			}
			if w := l.ItemAt(c).Geometry().EffectiveWidth(); w > natural {
				natural = w
			}
		}
		widths[c] = natural
	}
	return widths
}

// propagate re-applies geometry on every registered layout. Iteration runs
// over a snapshot and checks liveness so a layout destroyed by an item's
// ApplyGeometry callback is skipped rather than dereferenced.
func (m *ColumnManager) propagate(widths []int) {
	for _, l := range slices.Clone(m.layouts) {
		if l.registered {
			l.applyWidths(widths)
		}
	}
}
