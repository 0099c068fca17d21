package layout

// fakeItem is a minimal Item that records every rect a layout assigns to it.
type fakeItem struct {
	geo     GeometryRequest
	applied []Rect
}

func sized(w, h int) *fakeItem {
	return &fakeItem{geo: GeometryRequest{
		MinWidth:   w,
		MinHeight:  h,
		HintWidth:  w,
		HintHeight: h,
	}}
}

func (f *fakeItem) Geometry() GeometryRequest { return f.geo }

func (f *fakeItem) ApplyGeometry(r Rect) { f.applied = append(f.applied, r) }

// last returns the most recently applied rect, or a zero Rect if the item
// has never been placed.
func (f *fakeItem) last() Rect {
	if len(f.applied) == 0 {
		return Rect{}
	}
	return f.applied[len(f.applied)-1]
}

// destroyOnApply destroys a sibling layout from inside a geometry
// application, simulating a row torn down mid-propagation.
type destroyOnApply struct {
	fakeItem
	target *ColumnLayout
}

func (d *destroyOnApply) ApplyGeometry(r Rect) {
	d.fakeItem.ApplyGeometry(r)
	if d.target != nil {
		d.target.Destroy()
	}
}

func entriesFor(widths []int) []flowEntry {
	entries := make([]flowEntry, len(widths))
	for i, w := range widths {
		entries[i] = flowEntry{item: sized(w, 10), align: AlignStart}
	}
	return entries
}
