package layout

// GeometryRequest captures a widget's size constraints as reported by the
// host toolkit. Layouts read it; they never modify it.
//
// A zero hint means "unset" and falls back to the corresponding minimum.
type GeometryRequest struct {
	// Minimum acceptable dimensions.
	MinWidth  int
	MinHeight int

	// Preferred dimensions. Zero means unset.
	HintWidth  int
	HintHeight int

	// Size-policy expansion flags. An item that can stretch absorbs
	// leftover space on that axis when its layout has any to give.
	CanStretchH bool
	CanStretchV bool
}

// EffectiveWidth returns the preferred width, falling back to the minimum
// when the hint is unset.
func (g GeometryRequest) EffectiveWidth() int {
	if g.HintWidth > 0 {
		return g.HintWidth
	}
	return g.MinWidth
}

// EffectiveHeight returns the preferred height, falling back to the minimum
// when the hint is unset.
func (g GeometryRequest) EffectiveHeight() int {
	if g.HintHeight > 0 {
		return g.HintHeight
	}
	return g.MinHeight
}

// MinSize returns the minimum dimensions as a Size.
func (g GeometryRequest) MinSize() Size {
	return Size{Width: g.MinWidth, Height: g.MinHeight}
}

// HintSize returns the effective preferred dimensions as a Size.
func (g GeometryRequest) HintSize() Size {
	return Size{Width: g.EffectiveWidth(), Height: g.EffectiveHeight()}
}
