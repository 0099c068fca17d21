package layout

import "testing"

func TestGeometryRequest_EffectiveSizes(t *testing.T) {
	type tc struct {
		geo           GeometryRequest
		width, height int
	}

	tests := map[string]tc{
		"hints set": {
			geo:    GeometryRequest{MinWidth: 10, MinHeight: 2, HintWidth: 40, HintHeight: 8},
			width:  40,
			height: 8,
		},
		"unset hints fall back to minimums": {
			geo:    GeometryRequest{MinWidth: 10, MinHeight: 2},
			width:  10,
			height: 2,
		},
		"mixed": {
			geo:    GeometryRequest{MinWidth: 10, MinHeight: 2, HintWidth: 40},
			width:  40,
			height: 2,
		},
		"zero request": {
			geo:    GeometryRequest{},
			width:  0,
			height: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.geo.EffectiveWidth(); got != tt.width {
				t.Errorf("EffectiveWidth() = %d, want %d", got, tt.width)
			}
			if got := tt.geo.EffectiveHeight(); got != tt.height {
				t.Errorf("EffectiveHeight() = %d, want %d", got, tt.height)
			}
		})
	}
}

func TestGeometryRequest_Sizes(t *testing.T) {
	geo := GeometryRequest{MinWidth: 10, MinHeight: 2, HintWidth: 40, HintHeight: 8}

	if got, want := geo.MinSize(), (Size{Width: 10, Height: 2}); got != want {
		t.Errorf("MinSize() = %+v, want %+v", got, want)
	}
	if got, want := geo.HintSize(), (Size{Width: 40, Height: 8}); got != want {
		t.Errorf("HintSize() = %+v, want %+v", got, want)
	}
}
