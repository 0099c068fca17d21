package blocks

import "github.com/mattn/go-runewidth"

// Text is a leaf Item for cell-based hosts. It measures its content in
// terminal cells (wide runes count as two) and records the rect assigned by
// its layout for the host to render from.
type Text struct {
	content string
	rect    Rect
}

// NewText creates a text item with the given content.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Content returns the current content.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the content. The owning layout must be invalidated
// afterwards for the new measurement to take effect.
func (t *Text) SetContent(content string) {
	t.content = content
}

// Geometry reports the content's display width and a single line of height.
func (t *Text) Geometry() GeometryRequest {
	w := runewidth.StringWidth(t.content)
	return GeometryRequest{
		MinWidth:   w,
		MinHeight:  1,
		HintWidth:  w,
		HintHeight: 1,
	}
}

// ApplyGeometry records the rect assigned by the layout.
func (t *Text) ApplyGeometry(rect Rect) {
	t.rect = rect
}

// Rect returns the last rect assigned by a layout pass.
func (t *Text) Rect() Rect {
	return t.rect
}
