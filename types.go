package render

// Rect describes the corners of an axis-aligned rectangle in logical
// pixel space (origin top-left, y pointing down). Texture coordinate
// rectangles use the same layout with values in the 0.0-1.0 range.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// XYWH builds a Rect from a top-left position and a size.
func XYWH(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Color is a straight (non-premultiplied) RGBA color with 0-255 channels.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Vertex is one vertex as uploaded to the GPU. The field order defines
// the attribute layout: position, then texture coordinates, then color.
// Position z is a draw-order hint in the -1.0 to 1.0 range; positive
// values are in front.
type Vertex struct {
	Pos      [3]float32
	TexCoord [2]float32
	Color    Color
}

// Quad is the 6-vertex (two counter-clockwise triangles) unit every
// geometry generator emits. Corner order over the two triangles is
// top-left, top-right, bottom-right, then top-left, bottom-right,
// bottom-left.
type Quad [6]Vertex

// NinePatch describes the fixed border widths of a 3x3 panel split, in
// logical pixels. When a nine-patch quad is drawn, the four border
// strips keep these sizes while the center cell stretches.
type NinePatch struct {
	Left, Top, Right, Bottom float32
}
