package render

import "math"

// QuadVertices generates the vertices of an axis-aligned textured
// rectangle. coords are the corners of the quad in logical pixels,
// texCoords the matching texture coordinates in the 0.0-1.0 range.
func QuadVertices(coords, texCoords Rect, color Color, z float32) Quad {
	x0, y0, x1, y1 := coords.Left, coords.Top, coords.Right, coords.Bottom
	tx0, ty0, tx1, ty1 := texCoords.Left, texCoords.Top, texCoords.Right, texCoords.Bottom

	return Quad{
		{Pos: [3]float32{x0, y0, z}, TexCoord: [2]float32{tx0, ty0}, Color: color},
		{Pos: [3]float32{x1, y0, z}, TexCoord: [2]float32{tx1, ty0}, Color: color},
		{Pos: [3]float32{x1, y1, z}, TexCoord: [2]float32{tx1, ty1}, Color: color},
		{Pos: [3]float32{x0, y0, z}, TexCoord: [2]float32{tx0, ty0}, Color: color},
		{Pos: [3]float32{x1, y1, z}, TexCoord: [2]float32{tx1, ty1}, Color: color},
		{Pos: [3]float32{x0, y1, z}, TexCoord: [2]float32{tx0, ty1}, Color: color},
	}
}

// RotatedQuadVertices generates the vertices of a textured rectangle
// rotated by rotation radians around its center. Texture coordinates
// are not rotated.
func RotatedQuadVertices(coords, texCoords Rect, color Color, z, rotation float32) Quad {
	sin64, cos64 := math.Sincos(float64(rotation))
	sin, cos := float32(sin64), float32(cos64)
	rotx := func(x, y float32) float32 { return x*cos - y*sin }
	roty := func(x, y float32) float32 { return x*sin + y*cos }

	x0, y0, x1, y1 := coords.Left, coords.Top, coords.Right, coords.Bottom
	cx, cy := (x0+x1)*0.5, (y0+y1)*0.5
	rx0, ry0, rx1, ry1 := x0-cx, y0-cy, x1-cx, y1-cy

	x00, y00 := cx+rotx(rx0, ry0), cy+roty(rx0, ry0)
	x10, y10 := cx+rotx(rx1, ry0), cy+roty(rx1, ry0)
	x11, y11 := cx+rotx(rx1, ry1), cy+roty(rx1, ry1)
	x01, y01 := cx+rotx(rx0, ry1), cy+roty(rx0, ry1)

	tx0, ty0, tx1, ty1 := texCoords.Left, texCoords.Top, texCoords.Right, texCoords.Bottom

	return Quad{
		{Pos: [3]float32{x00, y00, z}, TexCoord: [2]float32{tx0, ty0}, Color: color},
		{Pos: [3]float32{x10, y10, z}, TexCoord: [2]float32{tx1, ty0}, Color: color},
		{Pos: [3]float32{x11, y11, z}, TexCoord: [2]float32{tx1, ty1}, Color: color},
		{Pos: [3]float32{x00, y00, z}, TexCoord: [2]float32{tx0, ty0}, Color: color},
		{Pos: [3]float32{x11, y11, z}, TexCoord: [2]float32{tx1, ty1}, Color: color},
		{Pos: [3]float32{x01, y01, z}, TexCoord: [2]float32{tx0, ty1}, Color: color},
	}
}

// NinePatchQuads splits a rectangle into a 3x3 grid of quads for
// scalable panel rendering. The border cells keep the pixel sizes given
// by patch while the center cell stretches; texture coordinates are
// partitioned at the matching fractional positions. The nine quads tile
// coords exactly, in row-major order (top-left cell first).
//
// Borders wider than the rectangle itself are scaled down so the center
// collapses to zero area instead of the cells overlapping.
func NinePatchQuads(patch NinePatch, coords, texCoords Rect, color Color, z float32) [9]Quad {
	xs := splitSpan(coords.Left, coords.Right, patch.Left, patch.Right)
	ys := splitSpan(coords.Top, coords.Bottom, patch.Top, patch.Bottom)
	us := mapSpan(xs, texCoords.Left, texCoords.Right)
	vs := mapSpan(ys, texCoords.Top, texCoords.Bottom)

	var quads [9]Quad
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := Rect{Left: xs[col], Top: ys[row], Right: xs[col+1], Bottom: ys[row+1]}
			tex := Rect{Left: us[col], Top: vs[row], Right: us[col+1], Bottom: vs[row+1]}
			quads[row*3+col] = QuadVertices(cell, tex, color, z)
		}
	}
	return quads
}

// splitSpan places the two inner cuts of a three-cell split between lo
// and hi. The outer cells get the requested sizes; if together they
// fill or exceed the span, both cuts collapse onto one proportional
// point so the middle cell has exactly zero size and the cells never
// overlap.
func splitSpan(lo, hi, first, last float32) [4]float32 {
	if first < 0 {
		first = 0
	}
	if last < 0 {
		last = 0
	}
	size := hi - lo
	if sum := first + last; sum >= size && sum > 0 {
		cut := lo + size*(first/sum)
		return [4]float32{lo, cut, cut, hi}
	}
	return [4]float32{lo, lo + first, hi - last, hi}
}

// mapSpan transfers the cut positions of src onto the lo-hi span,
// preserving their fractional placement.
func mapSpan(src [4]float32, lo, hi float32) [4]float32 {
	span := src[3] - src[0]
	if span == 0 {
		return [4]float32{lo, lo, hi, hi}
	}
	return [4]float32{
		lo,
		lo + (hi-lo)*(src[1]-src[0])/span,
		lo + (hi-lo)*(src[2]-src[0])/span,
		hi,
	}
}
