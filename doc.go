// Package render implements a batched 2D rendering core for
// immediate-mode sprite and text drawing.
//
// Draw requests (textured quads, rotated quads, nine-patch panels) are
// queued per draw call, where a draw call is one texture/shader/buffer
// bucket created with [Renderer.CreateDrawCall]. [Renderer.Render]
// uploads each non-empty queue into its persistent GPU buffer and
// issues a single GPU submission per draw call, so a frame drawing tens
// of thousands of sprites from one sheet still costs one upload and one
// draw.
//
// The core is GPU-agnostic: all GPU work goes through the [Backend]
// interface. Package backend/opengl implements it for OpenGL contexts
// in both capability profiles ([ProfileModern] with vertex array
// objects, [ProfileLegacy] for OpenGL 2.1 class contexts without them).
//
// A typical frame:
//
//	backend, _ := opengl.New()
//	sheet, _ := render.DecodeImage(spritePNG)
//	r, err := render.New(backend, sheet)
//	...
//	for !window.ShouldClose() {
//		r.DrawQuad(render.XYWH(x, y, 16, 16), sprite, render.RGB(255, 255, 255), 0, render.DrawCallSprites)
//		r.Render(float32(w), float32(h))
//		window.SwapBuffers()
//	}
//
// Renderer methods are serialized by an internal mutex, but the native
// GPU context must only ever be current on one thread; keep rendering
// on the thread that owns the context.
package render
