package render

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Built-in draw calls registered by New, in registration order.
const (
	// DrawCallSprites renders from the UI sprite sheet passed to New.
	DrawCallSprites = 0

	// DrawCallText renders from the glyph cache texture. The glyph
	// cache collaborator writes rasterized glyphs into it through
	// Texture and UploadTextureRegion.
	DrawCallText = 1
)

const defaultGlyphCacheSize = 1024

// Renderer batches 2D draw requests into per-draw-call GPU buffers and
// submits them with one GPU draw per non-empty draw call.
//
// A single mutex serializes every mutating operation, so a Renderer may
// be shared between goroutines in the locking sense. The native GPU
// context itself must still only ever be current on one thread; that is
// the calling application's responsibility.
type Renderer struct {
	mu       sync.Mutex
	backend  Backend
	profile  Profile
	registry drawCallRegistry

	// glyphFlush is invoked at the start of Render, before the lock is
	// taken, so the glyph cache collaborator can append its pending
	// text geometry through the normal draw path.
	glyphFlush atomic.Pointer[func()]

	glyphCacheWidth  int
	glyphCacheHeight int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile selects the GPU compatibility profile. The default is
// ProfileModern.
func WithProfile(p Profile) Option {
	return func(r *Renderer) { r.profile = p }
}

// WithGlyphCacheSize overrides the dimensions of the built-in glyph
// cache texture (default 1024x1024).
func WithGlyphCacheSize(width, height int) Option {
	return func(r *Renderer) {
		r.glyphCacheWidth = width
		r.glyphCacheHeight = height
	}
}

// WithGlyphFlush registers the glyph flush hook at construction. See
// SetGlyphFlush.
func WithGlyphFlush(fn func()) Option {
	return func(r *Renderer) {
		if fn == nil {
			r.glyphFlush.Store(nil)
			return
		}
		r.glyphFlush.Store(&fn)
	}
}

// New creates a Renderer on the given backend. It must be called after
// context creation and before any drawing.
//
// New applies the global GPU state the renderer depends on and
// registers two built-in draw calls: DrawCallSprites seeded with the
// given sprite sheet, and DrawCallText seeded with a blank
// single-channel glyph cache texture. A nil or inconsistent sprite
// sheet fails with an error wrapping ErrImageDecode. Shader compile
// failures are logged and rendering continues with a degraded program.
func New(backend Backend, spritesheet *Image, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		backend:          backend,
		profile:          ProfileModern,
		glyphCacheWidth:  defaultGlyphCacheSize,
		glyphCacheHeight: defaultGlyphCacheSize,
	}
	for _, opt := range opts {
		opt(r)
	}

	backend.Setup(r.profile)

	if _, err := r.register(spritesheet, shaderSprite); err != nil {
		return nil, err
	}

	glyphCache := &Image{
		Width:  r.glyphCacheWidth,
		Height: r.glyphCacheHeight,
		Format: PixelFormatAlpha,
		Pixels: make([]byte, r.glyphCacheWidth*r.glyphCacheHeight),
	}
	if _, err := r.register(glyphCache, shaderText); err != nil {
		return nil, err
	}

	backend.CheckError("renderer initialization")
	return r, nil
}

// Profile returns the compatibility profile the renderer was created
// with.
func (r *Renderer) Profile() Profile {
	return r.profile
}

// CreateDrawCall registers a new draw call rendering from the given
// image with the sprite shader pair, and returns its index. Indices are
// assigned in creation order, are never reused and stay valid for the
// lifetime of the renderer.
//
// Each draw call costs one GPU submission per frame it is used in, so
// pack sprites into shared sheets where possible.
func (r *Renderer) CreateDrawCall(img *Image) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	index, err := r.register(img, shaderSprite)
	if err != nil {
		return 0, err
	}
	r.backend.CheckError(fmt.Sprintf("create draw call %d", index))
	return index, nil
}

// register compiles the profile's shader pair, creates the attribute
// buffer and texture, and appends the draw call.
func (r *Renderer) register(img *Image, kind shaderKind) (int, error) {
	if err := img.validate(); err != nil {
		return 0, err
	}

	vert, frag := shaderSources(kind, r.profile)
	program, err := r.backend.CompileProgram(vert, frag)
	if err != nil {
		// Keep going with the degraded program: a black quad beats a
		// crashed render loop.
		Logger().Warn("shader compilation failed", "profile", r.profile.String(), "error", err)
	}

	buffer := newAttributeBuffer(r.backend, r.profile, program)
	texture := r.backend.NewTexture(img.Format, img.Width, img.Height, img.Pixels)

	return r.registry.add(drawCall{texture: texture, program: program, buffer: buffer}), nil
}

// DrawQuad queues a textured axis-aligned rectangle into the given draw
// call. coords are the quad corners in logical pixels, texCoords the
// matching texture coordinates in the 0.0-1.0 range, z the draw-order
// hint in -1.0 to 1.0 (positive in front). No GPU work happens until
// Render.
func (r *Renderer) DrawQuad(coords, texCoords Rect, color Color, z float32, call int) {
	quad := QuadVertices(coords, texCoords, color, z)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registry.get(call).buffer.push(quad)
}

// DrawRotatedQuad queues a textured rectangle rotated by rotation
// radians around its center. See DrawQuad for the other parameters.
func (r *Renderer) DrawRotatedQuad(coords, texCoords Rect, color Color, z float32, call int, rotation float32) {
	quad := RotatedQuadVertices(coords, texCoords, color, z, rotation)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registry.get(call).buffer.push(quad)
}

// DrawNinePatchQuad queues a panel rectangle split into a 3x3 grid:
// the border cells keep the pixel sizes given by patch while the center
// stretches. See DrawQuad for the other parameters.
func (r *Renderer) DrawNinePatchQuad(patch NinePatch, coords, texCoords Rect, color Color, z float32, call int) {
	quads := NinePatchQuads(patch, coords, texCoords, color, z)
	r.mu.Lock()
	defer r.mu.Unlock()
	buffer := r.registry.get(call).buffer
	for _, q := range quads {
		buffer.push(q)
	}
}

// Texture returns the GPU texture handle of a draw call, for
// collaborators that write into it outside the draw path (the glyph
// cache). Panics with *InvalidDrawCallError on an unknown index.
func (r *Renderer) Texture(call int) TextureID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registry.get(call).texture
}

// UploadTextureRegion overwrites a sub-region of a draw call's texture,
// with the region's top-left corner at (x, y). The image format must
// match the texture's: RGBA for sprite draw calls, single-channel for
// DrawCallText.
func (r *Renderer) UploadTextureRegion(call, x, y int, img *Image) error {
	if err := img.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.registry.get(call)
	r.backend.UpdateTexture(c.texture, x, y, img.Width, img.Height, img.Format, img.Pixels)
	r.backend.CheckError(fmt.Sprintf("texture upload to draw call %d", call))
	return nil
}

// SetGlyphFlush registers a hook that Render invokes before submitting
// anything, giving the glyph cache collaborator a chance to flush its
// pending glyph geometry into DrawCallText through the normal draw
// methods. The hook runs outside the renderer's lock.
func (r *Renderer) SetGlyphFlush(fn func()) {
	if fn == nil {
		r.glyphFlush.Store(nil)
		return
	}
	r.glyphFlush.Store(&fn)
}

// Render uploads every non-empty draw call's queued quads and submits
// one GPU draw per draw call, in registration order, then clears the
// queues. width and height are the current viewport size in logical
// pixels; the projection is recomputed every call so resizes can never
// render with a stale matrix.
//
// Draw calls are submitted strictly in registration order and quads
// within a draw call in append order. Together with the z hint this is
// the only overlap control: the renderer never sorts.
func (r *Renderer) Render(width, height float32) {
	// Pixel space (origin top-left, y down) to clip space.
	matrix := [16]float32{
		2 / width, 0, 0, -1,
		0, -2 / height, 0, 1,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}

	if fn := r.glyphFlush.Load(); fn != nil {
		(*fn)()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	legacy := r.profile == ProfileLegacy
	for i := range r.registry.calls {
		call := &r.registry.calls[i]
		if len(call.buffer.queue) == 0 {
			continue
		}

		r.backend.UseProgram(call.program)
		r.backend.SetProjection(call.program, &matrix)
		if !legacy {
			r.backend.BindVertexArray(call.buffer.vao)
		}
		r.backend.BindTexture(call.texture)
		r.backend.BindBuffer(call.buffer.vbo)

		vertexCount := call.buffer.upload(r.backend)

		if legacy {
			r.backend.EnableVertexAttribs(call.program)
		}
		r.backend.DrawTriangles(vertexCount)
		if legacy {
			r.backend.DisableVertexAttribs(call.program)
		}

		call.buffer.clear()
		r.backend.CheckError(fmt.Sprintf("draw call %d", i))
	}
}
