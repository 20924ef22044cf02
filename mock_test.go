package render_test

import (
	"github.com/go-theft-auto/render"
)

// mockBackend is an in-memory render.Backend that records every GPU
// interaction, so tests can observe the buffer reuse policy and the
// per-profile attribute binding behavior without a GL context.
type mockBackend struct {
	profile    render.Profile
	setupCalls int
	compileErr error // returned by CompileProgram when set

	nextHandle uint32

	programsCompiled int
	buffersCreated   int
	vaosCreated      int

	textures       map[render.TextureID]mockTexture
	textureUpdates []textureUpdate

	boundBuffer  render.BufferID
	boundTexture render.TextureID
	boundVAO     render.VertexArrayID

	// Buffer policy observations, keyed by buffer handle.
	allocations map[render.BufferID]int // BufferData calls
	subWrites   map[render.BufferID]int // BufferSubData calls
	bufferSizes map[render.BufferID]int // last allocated size in bytes

	draws          []drawRecord
	enableCalls    int
	disableCalls   int
	vaoBinds       int
	lastProjection [16]float32
}

type mockTexture struct {
	format render.PixelFormat
	width  int
	height int
}

type textureUpdate struct {
	tex           render.TextureID
	x, y          int
	width, height int
}

// drawRecord captures the state visible to one DrawTriangles call.
type drawRecord struct {
	vertices int
	texture  render.TextureID
	buffer   render.BufferID
	vao      render.VertexArrayID
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		textures:    make(map[render.TextureID]mockTexture),
		allocations: make(map[render.BufferID]int),
		subWrites:   make(map[render.BufferID]int),
		bufferSizes: make(map[render.BufferID]int),
	}
}

func (m *mockBackend) handle() uint32 {
	m.nextHandle++
	return m.nextHandle
}

func (m *mockBackend) Setup(profile render.Profile) {
	m.profile = profile
	m.setupCalls++
}

func (m *mockBackend) CompileProgram(vertexSrc, fragmentSrc string) (render.Program, error) {
	m.programsCompiled++
	if m.compileErr != nil {
		return render.Program{}, m.compileErr
	}
	return render.Program{ID: m.handle()}, nil
}

func (m *mockBackend) NewBuffer() render.BufferID {
	m.buffersCreated++
	buf := render.BufferID(m.handle())
	m.boundBuffer = buf
	return buf
}

func (m *mockBackend) NewVertexArray() render.VertexArrayID {
	m.vaosCreated++
	vao := render.VertexArrayID(m.handle())
	m.boundVAO = vao
	return vao
}

func (m *mockBackend) NewTexture(format render.PixelFormat, width, height int, pixels []byte) render.TextureID {
	tex := render.TextureID(m.handle())
	m.textures[tex] = mockTexture{format: format, width: width, height: height}
	m.boundTexture = tex
	return tex
}

func (m *mockBackend) UpdateTexture(tex render.TextureID, x, y, width, height int, format render.PixelFormat, pixels []byte) {
	m.textureUpdates = append(m.textureUpdates, textureUpdate{tex: tex, x: x, y: y, width: width, height: height})
}

func (m *mockBackend) UseProgram(p render.Program) {}

func (m *mockBackend) SetProjection(p render.Program, matrix *[16]float32) {
	m.lastProjection = *matrix
}

func (m *mockBackend) BindVertexArray(vao render.VertexArrayID) {
	m.vaoBinds++
	m.boundVAO = vao
}

func (m *mockBackend) BindTexture(tex render.TextureID) { m.boundTexture = tex }
func (m *mockBackend) BindBuffer(buf render.BufferID)   { m.boundBuffer = buf }

func (m *mockBackend) EnableVertexAttribs(p render.Program) { m.enableCalls++ }

func (m *mockBackend) DisableVertexAttribs(p render.Program) { m.disableCalls++ }

func (m *mockBackend) BufferData(data []byte) {
	m.allocations[m.boundBuffer]++
	m.bufferSizes[m.boundBuffer] = len(data)
}

func (m *mockBackend) BufferSubData(data []byte) {
	m.subWrites[m.boundBuffer]++
}

func (m *mockBackend) DrawTriangles(vertexCount int) {
	m.draws = append(m.draws, drawRecord{
		vertices: vertexCount,
		texture:  m.boundTexture,
		buffer:   m.boundBuffer,
		vao:      m.boundVAO,
	})
}

func (m *mockBackend) CheckError(context string) {}

// totalAllocations sums BufferData calls across all buffers.
func (m *mockBackend) totalAllocations() int {
	total := 0
	for _, n := range m.allocations {
		total += n
	}
	return total
}

// testSheet builds a small valid RGBA image for seeding renderers.
func testSheet(width, height int) *render.Image {
	img, err := render.NewImage(width, height, render.PixelFormatRGBA,
		make([]byte, width*height*4))
	if err != nil {
		panic(err)
	}
	return img
}
