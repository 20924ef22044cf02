package render

// Profile selects between the two GPU context capability levels the
// renderer supports. The profile is fixed when the Renderer is created
// and never changes afterwards.
type Profile int

const (
	// ProfileModern assumes persistent vertex array objects and GLSL 330
	// shaders. This is the default.
	ProfileModern Profile = iota

	// ProfileLegacy targets contexts without vertex array objects
	// (OpenGL 2.1 class). Vertex attribute arrays are set up and torn
	// down around every draw instead.
	ProfileLegacy
)

func (p Profile) String() string {
	if p == ProfileLegacy {
		return "legacy"
	}
	return "modern"
}

// PixelFormat describes the channel layout of texture pixel data.
type PixelFormat int

const (
	// PixelFormatRGBA is 4 bytes per pixel, straight alpha.
	PixelFormatRGBA PixelFormat = iota

	// PixelFormatAlpha is a single coverage channel per pixel, used for
	// the glyph cache texture.
	PixelFormatAlpha
)

// Channels returns the number of bytes per pixel of the format.
func (f PixelFormat) Channels() int {
	if f == PixelFormatAlpha {
		return 1
	}
	return 4
}

// TextureID is an opaque GPU texture handle issued by a Backend.
type TextureID uint32

// BufferID is an opaque GPU vertex buffer handle issued by a Backend.
type BufferID uint32

// VertexArrayID is an opaque vertex array object handle issued by a
// Backend. Only used with ProfileModern.
type VertexArrayID uint32

// Program is a compiled and linked shader program together with its
// resolved uniform and attribute locations. Programs are immutable once
// created and owned exclusively by their draw call.
type Program struct {
	ID            uint32
	ProjectionLoc int32
	PositionLoc   uint32
	TexCoordLoc   uint32
	ColorLoc      uint32
}

// Backend is the GPU API surface the renderer runs on. backend/opengl
// implements it with go-gl; tests implement it with an in-memory fake.
//
// All methods must be called from the thread that owns the native
// context. The Renderer serializes its own calls with a mutex but
// cannot migrate the context between threads.
type Backend interface {
	// Setup applies the global state the renderer relies on: depth
	// testing, straight-alpha blending and, for the legacy profile, the
	// fixed-function texturing flag.
	Setup(profile Profile)

	// CompileProgram compiles and links a vertex/fragment shader pair
	// and resolves the projection_matrix, position, texcoord and color
	// locations. On compile or link failure it returns the diagnostic
	// as the error together with a best-effort Program; the renderer
	// logs the diagnostic and keeps rendering with the degraded
	// program, which the GPU API treats as a no-op.
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)

	// NewBuffer creates a vertex buffer and leaves it bound.
	NewBuffer() BufferID

	// NewVertexArray creates a vertex array object and leaves it bound,
	// so that a following EnableVertexAttribs is recorded into it.
	// Never called for the legacy profile.
	NewVertexArray() VertexArrayID

	// NewTexture creates a texture and uploads its initial pixels.
	// len(pixels) is width*height*format.Channels().
	NewTexture(format PixelFormat, width, height int, pixels []byte) TextureID

	// UpdateTexture overwrites a sub-region of an existing texture.
	UpdateTexture(tex TextureID, x, y, width, height int, format PixelFormat, pixels []byte)

	UseProgram(p Program)

	// SetProjection uploads the projection matrix of the currently used
	// program.
	SetProjection(p Program, matrix *[16]float32)

	BindVertexArray(vao VertexArrayID)
	BindTexture(tex TextureID)
	BindBuffer(buf BufferID)

	// EnableVertexAttribs configures and enables the position, texcoord
	// and color attribute arrays of the program against the currently
	// bound buffer. DisableVertexAttribs reverses it; the legacy path
	// brackets every draw with the pair so attribute-array state cannot
	// leak between programs.
	EnableVertexAttribs(p Program)
	DisableVertexAttribs(p Program)

	// BufferData allocates the bound buffer at exactly len(data) bytes
	// with a streaming usage hint and fills it. BufferSubData updates
	// the bound buffer in place without reallocating.
	BufferData(data []byte)
	BufferSubData(data []byte)

	// DrawTriangles issues one draw covering vertexCount vertices from
	// the bound buffer.
	DrawTriangles(vertexCount int)

	// CheckError drains pending GPU error codes and reports them keyed
	// by the given call-site context. Never fatal.
	CheckError(context string)
}
