// Package opengl provides the OpenGL backend for the render package,
// covering both the modern (vertex array object) and legacy (OpenGL
// 2.1 class) profiles, plus a GLFW window bootstrap.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/go-theft-auto/render"
)

// Backend implements render.Backend with OpenGL. The gl v2.1 bindings
// include all registered extensions, so the vertex array object entry
// points used by the modern profile are available from the same import.
//
// All methods must run on the thread that owns the GL context.
type Backend struct {
	profile render.Profile
}

// New initializes the OpenGL function pointers and returns a Backend.
// The GL context must be current on the calling thread.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Backend{}, nil
}

// Setup applies the global state the renderer depends on: depth
// testing, straight-alpha blending and, on the legacy profile, the
// fixed-function texturing flag.
func (b *Backend) Setup(profile render.Profile) {
	b.profile = profile
	if profile == render.ProfileLegacy {
		gl.Enable(gl.TEXTURE_2D)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// CompileProgram compiles and links a shader pair and resolves the
// renderer's uniform and attribute locations. Unlike a conventional
// loader it does not bail out on failure: the diagnostic is returned as
// the error, but the (possibly unusable) program is returned too so the
// render loop can keep running with it. OpenGL treats location -1 as a
// no-op, so a degraded program is safe to use.
func (b *Backend) CompileProgram(vertexSrc, fragmentSrc string) (render.Program, error) {
	var firstErr error

	compile := func(kind uint32, src, name string) uint32 {
		shader := gl.CreateShader(kind)
		csources, free := gl.Strs(src + "\x00")
		gl.ShaderSource(shader, 1, csources, nil)
		free()
		gl.CompileShader(shader)

		var status int32
		gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
		if status == gl.FALSE && firstErr == nil {
			firstErr = fmt.Errorf("%s shader compilation failed: %s", name, shaderInfoLog(shader))
		}
		return shader
	}

	vertexShader := compile(gl.VERTEX_SHADER, vertexSrc, "vertex")
	fragmentShader := compile(gl.FRAGMENT_SHADER, fragmentSrc, "fragment")

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE && firstErr == nil {
		firstErr = fmt.Errorf("shader program linking failed: %s", programInfoLog(program))
	}

	// The shaders are owned by the program now.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	gl.UseProgram(program)
	p := render.Program{
		ID:            program,
		ProjectionLoc: gl.GetUniformLocation(program, gl.Str("projection_matrix\x00")),
		PositionLoc:   uint32(gl.GetAttribLocation(program, gl.Str("position\x00"))),
		TexCoordLoc:   uint32(gl.GetAttribLocation(program, gl.Str("texcoord\x00"))),
		ColorLoc:      uint32(gl.GetAttribLocation(program, gl.Str("color\x00"))),
	}
	return p, firstErr
}

func shaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return "(no info log)"
	}
	log := make([]byte, length+1)
	gl.GetShaderInfoLog(shader, length, nil, &log[0])
	return string(log[:length])
}

func programInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return "(no info log)"
	}
	log := make([]byte, length+1)
	gl.GetProgramInfoLog(program, length, nil, &log[0])
	return string(log[:length])
}

// NewBuffer creates a vertex buffer and leaves it bound.
func (b *Backend) NewBuffer() render.BufferID {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	return render.BufferID(vbo)
}

// NewVertexArray creates a vertex array object and leaves it bound.
func (b *Backend) NewVertexArray() render.VertexArrayID {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return render.VertexArrayID(vao)
}

// textureFormat maps a pixel format to GL internal and pixel formats.
// Single-channel textures use GL_RED on the modern profile and GL_ALPHA
// on the legacy one, where unsized RED internal formats don't exist.
func (b *Backend) textureFormat(format render.PixelFormat) (internal int32, pixel uint32) {
	switch {
	case format == render.PixelFormatAlpha && b.profile == render.ProfileLegacy:
		return gl.ALPHA, gl.ALPHA
	case format == render.PixelFormatAlpha:
		return gl.RED, gl.RED
	default:
		return gl.RGBA, gl.RGBA
	}
}

// NewTexture creates a texture and uploads its initial pixels.
func (b *Backend) NewTexture(format render.PixelFormat, width, height int, pixels []byte) render.TextureID {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	internal, pixel := b.textureFormat(format)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0,
		pixel, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return render.TextureID(tex)
}

// UpdateTexture overwrites a sub-region of a texture.
func (b *Backend) UpdateTexture(tex render.TextureID, x, y, width, height int, format render.PixelFormat, pixels []byte) {
	_, pixel := b.textureFormat(format)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(x), int32(y), int32(width), int32(height),
		pixel, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (b *Backend) UseProgram(p render.Program) {
	gl.UseProgram(p.ID)
}

// SetProjection uploads the projection matrix of the currently used
// program. The matrix arrives row-major and is uploaded untransposed;
// the renderer's vertex shaders multiply with the vector on the left to
// compensate.
func (b *Backend) SetProjection(p render.Program, matrix *[16]float32) {
	gl.UniformMatrix4fv(p.ProjectionLoc, 1, false, &matrix[0])
}

func (b *Backend) BindVertexArray(vao render.VertexArrayID) {
	gl.BindVertexArray(uint32(vao))
}

func (b *Backend) BindTexture(tex render.TextureID) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

func (b *Backend) BindBuffer(buf render.BufferID) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
}

// EnableVertexAttribs configures the position, texcoord and color
// attribute arrays against the currently bound buffer and enables
// them. The stride and offsets come straight from render.Vertex's
// memory layout.
func (b *Backend) EnableVertexAttribs(p render.Program) {
	stride := int32(unsafe.Sizeof(render.Vertex{}))

	gl.VertexAttribPointerWithOffset(p.PositionLoc, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(p.PositionLoc)

	gl.VertexAttribPointerWithOffset(p.TexCoordLoc, 2, gl.FLOAT, false, stride,
		unsafe.Offsetof(render.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(p.TexCoordLoc)

	// Color is normalized uint8x4.
	gl.VertexAttribPointerWithOffset(p.ColorLoc, 4, gl.UNSIGNED_BYTE, true, stride,
		unsafe.Offsetof(render.Vertex{}.Color))
	gl.EnableVertexAttribArray(p.ColorLoc)
}

// DisableVertexAttribs disables the three attribute arrays again. The
// legacy profile calls this after every draw so attribute-array state
// cannot leak into programs with a different layout.
func (b *Backend) DisableVertexAttribs(p render.Program) {
	gl.DisableVertexAttribArray(p.PositionLoc)
	gl.DisableVertexAttribArray(p.TexCoordLoc)
	gl.DisableVertexAttribArray(p.ColorLoc)
}

// BufferData allocates the bound buffer at exactly len(data) bytes with
// a streaming usage hint and fills it.
func (b *Backend) BufferData(data []byte) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STREAM_DRAW)
}

// BufferSubData updates the bound buffer in place.
func (b *Backend) BufferSubData(data []byte) {
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data), gl.Ptr(data))
}

// DrawTriangles issues one draw covering vertexCount vertices.
func (b *Backend) DrawTriangles(vertexCount int) {
	gl.DrawArrays(gl.TRIANGLES, 0, int32(vertexCount))
}

// CheckError drains the GL error queue and logs every code keyed by the
// call-site context. GL keeps running after most errors, so this never
// aborts anything.
func (b *Backend) CheckError(context string) {
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return
		}
		render.Logger().Warn("OpenGL error", "context", context, "error", errorString(code))
	}
}

func errorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("0x%04X", code)
	}
}
