package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/render"
)

// WindowSettings configures CreateWindow.
type WindowSettings struct {
	Title  string
	Width  int
	Height int

	// ForceLegacy skips the modern context attempt and requests an
	// OpenGL 2.1 context directly.
	ForceLegacy bool
}

// Window owns a GLFW window and its OpenGL context. It exists so
// applications can get from zero to a rendering loop without touching
// GLFW directly; anything beyond that (input, monitors) should use the
// glfw package itself.
type Window struct {
	glfwWindow *glfw.Window
	profile    render.Profile
}

// CreateWindow initializes GLFW, opens a window and makes its context
// current on the calling thread. It first requests a 3.3 core context
// and falls back to 2.1 when the driver refuses, in which case
// Profile reports render.ProfileLegacy and the renderer must be created
// with render.WithProfile(render.ProfileLegacy).
//
// Must run on the main thread (use runtime.LockOSThread in an init
// function of the main package).
func CreateWindow(settings WindowSettings) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	w := &Window{}

	if !settings.ForceLegacy {
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 3)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		if runtime.GOOS == "darwin" {
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
		window, err := glfw.CreateWindow(settings.Width, settings.Height, settings.Title, nil, nil)
		if err == nil {
			w.glfwWindow = window
			w.profile = render.ProfileModern
		}
	}

	if w.glfwWindow == nil {
		glfw.DefaultWindowHints()
		glfw.WindowHint(glfw.ContextVersionMajor, 2)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		window, err := glfw.CreateWindow(settings.Width, settings.Height, settings.Title, nil, nil)
		if err != nil {
			glfw.Terminate()
			return nil, fmt.Errorf("create window: %w", err)
		}
		w.glfwWindow = window
		w.profile = render.ProfileLegacy
	}

	w.glfwWindow.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync
	return w, nil
}

// Profile reports which compatibility profile the created context
// supports.
func (w *Window) Profile() render.Profile {
	return w.profile
}

// GLFWWindow exposes the underlying window for input callbacks and
// other GLFW functionality.
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// FramebufferSize returns the size of the framebuffer in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.glfwWindow.GetFramebufferSize()
}

// ShouldClose reports whether the user has requested the window to
// close.
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SwapBuffers presents the rendered frame.
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}
