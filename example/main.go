// Example opens a window and drives the batched renderer with a few
// thousand sprites, a spinning quad and a nine-patch panel, all from a
// procedurally generated sprite sheet.
//
//	go run ./example/
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/go-theft-auto/render"
	"github.com/go-theft-auto/render/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "render example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	render.SetLogger(slog.Default())

	window, err := opengl.CreateWindow(opengl.WindowSettings{
		Title:  windowTitle,
		Width:  windowWidth,
		Height: windowHeight,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	backend, err := opengl.New()
	if err != nil {
		return err
	}

	r, err := render.New(backend, spriteSheet(), render.WithProfile(window.Profile()))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	white := render.RGB(255, 255, 255)
	angle := float32(0)

	for !window.ShouldClose() {
		window.PollEvents()
		angle += 0.01

		w, h := window.FramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		// A field of sprites from the top-left sheet cell.
		cell := render.Rect{Left: 0, Top: 0, Right: 0.5, Bottom: 0.5}
		for i := 0; i < 5000; i++ {
			x := float32(i%100) * 8
			y := float32(i/100) * 8
			r.DrawQuad(render.XYWH(x, y, 8, 8), cell, white, -0.5, render.DrawCallSprites)
		}

		// A spinning quad on top.
		spin := render.Rect{Left: 0.5, Top: 0, Right: 1, Bottom: 0.5}
		r.DrawRotatedQuad(render.XYWH(360, 220, 80, 80), spin, white, 0.5, render.DrawCallSprites, angle)

		// A nine-patch panel that breathes.
		patch := render.NinePatch{Left: 8, Top: 8, Right: 8, Bottom: 8}
		size := 120 + 60*float32(math.Sin(float64(angle)))
		panel := render.Rect{Left: 0, Top: 0.5, Right: 0.5, Bottom: 1}
		r.DrawNinePatchQuad(patch, render.XYWH(560, 400, size, size), panel, white, 0.2, render.DrawCallSprites)

		r.Render(float32(w), float32(h))
		window.SwapBuffers()
	}

	return nil
}

// spriteSheet builds a 64x64 RGBA sheet with four 32x32 cells: a
// checkerboard, a solid disc, a border frame (nine-patch friendly) and
// a gradient.
func spriteSheet() *render.Image {
	const size = 64
	pixels := make([]byte, size*size*4)
	set := func(x, y int, r, g, b, a byte) {
		i := (y*size + x) * 4
		pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = r, g, b, a
	}

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			// Checkerboard.
			if (x/4+y/4)%2 == 0 {
				set(x, y, 230, 80, 60, 255)
			} else {
				set(x, y, 250, 220, 90, 255)
			}
			// Disc.
			dx, dy := float64(x-16), float64(y-16)
			if math.Hypot(dx, dy) < 14 {
				set(x+32, y, 90, 160, 250, 255)
			}
			// Border frame.
			if x < 4 || y < 4 || x >= 28 || y >= 28 {
				set(x, y+32, 220, 220, 230, 255)
			} else {
				set(x, y+32, 60, 60, 80, 200)
			}
			// Gradient.
			set(x+32, y+32, byte(x*8), byte(y*8), 160, 255)
		}
	}

	img, err := render.NewImage(size, size, render.PixelFormatRGBA, pixels)
	if err != nil {
		panic(err)
	}
	return img
}
