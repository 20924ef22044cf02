package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // the sprite sheet and panel assets ship as PNG

	xdraw "golang.org/x/image/draw"
)

// ErrImageDecode is wrapped by all errors arising from malformed or
// inconsistent image data.
var ErrImageDecode = errors.New("render: cannot decode image")

// Image is decoded pixel data ready for texture upload. Pixels holds
// Width*Height*Format.Channels() bytes in row-major order with no
// padding between rows.
type Image struct {
	Width  int
	Height int
	Format PixelFormat
	Pixels []byte
}

// NewImage wraps raw pixel data produced by an external decoder. It
// returns an error wrapping ErrImageDecode when the pixel length does
// not match the dimensions and format.
func NewImage(width, height int, format PixelFormat, pixels []byte) (*Image, error) {
	img := &Image{Width: width, Height: height, Format: format, Pixels: pixels}
	if err := img.validate(); err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeImage decodes an encoded image (PNG, or any format registered
// with image.RegisterFormat) into tightly packed RGBA pixels.
func DecodeImage(data []byte) (*Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	// NRGBA keeps the channels straight (non-premultiplied), matching
	// Color and the blend function the backends set up.
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Copy(dst, image.Point{}, src, bounds, xdraw.Src, nil)

	return &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: PixelFormatRGBA,
		Pixels: dst.Pix,
	}, nil
}

func (img *Image) validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrImageDecode)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d", ErrImageDecode, img.Width, img.Height)
	}
	want := img.Width * img.Height * img.Format.Channels()
	if len(img.Pixels) != want {
		return fmt.Errorf("%w: %dx%d image has %d pixel bytes, want %d",
			ErrImageDecode, img.Width, img.Height, len(img.Pixels), want)
	}
	return nil
}
