package terrain

import (
	"image"
	"image/color"
)

// Layout is the channel layout of a PixelBuffer
type Layout int

const (
	LayoutGray Layout = 1
	LayoutRGB  Layout = 3
)

// Channels returns the number of 8-bit channels per pixel
func (l Layout) Channels() int {
	return int(l)
}

func (l Layout) String() string {
	switch l {
	case LayoutGray:
		return "gray"
	case LayoutRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// PixelBuffer is a row-major 8-bit image
type PixelBuffer struct {
	Width  int
	Height int
	Layout Layout
	Pix    []uint8
}

// NewPixelBuffer allocates a zeroed buffer
func NewPixelBuffer(width, height int, layout Layout) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Layout: layout,
		Pix:    make([]uint8, width*height*layout.Channels()),
	}
}

func (b *PixelBuffer) offset(x, y int) int {
	return (y*b.Width + x) * b.Layout.Channels()
}

// SetGray writes an intensity. Only valid for LayoutGray.
func (b *PixelBuffer) SetGray(x, y int, v uint8) {
	b.Pix[b.offset(x, y)] = v
}

// SetRGB writes a color. Only valid for LayoutRGB.
func (b *PixelBuffer) SetRGB(x, y int, c RGB) {
	i := b.offset(x, y)
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
}

// At returns the channels of pixel (x, y)
func (b *PixelBuffer) At(x, y int) []uint8 {
	i := b.offset(x, y)
	return b.Pix[i : i+b.Layout.Channels()]
}

// Image converts the buffer to an image.Image. Gray buffers become
// *image.Gray; RGB buffers become an opaque *image.RGBA, which PNG encodes
// as 8-bit truecolor without alpha.
func (b *PixelBuffer) Image() image.Image {
	rect := image.Rect(0, 0, b.Width, b.Height)

	if b.Layout == LayoutGray {
		img := image.NewGray(rect)
		copy(img.Pix, b.Pix)
		return img
	}

	img := image.NewRGBA(rect)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			px := b.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: px[0], G: px[1], B: px[2], A: 0xff})
		}
	}
	return img
}
