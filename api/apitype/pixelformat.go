package apitype

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

type PixelFormat int

const (
	// RGB565 halves the memory of a decoded image at the cost of colour depth
	RGB565 PixelFormat = iota
	RGBA8888
)

func PixelFormatFromString(value string) (PixelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "rgb565":
		return RGB565, nil
	case "rgba8888", "rgba":
		return RGBA8888, nil
	}
	return RGB565, fmt.Errorf("unknown pixel format '%s'", value)
}

func (s PixelFormat) String() string {
	switch s {
	case RGB565:
		return "RGB565"
	case RGBA8888:
		return "RGBA8888"
	}
	return "UNKNOWN"
}

func (s PixelFormat) BytesPerPixel() int {
	if s == RGB565 {
		return 2
	}
	return 4
}

// RGB565Color packs 5 bits of red, 6 of green and 5 of blue.
type RGB565Color uint16

func (c RGB565Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1f
	g6 := uint32(c>>5) & 0x3f
	b5 := uint32(c) & 0x1f

	// Bit replication so that full intensity maps to 0xffff
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2

	return r8 | r8<<8, g8 | g8<<8, b8 | b8<<8, 0xffff
}

var RGB565Model = color.ModelFunc(rgb565Model)

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(RGB565Color); ok {
		return c
	}
	return toRGB565(c)
}

func toRGB565(c color.Color) RGB565Color {
	r, g, b, _ := c.RGBA()
	return RGB565Color((r>>11)<<11 | (g>>10)<<5 | b>>11)
}

// RGB565Image is an in-memory image of RGB565Color values, stored little endian.
type RGB565Image struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewRGB565Image(r image.Rectangle) *RGB565Image {
	return &RGB565Image{
		Pix:    make([]uint8, 2*r.Dx()*r.Dy()),
		Stride: 2 * r.Dx(),
		Rect:   r,
	}
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

func (p *RGB565Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB565Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *RGB565Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

func (p *RGB565Image) RGB565At(x, y int) RGB565Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	i := p.PixOffset(x, y)
	return RGB565Color(uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8)
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := toRGB565(c)
	p.Pix[i] = uint8(c1)
	p.Pix[i+1] = uint8(c1 >> 8)
}

func (p *RGB565Image) Opaque() bool {
	return true
}
