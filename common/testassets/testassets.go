// Package testassets generates image fixtures for tests. JPEGs are written
// with an optional Exif APP1 segment that only carries the orientation tag.
package testassets

import (
	"bytes"
	"encoding/binary"
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const NoOrientation = 0

var (
	Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Marker     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// MarkerImage returns a white image with a red square of markerSize in the
// given corner.
func MarkerImage(width int, height int, corner image.Point, markerSize int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, Background)
		}
	}
	minX := clamp(corner.X, 0, width-markerSize)
	minY := clamp(corner.Y, 0, height-markerSize)
	for y := minY; y < minY+markerSize; y++ {
		for x := minX; x < minX+markerSize; x++ {
			img.SetNRGBA(x, y, Marker)
		}
	}
	return img
}

// PatternImage returns an image where every pixel has a unique colour so that
// geometric transforms can be compared pixel by pixel.
func PatternImage(width int, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

func WriteJpeg(t *testing.T, dir string, name string, img image.Image, orientation int) string {
	t.Helper()
	return writeFile(t, dir, name, JpegWithExif(t, img, orientation))
}

func WritePng(t *testing.T, dir string, name string, img image.Image) string {
	t.Helper()
	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		t.Fatal(err)
	}
	return writeFile(t, dir, name, buffer.Bytes())
}

func WriteBytes(t *testing.T, dir string, name string, content []byte) string {
	t.Helper()
	return writeFile(t, dir, name, content)
}

func JpegWithExif(t *testing.T, img image.Image, orientation int) []byte {
	t.Helper()
	if orientation == NoOrientation {
		return encodeJpeg(t, img)
	}
	return InsertApp1(encodeJpeg(t, img), exifPayload(uint16(orientation)))
}

// JpegWithCorruptExif has an Exif header followed by garbage instead of a
// TIFF structure.
func JpegWithCorruptExif(t *testing.T, img image.Image) []byte {
	t.Helper()
	payload := append([]byte("Exif\x00\x00"), []byte("XX\x00\x00garbage")...)
	return InsertApp1(encodeJpeg(t, img), payload)
}

func encodeJpeg(t *testing.T, img image.Image) []byte {
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	buffer := &bytes.Buffer{}
	if err := jpeg.Encode(buffer, rgba, &jpeg.EncoderOptions{Quality: 100}); err != nil {
		t.Fatal(err)
	}
	return buffer.Bytes()
}

// InsertApp1 puts an APP1 segment after SOI and a possible JFIF APP0 segment.
func InsertApp1(jpegBytes []byte, payload []byte) []byte {
	insertAt := 2
	if len(jpegBytes) > 6 && jpegBytes[2] == 0xFF && jpegBytes[3] == 0xE0 {
		insertAt = 4 + int(binary.BigEndian.Uint16(jpegBytes[4:6]))
	}

	segment := []byte{0xFF, 0xE1, 0, 0}
	binary.BigEndian.PutUint16(segment[2:], uint16(len(payload)+2))
	segment = append(segment, payload...)

	result := make([]byte, 0, len(jpegBytes)+len(segment))
	result = append(result, jpegBytes[:insertAt]...)
	result = append(result, segment...)
	return append(result, jpegBytes[insertAt:]...)
}

// Intel byte order TIFF with a single IFD entry for the orientation tag
func exifPayload(orientation uint16) []byte {
	buffer := &bytes.Buffer{}
	buffer.WriteString("Exif\x00\x00")
	buffer.WriteString("II")
	_ = binary.Write(buffer, binary.LittleEndian, uint16(42))
	_ = binary.Write(buffer, binary.LittleEndian, uint32(8))

	_ = binary.Write(buffer, binary.LittleEndian, uint16(1))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(0x0112))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(3))
	_ = binary.Write(buffer, binary.LittleEndian, uint32(1))
	_ = binary.Write(buffer, binary.LittleEndian, orientation)
	_ = binary.Write(buffer, binary.LittleEndian, uint16(0))
	_ = binary.Write(buffer, binary.LittleEndian, uint32(0))
	return buffer.Bytes()
}

func writeFile(t *testing.T, dir string, name string, content []byte) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clamp(value int, min int, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// IsMarker allows some slack for JPEG compression and RGB565 quantization
func IsMarker(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 200 && g>>8 < 80 && b>>8 < 80
}

func IsBackground(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 200 && g>>8 > 200 && b>>8 > 200
}
