package apitype

import (
	"fmt"
	"image"
)

// OrientedImage is a decoded image whose pixels are already upright.
// It is created for a single display-and-submit cycle and owned by
// whoever received it from the normalizer.
type OrientedImage struct {
	image       image.Image
	path        string
	orientation Orientation
	pixelFormat PixelFormat
}

func NewOrientedImage(img image.Image, path string, orientation Orientation, pixelFormat PixelFormat) *OrientedImage {
	return &OrientedImage{
		image:       img,
		path:        path,
		orientation: orientation,
		pixelFormat: pixelFormat,
	}
}

func (s *OrientedImage) Image() image.Image {
	return s.image
}

func (s *OrientedImage) Path() string {
	return s.path
}

// Orientation is the tag read from the source file.
func (s *OrientedImage) Orientation() Orientation {
	return s.orientation
}

// Rotation is the clockwise angle that was applied to the source pixels.
func (s *OrientedImage) Rotation() int {
	return s.orientation.Rotation()
}

func (s *OrientedImage) PixelFormat() PixelFormat {
	return s.pixelFormat
}

func (s *OrientedImage) Width() int {
	return s.image.Bounds().Dx()
}

func (s *OrientedImage) Height() int {
	return s.image.Bounds().Dy()
}

func (s *OrientedImage) ByteLength() int {
	return s.Width() * s.Height() * s.pixelFormat.BytesPerPixel()
}

func (s *OrientedImage) String() string {
	return fmt.Sprintf("OrientedImage{%s %dx%d %s rotated %d}",
		s.path, s.Width(), s.Height(), s.pixelFormat, s.Rotation())
}
