package apitype

import (
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"image"
	"os"
	"vincit.fi/imageli/common/logger"
)

type ExifData struct {
	orientation Orientation
	raw         *exif.Exif
}

func NewExifData(decodedExif *exif.Exif) (*ExifData, error) {
	orientation, err := GetInt(decodedExif, exif.Orientation)
	if err != nil {
		return &ExifData{orientation: OrientationNormal, raw: decodedExif}, err
	}
	return &ExifData{
		orientation: OrientationFromExif(orientation),
		raw:         decodedExif,
	}, nil
}

func NewNormalExifData() *ExifData {
	return &ExifData{orientation: OrientationNormal}
}

func (s *ExifData) Orientation() Orientation {
	return s.orientation
}

func (s *ExifData) HasRaw() bool {
	return s.raw != nil
}

func (s *ExifData) Walk(walker exif.Walker) {
	if s.raw == nil {
		return
	}
	if err := s.raw.Walk(walker); err != nil {
		logger.Debug.Printf("Could not walk Exif tags: %s", err)
	}
}

func GetInt(decodedExif *exif.Exif, tagName exif.FieldName) (int, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return 0, err
	} else {
		return tag.Int(0)
	}
}

// LoadExifData never fails hard. Missing or broken metadata yields a normal
// orientation and the error is returned only so that the caller can log it.
func LoadExifData(path string) (*ExifData, error) {
	fileForExif, err := os.Open(path)
	if err != nil {
		return NewNormalExifData(), err
	}
	defer fileForExif.Close()

	decodedExif, err := exif.Decode(fileForExif)
	if err != nil {
		logger.Debug.Printf("No usable Exif data in '%s': %s", path, err)
		return NewNormalExifData(), err
	}

	data, err := NewExifData(decodedExif)
	if err != nil {
		logger.Debug.Printf("Could not resolve orientation of '%s': %s", path, err)
	}
	return data, err
}

// ExifRotateImage rotates clockwise by the given angle. imaging rotates
// counter-clockwise, hence the swapped 90 and 270 cases.
func ExifRotateImage(loadedImage image.Image, rotation int) image.Image {
	switch rotation {
	case right90:
		return imaging.Rotate270(loadedImage)
	case rotate180:
		return imaging.Rotate180(loadedImage)
	case right270:
		return imaging.Rotate90(loadedImage)
	default:
		return loadedImage
	}
}
