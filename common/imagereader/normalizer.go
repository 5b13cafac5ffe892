package imagereader

import (
	"time"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/logger"
	"vincit.fi/imageli/common/util"
)

// Normalizer produces upright images from files whose pixels may be stored
// rotated. It holds no state between calls.
type Normalizer struct {
	pixelFormat apitype.PixelFormat

	api.Normalizer
}

func NewNormalizer(pixelFormat apitype.PixelFormat) *Normalizer {
	return &Normalizer{pixelFormat: pixelFormat}
}

func (s *Normalizer) PixelFormat() apitype.PixelFormat {
	return s.pixelFormat
}

// Normalize reads the orientation tag, decodes the pixels and rotates them
// upright. Missing or broken metadata is treated as a normal orientation.
// Only decoding can fail, and such errors match apitype.ErrDecode.
func (s *Normalizer) Normalize(path string) (*apitype.OrientedImage, error) {
	start := time.Now()

	exifData, err := apitype.LoadExifData(path)
	if err != nil {
		logger.Debug.Printf("Using normal orientation for '%s'", path)
	}
	orientation := exifData.Orientation()
	logger.Debug.Printf("Exif orientation of '%s': %s", path, orientation)
	if logger.IsLogLevel(logger.TRACE) && exifData.HasRaw() {
		tags := util.NewExifTagCollector()
		exifData.Walk(tags)
		logger.Trace.Printf("Exif tags of '%s': %s", path, tags)
	}

	decoded, err := LoadImage(path)
	if err != nil {
		logger.Error.Printf("Could not decode '%s': %s", path, err)
		return nil, err
	}

	rotated := apitype.ExifRotateImage(decoded, orientation.Rotation())
	converted := ConvertToPixelFormat(rotated, s.pixelFormat)

	logger.Trace.Printf("'%s' normalized in %s", path, time.Since(start))
	return apitype.NewOrientedImage(converted, path, orientation, s.pixelFormat), nil
}
