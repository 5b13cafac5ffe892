package imagereader

import (
	"golang.org/x/image/draw"
	"image"
	"time"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/logger"
)

// ConvertToPixelFormat copies the image into the requested pixel layout.
// RGB565 uses Floyd-Steinberg dithering to hide the reduced colour depth.
func ConvertToPixelFormat(img image.Image, pixelFormat apitype.PixelFormat) image.Image {
	start := time.Now()
	var converted image.Image

	switch pixelFormat {
	case apitype.RGBA8888:
		converted = ConvertToRgba(img)
	default:
		converted = ConvertToRgb565(img)
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Converting to %s: %s", pixelFormat, time.Since(start))
	}
	return converted
}

func ConvertToRgb565(img image.Image) *apitype.RGB565Image {
	if rgb565, ok := img.(*apitype.RGB565Image); ok {
		return rgb565
	}
	bounds := img.Bounds()
	rgb565 := apitype.NewRGB565Image(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.FloydSteinberg.Draw(rgb565, rgb565.Bounds(), img, bounds.Min)
	return rgb565
}

func ConvertToRgba(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
