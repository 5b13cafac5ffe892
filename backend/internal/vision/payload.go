package vision

import (
	"github.com/nfnt/resize"
	"image"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/imagereader"
	"vincit.fi/imageli/common/logger"
)

// EncodePayload scales the image down to fit maxDimension on both axes
// and encodes it as JPEG. Zero maxDimension disables scaling.
func EncodePayload(img *apitype.OrientedImage, maxDimension int) ([]byte, error) {
	if img == nil {
		return nil, apitype.ErrNoImage
	}

	var source image.Image = img.Image()
	size := apitype.SizeFromRectangle(source.Bounds())
	limit := apitype.SizeOf(maxDimension, maxDimension)
	if maxDimension > 0 && !size.Fits(limit) {
		scaled := size.ScaleToFit(limit)
		logger.Debug.Printf("Scaling upload from %dx%d to %dx%d",
			size.Width(), size.Height(), scaled.Width(), scaled.Height())
		source = resize.Thumbnail(uint(maxDimension), uint(maxDimension), source, resize.Lanczos3)
	}

	return imagereader.EncodeJpeg(source, imagereader.DefaultJpegQuality)
}
