package imagereader

import (
	"bytes"
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

const DefaultJpegQuality = 90

// EncodeJpeg encodes through libjpeg. Images that libjpeg can't take as
// they are (like RGB565) are copied to RGBA first.
func EncodeJpeg(img image.Image, quality int) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := jpeg.Encode(buffer, toEncodable(img), &jpeg.EncoderOptions{Quality: quality}); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// WriteImage writes PNG unless the file name ends with .jpg or .jpeg
func WriteImage(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var content []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		encoded, err := EncodeJpeg(img, DefaultJpegQuality)
		if err != nil {
			return err
		}
		content = encoded
	default:
		buffer := &bytes.Buffer{}
		if err := png.Encode(buffer, img); err != nil {
			return err
		}
		content = buffer.Bytes()
	}
	return os.WriteFile(path, content, 0o644)
}

func toEncodable(img image.Image) image.Image {
	switch img.(type) {
	case *image.RGBA, *image.Gray, *image.YCbCr:
		return img
	default:
		return ConvertToRgba(img)
	}
}
