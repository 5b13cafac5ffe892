package imagereader

import (
	"bufio"
	"bytes"
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"
	"os"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/logger"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	options   = &jpeg.DecoderOptions{}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

// LoadImage decodes the file as it is stored, without any orientation
// handling. JPEGs go through libjpeg, everything else through the
// registered image decoders.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apitype.NewDecodeError(path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	header, err := reader.Peek(len(jpegMagic))
	if err != nil && err != io.EOF {
		return nil, apitype.NewDecodeError(path, err)
	}

	var decoded image.Image
	if bytes.Equal(header, jpegMagic) {
		decoded, err = jpeg.Decode(reader, options)
	} else {
		var format string
		decoded, format, err = image.Decode(reader)
		logger.Trace.Printf("Decoded '%s' as %s", path, format)
	}
	if err != nil {
		return nil, apitype.NewDecodeError(path, err)
	}
	if decoded == nil || decoded.Bounds().Empty() {
		return nil, apitype.NewDecodeError(path, nil)
	}
	return decoded, nil
}
