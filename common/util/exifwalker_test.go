package util

import (
	"bytes"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"vincit.fi/imageli/common/testassets"
)

func TestExifTagCollector(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	content := testassets.JpegWithExif(t, testassets.PatternImage(8, 8), 6)
	decoded, err := exif.Decode(bytes.NewReader(content))
	r.Nil(err)

	sut := NewExifTagCollector()
	r.Nil(decoded.Walk(sut))

	value, ok := sut.Get(exif.Orientation)
	a.True(ok)
	a.Equal("6", value)
	a.Equal(1, sut.Len())
	a.Equal("Orientation=6", sut.String())

	_, ok = sut.Get(exif.Model)
	a.False(ok)
}

func TestExifTagCollector_Empty(t *testing.T) {
	a := assert.New(t)
	sut := NewExifTagCollector()
	a.Nil(sut.Walk(exif.Orientation, nil))
	a.Equal(0, sut.Len())
	a.Equal("", sut.String())
}
