package common

import (
	"flag"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestParseParamsFrom(t *testing.T) {
	a := assert.New(t)

	t.Run("Defaults", func(t *testing.T) {
		params := ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{"photo.jpg"})

		a.Equal(ModeNormalize, params.Mode())
		a.Equal("INFO", params.LogLevel())
		a.Equal("rgb565", params.PixelFormat())
		a.Equal(float32(0), params.ConfidenceThreshold())
		a.Equal(10, params.MaxLabels())
		a.Equal(2048, params.MaxUploadDimension())
		a.Equal(30*time.Second, params.Timeout())
		a.Empty(params.Roots())
		a.Equal([]string{"photo.jpg"}, params.References())
	})

	t.Run("All flags", func(t *testing.T) {
		params := ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{
			"-mode", "LABELS",
			"-logLevel", "debug",
			"-mediaDb", "/tmp/media.db",
			"-root", "/sdcard",
			"-root", "/tmp",
			"-pixelFormat", "rgba8888",
			"-credentials", "key.json",
			"-confidenceThreshold", "0.5",
			"-maxLabels", "3",
			"-maxUploadDimension", "640",
			"-timeout", "5s",
			"-out", "/tmp/out",
			"-eventQueueSize", "5",
			"content://media/external/images/media/1",
			"file:///sdcard/photo.jpg",
		})

		a.Equal(ModeLabels, params.Mode())
		a.Equal("debug", params.LogLevel())
		a.Equal("/tmp/media.db", params.MediaDb())
		a.Equal([]string{"/sdcard", "/tmp"}, params.Roots())
		a.Equal("rgba8888", params.PixelFormat())
		a.Equal("key.json", params.Credentials())
		a.Equal(float32(0.5), params.ConfidenceThreshold())
		a.Equal(3, params.MaxLabels())
		a.Equal(640, params.MaxUploadDimension())
		a.Equal(5*time.Second, params.Timeout())
		a.Equal("/tmp/out", params.Out())
		a.Equal(5, params.EventQueueSize())
		a.Len(params.References(), 2)
	})
}
