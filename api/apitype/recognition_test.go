package apitype

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLabel_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("CAT - 97.5%", (&Label{Text: "cat", Confidence: 0.975}).String())
	a.Equal("DOG - 50.0%", (&Label{Text: "Dog", Confidence: 0.5}).String())
	a.Equal("BIRD - 12.3%", (&Label{Text: "bird", Confidence: 0.12345}).String())
	a.Equal("NONE - 0.0%", (&Label{Text: "none", Confidence: 0}).String())
	a.Equal("SURE - 100.%", (&Label{Text: "sure", Confidence: 1}).String())
	a.Equal("FOX - 97.2%", (&Label{Text: "fox", Confidence: 0.973}).String())
}

func TestRecognition_String(t *testing.T) {
	a := assert.New(t)

	t.Run("Text blocks are joined with spaces", func(t *testing.T) {
		recognition := NewTextRecognition([]*TextBlock{{Text: "Hello"}, {Text: "world"}})
		a.Equal(TextRecognition, recognition.Kind())
		a.Equal("Hello world", recognition.String())
	})

	t.Run("Labels are separated with blank lines", func(t *testing.T) {
		recognition := NewLabelRecognition([]*Label{
			{Text: "cat", Confidence: 0.9},
			{Text: "pet", Confidence: 0.25},
		})
		a.Equal(LabelClassification, recognition.Kind())
		a.Equal("CAT - 90.0%\n\nPET - 25.0%", recognition.String())
	})
}

func TestDecodeError(t *testing.T) {
	a := assert.New(t)

	cause := errors.New("unexpected EOF")
	err := fmt.Errorf("loading: %w", NewDecodeError("/tmp/a.jpg", cause))

	a.True(errors.Is(err, ErrDecode))
	a.True(errors.Is(err, cause))

	var decodeError *DecodeError
	a.True(errors.As(err, &decodeError))
	a.Equal("/tmp/a.jpg", decodeError.Path)
	a.Contains(err.Error(), "unexpected EOF")
}
