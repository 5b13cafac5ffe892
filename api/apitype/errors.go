package apitype

import (
	"errors"
	"fmt"
)

var (
	ErrDecode                = errors.New("could not decode image")
	ErrUnresolvedReference   = errors.New("could not resolve image reference")
	ErrPermissionDenied      = errors.New("no permission to read image")
	ErrNoImage               = errors.New("no image selected")
	ErrNoTextFound           = errors.New("no text found")
	ErrRecognitionInProgress = errors.New("recognition already in progress")
	ErrRecognitionFailed     = errors.New("recognition failed")
)

// DecodeError is returned when the pixel data of an image can't be read.
// It matches ErrDecode with errors.Is.
type DecodeError struct {
	Path string
	Err  error
}

func NewDecodeError(path string, err error) *DecodeError {
	return &DecodeError{Path: path, Err: err}
}

func (s *DecodeError) Error() string {
	if s.Err == nil {
		return fmt.Sprintf("%s: %s", ErrDecode.Error(), s.Path)
	}
	return fmt.Sprintf("%s: %s: %s", ErrDecode.Error(), s.Path, s.Err.Error())
}

func (s *DecodeError) Unwrap() error {
	return s.Err
}

func (s *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
