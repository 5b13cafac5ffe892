package screen

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"sync"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/logger"
)

const noTextFoundMessage = "No text found"

// Screen selects an image and submits it to a recognizer. It keeps no
// image of its own; the caller owns the image returned by SelectImage.
type Screen struct {
	sender     api.Sender
	resolver   api.PathResolver
	normalizer api.Normalizer
	recognizer api.Recognizer

	busy bool
	lock sync.Mutex
}

func NewScreen(sender api.Sender, resolver api.PathResolver, normalizer api.Normalizer, recognizer api.Recognizer) *Screen {
	return &Screen{
		sender:     sender,
		resolver:   resolver,
		normalizer: normalizer,
		recognizer: recognizer,
	}
}

// SelectImage resolves and normalizes the reference and publishes the
// upright image. Errors are both published and returned.
func (s *Screen) SelectImage(reference string) (*apitype.OrientedImage, error) {
	path, err := s.resolver.Resolve(reference)
	if err != nil {
		s.sender.SendError(fmt.Sprintf("Could not open '%s'", reference), err)
		return nil, err
	}

	img, err := s.normalizer.Normalize(path)
	if err != nil {
		s.sender.SendError(fmt.Sprintf("Could not load image '%s'", path), err)
		return nil, err
	}

	logger.Info.Printf("Selected %s", img)
	s.sender.SendCommandToTopic(api.ImageChanged, &api.ImageChangedCommand{Image: img})
	return img, nil
}

// Recognize submits the image. Only one recognition may be in flight and
// the controls are disabled until it finishes.
func (s *Screen) Recognize(ctx context.Context, img *apitype.OrientedImage) (*api.Future[*apitype.Recognition], error) {
	if img == nil {
		s.sender.SendError("Select an image first", apitype.ErrNoImage)
		return nil, apitype.ErrNoImage
	}
	if s.recognizer == nil {
		return nil, fmt.Errorf("%w: no recognizer configured", apitype.ErrRecognitionFailed)
	}
	if !s.acquire() {
		return nil, apitype.ErrRecognitionInProgress
	}

	requestId := uuid.New().String()
	kind := s.recognizer.Kind()
	logger.Info.Printf("Starting %s recognition %s for %s", kind, requestId, img.Path())
	s.sender.SendCommandToTopic(api.ControlsChanged, &api.ControlsCommand{Enabled: false})
	s.sender.SendCommandToTopic(api.RecognitionStarted, &api.RecognitionStartedCommand{
		RequestId: requestId,
		Kind:      kind,
	})

	// The screen stays busy until the recognizer returns, even when ctx ends
	// first. Callers awaiting with ctx still get ctx.Err() right away.
	recognition := s.recognizer.Recognize(ctx, img)
	return api.NewFuture(func() (*apitype.Recognition, error) {
		<-recognition.Done()
		result, err := recognition.Await(context.Background())
		s.finish(requestId, result, err)
		return result, err
	}), nil
}

func (s *Screen) IsBusy() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.busy
}

func (s *Screen) Close() error {
	if s.recognizer == nil {
		return nil
	}
	return s.recognizer.Close()
}

func (s *Screen) acquire() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Screen) finish(requestId string, result *apitype.Recognition, err error) {
	s.lock.Lock()
	s.busy = false
	s.lock.Unlock()

	s.sender.SendCommandToTopic(api.ControlsChanged, &api.ControlsCommand{Enabled: true})
	switch {
	case err == nil:
		logger.Info.Printf("Recognition %s finished", requestId)
		s.sender.SendCommandToTopic(api.RecognitionFinished, &api.RecognitionFinishedCommand{
			RequestId: requestId,
			Result:    result,
		})
	case errors.Is(err, apitype.ErrNoTextFound):
		logger.Info.Printf("Recognition %s found no text", requestId)
		s.sender.SendError(noTextFoundMessage, nil)
	default:
		s.sender.SendError("Recognition failed", err)
	}
}
