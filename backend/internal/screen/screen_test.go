package screen

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"image"
	"testing"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
)

type MockSender struct {
	api.Sender
	mock.Mock
}

func (s *MockSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.Called(topic, command)
}

func (s *MockSender) SendError(message string, err error) {
	s.Called(message, err)
}

func newMockSender() *MockSender {
	sender := new(MockSender)
	sender.On("SendCommandToTopic", mock.Anything, mock.Anything).Return()
	sender.On("SendError", mock.Anything, mock.Anything).Return()
	return sender
}

func (s *MockSender) topics() []api.Topic {
	var topics []api.Topic
	for _, call := range s.Calls {
		if call.Method == "SendCommandToTopic" {
			topics = append(topics, call.Arguments.Get(0).(api.Topic))
		} else if call.Method == "SendError" {
			topics = append(topics, api.ShowError)
		}
	}
	return topics
}

type StubResolver struct {
	err error
}

func (s *StubResolver) Resolve(reference string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "/resolved/" + reference, nil
}

type StubNormalizer struct {
	err error
}

func (s *StubNormalizer) Normalize(path string) (*apitype.OrientedImage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return testImage(path), nil
}

type StubRecognizer struct {
	result  *apitype.Recognition
	err     error
	release chan struct{}
	closed  bool
}

func (s *StubRecognizer) Kind() apitype.RecognitionKind {
	return apitype.TextRecognition
}

func (s *StubRecognizer) Recognize(ctx context.Context, img *apitype.OrientedImage) *api.Future[*apitype.Recognition] {
	if s.release == nil {
		return api.CompletedFuture(s.result, s.err)
	}
	return api.NewFuture(func() (*apitype.Recognition, error) {
		<-s.release
		return s.result, s.err
	})
}

func (s *StubRecognizer) Close() error {
	s.closed = true
	return nil
}

func testImage(path string) *apitype.OrientedImage {
	return apitype.NewOrientedImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), path, apitype.OrientationNormal, apitype.RGBA8888)
}

func TestScreen_SelectImage(t *testing.T) {
	a := assert.New(t)

	t.Run("Publishes the image", func(t *testing.T) {
		sender := newMockSender()
		sut := NewScreen(sender, &StubResolver{}, &StubNormalizer{}, nil)

		img, err := sut.SelectImage("photo.jpg")
		a.Nil(err)
		a.Equal("/resolved/photo.jpg", img.Path())
		sender.AssertCalled(t, "SendCommandToTopic", api.ImageChanged, &api.ImageChangedCommand{Image: img})
		sender.AssertNotCalled(t, "SendError", mock.Anything, mock.Anything)
	})

	t.Run("Unresolved reference", func(t *testing.T) {
		sender := newMockSender()
		sut := NewScreen(sender, &StubResolver{err: apitype.ErrUnresolvedReference}, &StubNormalizer{}, nil)

		img, err := sut.SelectImage("content://media/1")
		a.Nil(img)
		a.True(errors.Is(err, apitype.ErrUnresolvedReference))
		sender.AssertCalled(t, "SendError", "Could not open 'content://media/1'", apitype.ErrUnresolvedReference)
		sender.AssertNotCalled(t, "SendCommandToTopic", api.ImageChanged, mock.Anything)
	})

	t.Run("Decode failure", func(t *testing.T) {
		sender := newMockSender()
		decodeErr := apitype.NewDecodeError("/resolved/broken.jpg", errors.New("broken"))
		sut := NewScreen(sender, &StubResolver{}, &StubNormalizer{err: decodeErr}, nil)

		img, err := sut.SelectImage("broken.jpg")
		a.Nil(img)
		a.True(errors.Is(err, apitype.ErrDecode))
		sender.AssertCalled(t, "SendError", "Could not load image '/resolved/broken.jpg'", decodeErr)
		sender.AssertNotCalled(t, "SendCommandToTopic", api.ImageChanged, mock.Anything)
	})
}

func TestScreen_Recognize(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		sender := newMockSender()
		result := apitype.NewTextRecognition([]*apitype.TextBlock{{Text: "Hello"}})
		sut := NewScreen(sender, &StubResolver{}, &StubNormalizer{}, &StubRecognizer{result: result})

		future, err := sut.Recognize(ctx, testImage("/a.jpg"))
		a.Nil(err)
		recognition, err := future.Await(ctx)
		a.Nil(err)
		a.Equal("Hello", recognition.String())
		a.False(sut.IsBusy())

		a.Equal([]api.Topic{
			api.ControlsChanged,
			api.RecognitionStarted,
			api.ControlsChanged,
			api.RecognitionFinished,
		}, sender.topics())
		sender.AssertCalled(t, "SendCommandToTopic", api.ControlsChanged, &api.ControlsCommand{Enabled: false})
		sender.AssertCalled(t, "SendCommandToTopic", api.ControlsChanged, &api.ControlsCommand{Enabled: true})

		started := sender.Calls[1].Arguments.Get(1).(*api.RecognitionStartedCommand)
		finished := sender.Calls[3].Arguments.Get(1).(*api.RecognitionFinishedCommand)
		a.NotEmpty(started.RequestId)
		a.Equal(started.RequestId, finished.RequestId)
		a.Equal(apitype.TextRecognition, started.Kind)
		a.Equal(result, finished.Result)
	})

	t.Run("No text found", func(t *testing.T) {
		sender := newMockSender()
		sut := NewScreen(sender, &StubResolver{}, &StubNormalizer{}, &StubRecognizer{err: apitype.ErrNoTextFound})

		future, err := sut.Recognize(ctx, testImage("/a.jpg"))
		a.Nil(err)
		_, err = future.Await(ctx)
		a.True(errors.Is(err, apitype.ErrNoTextFound))

		a.Equal([]api.Topic{
			api.ControlsChanged,
			api.RecognitionStarted,
			api.ControlsChanged,
			api.ShowError,
		}, sender.topics())
		sender.AssertCalled(t, "SendError", "No text found", nil)
	})

	t.Run("Failure", func(t *testing.T) {
		sender := newMockSender()
		cause := errors.New("quota exceeded")
		sut := NewScreen(sender, &StubResolver{}, &StubNormalizer{}, &StubRecognizer{err: cause})

		future, err := sut.Recognize(ctx, testImage("/a.jpg"))
		a.Nil(err)
		_, err = future.Await(ctx)
		a.Equal(cause, err)
		sender.AssertCalled(t, "SendError", "Recognition failed", cause)
		a.False(sut.IsBusy())
	})

	t.Run("No image", func(t *testing.T) {
		sender := newMockSender()
		sut := NewScreen(sender, &StubResolver{}, &StubNormalizer{}, &StubRecognizer{})

		future, err := sut.Recognize(ctx, nil)
		a.Nil(future)
		a.True(errors.Is(err, apitype.ErrNoImage))
		sender.AssertNotCalled(t, "SendCommandToTopic", api.RecognitionStarted, mock.Anything)
	})

	t.Run("Only one recognition in flight", func(t *testing.T) {
		sender := newMockSender()
		recognizer := &StubRecognizer{
			result:  apitype.NewLabelRecognition(nil),
			release: make(chan struct{}),
		}
		sut := NewScreen(sender, &StubResolver{}, &StubNormalizer{}, recognizer)

		first, err := sut.Recognize(ctx, testImage("/a.jpg"))
		a.Nil(err)
		a.True(sut.IsBusy())

		second, err := sut.Recognize(ctx, testImage("/b.jpg"))
		a.Nil(second)
		a.True(errors.Is(err, apitype.ErrRecognitionInProgress))

		close(recognizer.release)
		_, err = first.Await(ctx)
		a.Nil(err)
		a.False(sut.IsBusy())

		third, err := sut.Recognize(ctx, testImage("/b.jpg"))
		a.Nil(err)
		_, err = third.Await(ctx)
		a.Nil(err)
	})

	t.Run("Stays busy after context ends until recognizer returns", func(t *testing.T) {
		sender := newMockSender()
		recognizer := &StubRecognizer{
			result:  apitype.NewLabelRecognition(nil),
			release: make(chan struct{}),
		}
		sut := NewScreen(sender, &StubResolver{}, &StubNormalizer{}, recognizer)

		cancelCtx, cancel := context.WithCancel(ctx)
		first, err := sut.Recognize(cancelCtx, testImage("/a.jpg"))
		a.Nil(err)
		cancel()

		_, err = first.Await(cancelCtx)
		a.True(errors.Is(err, context.Canceled))
		a.True(sut.IsBusy())
		sender.AssertNotCalled(t, "SendCommandToTopic", api.ControlsChanged, &api.ControlsCommand{Enabled: true})

		second, err := sut.Recognize(ctx, testImage("/b.jpg"))
		a.Nil(second)
		a.True(errors.Is(err, apitype.ErrRecognitionInProgress))

		close(recognizer.release)
		<-first.Done()
		a.False(sut.IsBusy())
		sender.AssertCalled(t, "SendCommandToTopic", api.ControlsChanged, &api.ControlsCommand{Enabled: true})
		sender.AssertCalled(t, "SendCommandToTopic", api.RecognitionFinished, mock.Anything)
	})

	t.Run("Close closes recognizer", func(t *testing.T) {
		recognizer := &StubRecognizer{}
		a.Nil(NewScreen(newMockSender(), &StubResolver{}, &StubNormalizer{}, recognizer).Close())
		a.True(recognizer.closed)
	})
}
