package api

import (
	"fmt"
	"vincit.fi/imageli/api/apitype"
)

type Topic string

const (
	ImageChanged        Topic = "image-changed"
	RecognitionStarted  Topic = "recognition-started"
	RecognitionFinished Topic = "recognition-finished"
	ControlsChanged     Topic = "controls-changed"
	ShowError           Topic = "show-error"
	ProgressUpdated     Topic = "progress-updated"
)

var Topics = []Topic{
	ImageChanged,
	RecognitionStarted,
	RecognitionFinished,
	ControlsChanged,
	ShowError,
	ProgressUpdated,
}

type Sender interface {
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
}

type ErrorCommand struct {
	Message string
}

func (s *ErrorCommand) String() string {
	return fmt.Sprintf("ErrorCommand{%s}", s.Message)
}

type ImageChangedCommand struct {
	Image *apitype.OrientedImage
}

func (s *ImageChangedCommand) String() string {
	return fmt.Sprintf("ImageChangedCommand{%s}", s.Image)
}

type ControlsCommand struct {
	Enabled bool
}

func (s *ControlsCommand) String() string {
	return fmt.Sprintf("ControlsCommand{%t}", s.Enabled)
}

type RecognitionStartedCommand struct {
	RequestId string
	Kind      apitype.RecognitionKind
}

func (s *RecognitionStartedCommand) String() string {
	return fmt.Sprintf("RecognitionStartedCommand{%s:%s}", s.RequestId, s.Kind)
}

type RecognitionFinishedCommand struct {
	RequestId string
	Result    *apitype.Recognition
}

func (s *RecognitionFinishedCommand) String() string {
	return fmt.Sprintf("RecognitionFinishedCommand{%s:%s}", s.RequestId, s.Result.Kind())
}

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int
}

func (s *UpdateProgressCommand) String() string {
	return fmt.Sprintf("UpdateProgressCommand{%s:%d/%d}", s.Name, s.Current, s.Total)
}
