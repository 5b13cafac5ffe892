package apitype

import (
	"fmt"
	"strconv"
	"strings"
)

type RecognitionKind int

const (
	TextRecognition RecognitionKind = iota
	LabelClassification
)

func (s RecognitionKind) String() string {
	switch s {
	case TextRecognition:
		return "text"
	case LabelClassification:
		return "labels"
	}
	return "unknown"
}

type Label struct {
	Text       string
	Confidence float32
}

// String formats the label as "LABEL - 97.5%". The percentage is cut, not
// rounded, to four characters.
func (s *Label) String() string {
	return fmt.Sprintf("%s - %s%%", strings.ToUpper(s.Text), FormatConfidence(s.Confidence))
}

// FormatConfidence prints confidence*100 in float32 arithmetic with at least
// one decimal: 0.5 gives "50.0", 1 gives "100." and 0.973 gives "97.2".
func FormatConfidence(confidence float32) string {
	percentage := strconv.FormatFloat(float64(confidence*100), 'f', -1, 32)
	if !strings.Contains(percentage, ".") {
		percentage += ".0"
	}
	if len(percentage) > 4 {
		percentage = percentage[:4]
	}
	return percentage
}

type TextBlock struct {
	Text       string
	Confidence float32
}

type Recognition struct {
	kind   RecognitionKind
	blocks []*TextBlock
	labels []*Label
}

func NewTextRecognition(blocks []*TextBlock) *Recognition {
	return &Recognition{kind: TextRecognition, blocks: blocks}
}

func NewLabelRecognition(labels []*Label) *Recognition {
	return &Recognition{kind: LabelClassification, labels: labels}
}

func (s *Recognition) Kind() RecognitionKind {
	return s.kind
}

func (s *Recognition) Blocks() []*TextBlock {
	return s.blocks
}

func (s *Recognition) Labels() []*Label {
	return s.labels
}

func (s *Recognition) Text() string {
	texts := make([]string, 0, len(s.blocks))
	for _, block := range s.blocks {
		texts = append(texts, block.Text)
	}
	return strings.Join(texts, " ")
}

// String renders the result the way it is shown to the user
func (s *Recognition) String() string {
	if s.kind == TextRecognition {
		return s.Text()
	}

	var sb strings.Builder
	for i, label := range s.labels {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(label.String())
	}
	return sb.String()
}
