package vision

import (
	"context"
	"sort"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/logger"
)

type LabelClassifier struct {
	annotator    Annotator
	maxDimension int
	threshold    float32
	maxLabels    int

	api.Recognizer
}

// NewLabelClassifier drops labels scoring below threshold. Zero maxLabels
// lets the service decide how many labels to return.
func NewLabelClassifier(annotator Annotator, maxDimension int, threshold float32, maxLabels int) *LabelClassifier {
	return &LabelClassifier{
		annotator:    annotator,
		maxDimension: maxDimension,
		threshold:    threshold,
		maxLabels:    maxLabels,
	}
}

func (s *LabelClassifier) Kind() apitype.RecognitionKind {
	return apitype.LabelClassification
}

// Recognize resolves to the labels sorted by confidence, highest first.
// No labels above the threshold is an empty result, not an error.
func (s *LabelClassifier) Recognize(ctx context.Context, img *apitype.OrientedImage) *api.Future[*apitype.Recognition] {
	return api.NewFuture(func() (*apitype.Recognition, error) {
		payload, err := EncodePayload(img, s.maxDimension)
		if err != nil {
			return nil, err
		}

		logger.Debug.Printf("Requesting labels for %s (%d bytes)", img.Path(), len(payload))
		response, err := annotate(ctx, s.annotator, payload, &visionpb.Feature{
			Type:       visionpb.Feature_LABEL_DETECTION,
			MaxResults: int32(s.maxLabels),
		})
		if err != nil {
			return nil, err
		}

		labels := s.toLabels(response.GetLabelAnnotations())
		logger.Debug.Printf("Found %d labels for %s", len(labels), img.Path())
		return apitype.NewLabelRecognition(labels), nil
	})
}

func (s *LabelClassifier) Close() error {
	return s.annotator.Close()
}

func (s *LabelClassifier) toLabels(annotations []*visionpb.EntityAnnotation) []*apitype.Label {
	labels := make([]*apitype.Label, 0, len(annotations))
	for _, annotation := range annotations {
		if annotation.GetScore() < s.threshold {
			continue
		}
		labels = append(labels, &apitype.Label{
			Text:       annotation.GetDescription(),
			Confidence: annotation.GetScore(),
		})
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Confidence > labels[j].Confidence
	})
	if s.maxLabels > 0 && len(labels) > s.maxLabels {
		labels = labels[:s.maxLabels]
	}
	return labels
}
