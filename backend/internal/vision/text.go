package vision

import (
	"context"
	"strings"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/logger"
)

type TextRecognizer struct {
	annotator    Annotator
	maxDimension int

	api.Recognizer
}

func NewTextRecognizer(annotator Annotator, maxDimension int) *TextRecognizer {
	return &TextRecognizer{
		annotator:    annotator,
		maxDimension: maxDimension,
	}
}

func (s *TextRecognizer) Kind() apitype.RecognitionKind {
	return apitype.TextRecognition
}

// Recognize runs document text detection. An image without any text
// resolves to ErrNoTextFound.
func (s *TextRecognizer) Recognize(ctx context.Context, img *apitype.OrientedImage) *api.Future[*apitype.Recognition] {
	return api.NewFuture(func() (*apitype.Recognition, error) {
		payload, err := EncodePayload(img, s.maxDimension)
		if err != nil {
			return nil, err
		}

		logger.Debug.Printf("Requesting text detection for %s (%d bytes)", img.Path(), len(payload))
		response, err := annotate(ctx, s.annotator, payload, &visionpb.Feature{
			Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION,
		})
		if err != nil {
			return nil, err
		}

		blocks := textBlocks(response.GetFullTextAnnotation())
		if len(blocks) == 0 {
			logger.Debug.Printf("No text found in %s", img.Path())
			return nil, apitype.ErrNoTextFound
		}
		logger.Debug.Printf("Found %d text blocks in %s", len(blocks), img.Path())
		return apitype.NewTextRecognition(blocks), nil
	})
}

func (s *TextRecognizer) Close() error {
	return s.annotator.Close()
}

func textBlocks(annotation *visionpb.TextAnnotation) []*apitype.TextBlock {
	var blocks []*apitype.TextBlock
	for _, page := range annotation.GetPages() {
		for _, block := range page.GetBlocks() {
			text := blockText(block)
			if text == "" {
				continue
			}
			blocks = append(blocks, &apitype.TextBlock{
				Text:       text,
				Confidence: block.GetConfidence(),
			})
		}
	}
	return blocks
}

func blockText(block *visionpb.Block) string {
	var sb strings.Builder
	for _, paragraph := range block.GetParagraphs() {
		for _, word := range paragraph.GetWords() {
			for _, symbol := range word.GetSymbols() {
				sb.WriteString(symbol.GetText())
				sb.WriteString(breakText(symbol.GetProperty().GetDetectedBreak().GetType()))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func breakText(breakType visionpb.TextAnnotation_DetectedBreak_BreakType) string {
	switch breakType {
	case visionpb.TextAnnotation_DetectedBreak_SPACE,
		visionpb.TextAnnotation_DetectedBreak_SURE_SPACE:
		return " "
	case visionpb.TextAnnotation_DetectedBreak_EOL_SURE_SPACE,
		visionpb.TextAnnotation_DetectedBreak_LINE_BREAK:
		return "\n"
	case visionpb.TextAnnotation_DetectedBreak_HYPHEN:
		return "-"
	}
	return ""
}
