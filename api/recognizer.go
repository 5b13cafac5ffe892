package api

import (
	"context"
	"vincit.fi/imageli/api/apitype"
)

// Recognizer sends an upright image to a recognition service. Both text
// recognition and label classification implement it.
type Recognizer interface {
	Kind() apitype.RecognitionKind
	Recognize(ctx context.Context, image *apitype.OrientedImage) *Future[*apitype.Recognition]
	Close() error
}
