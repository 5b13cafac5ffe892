package vision

import (
	"context"
	"fmt"

	visionapi "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/common/logger"
)

// Annotator is the part of vision.ImageAnnotatorClient the recognizers
// use. Tests replace it with a stub.
type Annotator interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
	Close() error
}

// NewCloudAnnotator connects to Cloud Vision. Without a credentials file the
// application default credentials are used.
func NewCloudAnnotator(ctx context.Context, credentialsFile string) (Annotator, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	logger.Debug.Printf("Connecting to Cloud Vision...")
	client, err := visionapi.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create Cloud Vision client: %w", err)
	}
	logger.Debug.Printf("Cloud Vision client created")
	return client, nil
}

func annotate(ctx context.Context, annotator Annotator, content []byte, feature *visionpb.Feature) (*visionpb.AnnotateImageResponse, error) {
	request := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: content},
			Features: []*visionpb.Feature{feature},
		}},
	}

	response, err := annotator.BatchAnnotateImages(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apitype.ErrRecognitionFailed, err)
	}
	if len(response.GetResponses()) == 0 {
		return nil, fmt.Errorf("%w: empty response", apitype.ErrRecognitionFailed)
	}

	imageResponse := response.GetResponses()[0]
	if status := imageResponse.GetError(); status != nil && status.GetCode() != 0 {
		return nil, fmt.Errorf("%w: %s (code %d)", apitype.ErrRecognitionFailed, status.GetMessage(), status.GetCode())
	}
	return imageResponse, nil
}
