package backend

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"vincit.fi/imageli/api"
	"vincit.fi/imageli/api/apitype"
	"vincit.fi/imageli/backend/internal/database"
	"vincit.fi/imageli/backend/internal/resolver"
	"vincit.fi/imageli/backend/internal/screen"
	"vincit.fi/imageli/backend/internal/vision"
	"vincit.fi/imageli/common"
	"vincit.fi/imageli/common/event"
	"vincit.fi/imageli/common/imagereader"
	"vincit.fi/imageli/common/logger"
)

const (
	settingsDir       = ".imageli"
	mediaDatabaseFile = "media.db"
)

type Stores struct {
	MediaStore *database.MediaStore
	mediaDb    *database.Database
}

func (s *Stores) Close() {
	s.mediaDb.Close()
}

// Index adds the file to the media index and returns the content reference
// that resolves back to it.
func (s *Stores) Index(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	id, err := s.MediaStore.AddMedia(path, "")
	if err != nil {
		return "", err
	}
	return resolver.ContentReference(id), nil
}

// Prune drops index entries whose files no longer exist and returns how
// many were removed.
func (s *Stores) Prune() (int, error) {
	all, err := s.MediaStore.GetAll()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, media := range all {
		if _, err := os.Stat(media.Data); !errors.Is(err, fs.ErrNotExist) {
			continue
		}
		logger.Debug.Printf("Removing missing media %d '%s'", media.Id, media.Data)
		if err := s.MediaStore.Remove(media.Id); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// IndexAll returns the references in the same order as the paths. Files that
// can't be indexed get an empty reference and are reported as errors.
func (s *Stores) IndexAll(paths []string, reporter api.ProgressReporter) ([]string, error) {
	references := make([]string, len(paths))
	failed := 0
	for i, path := range paths {
		reporter.Update("Indexing", i, len(paths))
		reference, err := s.Index(path)
		if err != nil {
			reporter.Error(fmt.Sprintf("Could not index '%s'", path), err)
			failed++
			continue
		}
		references[i] = reference
	}
	reporter.Update("Indexing", len(paths), len(paths))

	if failed > 0 {
		return references, fmt.Errorf("%d of %d files could not be indexed", failed, len(paths))
	}
	return references, nil
}

type Services struct {
	Normalizer api.Normalizer
	Resolver   api.PathResolver
	Recognizer api.Recognizer
	Screen     *screen.Screen
}

func (s *Services) Close() {
	if err := s.Screen.Close(); err != nil {
		logger.Warn.Printf("Could not close recognizer: %s", err)
	}
}

type Brokers struct {
	Broker *event.Broker
}

// Close detaches all subscribers so that late commands from unfinished
// recognitions are dropped.
func (s *Brokers) Close() {
	for _, topic := range api.Topics {
		s.Broker.Close(topic)
	}
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the media index. Without an explicit file the
// index lives in the user's home folder.
func InitializeStores(mediaDbPath string) (*Stores, error) {
	logger.Debug.Printf("Initialize databases...")
	if mediaDbPath == "" {
		currentUser, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("cannot load user: %w", err)
		}
		mediaDbPath = filepath.Join(currentUser.HomeDir, settingsDir, mediaDatabaseFile)
	}

	mediaDb := database.NewDatabase()
	if err := mediaDb.InitializeForFile(mediaDbPath); err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if _, err := mediaDb.Migrate(); err != nil {
		mediaDb.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	stores := &Stores{
		MediaStore: database.NewMediaStore(mediaDb),
		mediaDb:    mediaDb,
	}
	logger.Debug.Printf("Stores and databases initialized")
	return stores, nil
}

// InitializeServices wires the screen. Cloud Vision is only connected in the
// recognition modes.
func InitializeServices(ctx context.Context, params *common.Params, stores *Stores, brokers *Brokers) (*Services, error) {
	logger.Debug.Printf("Initialize services...")
	pixelFormat, err := apitype.PixelFormatFromString(params.PixelFormat())
	if err != nil {
		return nil, err
	}

	normalizer := imagereader.NewNormalizer(pixelFormat)
	pathResolver := resolver.NewResolver(stores.MediaStore, resolver.NewRootGate(params.Roots()))

	recognizer, err := initializeRecognizer(ctx, params)
	if err != nil {
		return nil, err
	}

	services := &Services{
		Normalizer: normalizer,
		Resolver:   pathResolver,
		Recognizer: recognizer,
		Screen:     screen.NewScreen(brokers.Broker, pathResolver, normalizer, recognizer),
	}
	logger.Debug.Printf("Services initialized")
	return services, nil
}

func initializeRecognizer(ctx context.Context, params *common.Params) (api.Recognizer, error) {
	switch params.Mode() {
	case common.ModeText:
		annotator, err := vision.NewCloudAnnotator(ctx, params.Credentials())
		if err != nil {
			return nil, err
		}
		return vision.NewTextRecognizer(annotator, params.MaxUploadDimension()), nil
	case common.ModeLabels:
		annotator, err := vision.NewCloudAnnotator(ctx, params.Credentials())
		if err != nil {
			return nil, err
		}
		return vision.NewLabelClassifier(annotator, params.MaxUploadDimension(),
			params.ConfidenceThreshold(), params.MaxLabels()), nil
	default:
		return nil, nil
	}
}
