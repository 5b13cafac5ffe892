package database

import (
	"errors"
	"fmt"
	"github.com/upper/db/v4"
	"mime"
	"path/filepath"
	"time"
	"vincit.fi/imageli/common/logger"
)

var ErrMediaNotFound = errors.New("media not found")

type MediaStore struct {
	database   *Database
	collection db.Collection
}

func NewMediaStore(database *Database) *MediaStore {
	return &MediaStore{
		database: database,
	}
}

func (s *MediaStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("media")
	}
	return s.collection
}

// AddMedia registers the path and returns its id. Adding the same path again
// returns the existing id.
func (s *MediaStore) AddMedia(path string, mimeType string) (int64, error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return 0, err
	}
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(absolutePath))
	}

	if existing, err := s.GetByPath(absolutePath); err == nil {
		logger.Debug.Printf("Media '%s' already indexed as %d", absolutePath, existing.Id)
		return existing.Id, nil
	} else if !errors.Is(err, ErrMediaNotFound) {
		return 0, err
	}

	result, err := s.getCollection().Insert(&Media{
		Data:      absolutePath,
		MimeType:  mimeType,
		AddedTime: time.Now(),
	})
	if err != nil {
		logger.Error.Printf("Could not index media '%s'", absolutePath)
		return 0, err
	}
	id := result.ID().(int64)
	logger.Debug.Printf("Indexed '%s' as %d", absolutePath, id)
	return id, nil
}

func (s *MediaStore) GetById(id int64) (*Media, error) {
	var media Media
	if err := s.getCollection().Find(db.Cond{"id": id}).One(&media); err != nil {
		if errors.Is(err, db.ErrNoMoreRows) {
			return nil, fmt.Errorf("%w: id %d", ErrMediaNotFound, id)
		}
		return nil, err
	}
	return &media, nil
}

func (s *MediaStore) GetPathById(id int64) (string, error) {
	if media, err := s.GetById(id); err != nil {
		return "", err
	} else {
		return media.Data, nil
	}
}

func (s *MediaStore) GetByPath(path string) (*Media, error) {
	var media Media
	if err := s.getCollection().Find(db.Cond{"data": path}).One(&media); err != nil {
		if errors.Is(err, db.ErrNoMoreRows) {
			return nil, fmt.Errorf("%w: %s", ErrMediaNotFound, path)
		}
		return nil, err
	}
	return &media, nil
}

func (s *MediaStore) GetAll() ([]*Media, error) {
	var all []Media
	if err := s.getCollection().Find().OrderBy("id").All(&all); err != nil {
		return nil, err
	}
	media := make([]*Media, len(all))
	for i := range all {
		media[i] = &all[i]
	}
	return media, nil
}

func (s *MediaStore) Remove(id int64) error {
	return s.getCollection().Find(db.Cond{"id": id}).Delete()
}
