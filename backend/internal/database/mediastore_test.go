package database

import (
	"errors"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func initMediaStore(t *testing.T) (*MediaStore, *Database) {
	database := NewDatabase()
	if err := database.InitializeForFile(filepath.Join(t.TempDir(), "media.db")); err != nil {
		t.Fatal(err)
	}
	if _, err := database.Migrate(); err != nil {
		t.Fatal(err)
	}
	return NewMediaStore(database), database
}

func TestMediaStore_AddMedia(t *testing.T) {
	a := require.New(t)
	sut, database := initMediaStore(t)
	defer database.Close()

	first, err := sut.AddMedia("/sdcard/DCIM/photo.jpg", "")
	a.Nil(err)
	second, err := sut.AddMedia("/sdcard/DCIM/other.png", "image/png")
	a.Nil(err)
	a.NotEqual(first, second)

	t.Run("Same path returns the same id", func(t *testing.T) {
		again, err := sut.AddMedia("/sdcard/DCIM/photo.jpg", "")
		a.Nil(err)
		a.Equal(first, again)
	})

	t.Run("Mime type from extension", func(t *testing.T) {
		media, err := sut.GetById(first)
		a.Nil(err)
		a.Equal("image/jpeg", media.MimeType)
		a.Equal("/sdcard/DCIM/photo.jpg", media.Data)
	})

	t.Run("All", func(t *testing.T) {
		all, err := sut.GetAll()
		a.Nil(err)
		a.Len(all, 2)
		a.Equal(first, all[0].Id)
		a.Equal(second, all[1].Id)
	})
}

func TestMediaStore_GetPathById(t *testing.T) {
	a := require.New(t)
	sut, database := initMediaStore(t)
	defer database.Close()

	id, err := sut.AddMedia("/sdcard/DCIM/photo.jpg", "image/jpeg")
	a.Nil(err)

	path, err := sut.GetPathById(id)
	a.Nil(err)
	a.Equal("/sdcard/DCIM/photo.jpg", path)

	t.Run("Unknown id", func(t *testing.T) {
		_, err := sut.GetPathById(id + 100)
		a.True(errors.Is(err, ErrMediaNotFound))
	})

	t.Run("Removed", func(t *testing.T) {
		a.Nil(sut.Remove(id))
		_, err := sut.GetPathById(id)
		a.True(errors.Is(err, ErrMediaNotFound))
	})
}
