package database

import (
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func TestDatabase_InitializeForFile(t *testing.T) {
	a := require.New(t)

	sut := NewDatabase()
	err := sut.InitializeForFile(filepath.Join(t.TempDir(), "nested", "test.db"))
	a.Nil(err)

	err = sut.session.Ping()
	a.Nil(err)

	sut.Close()
}

func TestDatabase_MigrateDB(t *testing.T) {
	a := require.New(t)

	sut := NewDatabase()
	a.Nil(sut.InitializeForFile(filepath.Join(t.TempDir(), "test.db")))
	defer sut.Close()

	t.Run("First migration", func(t *testing.T) {
		exists, err := sut.Migrate()
		a.Nil(err)
		a.Equal(TableNotExist, exists)
	})
	t.Run("Second migration", func(t *testing.T) {
		exists, err := sut.Migrate()
		a.Nil(err)
		a.Equal(TableExists, exists)
	})
}
