package database

import (
	"path/filepath"
	"testing"

	"github.com/lingochat/lingochat/database/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() { _ = CloseDB() })
}

func TestInitDB_MigratesUsers(t *testing.T) {
	setupDB(t)

	assert.True(t, GetDB().Migrator().HasTable(&model.User{}))
	assert.NoError(t, Checkpoint())
}

func TestUniqueUsername(t *testing.T) {
	setupDB(t)

	require.NoError(t, GetDB().Create(&model.User{Username: "asha", Password: "h1"}).Error)
	err := GetDB().Create(&model.User{Username: "asha", Password: "h2"}).Error

	assert.True(t, IsDuplicateKey(err))
}

func TestIsNotFound(t *testing.T) {
	setupDB(t)

	err := GetDB().Where("username = ?", "nobody").First(&model.User{}).Error
	assert.True(t, IsNotFound(err))
}
