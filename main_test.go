package main

import (
	"os"
	"testing"

	"github.com/lingochat/lingochat/config"
	"github.com/lingochat/lingochat/database"
	"github.com/lingochat/lingochat/database/model"
	"github.com/lingochat/lingochat/util/crypto"
	"github.com/lingochat/lingochat/web/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateDb(t *testing.T) {
	t.Setenv("LINGOCHAT_DB_FOLDER", t.TempDir())

	require.NoError(t, migrateDb())
	_, err := os.Stat(config.GetDBPath())
	assert.NoError(t, err)

	require.NoError(t, database.InitDB(config.GetDBPath()))
	defer database.CloseDB()
	assert.True(t, database.GetDB().Migrator().HasTable(&model.User{}))
}

func TestAddUser(t *testing.T) {
	t.Setenv("LINGOCHAT_DB_FOLDER", t.TempDir())

	require.NoError(t, addUser("asha", "pw"))
	assert.ErrorIs(t, addUser("asha", "other"), service.ErrDuplicateUsername)
	assert.ErrorIs(t, addUser("", "pw"), service.ErrInvalidInput)
	assert.Nil(t, database.GetDB())

	require.NoError(t, database.InitDB(config.GetDBPath()))
	defer database.CloseDB()

	user, err := service.NewUserService(database.GetDB(), crypto.BcryptHasher{}).CheckUser("asha", "pw")
	require.NoError(t, err)
	assert.Equal(t, "asha", user.Username)
}
