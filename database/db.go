// Package database owns the gorm handle for the SQLite credential store.
package database

import (
	"errors"
	"io/fs"
	"os"
	"path"

	"github.com/lingochat/lingochat/config"
	"github.com/lingochat/lingochat/database/model"
	"github.com/lingochat/lingochat/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

func initModels() error {
	models := []any{
		&model.User{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			logger.Errorf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// InitDB opens (creating if needed) the SQLite file at dbPath and migrates the schema.
func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger gormlogger.Interface

	if config.IsDebug() {
		gormLogger = gormlogger.Default
	} else {
		gormLogger = gormlogger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if _, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;"); err != nil {
		return err
	}
	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return err
	}

	return initModels()
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			logger.Warningf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		db = nil
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint() error {
	if db == nil {
		return nil
	}
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
