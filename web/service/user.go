// Package service implements the account, chat and translation operations
// behind the HTTP controllers.
package service

import (
	"fmt"
	"strings"

	"github.com/lingochat/lingochat/database"
	"github.com/lingochat/lingochat/database/model"
	"github.com/lingochat/lingochat/logger"
	"github.com/lingochat/lingochat/util/crypto"

	"gorm.io/gorm"
)

// UserService is the credential store: it creates users and checks their passwords.
type UserService struct {
	db     *gorm.DB
	hasher crypto.Hasher
}

func NewUserService(db *gorm.DB, hasher crypto.Hasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

// GetUserByUsername returns nil, nil when no such user exists.
func (s *UserService) GetUserByUsername(username string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates a user with a hashed password. An existing username
// yields ErrDuplicateUsername and leaves the stored record untouched.
func (s *UserService) Register(username, password string) (*model.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	existing, err := s.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Username: username, Password: hash}
	if err := s.db.Create(user).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	logger.Infof("registered user %q (id %d)", user.Username, user.Id)
	return user, nil
}

// CheckUser returns the user when username exists and password matches its hash.
func (s *UserService) CheckUser(username, password string) (*model.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}
	if user == nil || !s.hasher.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
