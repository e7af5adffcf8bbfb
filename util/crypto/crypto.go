// Package crypto provides password hashing and verification.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes passwords and checks them against stored hashes.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// BcryptHasher implements Hasher with bcrypt. A zero Cost means bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), err
}

func (h BcryptHasher) Verify(password, hash string) bool {
	return CheckPasswordHash(hash, password)
}

// CheckPasswordHash verifies if the given password matches the bcrypt hash.
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
