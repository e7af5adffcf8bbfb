// Package model contains the persisted records of lingochat.
package model

// User is a registered account. Password holds the bcrypt hash, never the raw password.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:150;not null"`
}
