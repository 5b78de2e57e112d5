package entity

import (
	"time"
)

type User struct {
	Id              string
	Email           string
	Username        string
	Name            string
	PasswordHash    string
	PersonalPinHash *string
	CreatedAt       time.Time
}

// HasPersonalPin reports whether the user has configured a PIN for
// the personal vault.
func (u *User) HasPersonalPin() bool {
	return u.PersonalPinHash != nil && *u.PersonalPinHash != ""
}
