package model

import (
	"time"
)

type User struct {
	Id              string  `gorm:"type:varchar(64);primaryKey"`
	Email           string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Username        string  `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name            string  `gorm:"type:varchar(255)"`
	PasswordHash    string  `gorm:"type:varchar(255);not null"`
	PersonalPinHash *string `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
}

func (User) TableName() string {
	return "users"
}
