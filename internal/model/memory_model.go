package model

import (
	"time"
)

type Memory struct {
	Id          string    `gorm:"type:varchar(64);primaryKey"`
	UserEmail   string    `gorm:"type:varchar(255);not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Content     string    `gorm:"type:text;not null"`
	IsImportant bool      `gorm:"not null;default:false"`
	VaultType   string    `gorm:"type:varchar(32);not null;default:'learning'"`
	Timestamp   time.Time `gorm:"not null;index"`
	IsFavorite  bool      `gorm:"not null;default:false"`
}

func (Memory) TableName() string {
	return "memories"
}
