package model

import (
	"time"

	"gorm.io/datatypes"
)

type AdminActivity struct {
	Id        string    `gorm:"type:varchar(64);primaryKey"`
	Timestamp time.Time `gorm:"not null;index"`
	Action    string    `gorm:"type:varchar(128);not null"`
	Email     *string   `gorm:"type:varchar(255)"`
	UserId    *string   `gorm:"type:varchar(64)"`
	Method    string    `gorm:"type:varchar(16)"`
	Path      string    `gorm:"type:varchar(512)"`
	Ip        string    `gorm:"type:varchar(64)"`
	Details   datatypes.JSON
}

func (AdminActivity) TableName() string {
	return "admin_activities"
}
