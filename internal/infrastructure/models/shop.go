package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Shop struct {
	Domain        string `gorm:"primaryKey;type:varchar(255)"`
	AccessToken   string `gorm:"type:text;not null"`
	Scope         string `gorm:"type:text"`
	IsActive      bool   `gorm:"default:true;not null;index"`
	InstalledAt   time.Time
	UninstalledAt null.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Shop) TableName() string { return "shops" }
