package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type ExtensionKey struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopDomain string    `gorm:"type:varchar(255);not null;index"`
	Key        string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	Name       string    `gorm:"type:varchar(100);not null"`
	IsActive   bool      `gorm:"default:true;not null"`
	LastUsedAt null.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Shop       Shop `gorm:"foreignKey:ShopDomain;references:Domain"`
}

func (ExtensionKey) TableName() string { return "extension_keys" }
