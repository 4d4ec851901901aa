package models

import "time"

type SenderConfig struct {
	ShopDomain         string `gorm:"primaryKey;type:varchar(255)"`
	IdentificationType string `gorm:"type:varchar(50)"`
	SenderID           string `gorm:"type:varchar(50)"`
	SenderName         string `gorm:"type:varchar(255)"`
	SenderPhone        string `gorm:"type:varchar(50)"`
	SenderMail         string `gorm:"type:varchar(255)"`
	ProvinceCode       string `gorm:"type:varchar(10)"`
	CantonCode         string `gorm:"type:varchar(10)"`
	DistrictCode       string `gorm:"type:varchar(10)"`
	PostalCode         string `gorm:"type:varchar(20)"`
	AddressLine        string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (SenderConfig) TableName() string { return "sender_configs" }
