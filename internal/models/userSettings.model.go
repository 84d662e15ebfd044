package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserSettings is the per-advisor configuration row. One row per owner email.
type UserSettings struct {
	ID        int       `gorm:"primaryKey;autoIncrement"        json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                  json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                  json:"updated_at"`
	UserEmail string    `gorm:"type:varchar(255);uniqueIndex"   json:"user_email"`
	// Advisor contact card shown on generated summaries.
	AdvisorInfo datatypes.JSON `gorm:"type:jsonb" json:"advisor_info"`
	// Ordered product/company codes the advisor has enabled.
	EnabledProducts datatypes.JSON `gorm:"type:jsonb" json:"enabled_products"`
}

func (UserSettings) TableName() string { return "user_settings" }

type AdvisorInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
	Email    string `json:"email"`
}

type UpsertUserSettingsRequest struct {
	UserEmail       string      `json:"user_email"`
	AdvisorInfo     AdvisorInfo `json:"advisor_info"`
	EnabledProducts []string    `json:"enabled_products"`
}
