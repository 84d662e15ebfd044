package models

import (
	"time"

	"gorm.io/datatypes"
)

// OnePageInsurance is a per-client summary of insurance plans. The pair
// (user_email, client_name) is the natural key: upserts match on it and the
// composite unique index keeps concurrent upserts from leaving duplicates.
type OnePageInsurance struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time `gorm:"autoCreateTime"           json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;index"     json:"updated_at"`
	UserEmail      string    `gorm:"type:varchar(255);uniqueIndex:idx_one_page_insurance_owner_client,priority:1" json:"user_email"`
	ClientName     string    `gorm:"type:varchar(255);index;uniqueIndex:idx_one_page_insurance_owner_client,priority:2" json:"client_name"`
	ClientPhone    *string   `gorm:"type:varchar(255)"        json:"client_phone"`
	ClientWhatsapp *string   `gorm:"type:varchar(255)"        json:"client_whatsapp"`
	ClientEmail    *string   `gorm:"type:varchar(255)"        json:"client_email"`
	ClientType     *string   `gorm:"type:varchar(255)"        json:"client_type"`
	// Ordered plan documents, one per insurance plan on the summary page.
	Plans datatypes.JSON `gorm:"type:jsonb" json:"plans"`
}

func (OnePageInsurance) TableName() string { return "one_page_insurance" }

type UpsertOnePageInsuranceRequest struct {
	UserEmail      string           `json:"user_email"`
	ClientName     string           `json:"client_name"`
	ClientPhone    *string          `json:"client_phone"`
	ClientWhatsapp *string          `json:"client_whatsapp"`
	ClientEmail    *string          `json:"client_email"`
	ClientType     *string          `json:"client_type"`
	Plans          []map[string]any `json:"plans"`
}
