package models

import (
	"time"

	"gorm.io/datatypes"
)

// Assessment is one client eligibility submission. Rows are immutable after
// creation; there is no update or delete surface for them.
type Assessment struct {
	ID               int            `gorm:"primaryKey;autoIncrement"  json:"id"`
	CreatedAt        time.Time      `gorm:"autoCreateTime;index"      json:"created_at"`
	UserEmail        string         `gorm:"type:varchar(255);index"   json:"user_email"`
	PrimaryName      string         `gorm:"type:varchar(255);index"   json:"primary_name"`
	UserPhone        *string        `gorm:"type:varchar(255);index"   json:"user_phone"`
	SecondaryName    *string        `gorm:"type:varchar(255)"         json:"secondary_name"`
	IsMarried        bool           `gorm:"default:false"             json:"is_married"`
	TotalAssetValue  float64        `json:"total_asset_value"`
	TotalIncomeValue float64        `json:"total_income_value"`
	IsEligible       bool           `json:"is_eligible"`
	// Full form state dump. Schema-on-read: never interpreted here beyond
	// the phone fallback at creation time.
	SubmissionData datatypes.JSON `gorm:"type:jsonb" json:"submission_data"`
}

func (Assessment) TableName() string { return "assessments" }

type CreateAssessmentRequest struct {
	UserEmail        string         `json:"user_email"`
	PrimaryName      string         `json:"primary_name"`
	UserPhone        *string        `json:"user_phone"`
	SecondaryName    *string        `json:"secondary_name"`
	IsMarried        bool           `json:"is_married"`
	TotalAssetValue  float64        `json:"total_asset_value"`
	TotalIncomeValue float64        `json:"total_income_value"`
	IsEligible       bool           `json:"is_eligible"`
	SubmissionData   map[string]any `json:"submission_data"`
}

// DerivedPhone returns the explicit phone when one was supplied, otherwise
// probes the submission payload at the conventional p1.phone location. The
// bool reports whether any phone was found.
func (r *CreateAssessmentRequest) DerivedPhone() (string, bool) {
	if r.UserPhone != nil && *r.UserPhone != "" {
		return *r.UserPhone, true
	}

	p1, ok := r.SubmissionData["p1"].(map[string]any)
	if !ok {
		return "", false
	}

	phone, ok := p1["phone"].(string)
	if !ok || phone == "" {
		return "", false
	}

	return phone, true
}
