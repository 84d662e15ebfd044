package seed

import (
	"encoding/json"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func jsonDoc(v any) datatypes.JSON {
	payload, _ := json.Marshal(v)
	return datatypes.JSON(payload)
}

// Seed inserts the development fixtures: two assessments and one settings row
// for advisor@example.com. Rows that already exist are left alone, so running
// it repeatedly is safe. All inserts ride one transaction; any failure rolls
// the whole batch back.
func Seed(db *gorm.DB, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	tx := db.Begin()
	if tx.Error != nil {
		return log.Err("failed to begin seed transaction", tx.Error)
	}
	defer database.TXDefer(tx, log)

	assessments := []Assessment{
		{
			UserEmail:        "advisor@example.com",
			PrimaryName:      "Jane Chan",
			UserPhone:        stringPtr("555-0101"),
			IsMarried:        false,
			TotalAssetValue:  100000,
			TotalIncomeValue: 52000,
			IsEligible:       true,
			SubmissionData: jsonDoc(map[string]any{
				"p1": map[string]any{"name": "Jane Chan", "phone": "555-0101"},
			}),
		},
		{
			UserEmail:        "advisor@example.com",
			PrimaryName:      "Ken Wong",
			SecondaryName:    stringPtr("May Wong"),
			IsMarried:        true,
			TotalAssetValue:  250000,
			TotalIncomeValue: 88000,
			IsEligible:       false,
			SubmissionData: jsonDoc(map[string]any{
				"p1": map[string]any{"name": "Ken Wong", "phone": "555-0102"},
				"p2": map[string]any{"name": "May Wong"},
			}),
		},
	}

	for _, assessment := range assessments {
		// Count, not First: a not-found error would stick to the transaction
		// and trip the deferred rollback.
		var existing int64
		err := tx.Model(&Assessment{}).
			Where("user_email = ? AND primary_name = ?", assessment.UserEmail, assessment.PrimaryName).
			Count(&existing).Error
		if err != nil {
			return log.Err("failed to check for existing assessment", err, "primaryName", assessment.PrimaryName)
		}
		if existing > 0 {
			log.Info("Assessment already exists", "primaryName", assessment.PrimaryName)
			continue
		}
		log.Info("Seeding assessment", "primaryName", assessment.PrimaryName)
		if err := tx.Create(&assessment).Error; err != nil {
			return log.Err("failed to create assessment", err, "primaryName", assessment.PrimaryName)
		}
	}

	settings := UserSettings{
		UserEmail: "advisor@example.com",
		AdvisorInfo: jsonDoc(AdvisorInfo{
			Name:     "Alex Advisor",
			Phone:    "555-0100",
			Whatsapp: "555-0100",
			Email:    "advisor@example.com",
		}),
		EnabledProducts: jsonDoc([]string{"AIA", "PRU", "MAN"}),
	}

	var existingSettings int64
	err := tx.Model(&UserSettings{}).
		Where("user_email = ?", settings.UserEmail).
		Count(&existingSettings).Error
	if err != nil {
		return log.Err("failed to check for existing user settings", err, "userEmail", settings.UserEmail)
	}
	if existingSettings > 0 {
		log.Info("User settings already exist", "userEmail", settings.UserEmail)
		return nil
	}

	log.Info("Seeding user settings", "userEmail", settings.UserEmail)
	if err := tx.Create(&settings).Error; err != nil {
		return log.Err("failed to create user settings", err, "userEmail", settings.UserEmail)
	}

	return nil
}
