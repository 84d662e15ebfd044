package repositories

import (
	"context"
	"errors"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSettingsRepository interface {
	GetByEmail(ctx context.Context, userEmail string) (*UserSettings, error)
	Upsert(ctx context.Context, settings *UserSettings) error
}

type userSettingsRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUserSettings(db database.DB) UserSettingsRepository {
	return &userSettingsRepository{
		db:  db,
		log: logger.New("userSettingsRepository"),
	}
}

func (r *userSettingsRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *userSettingsRepository) GetByEmail(ctx context.Context, userEmail string) (*UserSettings, error) {
	log := r.log.Function("GetByEmail")

	var settings UserSettings
	found, err := database.NewCacheBuilder(r.db.Cache.Settings, userEmail).
		WithContext(ctx).
		Get(&settings)
	if err != nil {
		log.Warn("failed to read user settings from cache", "userEmail", userEmail, "error", err)
	}
	if found {
		return &settings, nil
	}

	err = r.getDB(ctx).First(&settings, "user_email = ?", userEmail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, log.Err("failed to get user settings", err, "userEmail", userEmail)
	}

	if err := r.addToCache(ctx, &settings); err != nil {
		log.Warn("failed to add user settings to cache", "userEmail", userEmail, "error", err)
	}

	return &settings, nil
}

// Upsert inserts or overwrites the single settings row for the owner email.
// The unique index on user_email is the conflict target, so the one-row-per-
// owner invariant holds under concurrent callers.
func (r *userSettingsRepository) Upsert(ctx context.Context, settings *UserSettings) error {
	log := r.log.Function("Upsert")

	err := r.getDB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"advisor_info",
			"enabled_products",
			"updated_at",
		}),
	}).Create(settings).Error
	if err != nil {
		return log.Err("failed to upsert user settings", err, "userEmail", settings.UserEmail)
	}

	var stored UserSettings
	err = r.getDB(ctx).First(&stored, "user_email = ?", settings.UserEmail).Error
	if err != nil {
		return log.Err("failed to reload user settings after upsert", err, "userEmail", settings.UserEmail)
	}
	*settings = stored

	if err := r.addToCache(ctx, settings); err != nil {
		log.Warn("failed to add user settings to cache", "userEmail", settings.UserEmail, "error", err)
	}

	return nil
}

func (r *userSettingsRepository) addToCache(ctx context.Context, settings *UserSettings) error {
	return database.NewCacheBuilder(r.db.Cache.Settings, settings.UserEmail).
		WithStruct(settings).
		WithTTL(recordCacheExpiry).
		WithContext(ctx).
		Set()
}
