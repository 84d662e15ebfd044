package repositories

import (
	"context"
	"errors"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OnePageInsuranceRepository interface {
	Upsert(ctx context.Context, record *OnePageInsurance) error
	List(ctx context.Context, params ListParams) ([]OnePageInsurance, error)
	GetByID(ctx context.Context, id int) (*OnePageInsurance, error)
	Delete(ctx context.Context, id int) error
}

type onePageInsuranceRepository struct {
	db  database.DB
	log logger.Logger
}

func NewOnePageInsurance(db database.DB) OnePageInsuranceRepository {
	return &onePageInsuranceRepository{
		db:  db,
		log: logger.New("onePageInsuranceRepository"),
	}
}

func (r *onePageInsuranceRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

// Upsert inserts the record or, when a row with the same (user_email,
// client_name) already exists, overwrites every mutable column in place. The
// conflict target is the composite unique index, so two concurrent upserts on
// the same key serialize at the constraint instead of both inserting. The
// record is re-read afterwards so the caller sees the stored id and
// timestamps regardless of which branch ran.
func (r *onePageInsuranceRepository) Upsert(ctx context.Context, record *OnePageInsurance) error {
	log := r.log.Function("Upsert")

	err := r.getDB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_email"}, {Name: "client_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"client_phone",
			"client_whatsapp",
			"client_email",
			"client_type",
			"plans",
			"updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		return log.Err("failed to upsert one page insurance", err,
			"userEmail", record.UserEmail, "clientName", record.ClientName)
	}

	var stored OnePageInsurance
	err = r.getDB(ctx).
		First(&stored, "user_email = ? AND client_name = ?", record.UserEmail, record.ClientName).Error
	if err != nil {
		return log.Err("failed to reload one page insurance after upsert", err,
			"userEmail", record.UserEmail, "clientName", record.ClientName)
	}
	*record = stored

	if err := r.addToCache(ctx, record); err != nil {
		log.Warn("failed to add one page insurance to cache", "recordID", record.ID, "error", err)
	}

	return nil
}

func (r *onePageInsuranceRepository) List(ctx context.Context, params ListParams) ([]OnePageInsurance, error) {
	log := r.log.Function("List")
	params = params.normalized()

	query := r.getDB(ctx).Model(&OnePageInsurance{})

	if params.UserEmail != "" {
		query = query.Where("user_email = ?", params.UserEmail)
	}

	if params.Search != "" {
		query = query.Where("LOWER(client_name) LIKE ?", searchTerm(params.Search))
	}

	var records []OnePageInsurance
	err := query.Order("updated_at DESC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&records).Error
	if err != nil {
		return nil, log.Err("failed to list one page insurance records", err, "params", params)
	}

	return records, nil
}

func (r *onePageInsuranceRepository) GetByID(ctx context.Context, id int) (*OnePageInsurance, error) {
	log := r.log.Function("GetByID")

	var record OnePageInsurance
	found, err := database.NewCacheBuilder(r.db.Cache.Insurance, strconv.Itoa(id)).
		WithContext(ctx).
		Get(&record)
	if err != nil {
		log.Warn("failed to read one page insurance from cache", "recordID", id, "error", err)
	}
	if found {
		return &record, nil
	}

	err = r.getDB(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, log.Err("failed to get one page insurance by id", err, "id", id)
	}

	if err := r.addToCache(ctx, &record); err != nil {
		log.Warn("failed to add one page insurance to cache", "recordID", id, "error", err)
	}

	return &record, nil
}

// Delete removes the row physically. A missing id reports ErrNotFound, not a
// storage failure.
func (r *onePageInsuranceRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.getDB(ctx).Delete(&OnePageInsurance{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete one page insurance", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	if err := database.NewCacheBuilder(r.db.Cache.Insurance, strconv.Itoa(id)).
		WithContext(ctx).
		Delete(); err != nil {
		log.Warn("failed to remove one page insurance from cache", "recordID", id, "error", err)
	}

	return nil
}

func (r *onePageInsuranceRepository) addToCache(ctx context.Context, record *OnePageInsurance) error {
	return database.NewCacheBuilder(r.db.Cache.Insurance, strconv.Itoa(record.ID)).
		WithStruct(record).
		WithTTL(recordCacheExpiry).
		WithContext(ctx).
		Set()
}
