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
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *Assessment) error
	List(ctx context.Context, params ListParams) ([]Assessment, error)
	GetByID(ctx context.Context, id int) (*Assessment, error)
}

type assessmentRepository struct {
	db  database.DB
	log logger.Logger
}

func NewAssessment(db database.DB) AssessmentRepository {
	return &assessmentRepository{
		db:  db,
		log: logger.New("assessmentRepository"),
	}
}

func (r *assessmentRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *Assessment) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(assessment).Error; err != nil {
		return log.Err("failed to create assessment", err, "userEmail", assessment.UserEmail)
	}

	if err := r.addToCache(ctx, assessment); err != nil {
		log.Warn("failed to add assessment to cache", "assessmentID", assessment.ID, "error", err)
	}

	return nil
}

func (r *assessmentRepository) List(ctx context.Context, params ListParams) ([]Assessment, error) {
	log := r.log.Function("List")
	params = params.normalized()

	query := r.getDB(ctx).Model(&Assessment{})

	if params.UserEmail != "" {
		query = query.Where("user_email = ?", params.UserEmail)
	}

	if params.Search != "" {
		term := searchTerm(params.Search)
		query = query.Where("LOWER(primary_name) LIKE ? OR LOWER(user_phone) LIKE ?", term, term)
	}

	var assessments []Assessment
	err := query.Order("created_at DESC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&assessments).Error
	if err != nil {
		return nil, log.Err("failed to list assessments", err, "params", params)
	}

	return assessments, nil
}

func (r *assessmentRepository) GetByID(ctx context.Context, id int) (*Assessment, error) {
	log := r.log.Function("GetByID")

	var assessment Assessment
	found, err := database.NewCacheBuilder(r.db.Cache.Assessment, strconv.Itoa(id)).
		WithContext(ctx).
		Get(&assessment)
	if err != nil {
		log.Warn("failed to read assessment from cache", "assessmentID", id, "error", err)
	}
	if found {
		return &assessment, nil
	}

	err = r.getDB(ctx).First(&assessment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, log.Err("failed to get assessment by id", err, "id", id)
	}

	if err := r.addToCache(ctx, &assessment); err != nil {
		log.Warn("failed to add assessment to cache", "assessmentID", id, "error", err)
	}

	return &assessment, nil
}

func (r *assessmentRepository) addToCache(ctx context.Context, assessment *Assessment) error {
	return database.NewCacheBuilder(r.db.Cache.Assessment, strconv.Itoa(assessment.ID)).
		WithStruct(assessment).
		WithTTL(recordCacheExpiry).
		WithContext(ctx).
		Set()
}
