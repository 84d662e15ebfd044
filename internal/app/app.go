package app

import (
	"server/config"
	"server/internal/database"
	"server/internal/handlers/middleware"
	"server/internal/logger"
	"server/internal/repositories"
	"server/internal/services"

	assessmentController "server/internal/controllers/assessment"
	insuranceController "server/internal/controllers/insurance"
	settingsController "server/internal/controllers/settings"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Services
	TransactionService *services.TransactionService

	// Repositories
	AssessmentRepo repositories.AssessmentRepository
	InsuranceRepo  repositories.OnePageInsuranceRepository
	SettingsRepo   repositories.UserSettingsRepository

	// Controllers
	AssessmentController *assessmentController.AssessmentController
	InsuranceController  *insuranceController.InsuranceController
	SettingsController   *settingsController.SettingsController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	logger.Init(config.LogLevel)

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	// Initialize services
	transactionService := services.NewTransactionService(db)

	// Initialize repositories
	assessmentRepo := repositories.NewAssessment(db)
	insuranceRepo := repositories.NewOnePageInsurance(db)
	settingsRepo := repositories.NewUserSettings(db)

	// Initialize controllers with repositories and services
	middleware := middleware.New(config)
	assessmentCtrl := assessmentController.New(assessmentRepo, transactionService)
	insuranceCtrl := insuranceController.New(insuranceRepo, transactionService)
	settingsCtrl := settingsController.New(settingsRepo, transactionService)

	app := &App{
		Database:             db,
		Config:               config,
		Middleware:           middleware,
		TransactionService:   transactionService,
		AssessmentRepo:       assessmentRepo,
		InsuranceRepo:        insuranceRepo,
		SettingsRepo:         settingsRepo,
		AssessmentController: assessmentCtrl,
		InsuranceController:  insuranceCtrl,
		SettingsController:   settingsCtrl,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.TransactionService,
		a.AssessmentRepo,
		a.InsuranceRepo,
		a.SettingsRepo,
		a.AssessmentController,
		a.InsuranceController,
		a.SettingsController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
