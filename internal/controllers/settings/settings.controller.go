package settingsController

import (
	"context"
	"encoding/json"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/services"

	"gorm.io/datatypes"
)

type SettingsController struct {
	settingsRepo       repositories.UserSettingsRepository
	transactionService *services.TransactionService
	log                logger.Logger
}

func New(
	settingsRepo repositories.UserSettingsRepository,
	transactionService *services.TransactionService,
) *SettingsController {
	return &SettingsController{
		settingsRepo:       settingsRepo,
		transactionService: transactionService,
		log:                logger.New("SettingsController"),
	}
}

func (sc *SettingsController) GetUserSettings(
	ctx context.Context,
	userEmail string,
) (*UserSettings, error) {
	settings, err := sc.settingsRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// UpsertUserSettings creates or overwrites the single settings row for the
// owner email and returns the stored row.
func (sc *SettingsController) UpsertUserSettings(
	ctx context.Context,
	request *UpsertUserSettingsRequest,
) (*UserSettings, error) {
	log := sc.log.Function("UpsertUserSettings")

	advisorInfo, err := json.Marshal(request.AdvisorInfo)
	if err != nil {
		return nil, log.Err("failed to encode advisor info", err)
	}

	products := request.EnabledProducts
	if products == nil {
		products = []string{}
	}
	enabledProducts, err := json.Marshal(products)
	if err != nil {
		return nil, log.Err("failed to encode enabled products", err)
	}

	settings := &UserSettings{
		UserEmail:       request.UserEmail,
		AdvisorInfo:     datatypes.JSON(advisorInfo),
		EnabledProducts: datatypes.JSON(enabledProducts),
	}

	err = sc.transactionService.Execute(ctx, func(txCtx context.Context) error {
		return sc.settingsRepo.Upsert(txCtx, settings)
	})
	if err != nil {
		return nil, log.Err("failed to upsert user settings", err, "userEmail", request.UserEmail)
	}

	return settings, nil
}
