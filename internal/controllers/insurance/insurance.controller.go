package insuranceController

import (
	"context"
	"encoding/json"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/services"

	"gorm.io/datatypes"
)

type InsuranceController struct {
	insuranceRepo      repositories.OnePageInsuranceRepository
	transactionService *services.TransactionService
	log                logger.Logger
}

func New(
	insuranceRepo repositories.OnePageInsuranceRepository,
	transactionService *services.TransactionService,
) *InsuranceController {
	return &InsuranceController{
		insuranceRepo:      insuranceRepo,
		transactionService: transactionService,
		log:                logger.New("InsuranceController"),
	}
}

// UpsertOnePageInsurance creates or overwrites the summary for the
// (user_email, client_name) pair and returns the stored row.
func (ic *InsuranceController) UpsertOnePageInsurance(
	ctx context.Context,
	request *UpsertOnePageInsuranceRequest,
) (*OnePageInsurance, error) {
	log := ic.log.Function("UpsertOnePageInsurance")

	plans := request.Plans
	if plans == nil {
		plans = []map[string]any{}
	}
	payload, err := json.Marshal(plans)
	if err != nil {
		return nil, log.Err("failed to encode plans", err)
	}

	record := &OnePageInsurance{
		UserEmail:      request.UserEmail,
		ClientName:     request.ClientName,
		ClientPhone:    request.ClientPhone,
		ClientWhatsapp: request.ClientWhatsapp,
		ClientEmail:    request.ClientEmail,
		ClientType:     request.ClientType,
		Plans:          datatypes.JSON(payload),
	}

	err = ic.transactionService.Execute(ctx, func(txCtx context.Context) error {
		return ic.insuranceRepo.Upsert(txCtx, record)
	})
	if err != nil {
		return nil, log.Err("failed to upsert one page insurance", err,
			"userEmail", request.UserEmail, "clientName", request.ClientName)
	}

	return record, nil
}

func (ic *InsuranceController) ListOnePageInsurance(
	ctx context.Context,
	params repositories.ListParams,
) ([]OnePageInsurance, error) {
	records, err := ic.insuranceRepo.List(ctx, params)
	if err != nil {
		return nil, ic.log.Function("ListOnePageInsurance").
			Err("failed to list one page insurance records", err, "params", params)
	}

	return records, nil
}

func (ic *InsuranceController) GetOnePageInsuranceByID(
	ctx context.Context,
	id int,
) (*OnePageInsurance, error) {
	record, err := ic.insuranceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (ic *InsuranceController) DeleteOnePageInsurance(ctx context.Context, id int) error {
	return ic.insuranceRepo.Delete(ctx, id)
}
