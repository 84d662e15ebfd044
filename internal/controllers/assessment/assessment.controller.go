package assessmentController

import (
	"context"
	"encoding/json"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/services"

	"gorm.io/datatypes"
)

type AssessmentController struct {
	assessmentRepo     repositories.AssessmentRepository
	transactionService *services.TransactionService
	log                logger.Logger
}

func New(
	assessmentRepo repositories.AssessmentRepository,
	transactionService *services.TransactionService,
) *AssessmentController {
	return &AssessmentController{
		assessmentRepo:     assessmentRepo,
		transactionService: transactionService,
		log:                logger.New("AssessmentController"),
	}
}

// CreateAssessment persists one submission. The phone fallback runs here,
// exactly once: when the caller supplied no phone, the submission payload is
// probed at p1.phone. The stored payload itself is never rewritten.
func (ac *AssessmentController) CreateAssessment(
	ctx context.Context,
	request *CreateAssessmentRequest,
) (*Assessment, error) {
	log := ac.log.Function("CreateAssessment")

	assessment := &Assessment{
		UserEmail:        request.UserEmail,
		PrimaryName:      request.PrimaryName,
		SecondaryName:    request.SecondaryName,
		IsMarried:        request.IsMarried,
		TotalAssetValue:  request.TotalAssetValue,
		TotalIncomeValue: request.TotalIncomeValue,
		IsEligible:       request.IsEligible,
	}

	if phone, ok := request.DerivedPhone(); ok {
		assessment.UserPhone = &phone
	}

	if request.SubmissionData != nil {
		payload, err := json.Marshal(request.SubmissionData)
		if err != nil {
			return nil, log.Err("failed to encode submission data", err)
		}
		assessment.SubmissionData = datatypes.JSON(payload)
	}

	err := ac.transactionService.Execute(ctx, func(txCtx context.Context) error {
		return ac.assessmentRepo.Create(txCtx, assessment)
	})
	if err != nil {
		return nil, log.Err("failed to create assessment", err, "userEmail", request.UserEmail)
	}

	return assessment, nil
}

func (ac *AssessmentController) ListAssessments(
	ctx context.Context,
	params repositories.ListParams,
) ([]Assessment, error) {
	assessments, err := ac.assessmentRepo.List(ctx, params)
	if err != nil {
		return nil, ac.log.Function("ListAssessments").
			Err("failed to list assessments", err, "params", params)
	}

	return assessments, nil
}

func (ac *AssessmentController) GetAssessmentByID(ctx context.Context, id int) (*Assessment, error) {
	assessment, err := ac.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return assessment, nil
}
