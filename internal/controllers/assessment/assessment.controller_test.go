package assessmentController

import (
	"context"
	"encoding/json"
	"path/filepath"
	"server/config"
	"server/internal/database"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*AssessmentController, database.DB) {
	t.Helper()

	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := database.New(testConfig)
	require.NoError(t, err)
	require.NoError(t, db.SQL.AutoMigrate(&Assessment{}))

	t.Cleanup(func() {
		_ = db.Close()
	})

	repo := repositories.NewAssessment(db)
	return New(repo, services.NewTransactionService(db)), db
}

func stringPtr(s string) *string {
	return &s
}

func TestCreateAssessment_DerivesPhoneFromPayload(t *testing.T) {
	controller, _ := newController(t)

	assessment, err := controller.CreateAssessment(context.Background(), &CreateAssessmentRequest{
		UserEmail:        "a@x.com",
		PrimaryName:      "Jane",
		IsMarried:        false,
		TotalAssetValue:  100.0,
		TotalIncomeValue: 50.0,
		IsEligible:       true,
		SubmissionData: map[string]any{
			"p1": map[string]any{"phone": "555-1"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, assessment.UserPhone)
	assert.Equal(t, "555-1", *assessment.UserPhone)
	assert.NotZero(t, assessment.ID)
	assert.False(t, assessment.CreatedAt.IsZero())
}

func TestCreateAssessment_ExplicitPhoneWins(t *testing.T) {
	controller, _ := newController(t)

	assessment, err := controller.CreateAssessment(context.Background(), &CreateAssessmentRequest{
		UserEmail:   "a@x.com",
		PrimaryName: "Jane",
		UserPhone:   stringPtr("555-9999"),
		SubmissionData: map[string]any{
			"p1": map[string]any{"phone": "555-1"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, assessment.UserPhone)
	assert.Equal(t, "555-9999", *assessment.UserPhone)
}

func TestCreateAssessment_NoPhoneAnywhere(t *testing.T) {
	controller, _ := newController(t)

	assessment, err := controller.CreateAssessment(context.Background(), &CreateAssessmentRequest{
		UserEmail:      "a@x.com",
		PrimaryName:    "Jane",
		SubmissionData: map[string]any{"p2": map[string]any{}},
	})
	require.NoError(t, err)

	assert.Nil(t, assessment.UserPhone)
}

func TestCreateAssessment_PayloadRoundTrip(t *testing.T) {
	controller, _ := newController(t)

	payload := map[string]any{
		"p1":     map[string]any{"phone": "555-1", "age": float64(30)},
		"assets": []any{map[string]any{"kind": "cash", "value": float64(10000)}},
		"flag":   true,
		"blank":  nil,
	}

	created, err := controller.CreateAssessment(context.Background(), &CreateAssessmentRequest{
		UserEmail:      "a@x.com",
		PrimaryName:    "Jane",
		SubmissionData: payload,
	})
	require.NoError(t, err)

	found, err := controller.GetAssessmentByID(context.Background(), created.ID)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(found.SubmissionData, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestGetAssessmentByID_NotFoundPassesThrough(t *testing.T) {
	controller, _ := newController(t)

	_, err := controller.GetAssessmentByID(context.Background(), 404)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestListAssessments_UsesRepositoryFilters(t *testing.T) {
	controller, _ := newController(t)

	for _, name := range []string{"Jane", "Ken"} {
		_, err := controller.CreateAssessment(context.Background(), &CreateAssessmentRequest{
			UserEmail:      "a@x.com",
			PrimaryName:    name,
			SubmissionData: map[string]any{},
		})
		require.NoError(t, err)
	}

	assessments, err := controller.ListAssessments(context.Background(), repositories.ListParams{
		Search: "ken",
	})
	require.NoError(t, err)

	require.Len(t, assessments, 1)
	assert.Equal(t, "Ken", assessments[0].PrimaryName)
}
