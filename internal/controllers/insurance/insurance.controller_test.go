package insuranceController

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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*InsuranceController, database.DB) {
	t.Helper()

	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := database.New(testConfig)
	require.NoError(t, err)
	require.NoError(t, db.SQL.AutoMigrate(&OnePageInsurance{}))

	t.Cleanup(func() {
		_ = db.Close()
	})

	repo := repositories.NewOnePageInsurance(db)
	return New(repo, services.NewTransactionService(db)), db
}

func stringPtr(s string) *string {
	return &s
}

func TestUpsertOnePageInsurance_SameKeyTwiceKeepsOneRow(t *testing.T) {
	controller, db := newController(t)

	first, err := controller.UpsertOnePageInsurance(context.Background(), &UpsertOnePageInsuranceRequest{
		UserEmail:  "a@x.com",
		ClientName: "Jane",
		ClientType: stringPtr("A"),
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	second, err := controller.UpsertOnePageInsurance(context.Background(), &UpsertOnePageInsuranceRequest{
		UserEmail:  "a@x.com",
		ClientName: "Jane",
		ClientType: stringPtr("B"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.ClientType)
	assert.Equal(t, "B", *second.ClientType)

	var count int64
	require.NoError(t, db.SQL.Model(&OnePageInsurance{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertOnePageInsurance_PlansRoundTrip(t *testing.T) {
	controller, _ := newController(t)

	plans := []map[string]any{
		{"company": "AIA", "premium": float64(1200), "riders": []any{"ci", "waiver"}},
		{"company": "PRU", "premium": float64(900)},
	}

	record, err := controller.UpsertOnePageInsurance(context.Background(), &UpsertOnePageInsuranceRequest{
		UserEmail:  "a@x.com",
		ClientName: "Jane",
		Plans:      plans,
	})
	require.NoError(t, err)

	found, err := controller.GetOnePageInsuranceByID(context.Background(), record.ID)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(found.Plans, &decoded))
	assert.Equal(t, plans, decoded)
}

func TestUpsertOnePageInsurance_NilPlansStoredAsEmptyList(t *testing.T) {
	controller, _ := newController(t)

	record, err := controller.UpsertOnePageInsurance(context.Background(), &UpsertOnePageInsuranceRequest{
		UserEmail:  "a@x.com",
		ClientName: "Jane",
	})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(record.Plans, &decoded))
	assert.Empty(t, decoded)
}

func TestDeleteOnePageInsurance_ThenGetNotFound(t *testing.T) {
	controller, _ := newController(t)

	record, err := controller.UpsertOnePageInsurance(context.Background(), &UpsertOnePageInsuranceRequest{
		UserEmail:  "a@x.com",
		ClientName: "Jane",
	})
	require.NoError(t, err)

	require.NoError(t, controller.DeleteOnePageInsurance(context.Background(), record.ID))

	_, err = controller.GetOnePageInsuranceByID(context.Background(), record.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = controller.DeleteOnePageInsurance(context.Background(), record.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
