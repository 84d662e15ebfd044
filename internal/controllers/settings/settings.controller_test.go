package settingsController

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

func newController(t *testing.T) *SettingsController {
	t.Helper()

	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := database.New(testConfig)
	require.NoError(t, err)
	require.NoError(t, db.SQL.AutoMigrate(&UserSettings{}))

	t.Cleanup(func() {
		_ = db.Close()
	})

	repo := repositories.NewUserSettings(db)
	return New(repo, services.NewTransactionService(db))
}

func TestUpsertUserSettings_ThenGet(t *testing.T) {
	controller := newController(t)

	created, err := controller.UpsertUserSettings(context.Background(), &UpsertUserSettingsRequest{
		UserEmail: "advisor@x.com",
		AdvisorInfo: AdvisorInfo{
			Name:  "Alex",
			Phone: "555-1",
			Email: "advisor@x.com",
		},
		EnabledProducts: []string{"AIA", "PRU"},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := controller.GetUserSettings(context.Background(), "advisor@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	var info AdvisorInfo
	require.NoError(t, json.Unmarshal(found.AdvisorInfo, &info))
	assert.Equal(t, "Alex", info.Name)

	var products []string
	require.NoError(t, json.Unmarshal(found.EnabledProducts, &products))
	assert.Equal(t, []string{"AIA", "PRU"}, products)
}

func TestUpsertUserSettings_SecondUpsertOverwrites(t *testing.T) {
	controller := newController(t)

	first, err := controller.UpsertUserSettings(context.Background(), &UpsertUserSettingsRequest{
		UserEmail:       "advisor@x.com",
		AdvisorInfo:     AdvisorInfo{Name: "Alex"},
		EnabledProducts: []string{"AIA"},
	})
	require.NoError(t, err)

	second, err := controller.UpsertUserSettings(context.Background(), &UpsertUserSettingsRequest{
		UserEmail:       "advisor@x.com",
		AdvisorInfo:     AdvisorInfo{Name: "Sam"},
		EnabledProducts: []string{"MAN"},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var products []string
	require.NoError(t, json.Unmarshal(second.EnabledProducts, &products))
	assert.Equal(t, []string{"MAN"}, products)
}

func TestGetUserSettings_NotFound(t *testing.T) {
	controller := newController(t)

	_, err := controller.GetUserSettings(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
