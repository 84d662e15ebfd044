package seed

import (
	"path/filepath"
	"server/config"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := database.New(testConfig)
	require.NoError(t, err)
	require.NoError(t, db.SQL.AutoMigrate(&Assessment{}, &OnePageInsurance{}, &UserSettings{}))

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db.SQL
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestSeed_CreatesFixtures(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db, logger.New("seed")))

	assert.Equal(t, int64(2), countRows(t, db, &Assessment{}))
	assert.Equal(t, int64(1), countRows(t, db, &UserSettings{}))

	var assessment Assessment
	require.NoError(t, db.First(&assessment, "primary_name = ?", "Jane Chan").Error)
	require.NotNil(t, assessment.UserPhone)
	assert.Equal(t, "555-0101", *assessment.UserPhone)
	assert.True(t, assessment.IsEligible)
}

func TestSeed_SecondRunChangesNothing(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db, logger.New("seed")))

	var before Assessment
	require.NoError(t, db.First(&before, "primary_name = ?", "Jane Chan").Error)

	require.NoError(t, Seed(db, logger.New("seed")))

	assert.Equal(t, int64(2), countRows(t, db, &Assessment{}))
	assert.Equal(t, int64(1), countRows(t, db, &UserSettings{}))

	var after Assessment
	require.NoError(t, db.First(&after, "primary_name = ?", "Jane Chan").Error)
	assert.Equal(t, before.ID, after.ID)
}

func TestSeed_FailureRollsBackWholeBatch(t *testing.T) {
	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := database.New(testConfig)
	require.NoError(t, err)
	// user_settings is missing, so seeding fails after the assessments insert
	require.NoError(t, db.SQL.AutoMigrate(&Assessment{}))

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.Error(t, Seed(db.SQL, logger.New("seed")))

	assert.Equal(t, int64(0), countRows(t, db.SQL, &Assessment{}))
}
