package repositories

import (
	"path/filepath"
	"server/config"
	"server/internal/database"
	. "server/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a throwaway sqlite database with the three record tables
// migrated. No cache address is configured, so repositories exercise their
// database paths.
func newTestDB(t *testing.T) database.DB {
	t.Helper()

	testConfig := config.Config{
		DatabaseDbPath: filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := database.New(testConfig)
	require.NoError(t, err)

	err = db.SQL.AutoMigrate(&Assessment{}, &OnePageInsurance{}, &UserSettings{})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// Helper function to create string pointers
func stringPtr(s string) *string {
	return &s
}

func TestListParams_Normalized(t *testing.T) {
	tests := []struct {
		name          string
		params        ListParams
		expectedSkip  int
		expectedLimit int
	}{
		{
			name:          "defaults applied",
			params:        ListParams{},
			expectedSkip:  0,
			expectedLimit: 100,
		},
		{
			name:          "explicit values kept",
			params:        ListParams{Skip: 20, Limit: 10},
			expectedSkip:  20,
			expectedLimit: 10,
		},
		{
			name:          "negative skip reset",
			params:        ListParams{Skip: -5, Limit: 10},
			expectedSkip:  0,
			expectedLimit: 10,
		},
		{
			name:          "non-positive limit reset",
			params:        ListParams{Skip: 5, Limit: -1},
			expectedSkip:  5,
			expectedLimit: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized := tt.params.normalized()

			assert.Equal(t, tt.expectedSkip, normalized.Skip)
			assert.Equal(t, tt.expectedLimit, normalized.Limit)
		})
	}
}

func TestSearchTerm(t *testing.T) {
	assert.Equal(t, "%jane%", searchTerm("Jane"))
	assert.Equal(t, "%555-1%", searchTerm("555-1"))
}
