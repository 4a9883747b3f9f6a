package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobboard/internal/auth"
	"jobboard/internal/database"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

// testDB opens a throwaway sqlite database with the same gorm config the
// server uses, so unique-index translation behaves identically.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role models.Role) auth.Identity {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return auth.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
}

func seedJob(t *testing.T, db *gorm.DB, owner auth.Identity, title string, createdAt time.Time) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       title,
		Company:     "Acme",
		Location:    "Remote",
		Salary:      "100k",
		Description: "desc",
		CreatedByID: owner.UserID,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func jobRequest(title string) *dtos.JobCreationRequest {
	return &dtos.JobCreationRequest{
		Title:       title,
		Company:     "Acme",
		Location:    "Remote",
		Salary:      "100k",
		Description: "desc",
	}
}
