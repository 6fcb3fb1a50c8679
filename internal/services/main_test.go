package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/moviehub-app/moviehub-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database
	// and serializes concurrent writes.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Movie{},
		&models.Review{},
		&models.Petition{},
		&models.PetitionVote{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "not-a-real-hash",
		Role:     "user",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestMovie(t *testing.T, db *gorm.DB, name string, price int) models.Movie {
	t.Helper()
	movie := models.Movie{Name: name, Price: price, Description: "test movie"}
	require.NoError(t, db.Create(&movie).Error)
	return movie
}
