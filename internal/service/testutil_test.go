package service

import (
	"testing"

	"go-fichas-ws/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Client{},
		&model.Chip{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderProduct{},
	)
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Name: "Dona"}
	require.NoError(t, user.SetPassword("segredo"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedClient(t *testing.T, db *gorm.DB, user *model.User, name string) *model.Client {
	t.Helper()
	client := &model.Client{Name: name, UserID: user.ID}
	require.NoError(t, db.Create(client).Error)
	return client
}
