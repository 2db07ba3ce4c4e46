package service

import (
	"testing"
	"time"

	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestChipCreateAndListRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	client := seedClient(t, db, user, "Zeca")
	svc := NewChipService(repository.NewChipRepo(db), repository.NewClientRepo(db), nil)

	chip, err := svc.Create(user.ID, 1000, "2024-05-20", client.ID)
	require.NoError(t, err)

	chips, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, chips, 1)
	assert.Equal(t, chip.ID, chips[0].ID)
	assert.Equal(t, int64(1000), chips[0].Value)

	// plain dates are stored anchored at local noon
	stored := chips[0].Date.In(time.Local)
	assert.Equal(t, "2024-05-20", stored.Format(model.DateLayout))
	assert.Equal(t, 12, stored.Hour())

	require.NotNil(t, chips[0].Client)
	assert.Equal(t, "Zeca", chips[0].Client.Name)
}

func TestChipCreateUnknownClient(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := NewChipService(repository.NewChipRepo(db), repository.NewClientRepo(db), nil)

	_, err := svc.Create(user.ID, 1000, "2024-05-20", uuid.New())
	assert.ErrorIs(t, err, ErrClientNotFound)

	var count int64
	db.Model(&model.Chip{}).Count(&count)
	assert.Zero(t, count)
}

func TestChipCreateRejectsNegativeValue(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	client := seedClient(t, db, user, "Zeca")
	svc := NewChipService(repository.NewChipRepo(db), repository.NewClientRepo(db), nil)

	_, err := svc.Create(user.ID, -500, "2024-05-20", client.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChipCreateBadDate(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	client := seedClient(t, db, user, "Zeca")
	svc := NewChipService(repository.NewChipRepo(db), repository.NewClientRepo(db), nil)

	_, err := svc.Create(user.ID, 1000, "20/05/2024", client.ID)
	assert.ErrorIs(t, err, ErrBadDate)
}

func TestChipDelete(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	client := seedClient(t, db, user, "Zeca")
	svc := NewChipService(repository.NewChipRepo(db), repository.NewClientRepo(db), nil)

	chip, err := svc.Create(user.ID, 1000, "2024-05-20", client.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(chip.ID, user.ID))

	chips, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, chips)

	// deleting again is an error, not a silent success
	err = svc.Delete(chip.ID, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
