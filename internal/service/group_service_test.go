package service

import (
	"testing"

	"go-fichas-ws/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGroupLifecycle(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := NewGroupService(repository.NewGroupRepo(db), nil)

	group, err := svc.Create(user.ID, "mesa 1")
	require.NoError(t, err)

	require.NoError(t, svc.Rename(group.ID, user.ID, "mesa vip"))

	groups, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "mesa vip", groups[0].Name)

	require.NoError(t, svc.Delete(group.ID, user.ID))
	groups, _ = svc.List(user.ID)
	assert.Empty(t, groups)
}

func TestGroupCreateRequiresName(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := NewGroupService(repository.NewGroupRepo(db), nil)

	_, err := svc.Create(user.ID, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGroupRenameUnknownID(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := NewGroupService(repository.NewGroupRepo(db), nil)

	err := svc.Rename(uuid.New(), user.ID, "mesa")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGroupDeleteUnknownID(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := NewGroupService(repository.NewGroupRepo(db), nil)

	err := svc.Delete(uuid.New(), user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
