package repository

import (
	"go-fichas-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(group *model.Group) error
	FindAll(userID uuid.UUID) ([]model.Group, error)
	FindByID(id, userID uuid.UUID) (*model.Group, error)
	Rename(id, userID uuid.UUID, name string) error
	Delete(id, userID uuid.UUID) error
}

type groupRepo struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepository {
	return &groupRepo{db}
}

func (r *groupRepo) Create(group *model.Group) error {
	return r.db.Create(group).Error
}

func (r *groupRepo) FindAll(userID uuid.UUID) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&groups).Error
	return groups, err
}

func (r *groupRepo) FindByID(id, userID uuid.UUID) (*model.Group, error) {
	var group model.Group
	err := r.db.First(&group, "id = ? AND user_id = ?", id, userID).Error
	return &group, err
}

func (r *groupRepo) Rename(id, userID uuid.UUID, name string) error {
	res := r.db.Model(&model.Group{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *groupRepo) Delete(id, userID uuid.UUID) error {
	res := r.db.Delete(&model.Group{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
