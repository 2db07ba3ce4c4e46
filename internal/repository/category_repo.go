package repository

import (
	"go-fichas-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll(userID uuid.UUID) ([]model.Category, error)
	FindByID(id, userID uuid.UUID) (*model.Category, error)
	Rename(id, userID uuid.UUID, name string) error
	Delete(id, userID uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll(userID uuid.UUID) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Preload("Products").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id, userID uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.Preload("Products").
		First(&category, "id = ? AND user_id = ?", id, userID).Error
	return &category, err
}

func (r *categoryRepo) Rename(id, userID uuid.UUID, name string) error {
	res := r.db.Model(&model.Category{}).
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

func (r *categoryRepo) Delete(id, userID uuid.UUID) error {
	res := r.db.Delete(&model.Category{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
