package repository

import (
	"go-fichas-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(userID uuid.UUID, categoryID *uuid.UUID) ([]model.Product, error)
	FindByID(id, userID uuid.UUID) (*model.Product, error)
	Delete(id, userID uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(userID uuid.UUID, categoryID *uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Preload("Category").Where("user_id = ?", userID)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	err := q.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id, userID uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ? AND user_id = ?", id, userID).Error
	return &product, err
}

func (r *productRepo) Delete(id, userID uuid.UUID) error {
	res := r.db.Delete(&model.Product{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
