package repository

import (
	"go-fichas-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChipRepository interface {
	Create(chip *model.Chip) error
	FindAll(userID uuid.UUID) ([]model.Chip, error)
	FindByClient(clientID, userID uuid.UUID) ([]model.Chip, error)
	Delete(id, userID uuid.UUID) error
}

type chipRepo struct {
	db *gorm.DB
}

func NewChipRepo(db *gorm.DB) ChipRepository {
	return &chipRepo{db}
}

func (r *chipRepo) Create(chip *model.Chip) error {
	return r.db.Create(chip).Error
}

func (r *chipRepo) FindAll(userID uuid.UUID) ([]model.Chip, error) {
	var chips []model.Chip
	err := r.db.Preload("Client").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&chips).Error
	return chips, err
}

func (r *chipRepo) FindByClient(clientID, userID uuid.UUID) ([]model.Chip, error) {
	var chips []model.Chip
	err := r.db.
		Where("client_id = ? AND user_id = ?", clientID, userID).
		Order("date DESC").
		Find(&chips).Error
	return chips, err
}

func (r *chipRepo) Delete(id, userID uuid.UUID) error {
	res := r.db.Delete(&model.Chip{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
