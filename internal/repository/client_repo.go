package repository

import (
	"go-fichas-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *model.Client) error
	FindAll(userID uuid.UUID, groupID *uuid.UUID) ([]model.Client, error)
	FindByID(id, userID uuid.UUID) (*model.Client, error)
	FindByName(name string, userID uuid.UUID) (*model.Client, error)
	Delete(id, userID uuid.UUID) error
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(client *model.Client) error {
	return r.db.Create(client).Error
}

// FindAll preloads chips and orders with their lines so balances can be
// computed from the returned rows without further queries.
func (r *clientRepo) FindAll(userID uuid.UUID, groupID *uuid.UUID) ([]model.Client, error) {
	var clients []model.Client
	q := r.db.
		Preload("Chips").
		Preload("Orders.OrderProducts").
		Preload("Group").
		Where("user_id = ?", userID)
	if groupID != nil {
		q = q.Where("group_id = ?", *groupID)
	}
	err := q.Order("name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) FindByID(id, userID uuid.UUID) (*model.Client, error) {
	var client model.Client
	err := r.db.
		Preload("Chips").
		Preload("Orders.OrderProducts").
		Preload("Group").
		First(&client, "id = ? AND user_id = ?", id, userID).Error
	return &client, err
}

func (r *clientRepo) FindByName(name string, userID uuid.UUID) (*model.Client, error) {
	var client model.Client
	err := r.db.First(&client, "name = ? AND user_id = ?", name, userID).Error
	return &client, err
}

func (r *clientRepo) Delete(id, userID uuid.UUID) error {
	res := r.db.Delete(&model.Client{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
