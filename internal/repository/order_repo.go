package repository

import (
	"time"

	"go-fichas-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	FindAll(userID uuid.UUID, date *time.Time) ([]model.Order, error)
	FindByID(id, userID uuid.UUID) (*model.Order, error)
	SetConcluded(id, userID uuid.UUID, to bool) error
	Delete(id, userID uuid.UUID) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

// FindAll returns orders with their lines, newest first. A date narrows the
// result to the calendar day of the given (noon-normalized) instant.
func (r *orderRepo) FindAll(userID uuid.UUID, date *time.Time) ([]model.Order, error) {
	var orders []model.Order
	q := r.db.Preload("OrderProducts").Where("user_id = ?", userID)
	if date != nil {
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		q = q.Where("date >= ? AND date < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}
	err := q.Order("date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id, userID uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("OrderProducts").
		First(&order, "id = ? AND user_id = ?", id, userID).Error
	return &order, err
}

func (r *orderRepo) SetConcluded(id, userID uuid.UUID, to bool) error {
	res := r.db.Model(&model.Order{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("concluded", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the order and its lines in one transaction.
func (r *orderRepo) Delete(id, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Order{}, "id = ? AND user_id = ?", id, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&model.OrderProduct{}, "order_id = ?", id).Error
	})
}
