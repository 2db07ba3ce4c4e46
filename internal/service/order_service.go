package service

import (
	"errors"
	"time"

	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"
	"go-fichas-ws/internal/ws"
	"go-fichas-ws/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// CreateOrderLine is one requested line. ProductID is optional; when set,
// the referenced product must exist or the whole order is rejected.
// ProductName and Price are stored as given: they are the snapshot.
type CreateOrderLine struct {
	ProductID   *uuid.UUID `json:"product_id"`
	ProductName string     `json:"product_name" validate:"required"`
	Quantity    int        `json:"quantity" validate:"required,gt=0"`
	Price       int64      `json:"price" validate:"gte=0"`
}

// CreateOrderInput is the order creation request. A nil ClientID makes an
// avulso order identified by ClientName only.
type CreateOrderInput struct {
	Date       string            `json:"date"`
	ClientID   *uuid.UUID        `json:"client_id"`
	ClientName string            `json:"client_name" validate:"required"`
	Lines      []CreateOrderLine `json:"order_products" validate:"dive"`
}

type OrderService interface {
	Create(userID uuid.UUID, in *CreateOrderInput) (*model.Order, error)
	List(userID uuid.UUID, date string) ([]model.Order, error)
	Check(id, userID uuid.UUID, to bool) error
	Delete(id, userID uuid.UUID) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	db        *gorm.DB
	hub       *ws.Hub
}

func NewOrderService(orderRepo repository.OrderRepository, db *gorm.DB, hub *ws.Hub) OrderService {
	return &orderService{orderRepo: orderRepo, db: db, hub: hub}
}

// Create persists the order and all of its lines as one unit. Any dangling
// client or product reference aborts the transaction; nothing is committed.
func (s *orderService) Create(userID uuid.UUID, in *CreateOrderInput) (*model.Order, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, validationError(errs)
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := model.ParseDate(in.Date)
		if err != nil {
			return nil, ErrBadDate
		}
		date = parsed
	}

	order := &model.Order{
		Date:       date,
		ClientID:   in.ClientID,
		ClientName: in.ClientName,
		UserID:     userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if order.ClientID != nil {
			var client model.Client
			if err := tx.First(&client, "id = ? AND user_id = ?", *order.ClientID, userID).Error; err != nil {
				return ErrClientNotFound
			}
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, line := range in.Lines {
			if line.ProductID != nil {
				var product model.Product
				if err := tx.First(&product, "id = ? AND user_id = ?", *line.ProductID, userID).Error; err != nil {
					return ErrProductNotFound
				}
			}

			op := model.OrderProduct{
				OrderID:     order.ID,
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				Price:       line.Price,
			}
			if err := tx.Create(&op).Error; err != nil {
				return err
			}
			order.OrderProducts = append(order.OrderProducts, op)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Notify("order", "created", order)
	}
	return order, nil
}

func (s *orderService) List(userID uuid.UUID, date string) ([]model.Order, error) {
	var day *time.Time
	if date != "" {
		parsed, err := model.ParseDate(date)
		if err != nil {
			return nil, ErrBadDate
		}
		day = &parsed
	}
	return s.orderRepo.FindAll(userID, day)
}

func (s *orderService) Check(id, userID uuid.UUID, to bool) error {
	if err := s.orderRepo.SetConcluded(id, userID, to); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if s.hub != nil {
		s.hub.Notify("order", "updated", id)
	}
	return nil
}

func (s *orderService) Delete(id, userID uuid.UUID) error {
	if err := s.orderRepo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if s.hub != nil {
		s.hub.Notify("order", "deleted", id)
	}
	return nil
}
