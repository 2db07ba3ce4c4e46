package service

import (
	"time"

	"go-fichas-ws/internal/balance"
	"go-fichas-ws/internal/model"
	"go-fichas-ws/internal/repository"

	"github.com/google/uuid"
)

// DashboardSummary is the day overview: per-product-name sales rollup, the
// grand total and how many orders are still open.
type DashboardSummary struct {
	Products  []balance.ProductSummary `json:"products"`
	Total     int64                    `json:"total"`
	Concluded int                      `json:"concluded"`
	Pending   int                      `json:"pending"`
}

type DashboardService interface {
	Summary(userID uuid.UUID, date string) (*DashboardSummary, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
}

func NewDashboardService(orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{orderRepo: orderRepo}
}

func (s *dashboardService) Summary(userID uuid.UUID, date string) (*DashboardSummary, error) {
	var day *time.Time
	if date != "" {
		parsed, err := model.ParseDate(date)
		if err != nil {
			return nil, ErrBadDate
		}
		day = &parsed
	}

	orders, err := s.orderRepo.FindAll(userID, day)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Products: balance.AggregateProducts(orders),
	}
	summary.Total = balance.Total(summary.Products)
	for _, o := range orders {
		if o.Concluded {
			summary.Concluded++
		} else {
			summary.Pending++
		}
	}
	return summary, nil
}
