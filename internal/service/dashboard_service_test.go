package service

import (
	"testing"

	"go-fichas-ws/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	orders := newOrderService(db)
	svc := NewDashboardService(repository.NewOrderRepo(db))

	o1, err := orders.Create(user.ID, &CreateOrderInput{
		Date:       "2024-05-20",
		ClientName: "Zeca",
		Lines: []CreateOrderLine{
			{ProductName: "coxinha", Quantity: 2, Price: 500},
			{ProductName: "refri", Quantity: 1, Price: 300},
		},
	})
	require.NoError(t, err)
	_, err = orders.Create(user.ID, &CreateOrderInput{
		Date:       "2024-05-20",
		ClientName: "turista",
		Lines:      []CreateOrderLine{{ProductName: "coxinha", Quantity: 3, Price: 500}},
	})
	require.NoError(t, err)
	require.NoError(t, orders.Check(o1.ID, user.ID, true))

	summary, err := svc.Summary(user.ID, "2024-05-20")
	require.NoError(t, err)

	require.Len(t, summary.Products, 2)
	byName := map[string]int{}
	for _, p := range summary.Products {
		byName[p.Name] = p.Quantity
	}
	assert.Equal(t, 5, byName["coxinha"])
	assert.Equal(t, 1, byName["refri"])

	// 5*500 + 1*300
	assert.Equal(t, int64(2800), summary.Total)
	assert.Equal(t, 1, summary.Concluded)
	assert.Equal(t, 1, summary.Pending)
}

func TestDashboardSummaryEmptyDay(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "dona@bar.com")
	svc := NewDashboardService(repository.NewOrderRepo(db))

	summary, err := svc.Summary(user.ID, "2024-05-20")
	require.NoError(t, err)
	assert.Empty(t, summary.Products)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.Concluded)
	assert.Zero(t, summary.Pending)
}
