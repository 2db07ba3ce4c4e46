package balance

import (
	"testing"

	"go-fichas-ws/internal/model"

	"github.com/stretchr/testify/assert"
)

func chip(value int64) model.Chip {
	return model.Chip{Value: value}
}

func order(lines ...model.OrderProduct) model.Order {
	return model.Order{OrderProducts: lines}
}

func line(name string, price int64, quantity int) model.OrderProduct {
	return model.OrderProduct{ProductName: name, Price: price, Quantity: quantity}
}

func TestSumChips(t *testing.T) {
	assert.Equal(t, int64(0), SumChips(nil))
	assert.Equal(t, int64(2000), SumChips([]model.Chip{chip(1000), chip(1000)}))
	assert.Equal(t, int64(1500), SumChips([]model.Chip{chip(500), chip(0), chip(1000)}))
}

func TestOrderTotalMultipliesQuantity(t *testing.T) {
	o := order(line("coxinha", 500, 2), line("refri", 300, 3))
	assert.Equal(t, int64(1900), OrderTotal(o))
}

func TestOrderTotalEmptyOrderIsZero(t *testing.T) {
	assert.Equal(t, int64(0), OrderTotal(order()))
}

func TestComputeExampleScenario(t *testing.T) {
	// Client with chips [1000, 1000] and one order [{price:500, quantity:2}].
	chips := []model.Chip{chip(1000), chip(1000)}
	orders := []model.Order{order(line("coxinha", 500, 2))}

	assert.Equal(t, int64(2000), SumChips(chips))
	assert.Equal(t, int64(1000), SumOrders(orders))
	assert.Equal(t, int64(1000), Compute(chips, orders))
}

func TestComputeInvariantUnderReordering(t *testing.T) {
	chips := []model.Chip{chip(300), chip(700), chip(50)}
	orders := []model.Order{
		order(line("a", 100, 1)),
		order(line("b", 200, 2), line("c", 10, 5)),
	}

	reversedChips := []model.Chip{chip(50), chip(700), chip(300)}
	reversedOrders := []model.Order{orders[1], orders[0]}

	assert.Equal(t, Compute(chips, orders), Compute(reversedChips, reversedOrders))
}

func TestComputeCanGoNegative(t *testing.T) {
	chips := []model.Chip{chip(100)}
	orders := []model.Order{order(line("a", 500, 1))}
	assert.Equal(t, int64(-400), Compute(chips, orders))
}

func TestAggregateProductsSumsQuantityPerName(t *testing.T) {
	orders := []model.Order{
		order(line("coxinha", 500, 2), line("refri", 300, 1)),
		order(line("coxinha", 500, 3)),
	}

	items := AggregateProducts(orders)
	assert.Len(t, items, 2)
	assert.Equal(t, ProductSummary{Name: "coxinha", Quantity: 5, Price: 500}, items[0])
	assert.Equal(t, ProductSummary{Name: "refri", Quantity: 1, Price: 300}, items[1])
	assert.Equal(t, int64(2800), Total(items))
}

func TestAggregateProductsKeepsFirstSeenPrice(t *testing.T) {
	orders := []model.Order{
		order(line("coxinha", 500, 1)),
		order(line("coxinha", 600, 1)), // later price change is ignored
	}

	items := AggregateProducts(orders)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(500), items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAggregateProductsEmpty(t *testing.T) {
	assert.Empty(t, AggregateProducts(nil))
	assert.Equal(t, int64(0), Total(nil))
}
