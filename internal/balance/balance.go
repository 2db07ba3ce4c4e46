// Package balance holds the pure arithmetic over already-loaded chip and
// order records: client balances, order totals and the dashboard product
// aggregation. All amounts are integer cents.
package balance

import "go-fichas-ws/internal/model"

// SumChips returns the total credit ever issued across the given chips.
func SumChips(chips []model.Chip) int64 {
	var total int64
	for _, c := range chips {
		total += c.Value
	}
	return total
}

// OrderTotal returns the value of one order: the sum of price x quantity
// over its lines. An order without lines totals zero.
func OrderTotal(o model.Order) int64 {
	var total int64
	for _, line := range o.OrderProducts {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// SumOrders returns the combined total of all given orders.
func SumOrders(orders []model.Order) int64 {
	var total int64
	for _, o := range orders {
		total += OrderTotal(o)
	}
	return total
}

// Compute returns a client's balance: credit issued minus order totals.
// Pure sum, so the result does not depend on list ordering.
func Compute(chips []model.Chip, orders []model.Order) int64 {
	return SumChips(chips) - SumOrders(orders)
}

// ProductSummary is one row of the dashboard aggregation.
type ProductSummary struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// AggregateProducts groups every line of the given orders by product name,
// summing quantities per distinct name. The price kept is the first one
// seen for that name; price stability per name within the window is
// assumed, not enforced.
func AggregateProducts(orders []model.Order) []ProductSummary {
	var out []ProductSummary
	index := make(map[string]int)
	for _, o := range orders {
		for _, line := range o.OrderProducts {
			if i, ok := index[line.ProductName]; ok {
				out[i].Quantity += line.Quantity
				continue
			}
			index[line.ProductName] = len(out)
			out = append(out, ProductSummary{
				Name:     line.ProductName,
				Quantity: line.Quantity,
				Price:    line.Price,
			})
		}
	}
	return out
}

// Total returns the grand total of an aggregation: sum of price x quantity
// per summary row.
func Total(items []ProductSummary) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
