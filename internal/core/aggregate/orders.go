// Package aggregate holds the pure transforms behind the dashboard views.
// Every function reads its input without modifying it and keeps no state
// between calls.
package aggregate

import "github.com/MikeRez0/eatsadmin/internal/core/domain"

// AggregateByRestaurant groups orders by restaurant name. An empty input
// gives an empty index.
func AggregateByRestaurant(orders []domain.Order) *domain.SummaryIndex {
	index := domain.NewSummaryIndex()
	for i := range orders {
		o := &orders[i]
		s := index.Entry(o.Restaurant)
		s.Total++
		switch o.Status {
		case domain.OrderStatusDelivered:
			s.Successful++
		case domain.OrderStatusCanceled:
			s.Canceled++
			if o.CanceledBy != "" {
				s.CanceledBy.Add(o.CanceledBy)
			}
		}
	}
	return index
}

// FilterOrders returns the orders of restaurant, in input order. An empty
// status keeps every status.
func FilterOrders(orders []domain.Order, restaurant string, status domain.OrderStatus) []domain.Order {
	out := make([]domain.Order, 0)
	for _, o := range orders {
		if o.Restaurant != restaurant {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

// OrdersByCustomer returns the order history of customer, in input order.
func OrdersByCustomer(orders []domain.Order, customer string) []domain.Order {
	out := make([]domain.Order, 0)
	for _, o := range orders {
		if o.Customer == customer {
			out = append(out, o.Clone())
		}
	}
	return out
}
