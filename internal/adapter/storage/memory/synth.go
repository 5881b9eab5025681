package memory

import (
	"math/rand"
	"time"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var cancelers = []string{"Admin Mark", "Sarah Wilson", "Maria Garcia", ""}

// Synthesize generates n random but valid orders spread over restaurants.
// The same seed yields the same orders apart from their ids.
func Synthesize(n int, seed int64, restaurants []string) []domain.Order {
	if len(restaurants) == 0 || n <= 0 {
		return []domain.Order{}
	}

	fake := faker.NewWithSeed(rand.NewSource(seed))
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	orders := make([]domain.Order, 0, n)
	for i := 0; i < n; i++ {
		o := domain.Order{
			ID:            "#SYN-" + cuid.New(),
			Customer:      fake.Person().Name(),
			Restaurant:    restaurants[fake.IntBetween(0, len(restaurants)-1)],
			Status:        domain.OrderStatusDelivered,
			PlacedAt:      fake.Time().TimeBetween(start, start.AddDate(0, 1, 0)),
			DeliveryType:  domain.DeliveryTypeTakeaway,
			PaymentMethod: domain.PaymentMethodOnline,
		}
		if fake.IntBetween(1, 4) == 1 {
			o.Status = domain.OrderStatusCanceled
			o.CanceledBy = cancelers[fake.IntBetween(0, len(cancelers)-1)]
		}
		if fake.Bool() {
			o.DeliveryType = domain.DeliveryTypeDelivery
			o.DeliveryAddress = fake.Address().Address()
		}
		if fake.Bool() {
			o.PaymentMethod = domain.PaymentMethodCOD
		}

		itemCount := fake.IntBetween(1, 4)
		for j := 0; j < itemCount; j++ {
			price, err := decimal.NewFromFloat64(fake.Float64(2, 1, 25))
			if err != nil {
				price = decimal.One
			}
			o.Items = append(o.Items, domain.OrderItem{
				Name:     fake.Lorem().Word(),
				Quantity: fake.IntBetween(1, 3),
				Price:    price.Round(2),
			})
		}
		orders = append(orders, o)
	}
	return orders
}
