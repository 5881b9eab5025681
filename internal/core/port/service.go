package port

import (
	"context"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	OrderSummaries(ctx context.Context) ([]domain.RestaurantOrderSummary, error)
	RestaurantSummary(ctx context.Context, restaurant string) (domain.RestaurantOrderSummary, error)
	RestaurantOrders(ctx context.Context, restaurant string, status domain.OrderStatus) ([]domain.Order, error)
	CustomerOrders(ctx context.Context, customer string) ([]domain.Order, error)
	Invoice(ctx context.Context, orderID string) (*domain.Invoice, error)

	Leaderboard(ctx context.Context) (domain.Leaderboard, error)
	RestaurantUsers(ctx context.Context, threshold int) ([]domain.RestaurantUserReport, error)

	Restaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error)
	RestaurantStatusCounts(ctx context.Context) (domain.RestaurantStatusCounts, error)
	Cuisines(ctx context.Context) ([]string, error)
	Analytics(ctx context.Context) ([]domain.ActivitySummary, error)
}
