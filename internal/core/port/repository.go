package port

import (
	"context"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
)

// Repository is the read-only data source behind the dashboard. Every
// call returns a fresh snapshot the caller may keep.
//
//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// User
	ListUserStats(ctx context.Context) ([]domain.UserStat, error)

	// Restaurant
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListRestaurantActivity(ctx context.Context) ([]domain.RestaurantActivity, error)
}
