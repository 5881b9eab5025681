// Package memory serves dashboard data from an in-process Dataset.
package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
)

type Repository struct {
	data Dataset
	byID map[string]int
}

// NewRepository validates data and indexes its orders. The repository
// keeps its own copy; later changes to data are not seen.
func NewRepository(data Dataset) (*Repository, error) {
	r := &Repository{
		data: cloneDataset(data),
		byID: make(map[string]int, len(data.Orders)),
	}
	for i := range r.data.Orders {
		o := &r.data.Orders[i]
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("fixture order %d: %w", i, err)
		}
		if _, dup := r.byID[o.ID]; dup {
			return nil, fmt.Errorf("fixture order %s: %w", o.ID, domain.ErrInvalidOrder)
		}
		r.byID[o.ID] = i
	}
	for i := range r.data.Users {
		if err := r.data.Users[i].Validate(); err != nil {
			return nil, fmt.Errorf("fixture user %d: %w", i, err)
		}
	}
	return r, nil
}

func (r *Repository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return cloneOrders(r.data.Orders), nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	i, ok := r.byID[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	o := r.data.Orders[i].Clone()
	return &o, nil
}

func (r *Repository) ListUserStats(ctx context.Context) ([]domain.UserStat, error) {
	return slices.Clone(r.data.Users), nil
}

func (r *Repository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return slices.Clone(r.data.Restaurants), nil
}

func (r *Repository) ListRestaurantActivity(ctx context.Context) ([]domain.RestaurantActivity, error) {
	return cloneActivity(r.data.Activity), nil
}

func cloneOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Clone())
	}
	return out
}

func cloneActivity(activity []domain.RestaurantActivity) []domain.RestaurantActivity {
	out := make([]domain.RestaurantActivity, 0, len(activity))
	for _, a := range activity {
		a.Days = slices.Clone(a.Days)
		out = append(out, a)
	}
	return out
}

func cloneDataset(d Dataset) Dataset {
	return Dataset{
		Orders:      cloneOrders(d.Orders),
		Users:       slices.Clone(d.Users),
		Restaurants: slices.Clone(d.Restaurants),
		Activity:    cloneActivity(d.Activity),
	}
}
