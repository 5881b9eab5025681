package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/eatsadmin/internal/core/aggregate"
	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/MikeRez0/eatsadmin/internal/core/port"
	"go.uber.org/zap"
)

// Service answers dashboard queries. Each call reads a fresh snapshot from
// the repository and derives the result from it; nothing is cached.
type Service struct {
	repo            port.Repository
	cancelThreshold int
	logger          *zap.Logger
}

func NewService(repo port.Repository, cancelThreshold int, logger *zap.Logger) (*Service, error) {
	if cancelThreshold < 0 {
		return nil, domain.ErrInvalidThreshold
	}
	if cancelThreshold == 0 {
		cancelThreshold = aggregate.DefaultCancelThreshold
	}
	return &Service{
		repo:            repo,
		cancelThreshold: cancelThreshold,
		logger:          logger,
	}, nil
}

func (s *Service) orders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return orders, nil
}

func (s *Service) users(ctx context.Context) ([]domain.UserStat, error) {
	users, err := s.repo.ListUserStats(ctx)
	if err != nil {
		s.logger.Error("List user stats", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return users, nil
}

func (s *Service) restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		s.logger.Error("List restaurants", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return restaurants, nil
}

func (s *Service) OrderSummaries(ctx context.Context) ([]domain.RestaurantOrderSummary, error) {
	orders, err := s.orders(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.AggregateByRestaurant(orders).Summaries(), nil
}

// RestaurantSummary returns an empty summary for a restaurant without
// orders.
func (s *Service) RestaurantSummary(ctx context.Context, restaurant string) (domain.RestaurantOrderSummary, error) {
	orders, err := s.orders(ctx)
	if err != nil {
		return domain.RestaurantOrderSummary{}, err
	}
	summary, ok := aggregate.AggregateByRestaurant(orders).Get(restaurant)
	if !ok {
		s.logger.Debug("No orders for restaurant", zap.String("restaurant", restaurant))
	}
	return summary, nil
}

func (s *Service) RestaurantOrders(ctx context.Context, restaurant string,
	status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" {
		if _, err := domain.ParseOrderStatus(string(status)); err != nil {
			return nil, domain.ErrBadRequest
		}
	}
	orders, err := s.orders(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.FilterOrders(orders, restaurant, status), nil
}

func (s *Service) CustomerOrders(ctx context.Context, customer string) ([]domain.Order, error) {
	orders, err := s.orders(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.OrdersByCustomer(orders, customer), nil
}

func (s *Service) Invoice(ctx context.Context, orderID string) (*domain.Invoice, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Read order", zap.String("order", orderID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	invoice, err := aggregate.BuildInvoice(*order)
	if err != nil {
		s.logger.Warn("Invoice rejected", zap.String("order", orderID), zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

func (s *Service) Leaderboard(ctx context.Context) (domain.Leaderboard, error) {
	users, err := s.users(ctx)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return aggregate.RankUsers(users), nil
}

// RestaurantUsers reports top users and high cancelers per restaurant.
// A zero threshold means the configured default.
func (s *Service) RestaurantUsers(ctx context.Context, threshold int) ([]domain.RestaurantUserReport, error) {
	if threshold < 0 {
		return nil, domain.ErrInvalidThreshold
	}
	if threshold == 0 {
		threshold = s.cancelThreshold
	}
	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.RestaurantUsers(users, threshold), nil
}

func (s *Service) Restaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error) {
	if filter.Status != "" && filter.Status != domain.FilterAll {
		if _, err := domain.ParseRestaurantStatus(filter.Status); err != nil {
			return nil, domain.ErrBadRequest
		}
	}
	restaurants, err := s.restaurants(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.FilterRestaurants(restaurants, filter), nil
}

func (s *Service) RestaurantStatusCounts(ctx context.Context) (domain.RestaurantStatusCounts, error) {
	restaurants, err := s.restaurants(ctx)
	if err != nil {
		return domain.RestaurantStatusCounts{}, err
	}
	return aggregate.CountByStatus(restaurants), nil
}

func (s *Service) Cuisines(ctx context.Context) ([]string, error) {
	restaurants, err := s.restaurants(ctx)
	if err != nil {
		return nil, err
	}
	return aggregate.Cuisines(restaurants), nil
}

func (s *Service) Analytics(ctx context.Context) ([]domain.ActivitySummary, error) {
	activity, err := s.repo.ListRestaurantActivity(ctx)
	if err != nil {
		s.logger.Error("List restaurant activity", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return aggregate.SummarizeActivity(activity), nil
}
