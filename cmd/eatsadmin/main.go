package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MikeRez0/eatsadmin/internal/adapter/config"
	"github.com/MikeRez0/eatsadmin/internal/adapter/handler/http"
	"github.com/MikeRez0/eatsadmin/internal/adapter/logger"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage/memory"
	"github.com/MikeRez0/eatsadmin/internal/adapter/storage/repository"
	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/MikeRez0/eatsadmin/internal/core/port"
	"github.com/MikeRez0/eatsadmin/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig(os.Args[1:])
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	data := memory.Fixtures()
	if conf.Report.SyntheticOrders > 0 {
		names := make([]string, 0, len(data.Restaurants))
		for _, r := range data.Restaurants {
			names = append(names, r.Name)
		}
		data.Orders = append(data.Orders,
			memory.Synthesize(conf.Report.SyntheticOrders, conf.Report.SyntheticSeed, names)...)
		log.Info("synthetic orders added", zap.Int("count", conf.Report.SyntheticOrders))
	}

	repo, err := newRepository(ctx, conf.Database, data, log.Named("Storage"))
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, conf.Report.CancelThreshold, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	restaurantHandler, err := http.NewRestaurantHandler(svc, log.Named("Restaurant handler"))
	if err != nil {
		log.Error("restaurant handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(orderHandler, userHandler, restaurantHandler, http.NewMetrics(), log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("listening", zap.String("address", conf.HTTP.HostString))
	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}

// newRepository serves data from memory unless a database is configured.
// With seeding enabled the database receives data once; a second seed
// is skipped.
func newRepository(ctx context.Context, conf *config.Database, data memory.Dataset,
	log *zap.Logger) (port.Repository, error) {
	if conf.DSN == "" {
		log.Info("using in-memory dataset", zap.Int("orders", len(data.Orders)))
		repo, err := memory.NewRepository(data)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}

	db, err := storage.NewDBStorage(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	err = db.RunMigrations()
	if err != nil {
		return nil, fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		return nil, err
	}

	if conf.Seed {
		if _, err := memory.NewRepository(data); err != nil {
			return nil, fmt.Errorf("seed data: %w", err)
		}
		err := repo.Seed(ctx, data)
		switch {
		case errors.Is(err, domain.ErrConflictingData):
			log.Info("database already seeded")
		case err != nil:
			return nil, err
		default:
			log.Info("database seeded", zap.Int("orders", len(data.Orders)))
		}
	}
	return repo, nil
}
