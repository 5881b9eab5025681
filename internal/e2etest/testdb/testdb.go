// Package testdb starts a throwaway PostgreSQL container for end-to-end
// tests.
package testdb

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestDBInstance struct {
	container *postgres.PostgresContainer
	DSN       string
}

func NewTestDBInstance(ctx context.Context) (*TestDBInstance, error) {
	container, err := postgres.Run(
		ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("eatsadmin"),
		postgres.WithUsername("eatsadmin"),
		postgres.WithPassword("eatsadmin"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &TestDBInstance{container: container, DSN: dsn}, nil
}

func (db *TestDBInstance) Down(ctx context.Context) error {
	return db.container.Terminate(ctx)
}
