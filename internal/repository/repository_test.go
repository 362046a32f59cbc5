package repository_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const postgresImage = "postgres:17.6-alpine3.22"

// startPostgres runs a container with the storage_slots schema applied. The
// caller owns the returned container and must terminate it.
func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	container, err := postgres.Run(ctx, postgresImage,
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts("../migrations/01_storage_slots.up.sql"),
	)
	if err != nil {
		// Run may hand back a started container together with the error
		return nil, "", errors.Join(fmt.Errorf("postgres.Run: %w", err), testcontainers.TerminateContainer(container))
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", errors.Join(fmt.Errorf("container.ConnectionString: %w", err), testcontainers.TerminateContainer(container))
	}

	return container, connStr, nil
}
