// Package pgtest starts a throwaway PostgreSQL for integration suites and
// prepares it with the service schema.
package pgtest

import (
	"context"
	"time"

	pgadapter "ordertracker/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a migrated PostgreSQL container plus an open GORM handle.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	URL       string
}

// Start runs postgres:15-alpine, applies migrations and opens a connection.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = pgadapter.Migrate(url); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := pgadapter.Open(ctx, url)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, URL: url}, nil
}

// Truncate empties every table and resets identities.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE pauses, orders RESTART IDENTITY CASCADE").Error
}

// Stop closes the connection and removes the container.
func (d *Database) Stop(ctx context.Context) error {
	_ = pgadapter.Close(d.DB)
	return d.Container.Terminate(ctx)
}
