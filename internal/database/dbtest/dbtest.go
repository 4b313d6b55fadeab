// Package dbtest starts a throwaway Postgres for store integration tests.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MrJamesThe3rd/finchat/internal/database"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// Setup returns a connection to a migrated Postgres shared by the whole test
// binary. It skips the test under -short or when Docker is unavailable.
func Setup(t *testing.T) *sql.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(func() {
		sharedDSN, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("dbtest: %v", initErr)
	}

	db, err := database.New(sharedDSN)
	if err != nil {
		t.Fatalf("dbtest: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "finchat",
			"POSTGRES_PASSWORD": "finchat",
			"POSTGRES_DB":       "finchat",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("starting container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("getting container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("getting mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://finchat:finchat@%s:%s/finchat?sslmode=disable", host, port.Port())

	db, err := database.New(dsn)
	if err != nil {
		return "", err
	}
	defer db.Close()

	if _, err := database.Migrate(ctx, db); err != nil {
		return "", err
	}

	return dsn, nil
}

// Truncate empties every table. Tests sharing the database call it first.
func Truncate(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`TRUNCATE users, categories, transactions, budgets, reminders, future_incomes, category_rules CASCADE`)
	if err != nil {
		t.Fatalf("dbtest: truncating: %v", err)
	}
}
