package repository_test

import (
	"context"
	"log"
	"os"
	"testing"

	"ticket-purchase/config"
	"ticket-purchase/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Printf("Test database unavailable, integration tests will be skipped: %v", err)
	} else if err := database.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to prepare test schema: %v", err)
	} else {
		testDB = pool
		log.Println("Test database connected successfully")
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
		log.Println("Test database closed")
	}
	os.Exit(code)
}

func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDB == nil {
		t.Skip("test database is not available")
	}
	return testDB
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	_, err := getTestDB(t).Exec(context.Background(), "TRUNCATE payments RESTART IDENTITY")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}
