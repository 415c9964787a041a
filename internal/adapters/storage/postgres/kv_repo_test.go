package postgres

import (
	"context"
	"os"
	"testing"
)

// Requiere una base real: TEST_DB_DSN=postgres://... go test ./...
func TestKVRepo_RoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	repo := NewKVRepo(db)
	ctx := context.Background()
	key := "test.pf.radiusKm"

	if err := repo.Set(ctx, key, "3"); err != nil {
		t.Fatalf("Set #1: %v", err)
	}
	if err := repo.Set(ctx, key, "7.5"); err != nil {
		t.Fatalf("Set #2: %v", err)
	}

	v, ok, err := repo.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if v != "7.5" {
		t.Fatalf("expected upsert to keep last value, got %s", v)
	}

	if _, ok, err := repo.Get(ctx, "test.pf.missing"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
}

func TestKVRepo_EmptyKey(t *testing.T) {
	repo := NewKVRepo(nil)
	if err := repo.Set(context.Background(), "", "x"); err != ErrKeyRequired {
		t.Fatalf("expected ErrKeyRequired, got %v", err)
	}
	if _, _, err := repo.Get(context.Background(), "  "); err != ErrKeyRequired {
		t.Fatalf("expected ErrKeyRequired, got %v", err)
	}
}
