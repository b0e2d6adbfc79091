package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/models"
	"github.com/mmynk/costtracker/internal/storage/sqlite"
)

// setupTestStore creates a SQLite store backed by a temp file.
func setupTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.Remove(tmpFile.Name())
	})
	return store
}

// fixedClock returns a clock stuck at the given date, at noon UTC.
func fixedClock(date string) func() time.Time {
	d := mustDate(date)
	return func() time.Time { return d.Add(12 * time.Hour) }
}

func mustDate(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type fixture struct {
	store *sqlite.SQLiteStore
	owner *models.User
	other *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := setupTestStore(t)
	ctx := context.Background()

	owner := models.NewUser("Alice", "alice@example.com")
	other := models.NewUser("Bob", "bob@example.com")
	for _, u := range []*models.User{owner, other} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}
	return &fixture{store: store, owner: owner, other: other}
}

func (f *fixture) costType(t *testing.T, ownerID, name string) *models.CostType {
	t.Helper()
	ct := &models.CostType{OwnerID: ownerID, Name: name}
	if err := f.store.CreateCostType(context.Background(), ct); err != nil {
		t.Fatalf("CreateCostType failed: %v", err)
	}
	return ct
}

func (f *fixture) cost(t *testing.T, ownerID, costTypeID, date, amount string) *models.CostRecord {
	t.Helper()
	c := &models.CostRecord{
		OwnerID:     ownerID,
		CostTypeID:  costTypeID,
		OccurredOn:  mustDate(date),
		Description: "test",
		Amount:      dec(amount),
	}
	if err := f.store.CreateCost(context.Background(), c); err != nil {
		t.Fatalf("CreateCost failed: %v", err)
	}
	return c
}

// recordingNotifier captures alerts instead of delivering them.
type recordingNotifier struct {
	mu     sync.Mutex
	alerts []models.LimitAlert
	calls  int
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, alerts []models.LimitAlert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	n.alerts = append(n.alerts, alerts...)
	return n.err
}
