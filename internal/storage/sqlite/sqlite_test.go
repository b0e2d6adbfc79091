package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/costtracker/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "costtracker-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()
	user := models.NewUser("User "+email, email)
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func createCostType(t *testing.T, store *SQLiteStore, ownerID, name string) *models.CostType {
	t.Helper()
	costType := &models.CostType{OwnerID: ownerID, Name: name}
	if err := store.CreateCostType(context.Background(), costType); err != nil {
		t.Fatalf("CreateCostType failed: %v", err)
	}
	return costType
}

func createCost(t *testing.T, store *SQLiteStore, ownerID, costTypeID, date, amount string) *models.CostRecord {
	t.Helper()
	cost := &models.CostRecord{
		OwnerID:    ownerID,
		CostTypeID: costTypeID,
		OccurredOn: day(date),
		Amount:     dec(amount),
	}
	if err := store.CreateCost(context.Background(), cost); err != nil {
		t.Fatalf("CreateCost failed: %v", err)
	}
	return cost
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser generates ID", func(t *testing.T) {
		user := createUser(t, store, "alice@example.com")
		if user.ID == "" {
			t.Error("Expected user ID to be generated")
		}

		got, err := store.GetUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if got.Email != "alice@example.com" || got.Name != user.Name {
			t.Errorf("Unexpected user: %+v", got)
		}
	})

	t.Run("GetUser unknown returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetUser(ctx, "missing")
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		createUser(t, store, "dup@example.com")
		err := store.CreateUser(ctx, models.NewUser("Other", "dup@example.com"))
		if err == nil {
			t.Error("Expected error for duplicate email")
		}
	})
}

func TestCosts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "alice@example.com")
	bob := createUser(t, store, "bob@example.com")
	food := createCostType(t, store, alice.ID, "Food")
	travel := createCostType(t, store, alice.ID, "Travel")
	bobFood := createCostType(t, store, bob.ID, "Food")

	t.Run("GetCost round trips amount and date", func(t *testing.T) {
		cost := createCost(t, store, alice.ID, food.ID, "2024-03-15", "12.34")

		got, err := store.GetCost(ctx, alice.ID, cost.ID)
		if err != nil {
			t.Fatalf("GetCost failed: %v", err)
		}
		if !got.Amount.Equal(dec("12.34")) {
			t.Errorf("Expected amount 12.34, got %s", got.Amount)
		}
		if !got.OccurredOn.Equal(day("2024-03-15")) {
			t.Errorf("Expected date 2024-03-15, got %s", got.OccurredOn)
		}
		if got.CreatedAt == 0 || got.UpdatedAt == 0 {
			t.Error("Expected timestamps to be set")
		}
	})

	t.Run("cost of another owner is not found", func(t *testing.T) {
		cost := createCost(t, store, bob.ID, bobFood.ID, "2024-03-15", "5")

		_, err := store.GetCost(ctx, alice.ID, cost.ID)
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("CreateCost rejects foreign cost type", func(t *testing.T) {
		err := store.CreateCost(ctx, &models.CostRecord{
			OwnerID:    alice.ID,
			CostTypeID: bobFood.ID,
			OccurredOn: day("2024-03-15"),
			Amount:     dec("1"),
		})
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateCost changes mutable fields", func(t *testing.T) {
		cost := createCost(t, store, alice.ID, travel.ID, "2024-01-01", "10")
		cost.Amount = dec("20.50")
		cost.OccurredOn = day("2024-01-02")
		cost.Description = "taxi"

		if err := store.UpdateCost(ctx, cost); err != nil {
			t.Fatalf("UpdateCost failed: %v", err)
		}

		got, err := store.GetCost(ctx, alice.ID, cost.ID)
		if err != nil {
			t.Fatalf("GetCost failed: %v", err)
		}
		if !got.Amount.Equal(dec("20.50")) || got.Description != "taxi" || !got.OccurredOn.Equal(day("2024-01-02")) {
			t.Errorf("Unexpected cost after update: %+v", got)
		}
	})

	t.Run("UpdateCost by another owner is not found", func(t *testing.T) {
		cost := createCost(t, store, alice.ID, travel.ID, "2024-01-01", "10")
		cost.OwnerID = bob.ID
		if err := store.UpdateCost(ctx, cost); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListCostTypes is owner scoped", func(t *testing.T) {
		types, err := store.ListCostTypes(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListCostTypes failed: %v", err)
		}
		if len(types) != 2 {
			t.Fatalf("Expected 2 cost types, got %d", len(types))
		}
		if types[0].Name != "Food" || types[1].Name != "Travel" {
			t.Errorf("Expected types ordered by name, got %s, %s", types[0].Name, types[1].Name)
		}
	})

	t.Run("GetCostType of another owner is not found", func(t *testing.T) {
		_, err := store.GetCostType(ctx, alice.ID, bobFood.ID)
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestSums(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "alice@example.com")
	bob := createUser(t, store, "bob@example.com")
	food := createCostType(t, store, alice.ID, "Food")
	rent := createCostType(t, store, alice.ID, "Rent")
	bobFood := createCostType(t, store, bob.ID, "Food")

	createCost(t, store, alice.ID, food.ID, "2024-02-29", "0.10")
	createCost(t, store, alice.ID, food.ID, "2024-03-01", "0.20")
	createCost(t, store, alice.ID, food.ID, "2024-03-31", "10")
	createCost(t, store, alice.ID, rent.ID, "2024-03-05", "900")
	createCost(t, store, alice.ID, food.ID, "2024-04-01", "99")
	createCost(t, store, bob.ID, bobFood.ID, "2024-03-10", "500")

	from, to := day("2024-03-01"), day("2024-03-31")

	t.Run("SumCosts is inclusive at both ends", func(t *testing.T) {
		total, err := store.SumCosts(ctx, alice.ID, food.ID, from, to)
		if err != nil {
			t.Fatalf("SumCosts failed: %v", err)
		}
		if !total.Equal(dec("10.20")) {
			t.Errorf("Expected 10.20, got %s", total)
		}
	})

	t.Run("SumCosts across types", func(t *testing.T) {
		total, err := store.SumCosts(ctx, alice.ID, "", from, to)
		if err != nil {
			t.Fatalf("SumCosts failed: %v", err)
		}
		if !total.Equal(dec("910.20")) {
			t.Errorf("Expected 910.20, got %s", total)
		}
	})

	t.Run("decimal amounts sum exactly", func(t *testing.T) {
		total, err := store.SumCosts(ctx, alice.ID, food.ID, day("2024-02-29"), day("2024-03-01"))
		if err != nil {
			t.Fatalf("SumCosts failed: %v", err)
		}
		if total.String() != "0.3" {
			t.Errorf("Expected exactly 0.3, got %s", total)
		}
	})

	t.Run("empty window sums to zero", func(t *testing.T) {
		total, err := store.SumCosts(ctx, alice.ID, food.ID, day("2023-01-01"), day("2023-12-31"))
		if err != nil {
			t.Fatalf("SumCosts failed: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("Expected zero, got %s", total)
		}
	})

	t.Run("other owners are excluded", func(t *testing.T) {
		total, err := store.SumCosts(ctx, alice.ID, bobFood.ID, from, to)
		if err != nil {
			t.Fatalf("SumCosts failed: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("Expected zero for foreign cost type, got %s", total)
		}
	})

	t.Run("SumCostsByType groups per type", func(t *testing.T) {
		totals, err := store.SumCostsByType(ctx, alice.ID, from, to)
		if err != nil {
			t.Fatalf("SumCostsByType failed: %v", err)
		}
		if len(totals) != 2 {
			t.Fatalf("Expected 2 totals, got %d", len(totals))
		}
		if totals[0].CostTypeName != "Food" || !totals[0].Amount.Equal(dec("10.20")) {
			t.Errorf("Unexpected food total: %+v", totals[0])
		}
		if totals[1].CostTypeName != "Rent" || !totals[1].Amount.Equal(dec("900")) {
			t.Errorf("Unexpected rent total: %+v", totals[1])
		}
	})

	t.Run("ListCostEntries is ordered by date", func(t *testing.T) {
		entries, err := store.ListCostEntries(ctx, alice.ID, from, to)
		if err != nil {
			t.Fatalf("ListCostEntries failed: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("Expected 3 entries, got %d", len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].OccurredOn.Before(entries[i-1].OccurredOn) {
				t.Errorf("Entries out of order at %d", i)
			}
		}
		if entries[1].CostTypeName != "Rent" {
			t.Errorf("Expected second entry to be Rent, got %s", entries[1].CostTypeName)
		}
	})
}

func TestManyRecordsSum(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createUser(t, store, "many@example.com")
	costType := createCostType(t, store, user.ID, "Coffee")

	want := decimal.Zero
	for i := 0; i < 50; i++ {
		amount := decimal.New(int64(i*7+3), -2)
		want = want.Add(amount)
		createCost(t, store, user.ID, costType.ID, "2024-06-15", amount.String())
	}

	got, err := store.SumCosts(ctx, user.ID, costType.ID, day("2024-06-15"), day("2024-06-15"))
	if err != nil {
		t.Fatalf("SumCosts failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestLimits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "alice@example.com")
	bob := createUser(t, store, "bob@example.com")
	food := createCostType(t, store, alice.ID, "Food")

	t.Run("GetLimit without config returns nil", func(t *testing.T) {
		limit, err := store.GetLimit(ctx, alice.ID, food.ID)
		if err != nil {
			t.Fatalf("GetLimit failed: %v", err)
		}
		if limit != nil {
			t.Errorf("Expected nil limit, got %+v", limit)
		}
	})

	weekly := dec("100")
	first := &models.LimitConfig{OwnerID: alice.ID, CostTypeID: food.ID, Weekly: &weekly}

	t.Run("UpsertLimit creates", func(t *testing.T) {
		created, err := store.UpsertLimit(ctx, first)
		if err != nil {
			t.Fatalf("UpsertLimit failed: %v", err)
		}
		if !created {
			t.Error("Expected first upsert to create")
		}

		got, err := store.GetLimit(ctx, alice.ID, food.ID)
		if err != nil {
			t.Fatalf("GetLimit failed: %v", err)
		}
		if got.Weekly == nil || !got.Weekly.Equal(weekly) {
			t.Errorf("Expected weekly 100, got %v", got.Weekly)
		}
		if got.Daily != nil || got.Monthly != nil || got.Quarterly != nil || got.Yearly != nil {
			t.Errorf("Expected unset limits to stay nil: %+v", got)
		}
	})

	t.Run("UpsertLimit replaces", func(t *testing.T) {
		monthly := dec("250.50")
		second := &models.LimitConfig{OwnerID: alice.ID, CostTypeID: food.ID, Monthly: &monthly}

		created, err := store.UpsertLimit(ctx, second)
		if err != nil {
			t.Fatalf("UpsertLimit failed: %v", err)
		}
		if created {
			t.Error("Expected second upsert to update")
		}
		if second.ID != first.ID {
			t.Errorf("Expected ID %s to be kept, got %s", first.ID, second.ID)
		}

		got, err := store.GetLimit(ctx, alice.ID, food.ID)
		if err != nil {
			t.Fatalf("GetLimit failed: %v", err)
		}
		if got.Weekly != nil {
			t.Errorf("Expected weekly to be cleared, got %s", got.Weekly)
		}
		if got.Monthly == nil || !got.Monthly.Equal(monthly) {
			t.Errorf("Expected monthly 250.50, got %v", got.Monthly)
		}
	})

	t.Run("UpsertLimit on foreign cost type is not found", func(t *testing.T) {
		_, err := store.UpsertLimit(ctx, &models.LimitConfig{OwnerID: bob.ID, CostTypeID: food.ID, Weekly: &weekly})
		if !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestNotificationOutbox(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createUser(t, store, "alice@example.com")

	batch := []*models.Notification{
		{OwnerID: user.ID, CostID: "c1", Period: models.PeriodDaily, Recipient: user.Email, Subject: "a", Body: "a", CreatedAt: 100},
		{OwnerID: user.ID, CostID: "c1", Period: models.PeriodWeekly, Recipient: user.Email, Subject: "b", Body: "b", CreatedAt: 200},
		{OwnerID: user.ID, CostID: "c1", Period: models.PeriodMonthly, Recipient: user.Email, Subject: "c", Body: "c", CreatedAt: 300},
	}
	if err := store.EnqueueNotifications(ctx, batch); err != nil {
		t.Fatalf("EnqueueNotifications failed: %v", err)
	}

	t.Run("pending are listed oldest first", func(t *testing.T) {
		pending, err := store.ListPendingNotifications(ctx, 10)
		if err != nil {
			t.Fatalf("ListPendingNotifications failed: %v", err)
		}
		if len(pending) != 3 {
			t.Fatalf("Expected 3 pending, got %d", len(pending))
		}
		if pending[0].Period != models.PeriodDaily || pending[2].Period != models.PeriodMonthly {
			t.Errorf("Unexpected order: %s, %s", pending[0].Period, pending[2].Period)
		}
		if pending[0].Status != models.NotificationPending {
			t.Errorf("Expected pending status, got %s", pending[0].Status)
		}
	})

	t.Run("sent and final failures leave the queue", func(t *testing.T) {
		if err := store.MarkNotificationSent(ctx, batch[0].ID); err != nil {
			t.Fatalf("MarkNotificationSent failed: %v", err)
		}
		if err := store.MarkNotificationFailed(ctx, batch[1].ID, errors.New("smtp down"), false); err != nil {
			t.Fatalf("MarkNotificationFailed failed: %v", err)
		}
		if err := store.MarkNotificationFailed(ctx, batch[2].ID, errors.New("bounced"), true); err != nil {
			t.Fatalf("MarkNotificationFailed failed: %v", err)
		}

		pending, err := store.ListPendingNotifications(ctx, 10)
		if err != nil {
			t.Fatalf("ListPendingNotifications failed: %v", err)
		}
		if len(pending) != 1 {
			t.Fatalf("Expected 1 pending, got %d", len(pending))
		}
		if pending[0].ID != batch[1].ID {
			t.Errorf("Expected retryable notification to stay pending")
		}
		if pending[0].Attempts != 1 || pending[0].LastError != "smtp down" {
			t.Errorf("Unexpected attempt bookkeeping: attempts=%d lastError=%q", pending[0].Attempts, pending[0].LastError)
		}
	})

	t.Run("marking unknown notification is not found", func(t *testing.T) {
		if err := store.MarkNotificationSent(ctx, "missing"); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
